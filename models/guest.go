package models

import "time"

// Guest status values.
const (
	GuestActive     = "active"
	GuestCheckedOut = "checked-out"
	GuestUpcoming   = "upcoming"
)

// Guest is a person currently or previously staying at a property.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PropertyID uint  `gorm:"column:pg_id;index" json:"pgId"`
	RoomID     *uint `gorm:"column:room_id;index" json:"roomId,omitempty"`

	FullName string `json:"fullName" gorm:"type:varchar(191)"`
	Phone    string `json:"phone" gorm:"type:varchar(20)"`
	Email    string `json:"email" gorm:"type:varchar(191)"`

	CheckInDate  *time.Time `json:"checkInDate,omitempty" gorm:"column:check_in_date"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty" gorm:"column:check_out_date"`

	Occupants int    `json:"occupants" gorm:"default:1"`
	Status    string `json:"status" gorm:"type:varchar(20);default:upcoming;index"`
	Notes     string `json:"notes" gorm:"type:text"`

	// Populated for admin views, not persisted.
	RoomNumber string `gorm:"-" json:"roomNumber,omitempty"`

	Room *Room `gorm:"foreignKey:RoomID" json:"-"`
}

func (Guest) TableName() string { return "guests" }
