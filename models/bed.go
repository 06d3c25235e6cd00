package models

import "time"

// Bed is the leaf of the property aggregate. Occupancy is set per bed and
// aggregates upward into room and property availability counts.
type Bed struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomID uint `gorm:"column:room_id;uniqueIndex:idx_beds_room_number" json:"roomId"`

	// BedNumber is unique within a room.
	BedNumber string `json:"bedNumber" gorm:"column:bed_number;uniqueIndex:idx_beds_room_number;type:varchar(50)"`

	IsOccupied bool `json:"isOccupied" gorm:"default:false"`
}

func (Bed) TableName() string { return "beds" }
