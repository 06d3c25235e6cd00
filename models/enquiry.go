package models

import (
	"time"

	"gorm.io/gorm"
)

// Enquiry status transitions: NEW -> CONTACTED -> CLOSED.
const (
	EnquiryNew       = "NEW"
	EnquiryContacted = "CONTACTED"
	EnquiryClosed    = "CLOSED"
)

// Enquiry is a visitor-submitted lead. PropertyID is nullable: a general
// enquiry is not tied to any property. Enquiries are never hard-deleted in
// the normal flow, hence the soft-delete column.
type Enquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID *uint `gorm:"column:pg_id;index" json:"pgId,omitempty"`

	ReferenceCode string `gorm:"column:reference_code;type:varchar(64)" json:"referenceCode"`

	Name       string `json:"name" gorm:"type:varchar(191)"`
	Phone      string `json:"phone" gorm:"type:varchar(20);index"`
	Email      string `json:"email" gorm:"type:varchar(191)"`
	Occupation string `json:"occupation" gorm:"type:varchar(100)"`

	RoomType   string     `json:"roomType" gorm:"column:room_type;type:varchar(20)"`
	MoveInDate *time.Time `json:"moveInDate,omitempty" gorm:"column:move_in_date"`
	Message    string     `json:"message" gorm:"type:text"`

	Status string `json:"status" gorm:"type:varchar(20);default:NEW;index"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Enquiry) TableName() string { return "enquiries" }
