package models

import (
	"time"

	"gorm.io/gorm"
)

// Owner is an admin account that manages one or more properties.
type Owner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `json:"fullName" gorm:"type:varchar(191)"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(191)"`
	Phone    string `json:"phone" gorm:"type:varchar(20)"`

	// bcrypt hash, never serialized.
	Password string `json:"-" gorm:"type:varchar(191)"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Owner) TableName() string { return "owners" }
