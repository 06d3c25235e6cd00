package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Gender policy values accepted for a property.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderUnisex = "UNISEX"
)

// Property is a PG accommodation listing. It owns rooms, which own beds.
type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID uint `gorm:"index;column:owner_id" json:"ownerId"`

	Name string `json:"name" gorm:"type:varchar(191)"`
	Slug string `json:"slug" gorm:"uniqueIndex;type:varchar(191)"`

	Address  string `json:"address" gorm:"type:text"`
	City     string `json:"city" gorm:"type:varchar(100);index"`
	Locality string `json:"locality" gorm:"type:varchar(100)"`

	GenderPolicy string `json:"genderPolicy" gorm:"type:varchar(10);default:UNISEX"`
	IsPublished  bool   `json:"isPublished" gorm:"default:false"`

	// Amenities and Images are stored as JSON arrays of strings.
	Amenities  datatypes.JSON `json:"amenities,omitempty"`
	Images     datatypes.JSON `json:"images,omitempty"`
	CoverImage string         `json:"coverImage" gorm:"type:text"`

	CheckInTime        string `json:"checkInTime" gorm:"type:varchar(20)"`
	CheckOutTime       string `json:"checkOutTime" gorm:"type:varchar(20)"`
	MinimumStayMonths  int    `json:"minimumStayMonths" gorm:"default:1"`
	CancellationPolicy string `json:"cancellationPolicy" gorm:"type:text"`

	Rooms []Room `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

// TableName keeps the table name the frontend API was built against.
func (Property) TableName() string { return "pgs" }

// AmenityList decodes the stored amenity JSON. A property with no amenity
// payload (or a malformed one) simply has no amenities.
func (p *Property) AmenityList() []string {
	if len(p.Amenities) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(p.Amenities, &out); err != nil {
		return nil
	}
	return out
}
