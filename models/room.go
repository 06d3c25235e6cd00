package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room type values accepted for a room.
const (
	RoomSingle = "SINGLE"
	RoomDouble = "DOUBLE"
	RoomTriple = "TRIPLE"
	RoomOther  = "OTHER"
)

type Room struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PropertyID uint `gorm:"column:pg_id;uniqueIndex:idx_rooms_pg_number" json:"pgId"`

	// RoomNumber is unique within a property, not globally.
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex:idx_rooms_pg_number;type:varchar(50)"`

	Type      string  `json:"type" gorm:"type:varchar(20);default:SINGLE"`
	BasePrice float64 `json:"basePrice" gorm:"column:base_price"`
	Capacity  int     `json:"capacity" gorm:"default:1"`

	// IsAvailable is denormalized from bed occupancy. Bed state is the
	// source of truth; this flag is recomputed on every bed write.
	IsAvailable bool `json:"isAvailable" gorm:"default:true"`

	Images datatypes.JSON `json:"images,omitempty"`

	Beds []Bed `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"beds,omitempty"`
}

func (Room) TableName() string { return "rooms" }
