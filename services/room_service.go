package services

import (
	"errors"
	"strings"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

// ErrDuplicateRoomNumber is returned when a room number already exists
// within the same property.
var ErrDuplicateRoomNumber = errors.New("room number already exists in this property")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func validRoomType(t string) bool {
	switch t {
	case models.RoomSingle, models.RoomDouble, models.RoomTriple, models.RoomOther:
		return true
	}
	return false
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return &ValidationError{Fields: map[string]string{"roomNumber": "room number is required"}}
	}
	if room.Type == "" {
		room.Type = models.RoomSingle
	}
	if !validRoomType(room.Type) {
		return &ValidationError{Fields: map[string]string{"type": "room type must be SINGLE, DOUBLE, TRIPLE or OTHER"}}
	}
	if room.Capacity <= 0 {
		room.Capacity = 1
	}

	var count int64
	s.DB.Model(&models.Room{}).
		Where("pg_id = ? AND room_number = ?", room.PropertyID, room.RoomNumber).
		Count(&count)
	if count > 0 {
		return ErrDuplicateRoomNumber
	}

	return s.DB.Create(room).Error
}

// GetInProperty loads a room scoped to its property, so a roomId from
// another property's URL is a 404, not a leak.
func (s *RoomService) GetInProperty(roomID, pgID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("id = ? AND pg_id = ?", roomID, pgID).
		Preload("Beds").First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) ListForProperty(pgID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("pg_id = ?", pgID).Preload("Beds").
		Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Update(roomID, pgID uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetInProperty(roomID, pgID)
	if err != nil {
		return nil, err
	}

	updates = normalizeUpdates(updates)
	delete(updates, "id")
	delete(updates, "pg_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if t, ok := updates["type"].(string); ok && !validRoomType(t) {
		return nil, &ValidationError{Fields: map[string]string{"type": "room type must be SINGLE, DOUBLE, TRIPLE or OTHER"}}
	}

	// A rename gets the same duplicate check as creation, so the unique
	// index never surfaces as an internal error.
	if num, ok := updates["room_number"].(string); ok {
		num = strings.TrimSpace(num)
		if num == "" {
			return nil, &ValidationError{Fields: map[string]string{"roomNumber": "room number is required"}}
		}
		updates["room_number"] = num

		var count int64
		s.DB.Model(&models.Room{}).
			Where("pg_id = ? AND room_number = ? AND id <> ?", pgID, num, room.ID).
			Count(&count)
		if count > 0 {
			return nil, ErrDuplicateRoomNumber
		}
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes the room and its beds.
func (s *RoomService) Delete(roomID, pgID uint) error {
	room, err := s.GetInProperty(roomID, pgID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Bed{}).Error; err != nil {
			return err
		}
		return tx.Delete(room).Error
	})
}
