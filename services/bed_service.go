package services

import (
	"errors"
	"strings"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

// ErrDuplicateBedNumber is returned when a bed number already exists within
// the same room.
var ErrDuplicateBedNumber = errors.New("bed number already exists in this room")

type BedService struct {
	DB *gorm.DB
}

func NewBedService(db *gorm.DB) *BedService {
	return &BedService{DB: db}
}

func (s *BedService) Create(bed *models.Bed) error {
	bed.BedNumber = strings.TrimSpace(bed.BedNumber)
	if bed.BedNumber == "" {
		return &ValidationError{Fields: map[string]string{"bedNumber": "bed number is required"}}
	}

	var count int64
	s.DB.Model(&models.Bed{}).
		Where("room_id = ? AND bed_number = ?", bed.RoomID, bed.BedNumber).
		Count(&count)
	if count > 0 {
		return ErrDuplicateBedNumber
	}

	if err := s.DB.Create(bed).Error; err != nil {
		return err
	}
	return s.recomputeRoomAvailability(bed.RoomID)
}

// GetInRoom loads a bed scoped to its room.
func (s *BedService) GetInRoom(bedID, roomID uint) (*models.Bed, error) {
	var bed models.Bed
	err := s.DB.Where("id = ? AND room_id = ?", bedID, roomID).First(&bed).Error
	if err != nil {
		return nil, err
	}
	return &bed, nil
}

func (s *BedService) ListForRoom(roomID uint) ([]models.Bed, error) {
	var beds []models.Bed
	err := s.DB.Where("room_id = ?", roomID).Order("bed_number ASC").Find(&beds).Error
	return beds, err
}

// SetOccupancy flips a bed's occupancy flag and recomputes the parent
// room's denormalized availability from bed state.
func (s *BedService) SetOccupancy(bedID, roomID uint, occupied bool) (*models.Bed, error) {
	bed, err := s.GetInRoom(bedID, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(bed).Update("is_occupied", occupied).Error; err != nil {
		return nil, err
	}
	if err := s.recomputeRoomAvailability(roomID); err != nil {
		return nil, err
	}
	return bed, nil
}

func (s *BedService) Update(bedID, roomID uint, updates map[string]interface{}) (*models.Bed, error) {
	bed, err := s.GetInRoom(bedID, roomID)
	if err != nil {
		return nil, err
	}

	updates = normalizeUpdates(updates)
	delete(updates, "id")
	delete(updates, "room_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	// A rename gets the same duplicate check as creation, so the unique
	// index never surfaces as an internal error.
	if num, ok := updates["bed_number"].(string); ok {
		num = strings.TrimSpace(num)
		if num == "" {
			return nil, &ValidationError{Fields: map[string]string{"bedNumber": "bed number is required"}}
		}
		updates["bed_number"] = num

		var count int64
		s.DB.Model(&models.Bed{}).
			Where("room_id = ? AND bed_number = ? AND id <> ?", roomID, num, bed.ID).
			Count(&count)
		if count > 0 {
			return nil, ErrDuplicateBedNumber
		}
	}

	if err := s.DB.Model(bed).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.recomputeRoomAvailability(roomID); err != nil {
		return nil, err
	}
	return bed, nil
}

func (s *BedService) Delete(bedID, roomID uint) error {
	bed, err := s.GetInRoom(bedID, roomID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(bed).Error; err != nil {
		return err
	}
	return s.recomputeRoomAvailability(roomID)
}

// recomputeRoomAvailability keeps Room.IsAvailable in sync with bed state:
// the flag is true only while at least one bed in the room is unoccupied.
func (s *BedService) recomputeRoomAvailability(roomID uint) error {
	var free int64
	err := s.DB.Model(&models.Bed{}).
		Where("room_id = ? AND is_occupied = ?", roomID, false).
		Count(&free).Error
	if err != nil {
		return err
	}
	return s.DB.Model(&models.Room{}).Where("id = ?", roomID).
		Update("is_available", free > 0).Error
}
