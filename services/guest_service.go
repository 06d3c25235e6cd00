package services

import (
	"strings"
	"time"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func validGuestStatus(status string) bool {
	switch status {
	case models.GuestActive, models.GuestCheckedOut, models.GuestUpcoming:
		return true
	}
	return false
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.FullName = strings.TrimSpace(guest.FullName)
	if guest.FullName == "" {
		return &ValidationError{Fields: map[string]string{"fullName": "guest name is required"}}
	}
	if guest.Status == "" {
		guest.Status = models.GuestUpcoming
	}
	if !validGuestStatus(guest.Status) {
		return &ValidationError{Fields: map[string]string{"status": "status must be active, checked-out or upcoming"}}
	}
	if guest.Occupants <= 0 {
		guest.Occupants = 1
	}
	return s.DB.Create(guest).Error
}

// ListForProperty returns a property's guests with room numbers filled in
// for the admin view.
func (s *GuestService) ListForProperty(pgID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Where("pg_id = ?", pgID).Preload("Room").
		Order("id DESC").Find(&guests).Error
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].Room != nil {
			guests[i].RoomNumber = guests[i].Room.RoomNumber
		}
	}
	return guests, nil
}

func (s *GuestService) GetInProperty(guestID, pgID uint) (*models.Guest, error) {
	var guest models.Guest
	err := s.DB.Where("id = ? AND pg_id = ?", guestID, pgID).First(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) Update(guestID, pgID uint, updates map[string]interface{}) (*models.Guest, error) {
	guest, err := s.GetInProperty(guestID, pgID)
	if err != nil {
		return nil, err
	}

	updates = normalizeUpdates(updates)
	delete(updates, "id")
	delete(updates, "pg_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if status, ok := updates["status"].(string); ok && !validGuestStatus(status) {
		return nil, &ValidationError{Fields: map[string]string{"status": "status must be active, checked-out or upcoming"}}
	}

	if err := s.DB.Model(guest).Updates(updates).Error; err != nil {
		return nil, err
	}
	return guest, nil
}

// CheckOut marks a guest as checked out with the current timestamp.
func (s *GuestService) CheckOut(guestID, pgID uint) (*models.Guest, error) {
	guest, err := s.GetInProperty(guestID, pgID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = s.DB.Model(guest).Updates(map[string]interface{}{
		"status":         models.GuestCheckedOut,
		"check_out_date": now,
	}).Error
	if err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) Delete(guestID, pgID uint) error {
	guest, err := s.GetInProperty(guestID, pgID)
	if err != nil {
		return err
	}
	return s.DB.Delete(guest).Error
}
