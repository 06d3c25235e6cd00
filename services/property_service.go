package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

// ErrForbidden is returned when an owner touches a property they don't own.
var ErrForbidden = errors.New("you do not have access to this property")

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

// Slugify builds a URL slug from a property name.
func Slugify(name string) string {
	s := slugCleaner.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(s, "-")
}

func (s *PropertyService) Create(property *models.Property) error {
	if property.Slug == "" {
		property.Slug = Slugify(property.Name)
	}

	// Disambiguate slug collisions with a numeric suffix.
	base := property.Slug
	for i := 2; ; i++ {
		var count int64
		s.DB.Model(&models.Property{}).Where("slug = ?", property.Slug).Count(&count)
		if count == 0 {
			break
		}
		property.Slug = fmt.Sprintf("%s-%d", base, i)
	}

	if property.GenderPolicy == "" {
		property.GenderPolicy = models.GenderUnisex
	}
	return s.DB.Create(property).Error
}

// GetOwned loads a property and verifies ownership. Returns ErrForbidden
// when the property belongs to someone else.
func (s *PropertyService) GetOwned(id, ownerID uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.Preload("Rooms.Beds").First(&property, id).Error; err != nil {
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return &property, nil
}

// ListOwned returns all of an owner's properties with occupancy attached.
func (s *PropertyService) ListOwned(ownerID uint) ([]PropertyCard, error) {
	var properties []models.Property
	err := s.DB.Where("owner_id = ?", ownerID).Preload("Rooms.Beds").
		Order("name ASC").Find(&properties).Error
	if err != nil {
		return nil, err
	}
	cards := make([]PropertyCard, 0, len(properties))
	for i := range properties {
		cards = append(cards, PropertyCard{
			Property:         properties[i],
			OccupancySummary: ComputeOccupancy(properties[i].Rooms),
		})
	}
	return cards, nil
}

// Update applies a partial update map. Identity and audit fields are
// stripped before the write.
func (s *PropertyService) Update(id, ownerID uint, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetOwned(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates = normalizeUpdates(updates)
	delete(updates, "id")
	delete(updates, "owner_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	if err := s.DB.Model(property).Updates(updates).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// Delete soft-deletes the property and hard-deletes its rooms and beds in
// one transaction, so the cascade happens even though the property row only
// gets a deleted_at marker.
func (s *PropertyService) Delete(id, ownerID uint) error {
	property, err := s.GetOwned(id, ownerID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var roomIDs []uint
		if err := tx.Model(&models.Room{}).Where("pg_id = ?", property.ID).
			Pluck("id", &roomIDs).Error; err != nil {
			return err
		}
		if len(roomIDs) > 0 {
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&models.Bed{}).Error; err != nil {
				return err
			}
			if err := tx.Where("pg_id = ?", property.ID).Delete(&models.Room{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(property).Error
	})
}
