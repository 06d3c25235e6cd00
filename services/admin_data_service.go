package services

import (
	"encoding/json"
	"fmt"

	"pgstay-backend/cache"
	"pgstay-backend/models"

	"github.com/sirupsen/logrus"
)

// Cache sections, one per admin collection.
const (
	SectionRooms     = "rooms"
	SectionEnquiries = "enquiries"
	SectionGuests    = "guests"
	SectionAudits    = "audits"
)

// AdminDataService fronts the per-property admin collections with the TTL
// cache. A stale-by-up-to-30-minutes view is acceptable here; mutations call
// Invalidate so the next read refetches. Entries restored from a snapshot
// arrive as raw JSON and are decoded back into their concrete slice type, so
// a restart keeps serving warm entries.
type AdminDataService struct {
	Rooms     *RoomService
	Enquiries *EnquiryService
	Guests    *GuestService
	Audits    *SafetyAuditService

	Cache *cache.TTLCache
}

func NewAdminDataService(rooms *RoomService, enquiries *EnquiryService,
	guests *GuestService, audits *SafetyAuditService, c *cache.TTLCache) *AdminDataService {
	return &AdminDataService{
		Rooms:     rooms,
		Enquiries: enquiries,
		Guests:    guests,
		Audits:    audits,
		Cache:     c,
	}
}

func cacheKey(pgID uint, section string) string {
	return fmt.Sprintf("pg:%d:%s", pgID, section)
}

// fromCache returns the cached slice under key. A live entry is returned
// as-is; a snapshot-restored entry is raw JSON and gets unmarshalled into
// the concrete type. Anything undecodable counts as a miss.
func fromCache[T any](c *cache.TTLCache, key string) ([]T, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	switch val := v.(type) {
	case []T:
		return val, true
	case json.RawMessage:
		var out []T
		if err := json.Unmarshal(val, &out); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("cache: snapshot entry undecodable, refetching")
			return nil, false
		}
		return out, true
	}
	logrus.WithField("key", key).Debug("cache value type mismatch, refetching")
	return nil, false
}

// Invalidate clears one cached section for a property.
func (s *AdminDataService) Invalidate(pgID uint, section string) {
	s.Cache.Clear(cacheKey(pgID, section))
}

// InvalidateAll clears every cached section for a property, used after
// property-level mutations.
func (s *AdminDataService) InvalidateAll(pgID uint) {
	for _, section := range []string{SectionRooms, SectionEnquiries, SectionGuests, SectionAudits} {
		s.Cache.Clear(cacheKey(pgID, section))
	}
}

func (s *AdminDataService) RoomsForProperty(pgID uint) ([]models.Room, error) {
	key := cacheKey(pgID, SectionRooms)
	if rooms, ok := fromCache[models.Room](s.Cache, key); ok {
		return rooms, nil
	}
	rooms, err := s.Rooms.ListForProperty(pgID)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(key, rooms)
	return rooms, nil
}

func (s *AdminDataService) EnquiriesForProperty(pgID uint) ([]models.Enquiry, error) {
	key := cacheKey(pgID, SectionEnquiries)
	if enquiries, ok := fromCache[models.Enquiry](s.Cache, key); ok {
		return enquiries, nil
	}
	enquiries, err := s.Enquiries.ListForProperty(pgID)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(key, enquiries)
	return enquiries, nil
}

func (s *AdminDataService) GuestsForProperty(pgID uint) ([]models.Guest, error) {
	key := cacheKey(pgID, SectionGuests)
	if guests, ok := fromCache[models.Guest](s.Cache, key); ok {
		return guests, nil
	}
	guests, err := s.Guests.ListForProperty(pgID)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(key, guests)
	return guests, nil
}

func (s *AdminDataService) AuditsForProperty(pgID uint) ([]models.SafetyAudit, error) {
	key := cacheKey(pgID, SectionAudits)
	if audits, ok := fromCache[models.SafetyAudit](s.Cache, key); ok {
		return audits, nil
	}
	audits, err := s.Audits.ListForProperty(pgID)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(key, audits)
	return audits, nil
}
