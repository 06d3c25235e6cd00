package services

import (
	"path/filepath"
	"testing"

	"pgstay-backend/cache"
	"pgstay-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAdminDataWithCache(db *gorm.DB, c *cache.TTLCache) *AdminDataService {
	return NewAdminDataService(
		NewRoomService(db),
		newTestEnquiryService(db),
		NewGuestService(db),
		NewSafetyAuditService(db),
		c,
	)
}

func newTestAdminData(db *gorm.DB) *AdminDataService {
	return newTestAdminDataWithCache(db, cache.New())
}

func TestRoomsForProperty_ServedFromCacheUntilInvalidated(t *testing.T) {
	db := setupTestDB(t)
	property := models.Property{Name: "Sunrise PG", Slug: "sunrise-pg"}
	require.NoError(t, db.Create(&property).Error)
	require.NoError(t, db.Create(&models.Room{
		PropertyID: property.ID, RoomNumber: "101", Type: models.RoomSingle,
	}).Error)

	svc := newTestAdminData(db)

	rooms, err := svc.RoomsForProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	// A write that bypasses the service is invisible while the cache entry
	// is fresh.
	require.NoError(t, db.Create(&models.Room{
		PropertyID: property.ID, RoomNumber: "102", Type: models.RoomDouble,
	}).Error)

	rooms, err = svc.RoomsForProperty(property.ID)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// Invalidation forces the refetch.
	svc.Invalidate(property.ID, SectionRooms)
	rooms, err = svc.RoomsForProperty(property.ID)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomsForProperty_SnapshotServesWarmEntriesAfterRestart(t *testing.T) {
	db := setupTestDB(t)
	property := models.Property{Name: "Sunrise PG", Slug: "sunrise-pg"}
	require.NoError(t, db.Create(&property).Error)
	require.NoError(t, db.Create(&models.Room{
		PropertyID: property.ID, RoomNumber: "101", Type: models.RoomSingle, BasePrice: 9000,
	}).Error)

	path := filepath.Join(t.TempDir(), "admin-cache.json")

	warm := newTestAdminDataWithCache(db, cache.New(cache.WithStore(cache.NewFileStore(path))))
	rooms, err := warm.RoomsForProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	// The backing row is gone, so only a restored cache entry can still
	// produce it.
	require.NoError(t, db.Where("pg_id = ?", property.ID).Delete(&models.Room{}).Error)

	restarted := newTestAdminDataWithCache(db, cache.New(cache.WithStore(cache.NewFileStore(path))))
	rooms, err = restarted.RoomsForProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, float64(9000), rooms[0].BasePrice)
}

func TestInvalidateAll_ClearsEverySection(t *testing.T) {
	db := setupTestDB(t)
	property := models.Property{Name: "Sunrise PG", Slug: "sunrise-pg"}
	require.NoError(t, db.Create(&property).Error)

	svc := newTestAdminData(db)

	_, err := svc.RoomsForProperty(property.ID)
	require.NoError(t, err)
	_, err = svc.GuestsForProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Cache.Len())

	svc.InvalidateAll(property.ID)
	assert.Equal(t, 0, svc.Cache.Len())
}
