package services

import (
	"testing"

	"pgstay-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoomWithBeds(t *testing.T, db *gorm.DB) (models.Property, models.Room) {
	t.Helper()
	property := models.Property{Name: "Sunrise PG", Slug: "sunrise-pg"}
	require.NoError(t, db.Create(&property).Error)

	room := models.Room{
		PropertyID: property.ID,
		RoomNumber: "101",
		Type:       models.RoomDouble,
		BasePrice:  9000,
		Capacity:   2,
	}
	require.NoError(t, db.Create(&room).Error)
	return property, room
}

func roomAvailability(t *testing.T, db *gorm.DB, roomID uint) bool {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, roomID).Error)
	return room.IsAvailable
}

func TestBedCreate_RejectsDuplicateNumberInRoom(t *testing.T) {
	db := setupTestDB(t)
	_, room := seedRoomWithBeds(t, db)
	svc := NewBedService(db)

	require.NoError(t, svc.Create(&models.Bed{RoomID: room.ID, BedNumber: "A"}))

	err := svc.Create(&models.Bed{RoomID: room.ID, BedNumber: "A"})
	assert.ErrorIs(t, err, ErrDuplicateBedNumber)
}

func TestBedUpdate_RejectsRenameToExistingNumber(t *testing.T) {
	db := setupTestDB(t)
	_, room := seedRoomWithBeds(t, db)
	svc := NewBedService(db)

	bedA := models.Bed{RoomID: room.ID, BedNumber: "A"}
	bedB := models.Bed{RoomID: room.ID, BedNumber: "B"}
	require.NoError(t, svc.Create(&bedA))
	require.NoError(t, svc.Create(&bedB))

	_, err := svc.Update(bedB.ID, room.ID, map[string]interface{}{"bedNumber": "A"})
	assert.ErrorIs(t, err, ErrDuplicateBedNumber)

	// Renaming to itself is not a conflict.
	updated, err := svc.Update(bedB.ID, room.ID, map[string]interface{}{"bedNumber": "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.BedNumber)
}

func TestBedOccupancy_RecomputesRoomAvailability(t *testing.T) {
	db := setupTestDB(t)
	_, room := seedRoomWithBeds(t, db)
	svc := NewBedService(db)

	bedA := models.Bed{RoomID: room.ID, BedNumber: "A"}
	bedB := models.Bed{RoomID: room.ID, BedNumber: "B"}
	require.NoError(t, svc.Create(&bedA))
	require.NoError(t, svc.Create(&bedB))
	assert.True(t, roomAvailability(t, db, room.ID))

	_, err := svc.SetOccupancy(bedA.ID, room.ID, true)
	require.NoError(t, err)
	assert.True(t, roomAvailability(t, db, room.ID))

	_, err = svc.SetOccupancy(bedB.ID, room.ID, true)
	require.NoError(t, err)
	assert.False(t, roomAvailability(t, db, room.ID))

	_, err = svc.SetOccupancy(bedA.ID, room.ID, false)
	require.NoError(t, err)
	assert.True(t, roomAvailability(t, db, room.ID))
}

func TestBedDelete_RecomputesRoomAvailability(t *testing.T) {
	db := setupTestDB(t)
	_, room := seedRoomWithBeds(t, db)
	svc := NewBedService(db)

	bedA := models.Bed{RoomID: room.ID, BedNumber: "A"}
	bedB := models.Bed{RoomID: room.ID, BedNumber: "B", IsOccupied: true}
	require.NoError(t, svc.Create(&bedA))
	require.NoError(t, svc.Create(&bedB))

	// Deleting the only free bed leaves a fully occupied room.
	require.NoError(t, svc.Delete(bedA.ID, room.ID))
	assert.False(t, roomAvailability(t, db, room.ID))
}

func TestBedGet_ScopedToRoom(t *testing.T) {
	db := setupTestDB(t)
	property, room := seedRoomWithBeds(t, db)
	svc := NewBedService(db)

	otherRoom := models.Room{PropertyID: property.ID, RoomNumber: "102", Type: models.RoomSingle}
	require.NoError(t, db.Create(&otherRoom).Error)

	bed := models.Bed{RoomID: room.ID, BedNumber: "A"}
	require.NoError(t, svc.Create(&bed))

	// The same bed id under a different room path is not found.
	_, err := svc.GetInRoom(bed.ID, otherRoom.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
