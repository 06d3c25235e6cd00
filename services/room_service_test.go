package services

import (
	"testing"

	"pgstay-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCreate_RejectsDuplicateNumberInProperty(t *testing.T) {
	db := setupTestDB(t)
	property := models.Property{Name: "Sunrise PG", Slug: "sunrise-pg"}
	require.NoError(t, db.Create(&property).Error)
	svc := NewRoomService(db)

	require.NoError(t, svc.Create(&models.Room{PropertyID: property.ID, RoomNumber: "101"}))

	err := svc.Create(&models.Room{PropertyID: property.ID, RoomNumber: "101"})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestRoomUpdate_RejectsRenameToExistingNumber(t *testing.T) {
	db := setupTestDB(t)
	property := models.Property{Name: "Sunrise PG", Slug: "sunrise-pg"}
	require.NoError(t, db.Create(&property).Error)
	svc := NewRoomService(db)

	roomA := models.Room{PropertyID: property.ID, RoomNumber: "101"}
	roomB := models.Room{PropertyID: property.ID, RoomNumber: "102"}
	require.NoError(t, svc.Create(&roomA))
	require.NoError(t, svc.Create(&roomB))

	_, err := svc.Update(roomB.ID, property.ID, map[string]interface{}{"roomNumber": "101"})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)

	// Renaming to itself is not a conflict.
	updated, err := svc.Update(roomB.ID, property.ID, map[string]interface{}{"roomNumber": "102"})
	require.NoError(t, err)
	assert.Equal(t, "102", updated.RoomNumber)

	// The same number under another property is fine.
	other := models.Property{Name: "Moonlight PG", Slug: "moonlight-pg"}
	require.NoError(t, db.Create(&other).Error)
	roomC := models.Room{PropertyID: other.ID, RoomNumber: "201"}
	require.NoError(t, svc.Create(&roomC))
	updated, err = svc.Update(roomC.ID, other.ID, map[string]interface{}{"roomNumber": "101"})
	require.NoError(t, err)
	assert.Equal(t, "101", updated.RoomNumber)
}
