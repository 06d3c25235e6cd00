package config

import (
	"testing"

	"pgstay-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDatabase_OwnerAndDemoProperty(t *testing.T) {
	db := openSeedTestDB(t)

	SeedDatabase(db)

	var owners, pgs, rooms, beds int64
	db.Model(&models.Owner{}).Count(&owners)
	db.Model(&models.Property{}).Count(&pgs)
	db.Model(&models.Room{}).Count(&rooms)
	db.Model(&models.Bed{}).Count(&beds)
	assert.Equal(t, int64(1), owners)
	assert.Equal(t, int64(1), pgs)
	assert.Equal(t, int64(2), rooms)
	assert.Equal(t, int64(3), beds)

	var property models.Property
	require.NoError(t, db.Preload("Rooms.Beds").First(&property).Error)
	assert.True(t, property.IsPublished)
	assert.NotZero(t, property.OwnerID)
	assert.NotEmpty(t, property.Slug)

	// Seeding twice must not duplicate anything.
	SeedDatabase(db)
	db.Model(&models.Property{}).Count(&pgs)
	db.Model(&models.Room{}).Count(&rooms)
	assert.Equal(t, int64(1), pgs)
	assert.Equal(t, int64(2), rooms)
}

func TestSeedDatabase_SkipsDemoWhenPropertiesExist(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, db.Create(&models.Property{Name: "Existing PG", Slug: "existing-pg"}).Error)

	SeedDatabase(db)

	var pgs int64
	db.Model(&models.Property{}).Count(&pgs)
	assert.Equal(t, int64(1), pgs)
}
