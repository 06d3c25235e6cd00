package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pgstay-backend/config"
	"pgstay-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscoveryRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	dc := NewDiscoveryController(services.NewDiscoveryService(db))
	r := gin.New()
	r.GET("/api/properties", dc.ListProperties)
	r.GET("/api/properties/:slug", dc.GetProperty)
	return r, db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestListProperties_FetchFailureIsDegraded(t *testing.T) {
	r, db := newDiscoveryRouter(t)
	closeDB(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "we are having a connection issue, please try again later", body.Message)
}

func TestGetProperty_FetchFailureIsDegraded(t *testing.T) {
	r, db := newDiscoveryRouter(t)
	closeDB(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/sunrise-pg", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "we are having a connection issue, please try again later", body.Message)
}
