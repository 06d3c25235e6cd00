package controllers

import (
	"net/http"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type BedController struct {
	Beds       *services.BedService
	Rooms      *services.RoomService
	Properties *services.PropertyService
	AdminData  *services.AdminDataService
}

func NewBedController(beds *services.BedService, rooms *services.RoomService,
	properties *services.PropertyService, adminData *services.AdminDataService) *BedController {
	return &BedController{Beds: beds, Rooms: rooms, Properties: properties, AdminData: adminData}
}

// scope resolves pgId and roomId, verifying ownership and that the room
// belongs to the property. Answers the error response itself on failure.
func (b *BedController) scope(c *gin.Context) (pgID, roomID uint, ok bool) {
	pgID, ok = parseIDParam(c, "pgId")
	if !ok {
		return 0, 0, false
	}
	if _, err := b.Properties.GetOwned(pgID, middleware.OwnerID(c)); err != nil {
		respondServiceError(c, err)
		return 0, 0, false
	}
	roomID, ok = parseIDParam(c, "roomId")
	if !ok {
		return 0, 0, false
	}
	if _, err := b.Rooms.GetInProperty(roomID, pgID); err != nil {
		respondServiceError(c, err)
		return 0, 0, false
	}
	return pgID, roomID, true
}

// List returns a room's beds.
// GET /api/pgs/:pgId/rooms/:roomId/beds
func (b *BedController) List(c *gin.Context) {
	_, roomID, ok := b.scope(c)
	if !ok {
		return
	}
	beds, err := b.Beds.ListForRoom(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, beds)
}

// Create adds a bed to a room.
// POST /api/pgs/:pgId/rooms/:roomId/beds
func (b *BedController) Create(c *gin.Context) {
	pgID, roomID, ok := b.scope(c)
	if !ok {
		return
	}
	var bed models.Bed
	if err := c.ShouldBindJSON(&bed); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	bed.ID = 0
	bed.RoomID = roomID

	if err := b.Beds.Create(&bed); err != nil {
		respondServiceError(c, err)
		return
	}
	b.AdminData.Invalidate(pgID, services.SectionRooms)
	utils.JSONSuccess(c, http.StatusCreated, bed)
}

// Get returns one bed.
// GET /api/pgs/:pgId/rooms/:roomId/beds/:bedId
func (b *BedController) Get(c *gin.Context) {
	_, roomID, ok := b.scope(c)
	if !ok {
		return
	}
	bedID, ok := parseIDParam(c, "bedId")
	if !ok {
		return
	}
	bed, err := b.Beds.GetInRoom(bedID, roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bed)
}

// Update applies a partial bed update; occupancy changes ripple into the
// room's availability flag.
// PATCH/PUT /api/pgs/:pgId/rooms/:roomId/beds/:bedId
func (b *BedController) Update(c *gin.Context) {
	pgID, roomID, ok := b.scope(c)
	if !ok {
		return
	}
	bedID, ok := parseIDParam(c, "bedId")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	bed, err := b.Beds.Update(bedID, roomID, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	b.AdminData.Invalidate(pgID, services.SectionRooms)
	utils.JSONSuccess(c, http.StatusOK, bed)
}

// Delete removes a bed.
// DELETE /api/pgs/:pgId/rooms/:roomId/beds/:bedId
func (b *BedController) Delete(c *gin.Context) {
	pgID, roomID, ok := b.scope(c)
	if !ok {
		return
	}
	bedID, ok := parseIDParam(c, "bedId")
	if !ok {
		return
	}
	if err := b.Beds.Delete(bedID, roomID); err != nil {
		respondServiceError(c, err)
		return
	}
	b.AdminData.Invalidate(pgID, services.SectionRooms)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": bedID})
}
