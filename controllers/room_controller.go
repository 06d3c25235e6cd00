package controllers

import (
	"net/http"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms      *services.RoomService
	Properties *services.PropertyService
	AdminData  *services.AdminDataService
}

func NewRoomController(rooms *services.RoomService, properties *services.PropertyService,
	adminData *services.AdminDataService) *RoomController {
	return &RoomController{Rooms: rooms, Properties: properties, AdminData: adminData}
}

// ownedProperty resolves the pgId param and verifies ownership, answering
// the error response itself on failure.
func (r *RoomController) ownedProperty(c *gin.Context) (uint, bool) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return 0, false
	}
	if _, err := r.Properties.GetOwned(pgID, middleware.OwnerID(c)); err != nil {
		respondServiceError(c, err)
		return 0, false
	}
	return pgID, true
}

// List serves a property's rooms through the admin cache.
// GET /api/pgs/:pgId/rooms
func (r *RoomController) List(c *gin.Context) {
	pgID, ok := r.ownedProperty(c)
	if !ok {
		return
	}
	rooms, err := r.AdminData.RoomsForProperty(pgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// Create adds a room to a property.
// POST /api/pgs/:pgId/rooms
func (r *RoomController) Create(c *gin.Context) {
	pgID, ok := r.ownedProperty(c)
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room.ID = 0
	room.PropertyID = pgID

	if err := r.Rooms.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	r.AdminData.Invalidate(pgID, services.SectionRooms)
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// Get returns one room with its beds.
// GET /api/pgs/:pgId/rooms/:roomId
func (r *RoomController) Get(c *gin.Context) {
	pgID, ok := r.ownedProperty(c)
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	room, err := r.Rooms.GetInProperty(roomID, pgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// Update applies a partial room update.
// PATCH/PUT /api/pgs/:pgId/rooms/:roomId
func (r *RoomController) Update(c *gin.Context) {
	pgID, ok := r.ownedProperty(c)
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := r.Rooms.Update(roomID, pgID, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	r.AdminData.Invalidate(pgID, services.SectionRooms)
	utils.JSONSuccess(c, http.StatusOK, room)
}

// Delete removes a room and its beds.
// DELETE /api/pgs/:pgId/rooms/:roomId
func (r *RoomController) Delete(c *gin.Context) {
	pgID, ok := r.ownedProperty(c)
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	if err := r.Rooms.Delete(roomID, pgID); err != nil {
		respondServiceError(c, err)
		return
	}
	r.AdminData.Invalidate(pgID, services.SectionRooms)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": roomID})
}
