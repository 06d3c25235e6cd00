package controllers

import (
	"net/http"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests     *services.GuestService
	Properties *services.PropertyService
	AdminData  *services.AdminDataService
}

func NewGuestController(guests *services.GuestService, properties *services.PropertyService,
	adminData *services.AdminDataService) *GuestController {
	return &GuestController{Guests: guests, Properties: properties, AdminData: adminData}
}

func (g *GuestController) ownedProperty(c *gin.Context) (uint, bool) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return 0, false
	}
	if _, err := g.Properties.GetOwned(pgID, middleware.OwnerID(c)); err != nil {
		respondServiceError(c, err)
		return 0, false
	}
	return pgID, true
}

// List serves a property's guests through the admin cache.
// GET /api/pgs/:pgId/guests
func (g *GuestController) List(c *gin.Context) {
	pgID, ok := g.ownedProperty(c)
	if !ok {
		return
	}
	guests, err := g.AdminData.GuestsForProperty(pgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// Create registers a guest for a property.
// POST /api/pgs/:pgId/guests
func (g *GuestController) Create(c *gin.Context) {
	pgID, ok := g.ownedProperty(c)
	if !ok {
		return
	}
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	guest.ID = 0
	guest.PropertyID = pgID

	if err := g.Guests.Create(&guest); err != nil {
		respondServiceError(c, err)
		return
	}
	g.AdminData.Invalidate(pgID, services.SectionGuests)
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// Update applies a partial guest update.
// PATCH/PUT /api/pgs/:pgId/guests/:guestId
func (g *GuestController) Update(c *gin.Context) {
	pgID, ok := g.ownedProperty(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	guest, err := g.Guests.Update(guestID, pgID, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	g.AdminData.Invalidate(pgID, services.SectionGuests)
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// CheckOut marks a guest checked out now.
// POST /api/pgs/:pgId/guests/:guestId/checkout
func (g *GuestController) CheckOut(c *gin.Context) {
	pgID, ok := g.ownedProperty(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}
	guest, err := g.Guests.CheckOut(guestID, pgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	g.AdminData.Invalidate(pgID, services.SectionGuests)
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// Delete removes a guest record.
// DELETE /api/pgs/:pgId/guests/:guestId
func (g *GuestController) Delete(c *gin.Context) {
	pgID, ok := g.ownedProperty(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}
	if err := g.Guests.Delete(guestID, pgID); err != nil {
		respondServiceError(c, err)
		return
	}
	g.AdminData.Invalidate(pgID, services.SectionGuests)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": guestID})
}
