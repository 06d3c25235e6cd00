package controllers

import (
	"net/http"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	Properties *services.PropertyService
	AdminData  *services.AdminDataService
}

func NewPropertyController(properties *services.PropertyService,
	adminData *services.AdminDataService) *PropertyController {
	return &PropertyController{Properties: properties, AdminData: adminData}
}

// List returns the authenticated owner's properties with occupancy figures.
// GET /api/pgs
func (p *PropertyController) List(c *gin.Context) {
	cards, err := p.Properties.ListOwned(middleware.OwnerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cards)
}

// Get returns one owned property with rooms, beds and occupancy.
// GET /api/pgs/:pgId
func (p *PropertyController) Get(c *gin.Context) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return
	}
	property, err := p.Properties.GetOwned(pgID, middleware.OwnerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.PropertyCard{
		Property:         *property,
		OccupancySummary: services.ComputeOccupancy(property.Rooms),
	})
}

// Create registers a new property for the authenticated owner.
// POST /api/pgs
func (p *PropertyController) Create(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if property.Name == "" {
		utils.JSONFieldErrors(c, http.StatusBadRequest,
			map[string]string{"name": "property name is required"})
		return
	}
	property.ID = 0
	property.OwnerID = middleware.OwnerID(c)

	if err := p.Properties.Create(&property); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

// Update applies a partial update to an owned property.
// PATCH/PUT /api/pgs/:pgId
func (p *PropertyController) Update(c *gin.Context) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	property, err := p.Properties.Update(pgID, middleware.OwnerID(c), updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	p.AdminData.InvalidateAll(pgID)
	utils.JSONSuccess(c, http.StatusOK, property)
}

// Delete soft-deletes a property; its rooms and beds go with it.
// DELETE /api/pgs/:pgId
func (p *PropertyController) Delete(c *gin.Context) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return
	}
	if err := p.Properties.Delete(pgID, middleware.OwnerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	p.AdminData.InvalidateAll(pgID)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": pgID})
}
