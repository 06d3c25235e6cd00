package controllers

import (
	"net/http"

	"pgstay-backend/middleware"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type EnquiryController struct {
	Enquiries  *services.EnquiryService
	Properties *services.PropertyService
	AdminData  *services.AdminDataService
}

func NewEnquiryController(enquiries *services.EnquiryService,
	properties *services.PropertyService, adminData *services.AdminDataService) *EnquiryController {
	return &EnquiryController{Enquiries: enquiries, Properties: properties, AdminData: adminData}
}

// Create receives a visitor enquiry, property-scoped or general.
// POST /api/enquiries
func (e *EnquiryController) Create(c *gin.Context) {
	var input services.EnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	enquiry, err := e.Enquiries.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if enquiry.PropertyID != nil {
		e.AdminData.Invalidate(*enquiry.PropertyID, services.SectionEnquiries)
	}
	utils.JSONSuccess(c, http.StatusCreated, enquiry)
}

// ListForProperty serves an owner's enquiry inbox for one property, through
// the admin cache.
// GET /api/pgs/:pgId/enquiries
func (e *EnquiryController) ListForProperty(c *gin.Context) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return
	}
	if _, err := e.Properties.GetOwned(pgID, middleware.OwnerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	enquiries, err := e.AdminData.EnquiriesForProperty(pgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, enquiries)
}

// ListAll serves every enquiry including general ones.
// GET /api/enquiries
func (e *EnquiryController) ListAll(c *gin.Context) {
	enquiries, err := e.Enquiries.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, enquiries)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus applies an admin status transition.
// PATCH /api/enquiries/:id/status
func (e *EnquiryController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	enquiry, err := e.Enquiries.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if enquiry.PropertyID != nil {
		e.AdminData.Invalidate(*enquiry.PropertyID, services.SectionEnquiries)
	}
	utils.JSONSuccess(c, http.StatusOK, enquiry)
}
