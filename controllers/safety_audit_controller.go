package controllers

import (
	"net/http"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type SafetyAuditController struct {
	Audits     *services.SafetyAuditService
	Properties *services.PropertyService
	AdminData  *services.AdminDataService
}

func NewSafetyAuditController(audits *services.SafetyAuditService,
	properties *services.PropertyService, adminData *services.AdminDataService) *SafetyAuditController {
	return &SafetyAuditController{Audits: audits, Properties: properties, AdminData: adminData}
}

func (s *SafetyAuditController) ownedProperty(c *gin.Context) (uint, bool) {
	pgID, ok := parseIDParam(c, "pgId")
	if !ok {
		return 0, false
	}
	if _, err := s.Properties.GetOwned(pgID, middleware.OwnerID(c)); err != nil {
		respondServiceError(c, err)
		return 0, false
	}
	return pgID, true
}

// List serves a property's safety audit items through the admin cache.
// GET /api/pgs/:pgId/safety-audits
func (s *SafetyAuditController) List(c *gin.Context) {
	pgID, ok := s.ownedProperty(c)
	if !ok {
		return
	}
	audits, err := s.AdminData.AuditsForProperty(pgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, audits)
}

// Create records an audit line item.
// POST /api/pgs/:pgId/safety-audits
func (s *SafetyAuditController) Create(c *gin.Context) {
	pgID, ok := s.ownedProperty(c)
	if !ok {
		return
	}
	var audit models.SafetyAudit
	if err := c.ShouldBindJSON(&audit); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	audit.ID = 0
	audit.PropertyID = pgID

	if err := s.Audits.Create(&audit); err != nil {
		respondServiceError(c, err)
		return
	}
	s.AdminData.Invalidate(pgID, services.SectionAudits)
	utils.JSONSuccess(c, http.StatusCreated, audit)
}

// Update applies a partial audit update.
// PATCH/PUT /api/pgs/:pgId/safety-audits/:auditId
func (s *SafetyAuditController) Update(c *gin.Context) {
	pgID, ok := s.ownedProperty(c)
	if !ok {
		return
	}
	auditID, ok := parseIDParam(c, "auditId")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	audit, err := s.Audits.Update(auditID, pgID, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.AdminData.Invalidate(pgID, services.SectionAudits)
	utils.JSONSuccess(c, http.StatusOK, audit)
}

// Delete removes an audit item.
// DELETE /api/pgs/:pgId/safety-audits/:auditId
func (s *SafetyAuditController) Delete(c *gin.Context) {
	pgID, ok := s.ownedProperty(c)
	if !ok {
		return
	}
	auditID, ok := parseIDParam(c, "auditId")
	if !ok {
		return
	}
	if err := s.Audits.Delete(auditID, pgID); err != nil {
		respondServiceError(c, err)
		return
	}
	s.AdminData.Invalidate(pgID, services.SectionAudits)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": auditID})
}
