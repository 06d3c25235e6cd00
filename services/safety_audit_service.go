package services

import (
	"strings"
	"time"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

type SafetyAuditService struct {
	DB *gorm.DB
}

func NewSafetyAuditService(db *gorm.DB) *SafetyAuditService {
	return &SafetyAuditService{DB: db}
}

func validAuditStatus(status string) bool {
	switch status {
	case models.AuditCompliant, models.AuditWarning, models.AuditCritical:
		return true
	}
	return false
}

func (s *SafetyAuditService) Create(audit *models.SafetyAudit) error {
	audit.Item = strings.TrimSpace(audit.Item)
	if audit.Item == "" {
		return &ValidationError{Fields: map[string]string{"item": "audit item description is required"}}
	}
	if !models.ValidAuditCategory(audit.Category) {
		return &ValidationError{Fields: map[string]string{"category": "unknown audit category"}}
	}
	if audit.Status == "" {
		audit.Status = models.AuditCompliant
	}
	if !validAuditStatus(audit.Status) {
		return &ValidationError{Fields: map[string]string{"status": "status must be compliant, warning or critical"}}
	}
	if audit.LastCheckedAt == nil {
		now := time.Now()
		audit.LastCheckedAt = &now
	}
	return s.DB.Create(audit).Error
}

func (s *SafetyAuditService) ListForProperty(pgID uint) ([]models.SafetyAudit, error) {
	var audits []models.SafetyAudit
	err := s.DB.Where("pg_id = ?", pgID).
		Order("category ASC, id ASC").Find(&audits).Error
	return audits, err
}

func (s *SafetyAuditService) GetInProperty(auditID, pgID uint) (*models.SafetyAudit, error) {
	var audit models.SafetyAudit
	err := s.DB.Where("id = ? AND pg_id = ?", auditID, pgID).First(&audit).Error
	if err != nil {
		return nil, err
	}
	return &audit, nil
}

// Update applies a partial update and refreshes the last-checked timestamp
// whenever the status changes.
func (s *SafetyAuditService) Update(auditID, pgID uint, updates map[string]interface{}) (*models.SafetyAudit, error) {
	audit, err := s.GetInProperty(auditID, pgID)
	if err != nil {
		return nil, err
	}

	updates = normalizeUpdates(updates)
	delete(updates, "id")
	delete(updates, "pg_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if category, ok := updates["category"].(string); ok && !models.ValidAuditCategory(category) {
		return nil, &ValidationError{Fields: map[string]string{"category": "unknown audit category"}}
	}
	if status, ok := updates["status"].(string); ok {
		if !validAuditStatus(status) {
			return nil, &ValidationError{Fields: map[string]string{"status": "status must be compliant, warning or critical"}}
		}
		updates["last_checked_at"] = time.Now()
	}

	if err := s.DB.Model(audit).Updates(updates).Error; err != nil {
		return nil, err
	}
	return audit, nil
}

func (s *SafetyAuditService) Delete(auditID, pgID uint) error {
	audit, err := s.GetInProperty(auditID, pgID)
	if err != nil {
		return err
	}
	return s.DB.Delete(audit).Error
}
