package models

import "time"

// Safety audit statuses.
const (
	AuditCompliant = "compliant"
	AuditWarning   = "warning"
	AuditCritical  = "critical"
)

// SafetyAuditCategories are the fixed categories an audit item may belong to.
var SafetyAuditCategories = []string{
	"fire_safety",
	"electrical",
	"structural",
	"hygiene",
	"security",
	"water_supply",
}

// SafetyAudit is an inspection line item for a property, maintained by
// admin/owner actions only.
type SafetyAudit struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PropertyID uint `gorm:"column:pg_id;index" json:"pgId"`

	Category string `json:"category" gorm:"type:varchar(50);index"`
	Item     string `json:"item" gorm:"type:varchar(191)"`
	Status   string `json:"status" gorm:"type:varchar(20);default:compliant"`

	InspectorName string     `json:"inspectorName" gorm:"column:inspector_name;type:varchar(191)"`
	Notes         string     `json:"notes" gorm:"type:text"`
	LastCheckedAt *time.Time `json:"lastCheckedAt,omitempty" gorm:"column:last_checked_at"`
}

func (SafetyAudit) TableName() string { return "safety_audits" }

// ValidAuditCategory reports whether c is one of the fixed categories.
func ValidAuditCategory(c string) bool {
	for _, cat := range SafetyAuditCategories {
		if cat == c {
			return true
		}
	}
	return false
}
