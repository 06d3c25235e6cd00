package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pgstay-backend/models"
	"pgstay-backend/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DuplicateWindow is how long after a submission the same phone number is
// blocked from enquiring again (per property, or globally for general
// enquiries).
const DuplicateWindow = 24 * time.Hour

const maxMessageLength = 1000

// ErrDuplicateEnquiry is returned when the same phone already enquired
// within the duplicate window.
var ErrDuplicateEnquiry = errors.New("an enquiry from this phone number was already received in the last 24 hours")

// ValidationError carries a field->message map surfaced to forms instead of
// a generic error string.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// EnquiryInput is the visitor-facing submission payload.
type EnquiryInput struct {
	PGID       *uint  `json:"pgId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Occupation string `json:"occupation"`
	RoomType   string `json:"roomType"`
	MoveInDate string `json:"moveInDate"`
	Message    string `json:"message"`
}

type EnquiryService struct {
	DB *gorm.DB

	// notify dispatches the post-create emails; injectable so tests can
	// drop the goroutine entirely.
	notify func(enquiry *models.Enquiry)
}

func NewEnquiryService(db *gorm.DB) *EnquiryService {
	s := &EnquiryService{DB: db}
	s.notify = s.sendNotifications
	return s
}

// Create validates the input, applies the duplicate guard and persists the
// enquiry with status NEW. The guard and the insert run in one transaction
// so two concurrent submissions from the same phone cannot both land.
// Notification emails are fire-and-forget: the enquiry record is the source
// of truth, a failed send is only logged.
func (s *EnquiryService) Create(input EnquiryInput) (*models.Enquiry, error) {
	enquiry, verr := s.validate(input)
	if verr != nil {
		return nil, verr
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cutoff := time.Now().Add(-DuplicateWindow)

		query := tx.Model(&models.Enquiry{}).
			Where("phone = ? AND created_at >= ?", enquiry.Phone, cutoff)
		if enquiry.PropertyID != nil {
			query = query.Where("pg_id = ?", *enquiry.PropertyID)
		}

		var recent int64
		if err := query.Count(&recent).Error; err != nil {
			return err
		}
		if recent > 0 {
			return ErrDuplicateEnquiry
		}

		return tx.Create(enquiry).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notify != nil {
		go s.notify(enquiry)
	}
	return enquiry, nil
}

// UpdateStatus applies an admin status transition.
func (s *EnquiryService) UpdateStatus(id uint, status string) (*models.Enquiry, error) {
	switch status {
	case models.EnquiryNew, models.EnquiryContacted, models.EnquiryClosed:
	default:
		return nil, &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("status must be one of %s, %s, %s",
				models.EnquiryNew, models.EnquiryContacted, models.EnquiryClosed),
		}}
	}

	var enquiry models.Enquiry
	if err := s.DB.First(&enquiry, id).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&enquiry).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// ListForProperty returns a property's enquiries, newest first.
func (s *EnquiryService) ListForProperty(pgID uint) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := s.DB.Where("pg_id = ?", pgID).Order("id DESC").Find(&enquiries).Error
	return enquiries, err
}

// ListAll returns every enquiry, newest first, including general ones.
func (s *EnquiryService) ListAll() ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := s.DB.Order("id DESC").Find(&enquiries).Error
	return enquiries, err
}

func (s *EnquiryService) validate(input EnquiryInput) (*models.Enquiry, *ValidationError) {
	fields := map[string]string{}

	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		fields["name"] = "name must be at least 2 characters"
	}

	phone, err := utils.ValidatePhone(input.Phone)
	if err != nil {
		fields["phone"] = err.Error()
	}

	email := strings.TrimSpace(input.Email)
	if email != "" && (!strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@")) {
		fields["email"] = "email address is not valid"
	}

	if len(input.Message) > maxMessageLength {
		fields["message"] = fmt.Sprintf("message must be at most %d characters", maxMessageLength)
	}

	var moveIn *time.Time
	if strings.TrimSpace(input.MoveInDate) != "" {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(input.MoveInDate))
		if err != nil {
			fields["moveInDate"] = "move-in date must be in YYYY-MM-DD format"
		} else {
			moveIn = &t
		}
	}

	if input.PGID != nil {
		var count int64
		s.DB.Model(&models.Property{}).Where("id = ?", *input.PGID).Count(&count)
		if count == 0 {
			fields["pgId"] = "property does not exist"
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &models.Enquiry{
		PropertyID:    input.PGID,
		ReferenceCode: "ENQ-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:          name,
		Phone:         phone,
		Email:         email,
		Occupation:    strings.TrimSpace(input.Occupation),
		RoomType:      strings.TrimSpace(input.RoomType),
		MoveInDate:    moveIn,
		Message:       input.Message,
		Status:        models.EnquiryNew,
	}, nil
}

func (s *EnquiryService) sendNotifications(enquiry *models.Enquiry) {
	mail := utils.EnquiryMail{
		ReferenceCode: enquiry.ReferenceCode,
		VisitorName:   enquiry.Name,
		VisitorPhone:  enquiry.Phone,
		VisitorEmail:  enquiry.Email,
		RoomType:      enquiry.RoomType,
		Message:       enquiry.Message,
	}
	if enquiry.MoveInDate != nil {
		mail.MoveInDate = enquiry.MoveInDate.Format("2006-01-02")
	}

	ownerEmail := ""
	if enquiry.PropertyID != nil {
		var property models.Property
		if err := s.DB.First(&property, *enquiry.PropertyID).Error; err == nil {
			mail.PropertyName = property.Name
			var owner models.Owner
			if err := s.DB.First(&owner, property.OwnerID).Error; err == nil {
				ownerEmail = owner.Email
			}
		}
	}
	if mail.PropertyName == "" {
		mail.PropertyName = "General enquiry"
	}

	if ownerEmail != "" {
		if err := utils.SendEnquiryOwnerEmail(ownerEmail, mail); err != nil {
			logrus.WithError(err).WithField("enquiry", enquiry.ReferenceCode).
				Warn("owner notification failed")
		}
	}
	if enquiry.Email != "" {
		if err := utils.SendEnquiryConfirmationEmail(enquiry.Email, mail); err != nil {
			logrus.WithError(err).WithField("enquiry", enquiry.ReferenceCode).
				Warn("visitor confirmation failed")
		}
	}
}
