package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnquiryMail carries everything the enquiry notification emails need.
type EnquiryMail struct {
	PropertyName  string
	ReferenceCode string
	VisitorName   string
	VisitorPhone  string
	VisitorEmail  string
	RoomType      string
	MoveInDate    string
	Message       string
}

func smtpConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("SMTP_PORT") != "" &&
		os.Getenv("SMTP_USERNAME") != "" && os.Getenv("SMTP_PASSWORD") != ""
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

// SendEnquiryOwnerEmail notifies the property owner of a new enquiry.
// When SMTP is not configured the send is mocked with a log line so local
// development does not require a mail server.
func SendEnquiryOwnerEmail(recipient string, m EnquiryMail) error {
	subject := fmt.Sprintf("New enquiry %s — %s", m.ReferenceCode, m.PropertyName)
	body := fmt.Sprintf(
		"You have a new enquiry.\n\n"+
			"Reference: %s\n"+
			"Property: %s\n"+
			"Name: %s\n"+
			"Phone: %s\n"+
			"Email: %s\n"+
			"Room type: %s\n"+
			"Move-in date: %s\n\n"+
			"Message:\n%s\n",
		m.ReferenceCode, m.PropertyName, m.VisitorName, m.VisitorPhone,
		m.VisitorEmail, m.RoomType, m.MoveInDate, m.Message,
	)
	return sendMail(recipient, subject, body)
}

// SendEnquiryConfirmationEmail confirms receipt to the visitor.
func SendEnquiryConfirmationEmail(recipient string, m EnquiryMail) error {
	subject := fmt.Sprintf("We received your enquiry — %s", m.ReferenceCode)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thanks for your interest in %s. Your enquiry reference is %s.\n"+
			"The owner will get back to you shortly.\n\n"+
			"If you did not submit this enquiry, you can ignore this email.\n",
		m.VisitorName, m.PropertyName, m.ReferenceCode,
	)
	return sendMail(recipient, subject, body)
}

func sendMail(recipient, subject, body string) error {
	if !smtpConfigured() {
		logrus.WithFields(logrus.Fields{
			"to":      MaskEmail(recipient),
			"subject": subject,
		}).Info("[MOCK EMAIL] SMTP not configured, logging instead of sending")
		return nil
	}

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")
	if fromName == "" {
		fromName = "PGStay"
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", sanitizeHeader(recipient)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		logrus.WithError(err).WithField("to", MaskEmail(recipient)).Error("failed to send email")
		return err
	}

	logrus.WithField("to", MaskEmail(recipient)).Info("email sent")
	return nil
}

// MaskEmail returns a masked email safe for logs.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	switch {
	case len(local) > 2:
		local = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	case len(local) == 2:
		local = local[:1] + "*"
	}
	return local + "@" + parts[1]
}
