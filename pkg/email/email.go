// Package email sends response notifications to the recruiting team over
// SMTP (Brevo relay). Sending is synchronous: acceptance and inquiry flows
// treat a failed send as a failed operation so the UI can ask the user to
// retry.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"outreach-backend/config"
	"outreach-backend/pkg/validation"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		toEmail:   cfg.NotifyEmailTo,
	}
}

// AcceptanceEmailData holds the data for interview-acceptance emails
type AcceptanceEmailData struct {
	Name    string
	Email   string
	Contact string
}

// DeclineEmailData holds the data for offer-decline emails
type DeclineEmailData struct {
	Recipient    string
	AllowContact bool
	Name         string
	Email        string
	Phone        string
}

// InquiryEmailData holds the data for candidate inquiry emails
type InquiryEmailData struct {
	SenderEmail string
	Message     string
}

var acceptanceTmpl = template.Must(template.New("acceptance").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>New interview acceptance received</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Contact:</strong> {{if .Contact}}{{.Contact}}{{else}}not provided{{end}}</p>
</body>
</html>`))

var declineTmpl = template.Must(template.New("decline").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>Offer declined</h2>
    <p><strong>Declined by:</strong> {{if .Recipient}}{{.Recipient}}{{else}}no identifying info{{end}}</p>
    <p><strong>Open to future contact:</strong> {{if .AllowContact}}yes{{else}}no{{end}}</p>
    {{if and .AllowContact .Email}}
    <h3>Contact details</h3>
    {{if .Name}}<p><strong>Name:</strong> {{.Name}}</p>{{end}}
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    {{end}}
    <p>The candidate clicked the decline button on their offer page.</p>
</body>
</html>`))

var inquiryTmpl = template.Must(template.New("inquiry").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>New inquiry received</h2>
    <p><strong>From:</strong> {{.SenderEmail}}</p>
    <p><strong>Message:</strong></p>
    <p>{{.MessageHTML}}</p>
    <p>Reply directly to this email to answer the candidate.</p>
</body>
</html>`))

// SendAcceptanceNotification notifies the team that a candidate accepted.
func (s *EmailService) SendAcceptanceNotification(data AcceptanceEmailData) error {
	var body bytes.Buffer
	if err := acceptanceTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}
	return s.send("Business proposal - interview accepted", body.String(), "")
}

// SendDeclineNotification notifies the team that a candidate declined.
func (s *EmailService) SendDeclineNotification(data DeclineEmailData) error {
	var body bytes.Buffer
	if err := declineTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}
	return s.send("Offer decline notification", body.String(), "")
}

// SendInquiryNotification forwards a candidate inquiry. Reply-To is set to
// the submitter so the team can answer directly.
func (s *EmailService) SendInquiryNotification(data InquiryEmailData) error {
	// Message is free text; escape it and keep line breaks in the HTML body.
	escaped := validation.SanitizeHTML(data.Message)
	payload := struct {
		SenderEmail string
		MessageHTML template.HTML
	}{
		SenderEmail: data.SenderEmail,
		MessageHTML: template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
	}

	var body bytes.Buffer
	if err := inquiryTmpl.Execute(&body, payload); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}
	return s.send("New inquiry received", body.String(), data.SenderEmail)
}

func (s *EmailService) send(subject, htmlBody, replyTo string) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\n", s.fromEmail, s.toEmail)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	msg := []byte(fmt.Sprintf(
		"%sSubject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		headers, subject, htmlBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}
