package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"
	"outreach-backend/pkg/email"
	"outreach-backend/pkg/logger"
	"outreach-backend/pkg/slack"
	"outreach-backend/pkg/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Field length caps applied before validation and persistence.
const (
	maxNameLength    = 100
	maxContactLength = 20
	maxMessageLength = 5000
	maxEmailLength   = 254

	minInquiryLength = 10

	// Slack summaries truncate long inquiry text; the persisted record
	// keeps the full message.
	slackPreviewLength = 200
)

// EmailSender is the outbound email provider consumed by response
// ingestion. A failed send fails the whole operation: the email is the
// primary deliverable of these flows.
type EmailSender interface {
	SendAcceptanceNotification(data email.AcceptanceEmailData) error
	SendDeclineNotification(data email.DeclineEmailData) error
	SendInquiryNotification(data email.InquiryEmailData) error
}

// ChatNotifier is the best-effort chat webhook. Failures are logged, never
// surfaced to the caller.
type ChatNotifier interface {
	Send(ctx context.Context, message string, blocks ...slack.Block) error
}

type responseUsecase struct {
	candidateRepo domain.CandidateRepository
	responseRepo  domain.ResponseRepository
	activityRepo  domain.ActivityRepository
	emailSender   EmailSender
	chat          ChatNotifier
}

func NewResponseUsecase(
	candidateRepo domain.CandidateRepository,
	responseRepo domain.ResponseRepository,
	activityRepo domain.ActivityRepository,
	emailSender EmailSender,
	chat ChatNotifier,
) domain.ResponseUsecase {
	return &responseUsecase{
		candidateRepo: candidateRepo,
		responseRepo:  responseRepo,
		activityRepo:  activityRepo,
		emailSender:   emailSender,
		chat:          chat,
	}
}

func (uc *responseUsecase) SubmitAcceptance(ctx context.Context, sub domain.AcceptanceSubmission) error {
	name := validation.SanitizeText(sub.Name, maxNameLength)
	emailAddr := validation.SanitizeText(sub.Email, maxEmailLength)
	contact := validation.SanitizeText(sub.Contact, maxContactLength)

	if name == "" || emailAddr == "" {
		return apperror.BadRequest("Name and email are required.")
	}
	if !validation.IsValidEmail(emailAddr) {
		return apperror.BadRequest("Please enter a valid email address.")
	}

	payload := domain.AcceptancePayload{Name: name, Email: emailAddr, Contact: contact}
	if _, err := uc.persistResponse(ctx, sub.Subject, payload); err != nil {
		return err
	}

	if err := uc.emailSender.SendAcceptanceNotification(email.AcceptanceEmailData{
		Name:    name,
		Email:   emailAddr,
		Contact: contact,
	}); err != nil {
		return apperror.New(500, "Failed to send notification email. Please try again later.", err)
	}

	uc.notifyChat(ctx, "✅ New interview acceptance: "+name,
		slack.SectionBlock("*New interview acceptance received*\n\n*Name:* "+name+
			"\n*Email:* "+emailAddr+"\n*Contact:* "+orDefault(contact, "not provided")))
	return nil
}

func (uc *responseUsecase) SubmitDecline(ctx context.Context, sub domain.DeclineSubmission) error {
	name := validation.SanitizeText(sub.Name, maxNameLength)
	emailAddr := validation.SanitizeText(sub.Email, maxEmailLength)
	phone := validation.SanitizeText(sub.Phone, maxContactLength)

	if sub.AllowContact && emailAddr != "" && !validation.IsValidEmail(emailAddr) {
		return apperror.BadRequest("Please enter a valid email address.")
	}

	// Contact fields are discarded entirely when future contact is not
	// wanted; the persisted payload stays empty.
	var payload domain.ResponsePayload
	if sub.AllowContact {
		payload = domain.DeclinePayload{Name: name, Email: emailAddr, Phone: phone}
	} else {
		payload = domain.NoContactPayload{}
		name, emailAddr, phone = "", "", ""
	}

	candidate, err := uc.persistResponse(ctx, sub.Subject, payload)
	if err != nil {
		return err
	}

	recipient := subjectLabel(sub.Subject, candidate)
	if err := uc.emailSender.SendDeclineNotification(email.DeclineEmailData{
		Recipient:    recipient,
		AllowContact: sub.AllowContact,
		Name:         name,
		Email:        emailAddr,
		Phone:        phone,
	}); err != nil {
		return apperror.New(500, "Failed to send notification email. Please try again later.", err)
	}

	contactNote := "no future contact"
	if sub.AllowContact {
		contactNote = "open to future contact"
	}
	uc.notifyChat(ctx, "❌ Offer declined: "+orDefault(recipient, "unidentified"),
		slack.SectionBlock("*Offer declined*\n\n*Who:* "+orDefault(recipient, "unidentified")+
			"\n*Future contact:* "+contactNote))
	return nil
}

func (uc *responseUsecase) SubmitInquiry(ctx context.Context, sub domain.InquirySubmission) error {
	emailAddr := validation.SanitizeText(sub.Email, maxEmailLength)
	message := validation.SanitizeText(sub.Message, maxMessageLength)

	if emailAddr == "" || message == "" {
		return apperror.BadRequest("Email and message are required.")
	}
	if !validation.IsValidEmail(emailAddr) {
		return apperror.BadRequest("Please enter a valid email address.")
	}
	if utf8.RuneCountInString(message) < minInquiryLength {
		return apperror.BadRequest("Please write at least 10 characters.")
	}

	payload := domain.InquiryPayload{Email: emailAddr, Message: message}
	if _, err := uc.persistResponse(ctx, sub.Subject, payload); err != nil {
		return err
	}

	if err := uc.emailSender.SendInquiryNotification(email.InquiryEmailData{
		SenderEmail: emailAddr,
		Message:     message,
	}); err != nil {
		return apperror.New(500, "Failed to send notification email. Please try again later.", err)
	}

	preview := message
	if runes := []rune(preview); len(runes) > slackPreviewLength {
		preview = string(runes[:slackPreviewLength]) + "..."
	}
	uc.notifyChat(ctx, "❓ New inquiry from "+emailAddr,
		slack.SectionBlock("*New inquiry received*\n\n*From:* "+emailAddr+"\n*Message:* "+preview))
	return nil
}

// persistResponse applies the state transition and records the response for
// identified submissions; label-only submissions are notification-only.
// Returns the loaded candidate so callers can reuse it, nil in label-only
// mode.
func (uc *responseUsecase) persistResponse(ctx context.Context, subject domain.ResponseSubject, payload domain.ResponsePayload) (*domain.Candidate, error) {
	ref, ok := subject.(domain.CandidateRef)
	if !ok {
		return nil, nil
	}

	candidate, err := uc.candidateRepo.GetByID(ctx, ref.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}

	kind := payload.ResponseKind()
	resp := &domain.CandidateResponse{
		ID:          uuid.NewString(),
		CandidateID: candidate.ID,
		Kind:        kind,
		Payload:     payload,
	}

	if err := uc.responseRepo.InsertAndSetStatus(ctx, resp, domain.StatusForResponse(kind)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Candidate not found.")
		}
		return nil, apperror.New(500, "Failed to save your response. Please try again.", err)
	}

	uc.logActivity(ctx, candidate.ID, string(kind))
	return candidate, nil
}

// subjectLabel resolves a display label for notifications: the candidate's
// name when one was loaded, the free-text label in label-only mode.
func subjectLabel(subject domain.ResponseSubject, candidate *domain.Candidate) string {
	if candidate != nil {
		return candidate.Name
	}
	if label, ok := subject.(domain.LabelRef); ok {
		return validation.SanitizeText(label.Label, maxNameLength)
	}
	return ""
}

func (uc *responseUsecase) notifyChat(ctx context.Context, message string, blocks ...slack.Block) {
	if err := uc.chat.Send(ctx, message, blocks...); err != nil {
		logger.Log.Error("Slack notification failed", "error", err)
	}
}

func (uc *responseUsecase) logActivity(ctx context.Context, candidateID, responseType string) {
	entry := &domain.ActivityLogEntry{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Action:      domain.ActivityResponseReceived,
		Description: "Candidate submitted a " + responseType + " response",
		PerformedBy: "candidate",
		Metadata:    map[string]interface{}{"response_type": responseType},
	}
	if err := uc.activityRepo.Insert(ctx, entry); err != nil {
		logger.Log.Error("Failed to log activity", "error", err, "candidate_id", candidateID)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
