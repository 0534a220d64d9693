package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ResponseKind is the kind of decision a candidate submitted.
type ResponseKind string

const (
	ResponseAccepted          ResponseKind = "accepted"
	ResponseDeclined          ResponseKind = "declined"
	ResponseDeclinedNoContact ResponseKind = "declined_no_contact"
	ResponseInquiry           ResponseKind = "inquiry"
)

// ResponsePayload is the kind-specific data attached to a response record.
// Modeled as a tagged union so each kind's shape is enforced at compile
// time instead of an open map.
type ResponsePayload interface {
	ResponseKind() ResponseKind
}

type AcceptancePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact,omitempty"`
}

func (AcceptancePayload) ResponseKind() ResponseKind { return ResponseAccepted }

type DeclinePayload struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func (DeclinePayload) ResponseKind() ResponseKind { return ResponseDeclined }

// NoContactPayload is intentionally empty: when the candidate declines
// future contact, supplied contact fields are discarded, not persisted.
type NoContactPayload struct{}

func (NoContactPayload) ResponseKind() ResponseKind { return ResponseDeclinedNoContact }

type InquiryPayload struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (InquiryPayload) ResponseKind() ResponseKind { return ResponseInquiry }

// DecodePayload reconstructs the typed payload for a stored response row.
func DecodePayload(kind ResponseKind, data []byte) (ResponsePayload, error) {
	if len(data) == 0 {
		data = []byte("{}")
	}
	switch kind {
	case ResponseAccepted:
		var p AcceptancePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case ResponseDeclined:
		var p DeclinePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case ResponseDeclinedNoContact:
		return NoContactPayload{}, nil
	case ResponseInquiry:
		var p InquiryPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown response kind %q", kind)
}

// CandidateResponse is one decision event. Immutable once created; a
// candidate may submit more than one.
type CandidateResponse struct {
	ID          string          `json:"id"`
	CandidateID string          `json:"candidate_id"`
	Kind        ResponseKind    `json:"response_type"`
	Payload     ResponsePayload `json:"response_data"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ResponseSubject identifies who a public submission is about. Public
// endpoints work in two explicit modes: with a candidate id (response is
// persisted and the status machine advances) or with only a free-text
// label (notification-only, for deployments that don't pass an id).
type ResponseSubject interface {
	isResponseSubject()
}

// CandidateRef ties a submission to a known candidate record.
type CandidateRef struct {
	ID string
}

func (CandidateRef) isResponseSubject() {}

// LabelRef carries only a display label; nothing is persisted.
type LabelRef struct {
	Label string
}

func (LabelRef) isResponseSubject() {}

type AcceptanceSubmission struct {
	Subject ResponseSubject
	Name    string
	Email   string
	Contact string
}

type DeclineSubmission struct {
	Subject      ResponseSubject
	AllowContact bool
	Name         string
	Email        string
	Phone        string
}

type InquirySubmission struct {
	Subject ResponseSubject
	Email   string
	Message string
}

type ResponseRepository interface {
	// InsertAndSetStatus persists the response record and advances the
	// candidate status in a single transaction.
	InsertAndSetStatus(ctx context.Context, resp *CandidateResponse, status Status) error
	ListByCandidate(ctx context.Context, candidateID string) ([]CandidateResponse, error)
	ListRecent(ctx context.Context, limit int) ([]CandidateResponse, error)
}

type ResponseUsecase interface {
	SubmitAcceptance(ctx context.Context, sub AcceptanceSubmission) error
	SubmitDecline(ctx context.Context, sub DeclineSubmission) error
	SubmitInquiry(ctx context.Context, sub InquirySubmission) error
}
