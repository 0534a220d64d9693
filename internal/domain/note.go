package domain

import (
	"context"
	"time"
)

// CandidateNote is an administrative annotation; never touched by the
// public flows.
type CandidateNote struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Note        string    `json:"note" validate:"required,max=2000"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type NoteRepository interface {
	Insert(ctx context.Context, note *CandidateNote) error
	ListByCandidate(ctx context.Context, candidateID string) ([]CandidateNote, error)
	Delete(ctx context.Context, id string) error
}
