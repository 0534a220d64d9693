package domain

import (
	"context"
	"time"
)

// CandidatePageView records the first open of a candidate's offer page.
// At most one row exists per candidate; repeat opens are not recorded.
type CandidatePageView struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	ViewedAt    time.Time `json:"viewed_at"`
}

type PageViewRepository interface {
	// InsertFirstView inserts a view row unless one already exists for the
	// candidate, relying on the storage uniqueness constraint to settle
	// concurrent first opens. Returns true only for the insert that won.
	InsertFirstView(ctx context.Context, candidateID string, viewedAt time.Time) (bool, error)
	GetByCandidate(ctx context.Context, candidateID string) (*CandidatePageView, error)
}

// OfferUsecase serves the public offer page: resolve the capability token,
// fire the first-view tracker, return the candidate.
type OfferUsecase interface {
	OpenOffer(ctx context.Context, token string) (*Candidate, error)
}
