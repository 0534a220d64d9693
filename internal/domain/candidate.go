package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Position    string    `json:"position" validate:"required,max=100"`
	Track       string    `json:"track" validate:"required,max=100"`
	Experience  string    `json:"experience" validate:"required,max=100"`
	UniqueToken string    `json:"unique_token"` // capability token for the public offer URL, immutable
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CandidateFilter narrows admin listings.
type CandidateFilter struct {
	Statuses []Status
	Search   string // matches name or position
}

// CandidateDetail is the admin detail view: the candidate plus everything
// recorded about them.
type CandidateDetail struct {
	Candidate Candidate           `json:"candidate"`
	PageView  *CandidatePageView  `json:"page_view,omitempty"`
	Responses []CandidateResponse `json:"responses"`
	Notes     []CandidateNote     `json:"notes"`
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByToken(ctx context.Context, token string) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	Update(ctx context.Context, c *Candidate) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	Create(ctx context.Context, c *Candidate) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	GetDetail(ctx context.Context, id string) (*CandidateDetail, error)
	Update(ctx context.Context, c *Candidate) error
	MarkSent(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, note *CandidateNote) error
	DeleteNote(ctx context.Context, noteID string) error
}
