package domain

import (
	"context"
	"time"
)

// ActivityAction is the kind of audited event.
type ActivityAction string

const (
	ActivityCandidateCreated ActivityAction = "candidate_created"
	ActivityCandidateUpdated ActivityAction = "candidate_updated"
	ActivityCandidateDeleted ActivityAction = "candidate_deleted"
	ActivityPageSent         ActivityAction = "page_sent"
	ActivityPageViewed       ActivityAction = "page_viewed"
	ActivityResponseReceived ActivityAction = "response_received"
	ActivityNoteAdded        ActivityAction = "note_added"
	ActivityStatusChanged    ActivityAction = "status_changed"
	ActivitySecurityEvent    ActivityAction = "security_event"
)

// ActivityLogEntry is one append-only audit record. CandidateID may be
// empty for system-level events.
type ActivityLogEntry struct {
	ID          string                 `json:"id"`
	CandidateID string                 `json:"candidate_id,omitempty"`
	Action      ActivityAction         `json:"action_type"`
	Description string                 `json:"action_description"`
	PerformedBy string                 `json:"performed_by"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

type ActivityRepository interface {
	Insert(ctx context.Context, entry *ActivityLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]ActivityLogEntry, error)
}

// ActivityUsecase serves the admin activity feed.
type ActivityUsecase interface {
	RecentActivity(ctx context.Context, limit int) ([]ActivityLogEntry, error)
	RecentResponses(ctx context.Context, limit int) ([]CandidateResponse, error)
}
