package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"outreach-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type activityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) domain.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, entry *domain.ActivityLogEntry) error {
	var metadata []byte
	if len(entry.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
	}

	var candidateID interface{}
	if entry.CandidateID != "" {
		candidateID = entry.CandidateID
	}

	query := `
		INSERT INTO activity_log (id, candidate_id, action_type, action_description, performed_by, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at`
	return r.db.QueryRow(ctx, query,
		entry.ID, candidateID, entry.Action, entry.Description, entry.PerformedBy, metadata,
	).Scan(&entry.CreatedAt)
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error) {
	query := `
		SELECT id, COALESCE(candidate_id::text, ''), action_type, action_description, performed_by, metadata, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLogEntry
	for rows.Next() {
		var e domain.ActivityLogEntry
		var metadata []byte
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Action, &e.Description, &e.PerformedBy, &metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode activity metadata %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
