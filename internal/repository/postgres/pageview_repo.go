package postgres

import (
	"context"
	"errors"
	"time"

	"outreach-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pageViewRepository struct {
	db *pgxpool.Pool
}

func NewPageViewRepository(db *pgxpool.Pool) domain.PageViewRepository {
	return &pageViewRepository{db: db}
}

// InsertFirstView relies on the unique index on candidate_id: when two tabs
// load the same offer link at once, exactly one insert wins and the other
// resolves to the no-op path.
func (r *pageViewRepository) InsertFirstView(ctx context.Context, candidateID string, viewedAt time.Time) (bool, error) {
	query := `
		INSERT INTO candidate_page_views (id, candidate_id, viewed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, uuid.NewString(), candidateID, viewedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *pageViewRepository) GetByCandidate(ctx context.Context, candidateID string) (*domain.CandidatePageView, error) {
	query := `SELECT id, candidate_id, viewed_at FROM candidate_page_views WHERE candidate_id = $1`
	var v domain.CandidatePageView
	err := r.db.QueryRow(ctx, query, candidateID).Scan(&v.ID, &v.CandidateID, &v.ViewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
