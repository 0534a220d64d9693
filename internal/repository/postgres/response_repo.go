package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"outreach-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type responseRepository struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) domain.ResponseRepository {
	return &responseRepository{db: db}
}

// InsertAndSetStatus writes the response record and the candidate status
// change as one transaction: neither a response without a status update nor
// the reverse is ever committed.
func (r *responseRepository) InsertAndSetStatus(ctx context.Context, resp *domain.CandidateResponse, status domain.Status) error {
	payload, err := json.Marshal(resp.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response payload: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO candidate_responses (id, candidate_id, response_type, response_data, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at`
	if err := tx.QueryRow(ctx, insertQuery,
		resp.ID, resp.CandidateID, resp.Kind, payload,
	).Scan(&resp.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}

	statusQuery := `UPDATE candidates SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := tx.Exec(ctx, statusQuery, status, resp.CandidateID)
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *responseRepository) ListByCandidate(ctx context.Context, candidateID string) ([]domain.CandidateResponse, error) {
	query := `
		SELECT id, candidate_id, response_type, response_data, created_at
		FROM candidate_responses
		WHERE candidate_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResponses(rows)
}

func (r *responseRepository) ListRecent(ctx context.Context, limit int) ([]domain.CandidateResponse, error) {
	query := `
		SELECT id, candidate_id, response_type, response_data, created_at
		FROM candidate_responses
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResponses(rows)
}

func scanResponses(rows pgx.Rows) ([]domain.CandidateResponse, error) {
	var responses []domain.CandidateResponse
	for rows.Next() {
		var resp domain.CandidateResponse
		var raw []byte
		if err := rows.Scan(&resp.ID, &resp.CandidateID, &resp.Kind, &raw, &resp.CreatedAt); err != nil {
			return nil, err
		}
		payload, err := domain.DecodePayload(resp.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode response %s: %w", resp.ID, err)
		}
		resp.Payload = payload
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
