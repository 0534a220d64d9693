package postgres

import (
	"context"
	"errors"
	"fmt"

	"outreach-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, name, position, track, experience, unique_token, status, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Position, &c.Track, &c.Experience,
		&c.UniqueToken, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, position, track, experience, unique_token, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Position, c.Track, c.Experience, c.UniqueToken, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepository) GetByToken(ctx context.Context, token string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE unique_token = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, token))
}

func (r *candidateRepository) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var args []interface{}
	where := ""

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		where = fmt.Sprintf(" WHERE status = ANY($%d)", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clause := fmt.Sprintf("(name ILIKE $%d OR position ILIKE $%d)", len(args), len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		err := rows.Scan(
			&c.ID, &c.Name, &c.Position, &c.Track, &c.Experience,
			&c.UniqueToken, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) Update(ctx context.Context, c *domain.Candidate) error {
	// unique_token and status are deliberately not updatable here
	query := `
		UPDATE candidates
		SET name = $1, position = $2, track = $3, experience = $4, updated_at = NOW()
		WHERE id = $5`
	tag, err := r.db.Exec(ctx, query, c.Name, c.Position, c.Track, c.Experience, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE candidates SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	// page views, responses, and notes cascade via FK
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
