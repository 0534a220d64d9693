package postgres

import (
	"context"

	"outreach-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type noteRepository struct {
	db *pgxpool.Pool
}

func NewNoteRepository(db *pgxpool.Pool) domain.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Insert(ctx context.Context, note *domain.CandidateNote) error {
	query := `
		INSERT INTO candidate_notes (id, candidate_id, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at`
	return r.db.QueryRow(ctx, query, note.ID, note.CandidateID, note.Note, note.CreatedBy).Scan(&note.CreatedAt)
}

func (r *noteRepository) ListByCandidate(ctx context.Context, candidateID string) ([]domain.CandidateNote, error) {
	query := `
		SELECT id, candidate_id, note, created_by, created_at
		FROM candidate_notes
		WHERE candidate_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.CandidateNote
	for rows.Next() {
		var n domain.CandidateNote
		if err := rows.Scan(&n.ID, &n.CandidateID, &n.Note, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidate_notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
