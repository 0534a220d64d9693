package usecase

import (
	"context"
	"errors"

	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"
	"outreach-backend/pkg/logger"
	"outreach-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	pageViewRepo  domain.PageViewRepository
	responseRepo  domain.ResponseRepository
	noteRepo      domain.NoteRepository
	activityRepo  domain.ActivityRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	pageViewRepo domain.PageViewRepository,
	responseRepo domain.ResponseRepository,
	noteRepo domain.NoteRepository,
	activityRepo domain.ActivityRepository,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		pageViewRepo:  pageViewRepo,
		responseRepo:  responseRepo,
		noteRepo:      noteRepo,
		activityRepo:  activityRepo,
		validate:      validate,
	}
}

func (uc *candidateUsecase) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	c.Name = validation.SanitizeText(c.Name, 100)
	c.Position = validation.SanitizeText(c.Position, 100)
	c.Track = validation.SanitizeText(c.Track, 100)
	c.Experience = validation.SanitizeText(c.Experience, 100)

	c.ID = uuid.NewString()
	// The token is the capability credential for the public URL; generated
	// server-side, never client-supplied, immutable afterwards.
	c.UniqueToken = uuid.NewString()
	c.Status = domain.StatusCreated

	if err := uc.validate.Struct(c); err != nil {
		return nil, apperror.BadRequest("Name, position, track and experience are all required.")
	}

	if err := uc.candidateRepo.Create(ctx, c); err != nil {
		return nil, apperror.Internal(errors.New("Failed to create candidate: " + err.Error()))
	}

	uc.logActivity(ctx, c.ID, domain.ActivityCandidateCreated, "Candidate "+c.Name+" created", nil)
	return c, nil
}

func (uc *candidateUsecase) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, apperror.BadRequest("Unknown status filter: " + string(s))
		}
	}
	candidates, err := uc.candidateRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to list candidates: " + err.Error()))
	}
	return candidates, nil
}

func (uc *candidateUsecase) GetDetail(ctx context.Context, id string) (*domain.CandidateDetail, error) {
	candidate, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found.")
	}

	detail := &domain.CandidateDetail{
		Candidate: *candidate,
		Responses: []domain.CandidateResponse{},
		Notes:     []domain.CandidateNote{},
	}

	if view, err := uc.pageViewRepo.GetByCandidate(ctx, id); err == nil {
		detail.PageView = view
	} else {
		logger.Log.Error("Failed to fetch page view", "error", err, "candidate_id", id)
	}

	responses, err := uc.responseRepo.ListByCandidate(ctx, id)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch responses: " + err.Error()))
	}
	if responses != nil {
		detail.Responses = responses
	}

	notes, err := uc.noteRepo.ListByCandidate(ctx, id)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch notes: " + err.Error()))
	}
	if notes != nil {
		detail.Notes = notes
	}

	return detail, nil
}

func (uc *candidateUsecase) Update(ctx context.Context, c *domain.Candidate) error {
	existing, err := uc.candidateRepo.GetByID(ctx, c.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Candidate not found.")
	}

	c.Name = validation.SanitizeText(c.Name, 100)
	c.Position = validation.SanitizeText(c.Position, 100)
	c.Track = validation.SanitizeText(c.Track, 100)
	c.Experience = validation.SanitizeText(c.Experience, 100)
	c.UniqueToken = existing.UniqueToken
	c.Status = existing.Status

	if err := uc.validate.Struct(c); err != nil {
		return apperror.BadRequest("Name, position, track and experience are all required.")
	}

	if err := uc.candidateRepo.Update(ctx, c); err != nil {
		return apperror.Internal(errors.New("Failed to update candidate: " + err.Error()))
	}

	uc.logActivity(ctx, c.ID, domain.ActivityCandidateUpdated, "Candidate "+c.Name+" updated", nil)
	return nil
}

// MarkSent records that the offer link was distributed. Idempotent when the
// candidate is already past created.
func (uc *candidateUsecase) MarkSent(ctx context.Context, id string) error {
	candidate, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found.")
	}
	if !candidate.Status.CanMarkSent() {
		// Already sent, viewed, or responded; forward-only machine.
		return nil
	}

	if err := uc.candidateRepo.UpdateStatus(ctx, id, domain.StatusSent); err != nil {
		return apperror.Internal(errors.New("Failed to update status: " + err.Error()))
	}

	uc.logActivity(ctx, id, domain.ActivityPageSent, "Offer link marked as sent to "+candidate.Name, nil)
	return nil
}

func (uc *candidateUsecase) Delete(ctx context.Context, id string) error {
	candidate, err := uc.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found.")
	}

	if err := uc.candidateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Candidate not found.")
		}
		return apperror.Internal(errors.New("Failed to delete candidate: " + err.Error()))
	}

	// Candidate id is gone after the cascade; keep it out of the FK column
	uc.logActivity(ctx, "", domain.ActivityCandidateDeleted, "Candidate "+candidate.Name+" deleted",
		map[string]interface{}{"candidate_name": candidate.Name})
	return nil
}

func (uc *candidateUsecase) AddNote(ctx context.Context, note *domain.CandidateNote) error {
	note.Note = validation.SanitizeText(note.Note, 2000)
	if note.Note == "" {
		return apperror.BadRequest("Note text is required.")
	}

	candidate, err := uc.candidateRepo.GetByID(ctx, note.CandidateID)
	if err != nil {
		return apperror.Internal(err)
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found.")
	}

	note.ID = uuid.NewString()
	note.CreatedBy = performedBy(ctx)

	if err := uc.noteRepo.Insert(ctx, note); err != nil {
		return apperror.Internal(errors.New("Failed to add note: " + err.Error()))
	}

	uc.logActivity(ctx, note.CandidateID, domain.ActivityNoteAdded, "Note added to "+candidate.Name, nil)
	return nil
}

func (uc *candidateUsecase) DeleteNote(ctx context.Context, noteID string) error {
	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Note not found.")
		}
		return apperror.Internal(errors.New("Failed to delete note: " + err.Error()))
	}
	return nil
}

func (uc *candidateUsecase) logActivity(ctx context.Context, candidateID string, action domain.ActivityAction, description string, metadata map[string]interface{}) {
	entry := &domain.ActivityLogEntry{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Action:      action,
		Description: description,
		PerformedBy: performedBy(ctx),
		Metadata:    metadata,
	}
	if err := uc.activityRepo.Insert(ctx, entry); err != nil {
		logger.Log.Error("Failed to log activity", "error", err, "action", string(action))
	}
}

// performedBy resolves the acting admin from the auth context.
func performedBy(ctx context.Context) string {
	if email, ok := ctx.Value(domain.KeyUserEmail).(string); ok && email != "" {
		return email
	}
	return "admin"
}
