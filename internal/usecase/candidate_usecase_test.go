package usecase_test

import (
	"context"
	"testing"

	"outreach-backend/internal/domain"
	"outreach-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type candidateFixture struct {
	candidateRepo *MockCandidateRepo
	pageViewRepo  *MockPageViewRepo
	responseRepo  *MockResponseRepo
	noteRepo      *MockNoteRepo
	activityRepo  *MockActivityRepo
	uc            domain.CandidateUsecase
}

func newCandidateFixture() *candidateFixture {
	f := &candidateFixture{
		candidateRepo: new(MockCandidateRepo),
		pageViewRepo:  new(MockPageViewRepo),
		responseRepo:  new(MockResponseRepo),
		noteRepo:      new(MockNoteRepo),
		activityRepo:  new(MockActivityRepo),
	}
	f.uc = usecase.NewCandidateUsecase(
		f.candidateRepo, f.pageViewRepo, f.responseRepo, f.noteRepo, f.activityRepo, validator.New())
	return f
}

func TestCandidateCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Generates id and token and starts in created", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidateRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)
		f.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		created, err := f.uc.Create(ctx, &domain.Candidate{
			Name:       "Hong Gildong",
			Position:   "Backend Developer",
			Track:      "Web",
			Experience: "3 years",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.UniqueToken)
		assert.NotEqual(t, created.ID, created.UniqueToken)
		assert.Equal(t, domain.StatusCreated, created.Status)
	})

	t.Run("Rejects missing required fields", func(t *testing.T) {
		f := newCandidateFixture()

		_, err := f.uc.Create(ctx, &domain.Candidate{Name: "Hong Gildong"})
		assertAppError(t, err, 400)
		f.candidateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCandidateMarkSent(t *testing.T) {
	ctx := context.Background()

	t.Run("Advances created to sent", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidateRepo.On("GetByID", ctx, "cand-1").Return(testCandidate(domain.StatusCreated), nil)
		f.candidateRepo.On("UpdateStatus", ctx, "cand-1", domain.StatusSent).Return(nil)
		f.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, f.uc.MarkSent(ctx, "cand-1"))
		f.candidateRepo.AssertExpectations(t)
	})

	t.Run("No-op once the candidate is past created", func(t *testing.T) {
		for _, status := range []domain.Status{domain.StatusSent, domain.StatusViewed, domain.StatusAccepted} {
			f := newCandidateFixture()
			f.candidateRepo.On("GetByID", ctx, "cand-1").Return(testCandidate(status), nil)

			assert.NoError(t, f.uc.MarkSent(ctx, "cand-1"))
			f.candidateRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Unknown candidate yields not found", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidateRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

		assertAppError(t, f.uc.MarkSent(ctx, "ghost"), 404)
	})
}

func TestCandidateUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Token and status cannot be changed through update", func(t *testing.T) {
		f := newCandidateFixture()
		existing := testCandidate(domain.StatusViewed)
		f.candidateRepo.On("GetByID", ctx, "cand-1").Return(existing, nil)
		f.candidateRepo.On("Update", ctx, mock.AnythingOfType("*domain.Candidate")).
			Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, existing.UniqueToken, c.UniqueToken)
			assert.Equal(t, domain.StatusViewed, c.Status)
		})
		f.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		err := f.uc.Update(ctx, &domain.Candidate{
			ID:          "cand-1",
			Name:        "New Name",
			Position:    "Position",
			Track:       "Track",
			Experience:  "5 years",
			UniqueToken: "forged-token",
			Status:      domain.StatusCreated,
		})
		assert.NoError(t, err)
		f.candidateRepo.AssertExpectations(t)
	})
}

func TestCandidateDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates responses, view, and notes", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidateRepo.On("GetByID", ctx, "cand-1").Return(testCandidate(domain.StatusInquiry), nil)
		f.pageViewRepo.On("GetByCandidate", ctx, "cand-1").Return(&domain.CandidatePageView{ID: "pv-1", CandidateID: "cand-1"}, nil)
		f.responseRepo.On("ListByCandidate", ctx, "cand-1").Return([]domain.CandidateResponse{
			{ID: "r-1", CandidateID: "cand-1", Kind: domain.ResponseInquiry, Payload: domain.InquiryPayload{Email: "a@b.com", Message: "question"}},
		}, nil)
		f.noteRepo.On("ListByCandidate", ctx, "cand-1").Return([]domain.CandidateNote{}, nil)

		detail, err := f.uc.GetDetail(ctx, "cand-1")
		assert.NoError(t, err)
		assert.Equal(t, "pv-1", detail.PageView.ID)
		assert.Len(t, detail.Responses, 1)
		assert.Empty(t, detail.Notes)
	})
}

func TestCandidateNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty note is rejected", func(t *testing.T) {
		f := newCandidateFixture()

		err := f.uc.AddNote(ctx, &domain.CandidateNote{CandidateID: "cand-1", Note: "   "})
		assertAppError(t, err, 400)
		f.noteRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Author comes from the auth context", func(t *testing.T) {
		f := newCandidateFixture()
		ctx := context.WithValue(context.Background(), domain.KeyUserEmail, "admin@example.com")
		f.candidateRepo.On("GetByID", ctx, "cand-1").Return(testCandidate(domain.StatusViewed), nil)
		f.noteRepo.On("Insert", ctx, mock.AnythingOfType("*domain.CandidateNote")).
			Return(nil).Run(func(args mock.Arguments) {
			note := args.Get(1).(*domain.CandidateNote)
			assert.Equal(t, "admin@example.com", note.CreatedBy)
			assert.NotEmpty(t, note.ID)
		})
		f.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		err := f.uc.AddNote(ctx, &domain.CandidateNote{CandidateID: "cand-1", Note: "strong candidate"})
		assert.NoError(t, err)
		f.noteRepo.AssertExpectations(t)
	})
}
