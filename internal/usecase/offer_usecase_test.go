package usecase_test

import (
	"context"
	"errors"
	"testing"

	"outreach-backend/internal/domain"
	"outreach-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type offerFixture struct {
	candidateRepo *MockCandidateRepo
	pageViewRepo  *MockPageViewRepo
	activityRepo  *MockActivityRepo
	uc            domain.OfferUsecase
}

func newOfferFixture() *offerFixture {
	f := &offerFixture{
		candidateRepo: new(MockCandidateRepo),
		pageViewRepo:  new(MockPageViewRepo),
		activityRepo:  new(MockActivityRepo),
	}
	f.uc = usecase.NewOfferUsecase(f.candidateRepo, f.pageViewRepo, f.activityRepo)
	return f
}

func TestOpenOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown token yields not found", func(t *testing.T) {
		f := newOfferFixture()
		f.candidateRepo.On("GetByToken", ctx, "nope").Return(nil, nil)

		_, err := f.uc.OpenOffer(ctx, "nope")
		assertAppError(t, err, 404)
		f.pageViewRepo.AssertNotCalled(t, "InsertFirstView", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("First open records a view and advances created to viewed", func(t *testing.T) {
		f := newOfferFixture()
		f.candidateRepo.On("GetByToken", ctx, "abc123").Return(testCandidate(domain.StatusCreated), nil)
		f.pageViewRepo.On("InsertFirstView", ctx, "cand-1", mock.Anything).Return(true, nil)
		f.candidateRepo.On("UpdateStatus", ctx, "cand-1", domain.StatusViewed).Return(nil)
		f.activityRepo.On("Insert", ctx, mock.AnythingOfType("*domain.ActivityLogEntry")).Return(nil)

		candidate, err := f.uc.OpenOffer(ctx, "abc123")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusViewed, candidate.Status)
		f.candidateRepo.AssertExpectations(t)
		f.activityRepo.AssertExpectations(t)
	})

	t.Run("First open from sent also advances to viewed", func(t *testing.T) {
		f := newOfferFixture()
		f.candidateRepo.On("GetByToken", ctx, "abc123").Return(testCandidate(domain.StatusSent), nil)
		f.pageViewRepo.On("InsertFirstView", ctx, "cand-1", mock.Anything).Return(true, nil)
		f.candidateRepo.On("UpdateStatus", ctx, "cand-1", domain.StatusViewed).Return(nil)
		f.activityRepo.On("Insert", ctx, mock.Anything).Return(nil)

		candidate, err := f.uc.OpenOffer(ctx, "abc123")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusViewed, candidate.Status)
	})

	t.Run("Repeat open is a no-op", func(t *testing.T) {
		f := newOfferFixture()
		f.candidateRepo.On("GetByToken", ctx, "abc123").Return(testCandidate(domain.StatusViewed), nil)
		f.pageViewRepo.On("InsertFirstView", ctx, "cand-1", mock.Anything).Return(false, nil)

		candidate, err := f.uc.OpenOffer(ctx, "abc123")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusViewed, candidate.Status)
		f.candidateRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		f.activityRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Terminal status is not overwritten by a late first view", func(t *testing.T) {
		f := newOfferFixture()
		f.candidateRepo.On("GetByToken", ctx, "abc123").Return(testCandidate(domain.StatusAccepted), nil)
		f.pageViewRepo.On("InsertFirstView", ctx, "cand-1", mock.Anything).Return(true, nil)
		f.activityRepo.On("Insert", ctx, mock.Anything).Return(nil)

		candidate, err := f.uc.OpenOffer(ctx, "abc123")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, candidate.Status)
		f.candidateRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("View tracking failure does not break the page", func(t *testing.T) {
		f := newOfferFixture()
		f.candidateRepo.On("GetByToken", ctx, "abc123").Return(testCandidate(domain.StatusCreated), nil)
		f.pageViewRepo.On("InsertFirstView", ctx, "cand-1", mock.Anything).Return(false, errors.New("db down"))

		candidate, err := f.uc.OpenOffer(ctx, "abc123")
		assert.NoError(t, err)
		assert.NotNil(t, candidate)
		assert.Equal(t, domain.StatusCreated, candidate.Status)
	})
}
