package usecase

import (
	"context"
	"time"

	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"
	"outreach-backend/pkg/logger"

	"github.com/google/uuid"
)

type offerUsecase struct {
	candidateRepo domain.CandidateRepository
	pageViewRepo  domain.PageViewRepository
	activityRepo  domain.ActivityRepository
}

func NewOfferUsecase(
	candidateRepo domain.CandidateRepository,
	pageViewRepo domain.PageViewRepository,
	activityRepo domain.ActivityRepository,
) domain.OfferUsecase {
	return &offerUsecase{
		candidateRepo: candidateRepo,
		pageViewRepo:  pageViewRepo,
		activityRepo:  activityRepo,
	}
}

// OpenOffer resolves the capability token and fires the first-view tracker.
// View bookkeeping never breaks the page: failures there are logged and the
// candidate payload is still returned.
func (uc *offerUsecase) OpenOffer(ctx context.Context, token string) (*domain.Candidate, error) {
	candidate, err := uc.candidateRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("This offer link is not valid.")
	}

	inserted, err := uc.pageViewRepo.InsertFirstView(ctx, candidate.ID, time.Now().UTC())
	if err != nil {
		logger.Log.Error("Failed to record page view", "error", err, "candidate_id", candidate.ID)
		return candidate, nil
	}
	if !inserted {
		// Not the first open; nothing more to record.
		return candidate, nil
	}

	if candidate.Status.CanMarkViewed() {
		if err := uc.candidateRepo.UpdateStatus(ctx, candidate.ID, domain.StatusViewed); err != nil {
			logger.Log.Error("Failed to advance status to viewed", "error", err, "candidate_id", candidate.ID)
		} else {
			candidate.Status = domain.StatusViewed
		}
	}

	entry := &domain.ActivityLogEntry{
		ID:          uuid.NewString(),
		CandidateID: candidate.ID,
		Action:      domain.ActivityPageViewed,
		Description: "Candidate opened their offer page for the first time",
		PerformedBy: "candidate",
	}
	if err := uc.activityRepo.Insert(ctx, entry); err != nil {
		logger.Log.Error("Failed to log activity", "error", err, "candidate_id", candidate.ID)
	}

	return candidate, nil
}
