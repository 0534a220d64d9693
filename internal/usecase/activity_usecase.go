package usecase

import (
	"context"
	"errors"

	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

type activityUsecase struct {
	activityRepo domain.ActivityRepository
	responseRepo domain.ResponseRepository
}

func NewActivityUsecase(activityRepo domain.ActivityRepository, responseRepo domain.ResponseRepository) domain.ActivityUsecase {
	return &activityUsecase{activityRepo: activityRepo, responseRepo: responseRepo}
}

func (uc *activityUsecase) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityLogEntry, error) {
	entries, err := uc.activityRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch activity: " + err.Error()))
	}
	return entries, nil
}

func (uc *activityUsecase) RecentResponses(ctx context.Context, limit int) ([]domain.CandidateResponse, error) {
	responses, err := uc.responseRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch responses: " + err.Error()))
	}
	return responses, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}
