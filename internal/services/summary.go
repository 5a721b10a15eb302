package services

import (
	"context"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=services

// UserCounter reports the total number of accounts.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// EventCounter reports the total number of events.
type EventCounter interface {
	Count(ctx context.Context) (int64, error)
}

// CategoryCounter reports the total number of categories.
type CategoryCounter interface {
	Count(ctx context.Context) (int64, error)
}

// SummaryService aggregates dashboard counts for the admin UI.
type SummaryService struct {
	users      UserCounter
	events     EventCounter
	categories CategoryCounter
}

func NewSummaryService(users UserCounter, events EventCounter, categories CategoryCounter) *SummaryService {
	return &SummaryService{
		users:      users,
		events:     events,
		categories: categories,
	}
}

func (svc *SummaryService) GetSummary(ctx context.Context) (*models.Summary, error) {
	users, err := svc.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}
	events, err := svc.events.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count events", "err", err)
		return nil, err
	}
	categories, err := svc.categories.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count categories", "err", err)
		return nil, err
	}
	return &models.Summary{
		TotalUsers:      users,
		TotalEvents:     events,
		TotalCategories: categories,
	}, nil
}
