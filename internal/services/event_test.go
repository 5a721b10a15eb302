package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	organizerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventStore(ctrl)
	categories := NewMockCategoryGetter(ctrl)
	svc := NewEventService(events, categories, NewMockActiveRegistrationCounter(ctrl), nil)

	categories.EXPECT().GetByID(ctx, int64(3)).Return(&models.CategoryDB{ID: 3}, nil)
	events.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.EventDB) (*models.EventDB, error) {
			assert.Equal(t, organizerID, e.OrganizerID)
			assert.Equal(t, models.EventStatusDraft, e.Status)
			e.ID = uuid.New()
			return &e, nil
		})

	event, err := svc.Create(ctx, organizerID, models.EventDB{
		Title:      "  Go Meetup  ",
		Capacity:   intPtr(100),
		CategoryID: int64Ptr(3),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Go Meetup", event.Title)
}

func TestEventService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewEventService(NewMockEventStore(ctrl), NewMockCategoryGetter(ctrl), NewMockActiveRegistrationCounter(ctrl), nil)

	_, err := svc.Create(ctx, uuid.New(), models.EventDB{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidEventData)

	_, err = svc.Create(ctx, uuid.New(), models.EventDB{Title: "x", Capacity: intPtr(-1)})
	assert.ErrorIs(t, err, ErrInvalidEventData)

	_, err = svc.Create(ctx, uuid.New(), models.EventDB{Title: "x", Status: "HAPPENING"})
	assert.ErrorIs(t, err, ErrInvalidEventData)

	start := time.Now()
	_, err = svc.Create(ctx, uuid.New(), models.EventDB{
		Title:     "x",
		StartTime: timePtr(start),
		EndTime:   timePtr(start.Add(-time.Hour)),
	})
	assert.ErrorIs(t, err, ErrInvalidEventData)
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categories := NewMockCategoryGetter(ctrl)
	categories.EXPECT().GetByID(ctx, int64(99)).Return(nil, repositories.ErrNotFound)

	svc := NewEventService(NewMockEventStore(ctrl), categories, NewMockActiveRegistrationCounter(ctrl), nil)
	_, err := svc.Create(ctx, uuid.New(), models.EventDB{Title: "x", CategoryID: int64Ptr(99)})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestEventService_Get_CacheHit(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventStore(ctrl)
	cache := NewMockEventCache(ctrl)
	svc := NewEventService(events, NewMockCategoryGetter(ctrl), NewMockActiveRegistrationCounter(ctrl), cache)

	cache.EXPECT().Get(ctx, eventID).Return(&models.EventDB{ID: eventID, Title: "cached"}, nil)

	event, err := svc.Get(ctx, eventID)
	assert.NoError(t, err)
	assert.Equal(t, "cached", event.Title)
}

func TestEventService_Get_CacheMissFillsCache(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventStore(ctrl)
	cache := NewMockEventCache(ctrl)
	svc := NewEventService(events, NewMockCategoryGetter(ctrl), NewMockActiveRegistrationCounter(ctrl), cache)

	stored := models.EventDB{ID: eventID, Title: "from db"}
	cache.EXPECT().Get(ctx, eventID).Return(nil, repositories.ErrNotFound)
	events.EXPECT().GetByID(ctx, eventID).Return(&stored, nil)
	cache.EXPECT().Set(ctx, stored).Return(nil)

	event, err := svc.Get(ctx, eventID)
	assert.NoError(t, err)
	assert.Equal(t, "from db", event.Title)
}

func TestEventService_Get_CacheFailureFallsThrough(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventStore(ctrl)
	cache := NewMockEventCache(ctrl)
	svc := NewEventService(events, NewMockCategoryGetter(ctrl), NewMockActiveRegistrationCounter(ctrl), cache)

	cache.EXPECT().Get(ctx, eventID).Return(nil, errors.New("redis down"))
	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)
	cache.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis down"))

	event, err := svc.Get(ctx, eventID)
	assert.NoError(t, err)
	assert.Equal(t, eventID, event.ID)
}

func TestEventService_Update_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	organizerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventStore(ctrl)
	cache := NewMockEventCache(ctrl)
	svc := NewEventService(events, NewMockCategoryGetter(ctrl), NewMockActiveRegistrationCounter(ctrl), cache)

	created := time.Now().Add(-time.Hour)
	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{
		ID:          eventID,
		OrganizerID: organizerID,
		CreatedAt:   created,
	}, nil)
	events.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.EventDB) (*models.EventDB, error) {
			// Identity fields survive the overwrite.
			assert.Equal(t, eventID, e.ID)
			assert.Equal(t, organizerID, e.OrganizerID)
			assert.Equal(t, created, e.CreatedAt)
			return &e, nil
		})
	cache.EXPECT().Invalidate(ctx, eventID).Return(nil)

	_, err := svc.Update(ctx, eventID, models.EventDB{Title: "renamed", Status: models.EventStatusActive})
	assert.NoError(t, err)
}

func TestEventService_AssignCategory_ClearsWithNil(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventStore(ctrl)
	svc := NewEventService(events, NewMockCategoryGetter(ctrl), NewMockActiveRegistrationCounter(ctrl), nil)

	events.EXPECT().AssignCategory(ctx, eventID, (*int64)(nil)).Return(nil)
	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)

	event, err := svc.AssignCategory(ctx, eventID, nil)
	assert.NoError(t, err)
	assert.Nil(t, event.CategoryID)
}

func TestEventService_AvailableSeats(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockActiveRegistrationCounter(ctrl)
	svc := NewEventService(NewMockEventStore(ctrl), NewMockCategoryGetter(ctrl), regs, nil)

	// Capacity minus non-cancelled registrations.
	regs.EXPECT().CountActiveByEvent(ctx, eventID).Return(37, nil)
	seats, err := svc.AvailableSeats(ctx, models.EventDB{ID: eventID, Capacity: intPtr(100)})
	assert.NoError(t, err)
	assert.Equal(t, 63, *seats)

	// No capacity means unlimited, reported as nil.
	seats, err = svc.AvailableSeats(ctx, models.EventDB{ID: eventID})
	assert.NoError(t, err)
	assert.Nil(t, seats)
}

func TestEventService_View(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockActiveRegistrationCounter(ctrl)
	svc := NewEventService(NewMockEventStore(ctrl), NewMockCategoryGetter(ctrl), regs, nil)

	event := models.EventDB{ID: eventID, Title: "Go Meetup", Capacity: intPtr(10)}

	regs.EXPECT().CountActiveByEvent(ctx, eventID).Return(4, nil)
	view, err := svc.View(ctx, event, map[uuid.UUID]struct{}{eventID: {}})
	assert.NoError(t, err)
	assert.Equal(t, 6, *view.AvailableSeats)
	assert.True(t, view.IsRegistered)

	// Anonymous caller: nil set, never registered.
	regs.EXPECT().CountActiveByEvent(ctx, eventID).Return(4, nil)
	view, err = svc.View(ctx, event, nil)
	assert.NoError(t, err)
	assert.False(t, view.IsRegistered)
}
