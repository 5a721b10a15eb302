package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

func TestRegistrationService_Register_New(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	user := models.UserDB{ID: userID, Email: "ann@example.com", FirstName: "Ann"}
	event := models.EventDB{ID: eventID, Title: "Go Meetup"}
	saved := models.RegistrationDB{ID: uuid.New(), UserID: userID, EventID: eventID, Status: models.RegistrationStatusConfirmed}

	events.EXPECT().GetByID(ctx, eventID).Return(&event, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&user, nil)
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(nil, repositories.ErrNotFound)
	regs.EXPECT().Save(ctx, userID, eventID, nil).Return(&saved, nil)
	notifier.EXPECT().RegistrationConfirmed(ctx, user, event, saved)

	svc := NewRegistrationService(regs, users, events, notifier)
	reg, err := svc.Register(ctx, eventID, userID, nil)

	assert.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusConfirmed, reg.Status)
}

func TestRegistrationService_Register_AlreadyConfirmed(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(&models.RegistrationDB{
		ID:     uuid.New(),
		Status: models.RegistrationStatusConfirmed,
	}, nil)

	svc := NewRegistrationService(regs, users, events, notifier)
	reg, err := svc.Register(ctx, eventID, userID, nil)

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Nil(t, reg)
}

func TestRegistrationService_Register_ReusesCancelledRow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()
	regID := uuid.New()
	note := "bringing a plus one"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	user := models.UserDB{ID: userID}
	event := models.EventDB{ID: eventID}

	events.EXPECT().GetByID(ctx, eventID).Return(&event, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&user, nil)
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(&models.RegistrationDB{
		ID:      regID,
		UserID:  userID,
		EventID: eventID,
		Status:  models.RegistrationStatusCancelled,
	}, nil)
	regs.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.RegistrationDB) (*models.RegistrationDB, error) {
			assert.Equal(t, regID, r.ID)
			assert.Equal(t, models.RegistrationStatusConfirmed, r.Status)
			assert.Equal(t, &note, r.Note)
			return &r, nil
		})
	notifier.EXPECT().RegistrationConfirmed(ctx, user, event, gomock.Any())

	svc := NewRegistrationService(regs, users, events, notifier)
	reg, err := svc.Register(ctx, eventID, userID, &note)

	assert.NoError(t, err)
	// Same row, same id: cancel/re-register cycles never mint a new registration.
	assert.Equal(t, regID, reg.ID)
}

func TestRegistrationService_Register_ConcurrentInsertConflict(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(nil, repositories.ErrNotFound)
	regs.EXPECT().Save(ctx, userID, eventID, nil).Return(nil, uniqueViolation())

	svc := NewRegistrationService(regs, users, events, notifier)
	_, err := svc.Register(ctx, eventID, userID, nil)

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	eventID := uuid.New()
	events.EXPECT().GetByID(ctx, eventID).Return(nil, repositories.ErrNotFound)

	svc := NewRegistrationService(regs, users, events, notifier)
	_, err := svc.Register(ctx, eventID, uuid.New(), nil)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegistrationService_Cancel(t *testing.T) {
	ctx := context.Background()
	regID := uuid.New()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	user := models.UserDB{ID: userID}
	event := models.EventDB{ID: eventID}

	regs.EXPECT().GetByID(ctx, regID).Return(&models.RegistrationDB{
		ID:      regID,
		UserID:  userID,
		EventID: eventID,
		Status:  models.RegistrationStatusConfirmed,
	}, nil)
	regs.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.RegistrationDB) (*models.RegistrationDB, error) {
			assert.Equal(t, models.RegistrationStatusCancelled, r.Status)
			return &r, nil
		})
	users.EXPECT().GetByID(ctx, userID).Return(&user, nil)
	events.EXPECT().GetByID(ctx, eventID).Return(&event, nil)
	notifier.EXPECT().RegistrationCancelled(ctx, user, event, gomock.Any())

	svc := NewRegistrationService(regs, users, events, notifier)
	reg, err := svc.Cancel(ctx, regID)

	assert.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusCancelled, reg.Status)
}

func TestRegistrationService_Cancel_AlreadyCancelledRenotifies(t *testing.T) {
	ctx := context.Background()
	regID := uuid.New()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)
	notifier := NewMockRegistrationNotifier(ctrl)

	cancelled := models.RegistrationDB{ID: regID, UserID: userID, EventID: eventID, Status: models.RegistrationStatusCancelled}

	regs.EXPECT().GetByID(ctx, regID).Return(&cancelled, nil)
	regs.EXPECT().Update(ctx, cancelled).Return(&cancelled, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)
	notifier.EXPECT().RegistrationCancelled(ctx, gomock.Any(), gomock.Any(), cancelled)

	svc := NewRegistrationService(regs, users, events, notifier)
	reg, err := svc.Cancel(ctx, regID)

	assert.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusCancelled, reg.Status)
}

func TestRegistrationService_Cancel_NotFound(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	regID := uuid.New()
	regs.EXPECT().GetByID(ctx, regID).Return(nil, repositories.ErrNotFound)

	svc := NewRegistrationService(regs, NewMockUserGetter(ctrl), NewMockEventGetter(ctrl), NewMockRegistrationNotifier(ctrl))
	_, err := svc.Cancel(ctx, regID)

	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestRegistrationService_Update_AdminOverride(t *testing.T) {
	ctx := context.Background()
	regID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	svc := NewRegistrationService(regs, NewMockUserGetter(ctrl), NewMockEventGetter(ctrl), NewMockRegistrationNotifier(ctrl))

	// Status written directly, note cleared to nil.
	status := models.RegistrationStatusCancelled
	regs.EXPECT().GetByID(ctx, regID).Return(&models.RegistrationDB{
		ID:     regID,
		Status: models.RegistrationStatusConfirmed,
	}, nil)
	regs.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.RegistrationDB) (*models.RegistrationDB, error) {
			assert.Equal(t, models.RegistrationStatusCancelled, r.Status)
			assert.Nil(t, r.Note)
			return &r, nil
		})

	_, err := svc.Update(ctx, regID, &status, nil)
	assert.NoError(t, err)

	// Unknown status rejected.
	bad := "WAITLISTED"
	regs.EXPECT().GetByID(ctx, regID).Return(&models.RegistrationDB{ID: regID}, nil)
	_, err = svc.Update(ctx, regID, &bad, nil)
	assert.ErrorIs(t, err, ErrInvalidRegistrationData)
}

func TestRegistrationService_IsUserRegistered(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	svc := NewRegistrationService(regs, NewMockUserGetter(ctrl), NewMockEventGetter(ctrl), NewMockRegistrationNotifier(ctrl))

	// Confirmed counts.
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(&models.RegistrationDB{
		Status: models.RegistrationStatusConfirmed,
	}, nil)
	ok, err := svc.IsUserRegistered(ctx, userID, eventID)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Cancelled does not.
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(&models.RegistrationDB{
		Status: models.RegistrationStatusCancelled,
	}, nil)
	ok, err = svc.IsUserRegistered(ctx, userID, eventID)
	assert.NoError(t, err)
	assert.False(t, ok)

	// No row at all.
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(nil, repositories.ErrNotFound)
	ok, err = svc.IsUserRegistered(ctx, userID, eventID)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Nil ids are false without touching the store.
	ok, err = svc.IsUserRegistered(ctx, uuid.Nil, eventID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistrationService_ListByEvent_EventMustExist(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	events := NewMockEventGetter(ctrl)
	svc := NewRegistrationService(regs, NewMockUserGetter(ctrl), events, NewMockRegistrationNotifier(ctrl))

	events.EXPECT().GetByID(ctx, eventID).Return(nil, repositories.ErrNotFound)
	_, err := svc.ListByEvent(ctx, eventID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)
	regs.EXPECT().ListByEvent(ctx, eventID).Return([]models.RegistrationDB{{EventID: eventID}}, nil)
	list, err := svc.ListByEvent(ctx, eventID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRegistrationService_Register_StoreError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	regs := NewMockRegistrationStore(ctrl)
	users := NewMockUserGetter(ctrl)
	events := NewMockEventGetter(ctrl)

	events.EXPECT().GetByID(ctx, eventID).Return(&models.EventDB{ID: eventID}, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
	regs.EXPECT().GetByUserAndEvent(ctx, userID, eventID).Return(nil, errors.New("db down"))

	svc := NewRegistrationService(regs, users, events, NewMockRegistrationNotifier(ctrl))
	_, err := svc.Register(ctx, eventID, userID, nil)

	assert.EqualError(t, err, "db down")
}
