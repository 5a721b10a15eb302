package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

func TestEmailNotifier_RegistrationConfirmed(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	store := NewMockNotificationStore(ctrl)

	published := make(chan models.EmailMessage, 1)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			var msg models.EmailMessage
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &msg))
			published <- msg
			return nil
		})
	store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.NotificationDB) (*models.NotificationDB, error) {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, eventID, n.EventID)
			assert.Equal(t, models.NotificationRegistration, n.Type)
			assert.False(t, n.IsRead)
			return &n, nil
		})

	notifier := NewEmailNotifier(writer, store)
	notifier.RegistrationConfirmed(ctx,
		models.UserDB{ID: userID, Email: "ann@example.com", FirstName: "Ann"},
		models.EventDB{ID: eventID, Title: "Go Meetup"},
		models.RegistrationDB{ID: uuid.New()},
	)

	select {
	case msg := <-published:
		assert.Equal(t, models.EmailKindRegistrationConfirmed, msg.Kind)
		assert.Equal(t, "ann@example.com", msg.To)
		assert.Equal(t, "Ann", msg.Data["first_name"])
	case <-time.After(time.Second):
		t.Fatal("email message was not published")
	}
}

func TestEmailNotifier_PublishFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	store := NewMockNotificationStore(ctrl)

	done := make(chan struct{})
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ ...kafka.Message) error {
			close(done)
			return errors.New("broker unreachable")
		})
	store.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("db down"))

	notifier := NewEmailNotifier(writer, store)
	// Neither the store nor the broker failure reaches the caller.
	notifier.RegistrationCancelled(ctx,
		models.UserDB{ID: uuid.New(), Email: "ann@example.com"},
		models.EventDB{ID: uuid.New(), Title: "Go Meetup"},
		models.RegistrationDB{ID: uuid.New()},
	)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish goroutine never ran")
	}
}

func TestEmailNotifier_NilWriterSkipsDispatch(t *testing.T) {
	notifier := NewEmailNotifier(nil, nil)
	notifier.OtpRequested(context.Background(), "ann@example.com", "123456", "Ann")
	assert.NoError(t, notifier.Close())
}

func TestEmailNotifier_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().Close().Return(nil)

	notifier := NewEmailNotifier(writer, nil)
	assert.NoError(t, notifier.Close())
}
