package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=services

const publishTimeout = 5 * time.Second

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NotificationStore persists in-app notification rows.
type NotificationStore interface {
	Save(ctx context.Context, n models.NotificationDB) (*models.NotificationDB, error)
}

// EmailNotifier publishes email messages to the notifications topic and
// records in-app notifications. Everything here is best-effort: failures
// are logged and never surface to the triggering operation.
type EmailNotifier struct {
	writer        KafkaWriter
	notifications NotificationStore
}

func NewEmailNotifier(writer KafkaWriter, notifications NotificationStore) *EmailNotifier {
	return &EmailNotifier{writer: writer, notifications: notifications}
}

// RegistrationConfirmed dispatches the confirmation email and records the
// in-app notification.
func (n *EmailNotifier) RegistrationConfirmed(ctx context.Context, user models.UserDB, event models.EventDB, reg models.RegistrationDB) {
	n.saveNotification(ctx, user, event,
		"You have successfully registered for event: "+event.Title,
		models.NotificationRegistration)

	n.publish(models.EmailMessage{
		MessageID: uuid.NewString(),
		Kind:      models.EmailKindRegistrationConfirmed,
		To:        user.Email,
		Subject:   "Registration Confirmation - " + event.Title,
		Data: map[string]string{
			"first_name":      user.FirstName,
			"event_title":     event.Title,
			"registration_id": reg.ID.String(),
		},
		Timestamp: time.Now().Unix(),
	})
}

// RegistrationCancelled dispatches the cancellation email and records the
// in-app notification.
func (n *EmailNotifier) RegistrationCancelled(ctx context.Context, user models.UserDB, event models.EventDB, reg models.RegistrationDB) {
	n.saveNotification(ctx, user, event,
		"You have cancelled your registration for event: "+event.Title,
		models.NotificationCancellation)

	n.publish(models.EmailMessage{
		MessageID: uuid.NewString(),
		Kind:      models.EmailKindRegistrationCancelled,
		To:        user.Email,
		Subject:   "Registration Cancelled - " + event.Title,
		Data: map[string]string{
			"first_name":      user.FirstName,
			"event_title":     event.Title,
			"registration_id": reg.ID.String(),
		},
		Timestamp: time.Now().Unix(),
	})
}

// OtpRequested dispatches a verification-code email.
func (n *EmailNotifier) OtpRequested(ctx context.Context, email, code, firstName string) {
	n.publish(models.EmailMessage{
		MessageID: uuid.NewString(),
		Kind:      models.EmailKindOtp,
		To:        email,
		Subject:   "Email Verification",
		Data: map[string]string{
			"first_name": firstName,
			"otp_code":   code,
		},
		Timestamp: time.Now().Unix(),
	})
}

func (n *EmailNotifier) saveNotification(ctx context.Context, user models.UserDB, event models.EventDB, message, kind string) {
	if n.notifications == nil {
		return
	}
	_, err := n.notifications.Save(ctx, models.NotificationDB{
		UserID:  user.ID,
		EventID: event.ID,
		Message: message,
		Type:    kind,
		IsRead:  false,
	})
	if err != nil {
		logger.Log.Errorw("failed to save notification", "user_id", user.ID, "event_id", event.ID, "err", err)
	}
}

// publish writes the message in a detached goroutine so the triggering
// request never waits on the broker.
func (n *EmailNotifier) publish(msg models.EmailMessage) {
	if n.writer == nil {
		logger.Log.Warnw("kafka writer not configured, skipping email dispatch", "message_id", msg.MessageID)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("failed to marshal email message", "message_id", msg.MessageID, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := n.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(msg.MessageID),
			Value: data,
		})
		if err != nil {
			logger.Log.Errorw("failed to publish email message", "message_id", msg.MessageID, "kind", msg.Kind, "error", err)
			return
		}
		logger.Log.Infow("email message published", "message_id", msg.MessageID, "kind", msg.Kind, "to", msg.To)
	}()
}

// Close flushes and closes the underlying writer.
func (n *EmailNotifier) Close() error {
	if n.writer == nil {
		return nil
	}
	if err := n.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
