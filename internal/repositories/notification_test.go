package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

func setupNotificationPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		event_id UUID NOT NULL,
		message TEXT NOT NULL,
		type VARCHAR(20) NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestNotificationRepository(t *testing.T) {
	db, teardown := setupNotificationPostgresContainer(t)
	defer teardown()

	repo := NewNotificationRepository(db)
	ctx := context.Background()

	userA := uuid.New()
	userB := uuid.New()
	eventID := uuid.New()

	saved, err := repo.Save(ctx, models.NotificationDB{
		UserID:  userA,
		EventID: eventID,
		Message: "You are registered for Tech Conf",
		Type:    models.NotificationRegistration,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	_, err = repo.Save(ctx, models.NotificationDB{
		UserID:  userB,
		EventID: eventID,
		Message: "Your registration was cancelled",
		Type:    models.NotificationCancellation,
	})
	assert.NoError(t, err)

	t.Run("ListByUser returns only the user's rows", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, userA)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, saved.ID, got[0].ID)
		assert.Equal(t, models.NotificationRegistration, got[0].Type)
		assert.False(t, got[0].IsRead)
	})

	t.Run("ListByUser with no rows is empty", func(t *testing.T) {
		got, err := repo.ListByUser(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Len(t, got, 0)
	})
}
