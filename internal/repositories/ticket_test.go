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

func setupTicketPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY,
		registration_id UUID NOT NULL UNIQUE,
		qr_code VARCHAR(100) NOT NULL UNIQUE,
		status VARCHAR(10) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
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

func TestTicketRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupTicketPostgresContainer(t)
	defer teardown()

	repo := NewTicketRepository(db)
	ctx := context.Background()

	registrationID := uuid.New()
	qrCode := "QR-" + uuid.NewString()

	saved, err := repo.Save(ctx, registrationID, qrCode)
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusValid, saved.Status)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, qrCode, got.QrCode)
		assert.Equal(t, registrationID, got.RegistrationID)
	})

	t.Run("GetByQrCode", func(t *testing.T) {
		got, err := repo.GetByQrCode(ctx, qrCode)
		assert.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
	})

	t.Run("GetByQrCode missing", func(t *testing.T) {
		_, err := repo.GetByQrCode(ctx, "QR-"+uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetByRegistration", func(t *testing.T) {
		got, err := repo.GetByRegistration(ctx, registrationID)
		assert.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
	})

	t.Run("second ticket for the registration is a unique violation", func(t *testing.T) {
		_, err := repo.Save(ctx, registrationID, "QR-"+uuid.NewString())
		assert.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})
}

func TestTicketRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupTicketPostgresContainer(t)
	defer teardown()

	repo := NewTicketRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, uuid.New(), "QR-"+uuid.NewString())
	assert.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, saved.ID, models.TicketStatusInvalid)
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusInvalid, updated.Status)

	got, err := repo.GetByID(ctx, saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusInvalid, got.Status)

	t.Run("missing ticket returns ErrNotFound", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, uuid.New(), models.TicketStatusInvalid)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketRepository_List(t *testing.T) {
	db, teardown := setupTicketPostgresContainer(t)
	defer teardown()

	repo := NewTicketRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, uuid.New(), "QR-"+uuid.NewString())
		assert.NoError(t, err)
	}

	tickets, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, tickets, 3)
}
