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

func setupEventPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT,
		location VARCHAR(200),
		event_date TIMESTAMP,
		start_time TIMESTAMP,
		end_time TIMESTAMP,
		price NUMERIC,
		capacity INTEGER,
		status VARCHAR(10) NOT NULL,
		category_id BIGINT,
		organizer_id UUID NOT NULL,
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

func TestEventRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupEventPostgresContainer(t)
	defer teardown()

	repo := NewEventRepository(db)
	ctx := context.Background()

	desc := "Annual tech conference"
	location := "Phnom Penh"
	price := 25.0
	capacity := 100
	categoryID := int64(3)

	saved, err := repo.Save(ctx, models.EventDB{
		Title:       "Tech Conf",
		Description: &desc,
		Location:    &location,
		Price:       &price,
		Capacity:    &capacity,
		Status:      models.EventStatusActive,
		CategoryID:  &categoryID,
		OrganizerID: uuid.New(),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Tech Conf", got.Title)
		assert.Equal(t, models.EventStatusActive, got.Status)
		assert.NotNil(t, got.Capacity)
		assert.Equal(t, 100, *got.Capacity)
		assert.NotNil(t, got.CategoryID)
		assert.Equal(t, int64(3), *got.CategoryID)
	})

	t.Run("GetByID missing returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventRepository_List(t *testing.T) {
	db, teardown := setupEventPostgresContainer(t)
	defer teardown()

	repo := NewEventRepository(db)
	ctx := context.Background()

	organizer := uuid.New()
	musicCategory := int64(7)

	techDesc := "Talks about software"
	riverside := "Riverside park"

	_, err := repo.Save(ctx, models.EventDB{
		Title:       "Tech Meetup",
		Description: &techDesc,
		Status:      models.EventStatusActive,
		OrganizerID: organizer,
	})
	assert.NoError(t, err)
	_, err = repo.Save(ctx, models.EventDB{
		Title:       "Jazz Night",
		Location:    &riverside,
		Status:      models.EventStatusDraft,
		CategoryID:  &musicCategory,
		OrganizerID: organizer,
	})
	assert.NoError(t, err)
	_, err = repo.Save(ctx, models.EventDB{
		Title:       "Marathon",
		Status:      models.EventStatusActive,
		OrganizerID: organizer,
	})
	assert.NoError(t, err)

	t.Run("empty filter returns everything", func(t *testing.T) {
		got, err := repo.List(ctx, models.EventFilter{})
		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("keyword matches title case-insensitively", func(t *testing.T) {
		got, err := repo.List(ctx, models.EventFilter{Keyword: "jazz"})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Jazz Night", got[0].Title)
	})

	t.Run("keyword matches description and location", func(t *testing.T) {
		got, err := repo.List(ctx, models.EventFilter{Keyword: "software"})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Tech Meetup", got[0].Title)

		got, err = repo.List(ctx, models.EventFilter{Keyword: "riverside"})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Jazz Night", got[0].Title)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := repo.List(ctx, models.EventFilter{Status: models.EventStatusDraft})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Jazz Night", got[0].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := repo.List(ctx, models.EventFilter{CategoryID: &musicCategory})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Jazz Night", got[0].Title)
	})

	t.Run("combined filters", func(t *testing.T) {
		got, err := repo.List(ctx, models.EventFilter{Keyword: "tech", Status: models.EventStatusActive})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Tech Meetup", got[0].Title)

		got, err = repo.List(ctx, models.EventFilter{Keyword: "tech", Status: models.EventStatusDraft})
		assert.NoError(t, err)
		assert.Len(t, got, 0)
	})
}

func TestEventRepository_Update(t *testing.T) {
	db, teardown := setupEventPostgresContainer(t)
	defer teardown()

	repo := NewEventRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.EventDB{
		Title:       "Workshop",
		Status:      models.EventStatusDraft,
		OrganizerID: uuid.New(),
	})
	assert.NoError(t, err)

	capacity := 30
	saved.Title = "Go Workshop"
	saved.Status = models.EventStatusActive
	saved.Capacity = &capacity

	updated, err := repo.Update(ctx, *saved)
	assert.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, updated.Status)

	got, err := repo.GetByID(ctx, saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Go Workshop", got.Title)
	assert.NotNil(t, got.Capacity)
	assert.Equal(t, 30, *got.Capacity)

	t.Run("missing event returns ErrNotFound", func(t *testing.T) {
		missing := *saved
		missing.ID = uuid.New()
		_, err := repo.Update(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventRepository_AssignCategory(t *testing.T) {
	db, teardown := setupEventPostgresContainer(t)
	defer teardown()

	repo := NewEventRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.EventDB{
		Title:       "Fair",
		Status:      models.EventStatusPending,
		OrganizerID: uuid.New(),
	})
	assert.NoError(t, err)

	categoryID := int64(5)
	err = repo.AssignCategory(ctx, saved.ID, &categoryID)
	assert.NoError(t, err)

	got, err := repo.GetByID(ctx, saved.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.CategoryID)
	assert.Equal(t, int64(5), *got.CategoryID)

	t.Run("nil clears the category", func(t *testing.T) {
		err := repo.AssignCategory(ctx, saved.ID, nil)
		assert.NoError(t, err)

		got, err := repo.GetByID(ctx, saved.ID)
		assert.NoError(t, err)
		assert.Nil(t, got.CategoryID)
	})

	t.Run("missing event returns ErrNotFound", func(t *testing.T) {
		err := repo.AssignCategory(ctx, uuid.New(), &categoryID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEventRepository_DeleteAndCount(t *testing.T) {
	db, teardown := setupEventPostgresContainer(t)
	defer teardown()

	repo := NewEventRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.EventDB{
		Title:       "Popup",
		Status:      models.EventStatusDraft,
		OrganizerID: uuid.New(),
	})
	assert.NoError(t, err)

	n, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = repo.Delete(ctx, saved.ID)
	assert.NoError(t, err)

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	t.Run("Delete missing returns ErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
