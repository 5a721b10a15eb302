package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

// EventCacheRepository provides a read-through cache for events using Redis.
// Events are read far more often than they change, so single-event lookups
// go through here; every event write invalidates the entry.
type EventCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached events
}

func NewEventCacheRepository(client *redis.Client, expiration time.Duration) *EventCacheRepository {
	return &EventCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func eventCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("event:%s", id)
}

// Get returns the cached event or ErrNotFound on a miss.
func (r *EventCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.EventDB, error) {
	key := eventCacheKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var event models.EventDB
	if err := json.Unmarshal([]byte(val), &event); err != nil {
		logger.Log.Errorw("corrupt cached event, dropping", "key", key, "error", err)
		_ = r.client.Del(ctx, key).Err()
		return nil, ErrNotFound
	}
	return &event, nil
}

// Set caches an event with the configured TTL.
func (r *EventCacheRepository) Set(ctx context.Context, event models.EventDB) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, eventCacheKey(event.ID), data, r.exp).Err()
}

// Invalidate drops the cached event, if any.
func (r *EventCacheRepository) Invalidate(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, eventCacheKey(id)).Err()
}
