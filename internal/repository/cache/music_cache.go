// Package cache holds Redis-backed decorators over the postgres repositories.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"stepup/internal/domain"
)

const musicKeyPrefix = "music:"

type musicCache struct {
	next domain.MusicRepository
	rdb  *redis.Client
	ttl  time.Duration
}

// NewMusicRepository wraps next with a read-through cache for single-song lookups.
// Redis failures fall back to next; they never fail the call.
func NewMusicRepository(next domain.MusicRepository, rdb *redis.Client, ttl time.Duration) domain.MusicRepository {
	return &musicCache{next: next, rdb: rdb, ttl: ttl}
}

func musicKey(id string) string {
	return musicKeyPrefix + id
}

func (c *musicCache) Create(ctx context.Context, m *domain.Music) error {
	return c.next.Create(ctx, m)
}

func (c *musicCache) GetByID(ctx context.Context, id string) (*domain.Music, error) {
	raw, err := c.rdb.Get(ctx, musicKey(id)).Bytes()
	if err == nil {
		var m domain.Music
		if json.Unmarshal(raw, &m) == nil {
			return &m, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return c.next.GetByID(ctx, id)
	}

	m, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(m); err == nil {
		_ = c.rdb.Set(ctx, musicKey(id), b, c.ttl).Err()
	}
	return m, nil
}

func (c *musicCache) ListByIDs(ctx context.Context, ids []string) ([]*domain.Music, error) {
	return c.next.ListByIDs(ctx, ids)
}

func (c *musicCache) List(ctx context.Context, keyword string) ([]*domain.Music, error) {
	return c.next.List(ctx, keyword)
}

func (c *musicCache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	_ = c.rdb.Del(ctx, musicKey(id)).Err()
	return nil
}
