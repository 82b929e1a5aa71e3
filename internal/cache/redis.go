package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/peacekuria/smartmove/config"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	moversTTL   time.Duration
	draftTTL    time.Duration
	positionTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, moversTTL, draftTTL, positionTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		moversTTL:   moversTTL,
		draftTTL:    draftTTL,
		positionTTL: positionTTL,
	}
}

// AcquireDateLock takes a short-lived exclusive claim on a move date while a
// confirmation is in flight. The TTL bounds the claim if the holder dies.
func (c *RedisCache) AcquireDateLock(ctx context.Context, moveDate string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, dateLockKey(moveDate), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseDateLock(ctx context.Context, moveDate string) error {
	return c.client.Del(ctx, dateLockKey(moveDate)).Err()
}

func (c *RedisCache) GetMovers(ctx context.Context) ([]domain.Mover, error) {
	data, err := c.client.Get(ctx, moversKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var movers []domain.Mover
	if err := json.Unmarshal(data, &movers); err != nil {
		return nil, err
	}
	return movers, nil
}

func (c *RedisCache) SetMovers(ctx context.Context, movers []domain.Mover) error {
	payload, err := json.Marshal(movers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, moversKey(), payload, c.moversTTL).Err()
}

// SaveDraft stores a wizard draft under its session token. The TTL is the
// abandonment window: a draft that is never confirmed simply expires.
func (c *RedisCache) SaveDraft(ctx context.Context, token string, draft *domain.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, draftKey(token), payload, c.draftTTL).Err()
}

func (c *RedisCache) GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error) {
	data, err := c.client.Get(ctx, draftKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *RedisCache) DeleteDraft(ctx context.Context, token string) error {
	return c.client.Del(ctx, draftKey(token)).Err()
}

func (c *RedisCache) SetPosition(ctx context.Context, reference string, pos domain.Position) error {
	payload, err := json.Marshal(pos)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, positionKey(reference), payload, c.positionTTL).Err()
}

func (c *RedisCache) GetPosition(ctx context.Context, reference string) (*domain.Position, error) {
	data, err := c.client.Get(ctx, positionKey(reference)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var pos domain.Position
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, err
	}
	return &pos, nil
}

func moversKey() string {
	return "cache:movers"
}

func dateLockKey(moveDate string) string {
	return fmt.Sprintf("lock:movedate:%s", moveDate)
}

func draftKey(token string) string {
	return fmt.Sprintf("draft:%s", token)
}

func positionKey(reference string) string {
	return fmt.Sprintf("track:booking:%s", reference)
}
