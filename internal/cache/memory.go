package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/peacekuria/smartmove/internal/domain"
)

// MemoryCache is a process-local stand-in for RedisCache, used when no Redis
// address is configured (demo mode) and in tests. Entries honor TTLs lazily:
// expired values are dropped on read.
type MemoryCache struct {
	mu          sync.Mutex
	locks       map[string]time.Time
	drafts      map[string]entry
	positions   map[string]entry
	movers      []domain.Mover
	moversSetAt time.Time
	moversTTL   time.Duration
	draftTTL    time.Duration
	positionTTL time.Duration
}

type entry struct {
	payload   []byte
	expiresAt time.Time
}

func NewMemoryCache(moversTTL, draftTTL, positionTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		locks:       make(map[string]time.Time),
		drafts:      make(map[string]entry),
		positions:   make(map[string]entry),
		moversTTL:   moversTTL,
		draftTTL:    draftTTL,
		positionTTL: positionTTL,
	}
}

func (c *MemoryCache) AcquireDateLock(ctx context.Context, moveDate string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if deadline, ok := c.locks[moveDate]; ok && time.Now().Before(deadline) {
		return false, nil
	}
	c.locks[moveDate] = time.Now().Add(ttl)
	return true, nil
}

func (c *MemoryCache) ReleaseDateLock(ctx context.Context, moveDate string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.locks, moveDate)
	return nil
}

func (c *MemoryCache) GetMovers(ctx context.Context) ([]domain.Mover, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.movers == nil || time.Since(c.moversSetAt) > c.moversTTL {
		return nil, nil
	}
	out := make([]domain.Mover, len(c.movers))
	copy(out, c.movers)
	return out, nil
}

func (c *MemoryCache) SetMovers(ctx context.Context, movers []domain.Mover) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movers = make([]domain.Mover, len(movers))
	copy(c.movers, movers)
	c.moversSetAt = time.Now()
	return nil
}

func (c *MemoryCache) SaveDraft(ctx context.Context, token string, draft *domain.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[token] = entry{payload: payload, expiresAt: time.Now().Add(c.draftTTL)}
	return nil
}

func (c *MemoryCache) GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error) {
	c.mu.Lock()
	e, ok := c.drafts[token]
	if ok && time.Now().After(e.expiresAt) {
		delete(c.drafts, token)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(e.payload, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *MemoryCache) DeleteDraft(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, token)
	return nil
}

func (c *MemoryCache) SetPosition(ctx context.Context, reference string, pos domain.Position) error {
	payload, err := json.Marshal(pos)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.positions[reference] = entry{payload: payload, expiresAt: time.Now().Add(c.positionTTL)}
	return nil
}

func (c *MemoryCache) GetPosition(ctx context.Context, reference string) (*domain.Position, error) {
	c.mu.Lock()
	e, ok := c.positions[reference]
	if ok && time.Now().After(e.expiresAt) {
		delete(c.positions, reference)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var pos domain.Position
	if err := json.Unmarshal(e.payload, &pos); err != nil {
		return nil, err
	}
	return &pos, nil
}
