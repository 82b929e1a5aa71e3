package repository

import (
	"context"
	"sync"
	"time"

	"github.com/peacekuria/smartmove/internal/domain"
)

// In-memory user and mover stores for the file/memory storage drivers, where
// the demo runs without Postgres. Registered users last for the process
// lifetime, movers are seeded up front.

type MemoryUserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]*domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, byEmail: make(map[string]*domain.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now

	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := *stored
	return &u, nil
}

type MemoryMoverRepository struct {
	movers []domain.Mover
}

func NewMemoryMoverRepository(movers ...domain.Mover) *MemoryMoverRepository {
	if len(movers) == 0 {
		movers = DemoMovers()
	}
	return &MemoryMoverRepository{movers: movers}
}

func (r *MemoryMoverRepository) List(ctx context.Context) ([]domain.Mover, error) {
	out := make([]domain.Mover, len(r.movers))
	copy(out, r.movers)
	return out, nil
}

func (r *MemoryMoverRepository) GetByID(ctx context.Context, id int64) (*domain.Mover, error) {
	for _, m := range r.movers {
		if m.ID == id {
			mover := m
			return &mover, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DemoMovers matches the catalog shown on the public movers page.
func DemoMovers() []domain.Mover {
	return []domain.Mover{
		{ID: 1, Name: "Swift Movers Ltd", Avatar: "S", Rating: 4.8, Reviews: 214, PricePerKmCents: 12000},
		{ID: 2, Name: "Careful Hands Moving", Avatar: "C", Rating: 4.6, Reviews: 158, PricePerKmCents: 10500},
		{ID: 3, Name: "Uptown Relocations", Avatar: "U", Rating: 4.3, Reviews: 97, PricePerKmCents: 9000},
	}
}

var (
	_ UserRepository  = (*MemoryUserRepository)(nil)
	_ MoverRepository = (*MemoryMoverRepository)(nil)
)
