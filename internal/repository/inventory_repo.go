package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/kvstore"
)

// DefaultInventoryKeyPrefix namespaces per-owner checklists in the key-value
// backend.
const DefaultInventoryKeyPrefix = "sm_inventory"

// InventoryRepository stores one packing checklist per owner. Every mutation
// replaces the whole list, so the port is a plain get/save pair.
type InventoryRepository interface {
	Get(ctx context.Context, owner string) ([]domain.InventoryItem, error)
	Save(ctx context.Context, owner string, items []domain.InventoryItem) error
}

// KVInventoryRepository keeps each owner's checklist as one JSON array under a
// prefixed key. A missing or corrupted payload degrades to an empty checklist.
type KVInventoryRepository struct {
	mu     sync.Mutex
	store  kvstore.Store
	prefix string
}

func NewKVInventoryRepository(store kvstore.Store, prefix string) *KVInventoryRepository {
	if prefix == "" {
		prefix = DefaultInventoryKeyPrefix
	}
	return &KVInventoryRepository{store: store, prefix: prefix}
}

func (r *KVInventoryRepository) Get(ctx context.Context, owner string) ([]domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok, err := r.store.Get(r.key(owner))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.InventoryItem{}, nil
	}

	var items []domain.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

func (r *KVInventoryRepository) Save(ctx context.Context, owner string, items []domain.InventoryItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Set(r.key(owner), payload)
}

func (r *KVInventoryRepository) key(owner string) string {
	return r.prefix + ":" + owner
}

var _ InventoryRepository = (*KVInventoryRepository)(nil)
