package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peacekuria/smartmove/internal/domain"
)

// PGInventoryRepository keeps one jsonb row per owner; Save upserts the whole
// checklist, matching the replace-on-write semantics of the port.
type PGInventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) InventoryRepository {
	return &PGInventoryRepository{db: db}
}

func (r *PGInventoryRepository) Get(ctx context.Context, owner string) ([]domain.InventoryItem, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT items FROM inventories WHERE owner_email=$1`, owner).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.InventoryItem{}, nil
		}
		return nil, err
	}

	var items []domain.InventoryItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

func (r *PGInventoryRepository) Save(ctx context.Context, owner string, items []domain.InventoryItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO inventories (owner_email, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (owner_email) DO UPDATE SET items=excluded.items, updated_at=now()`,
		owner, payload)
	return err
}

var _ InventoryRepository = (*PGInventoryRepository)(nil)
