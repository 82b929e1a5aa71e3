package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/peacekuria/smartmove/internal/domain"
)

type MoverRepository interface {
	List(ctx context.Context) ([]domain.Mover, error)
	GetByID(ctx context.Context, id int64) (*domain.Mover, error)
}

type PGMoverRepository struct {
	db *pgxpool.Pool
}

func NewMoverRepository(db *pgxpool.Pool) MoverRepository {
	return &PGMoverRepository{db: db}
}

func (r *PGMoverRepository) List(ctx context.Context) ([]domain.Mover, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, avatar, rating, reviews, price_per_km_cents, created_at, updated_at FROM movers ORDER BY rating DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movers := make([]domain.Mover, 0)
	for rows.Next() {
		var m domain.Mover
		if err := rows.Scan(&m.ID, &m.Name, &m.Avatar, &m.Rating, &m.Reviews, &m.PricePerKmCents, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		movers = append(movers, m)
	}
	return movers, rows.Err()
}

func (r *PGMoverRepository) GetByID(ctx context.Context, id int64) (*domain.Mover, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, avatar, rating, reviews, price_per_km_cents, created_at, updated_at FROM movers WHERE id=$1`, id)
	var m domain.Mover
	if err := row.Scan(&m.ID, &m.Name, &m.Avatar, &m.Rating, &m.Reviews, &m.PricePerKmCents, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

var _ MoverRepository = (*PGMoverRepository)(nil)
