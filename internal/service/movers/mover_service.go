package movers

import (
	"context"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/repository"
)

type MoverUseCase interface {
	List(ctx context.Context) ([]domain.Mover, error)
	GetByID(ctx context.Context, id int64) (*domain.Mover, error)
}

type MoverCache interface {
	GetMovers(ctx context.Context) ([]domain.Mover, error)
	SetMovers(ctx context.Context, movers []domain.Mover) error
}

type MoverService struct {
	repo  repository.MoverRepository
	cache MoverCache
}

func NewMoverService(repo repository.MoverRepository, cache MoverCache) *MoverService {
	return &MoverService{repo: repo, cache: cache}
}

// List serves the mover catalog cache-aside; a cache failure falls through to
// the repository.
func (s *MoverService) List(ctx context.Context) ([]domain.Mover, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMovers(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	movers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetMovers(ctx, movers)
	}
	return movers, nil
}

func (s *MoverService) GetByID(ctx context.Context, id int64) (*domain.Mover, error) {
	return s.repo.GetByID(ctx, id)
}

var _ MoverUseCase = (*MoverService)(nil)
