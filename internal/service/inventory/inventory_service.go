package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/repository"
)

// InventoryUseCase manages the per-user packing checklist: template seeding,
// custom items, check-off and removal.
type InventoryUseCase interface {
	List(ctx context.Context, actor *domain.UserSnapshot) ([]domain.InventoryItem, error)
	ApplyTemplate(ctx context.Context, actor *domain.UserSnapshot, name string) ([]domain.InventoryItem, error)
	AddItem(ctx context.Context, actor *domain.UserSnapshot, text string) ([]domain.InventoryItem, error)
	ToggleItem(ctx context.Context, actor *domain.UserSnapshot, index int) ([]domain.InventoryItem, error)
	RemoveItem(ctx context.Context, actor *domain.UserSnapshot, index int) ([]domain.InventoryItem, error)
}

type InventoryService struct {
	items repository.InventoryRepository
}

func NewInventoryService(items repository.InventoryRepository) *InventoryService {
	return &InventoryService{items: items}
}

func (s *InventoryService) List(ctx context.Context, actor *domain.UserSnapshot) ([]domain.InventoryItem, error) {
	owner, err := ownerEmail(actor)
	if err != nil {
		return nil, err
	}
	return s.items.Get(ctx, owner)
}

// ApplyTemplate replaces the whole checklist with the named template's items,
// all unchecked.
func (s *InventoryService) ApplyTemplate(ctx context.Context, actor *domain.UserSnapshot, name string) ([]domain.InventoryItem, error) {
	owner, err := ownerEmail(actor)
	if err != nil {
		return nil, err
	}

	items, ok := domain.TemplateItems(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown template %q", domain.ErrValidation, name)
	}
	if err := s.items.Save(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *InventoryService) AddItem(ctx context.Context, actor *domain.UserSnapshot, text string) ([]domain.InventoryItem, error) {
	owner, err := ownerEmail(actor)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: item text is required", domain.ErrValidation)
	}

	items, err := s.items.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	items = append(items, domain.InventoryItem{Text: text})
	if err := s.items.Save(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *InventoryService) ToggleItem(ctx context.Context, actor *domain.UserSnapshot, index int) ([]domain.InventoryItem, error) {
	owner, err := ownerEmail(actor)
	if err != nil {
		return nil, err
	}

	items, err := s.items.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, domain.ErrNotFound
	}
	items[index].Done = !items[index].Done
	if err := s.items.Save(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *InventoryService) RemoveItem(ctx context.Context, actor *domain.UserSnapshot, index int) ([]domain.InventoryItem, error) {
	owner, err := ownerEmail(actor)
	if err != nil {
		return nil, err
	}

	items, err := s.items.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, domain.ErrNotFound
	}
	items = append(items[:index], items[index+1:]...)
	if err := s.items.Save(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

func ownerEmail(actor *domain.UserSnapshot) (string, error) {
	if actor == nil || actor.Email == "" {
		return "", domain.ErrForbidden
	}
	return actor.Email, nil
}

var _ InventoryUseCase = (*InventoryService)(nil)
