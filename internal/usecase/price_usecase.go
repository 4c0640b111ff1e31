package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriceItem   = errors.New("invalid price item")
	ErrInvalidPriceItemID = errors.New("invalid price item id")
)

var validUnits = map[entities.Unit]bool{
	entities.UnitKg:    true,
	entities.UnitG:     true,
	entities.UnitPc:    true,
	entities.UnitBunch: true,
	entities.UnitDozen: true,
}

// IPriceUseCase exposes catalog maintenance operations.
type IPriceUseCase interface {
	List(ctx context.Context) ([]entities.PriceItem, error)
	Save(ctx context.Context, item entities.PriceItem) (entities.PriceItem, error)
	Delete(ctx context.Context, id string) error
	EnsureSeeded(ctx context.Context) error
}

type PriceUseCase struct {
	repo interfaces.IPriceRepository
}

var _ IPriceUseCase = (*PriceUseCase)(nil)

func NewPriceUseCase(repo interfaces.IPriceRepository) *PriceUseCase {
	return &PriceUseCase{repo: repo}
}

func (u *PriceUseCase) List(ctx context.Context) ([]entities.PriceItem, error) {
	return u.repo.List(ctx)
}

// Save upserts a catalog entry, assigning an ID when missing.
func (u *PriceUseCase) Save(ctx context.Context, item entities.PriceItem) (entities.PriceItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.UnitPrice <= 0 || !validUnits[item.Unit] {
		return entities.PriceItem{}, ErrInvalidPriceItem
	}
	if strings.TrimSpace(item.ID) == "" {
		item.ID = uuid.NewString()
	}
	return u.repo.Put(ctx, item)
}

func (u *PriceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPriceItemID
	}
	return u.repo.Delete(ctx, id)
}

// EnsureSeeded writes the default produce catalog when the table is still
// empty, so fresh deployments can price scans immediately.
func (u *PriceUseCase) EnsureSeeded(ctx context.Context) error {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	log.Printf("[price][usecase] seeding default catalog")
	for _, item := range entities.DefaultCatalog() {
		if _, err := u.repo.Put(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
