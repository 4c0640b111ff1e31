package interfaces

import (
	"context"
	"veggiequote/internal/domain/entities"
)

// IPriceRepository abstracts DynamoDB persistence for the price catalog.
type IPriceRepository interface {
	List(ctx context.Context) ([]entities.PriceItem, error)
	Put(ctx context.Context, item entities.PriceItem) (entities.PriceItem, error)
	Delete(ctx context.Context, id string) error
}
