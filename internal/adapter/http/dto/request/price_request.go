package request

import (
	"strings"

	"veggiequote/internal/domain/entities"
)

// PriceItemRequest upserts a catalog entry. ID is empty on insert.
type PriceItemRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
}

func (r PriceItemRequest) ToPriceItem() entities.PriceItem {
	return entities.PriceItem{
		ID:        strings.TrimSpace(r.ID),
		Name:      strings.TrimSpace(r.Name),
		UnitPrice: r.UnitPrice,
		Unit:      entities.Unit(strings.TrimSpace(r.Unit)),
	}
}
