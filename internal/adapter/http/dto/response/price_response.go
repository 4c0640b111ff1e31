package response

import (
	"veggiequote/internal/domain/entities"
)

type PriceItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
}

func FromPriceItem(p entities.PriceItem) PriceItemResponse {
	return PriceItemResponse{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Unit:      string(p.Unit),
	}
}

func FromPriceItems(items []entities.PriceItem) []PriceItemResponse {
	out := make([]PriceItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPriceItem(p))
	}
	return out
}
