package response

import (
	"time"

	"veggiequote/internal/domain/entities"
)

type OrderItemResponse struct {
	OriginalName    string  `json:"original_name"`
	MatchedItemID   string  `json:"matched_item_id,omitempty"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	CalculatedPrice float64 `json:"calculated_price"`
	Matched         bool    `json:"matched"`
}

type QuoteResponse struct {
	ID                  string              `json:"id"`
	Timestamp           time.Time           `json:"timestamp"`
	Status              string              `json:"status"`
	Items               []OrderItemResponse `json:"items"`
	Total               int64               `json:"total"`
	RawText             string              `json:"raw_text"`
	CustomerName        string              `json:"customer_name,omitempty"`
	CustomerPhoneNumber string              `json:"customer_phone_number,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]OrderItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, OrderItemResponse{
			OriginalName:    it.OriginalName,
			MatchedItemID:   it.MatchedItemID,
			Quantity:        it.Quantity,
			Unit:            string(it.Unit),
			CalculatedPrice: it.CalculatedPrice,
			Matched:         it.MatchedItemID != "",
		})
	}
	return QuoteResponse{
		ID:                  q.ID,
		Timestamp:           q.Timestamp,
		Status:              string(q.Status),
		Items:               items,
		Total:               q.Total,
		RawText:             q.RawText,
		CustomerName:        q.CustomerName,
		CustomerPhoneNumber: q.CustomerPhoneNumber,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
