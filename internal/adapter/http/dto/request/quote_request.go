package request

import (
	"errors"
	"strings"

	"veggiequote/internal/domain/entities"
)

var (
	ErrInvalidImage = errors.New("invalid image payload")
)

type OrderLineRequest struct {
	OriginalName string  `json:"original_name" binding:"required"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit" binding:"required"`
}

// CompileQuoteRequest carries an already-recognized order, typically from a
// client that ran its own recognition or a manual entry form. An empty item
// list is acceptable; the compiler is total and produces an empty quote.
type CompileQuoteRequest struct {
	Items               []OrderLineRequest `json:"items"`
	CustomerName        string             `json:"customer_name"`
	CustomerPhoneNumber string             `json:"customer_phone_number"`
}

func (r CompileQuoteRequest) ToParsedOrder() entities.ParsedOrder {
	lines := make([]entities.ParsedOrderLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, entities.ParsedOrderLine{
			OriginalName: strings.TrimSpace(it.OriginalName),
			Quantity:     it.Quantity,
			Unit:         entities.Unit(strings.TrimSpace(it.Unit)),
		})
	}
	return entities.ParsedOrder{
		Items:               lines,
		CustomerName:        strings.TrimSpace(r.CustomerName),
		CustomerPhoneNumber: strings.TrimSpace(r.CustomerPhoneNumber),
	}
}

// ScanQuoteRequest carries a photographed order list for server-side
// recognition.
type ScanQuoteRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type" binding:"required"`
}

func (r ScanQuoteRequest) Validate() error {
	if strings.TrimSpace(r.ImageBase64) == "" || strings.TrimSpace(r.MimeType) == "" {
		return ErrInvalidImage
	}
	return nil
}

// UpdateMessageRequest edits the outgoing text and phone of a draft quote.
type UpdateMessageRequest struct {
	RawText             string `json:"raw_text" binding:"required"`
	CustomerPhoneNumber string `json:"customer_phone_number"`
}

// SendQuoteRequest selects the delivery channel for an explicit send.
type SendQuoteRequest struct {
	Channel string `json:"channel" binding:"required"`
}

func (r SendQuoteRequest) ResolveChannel() string {
	return strings.ToLower(strings.TrimSpace(r.Channel))
}
