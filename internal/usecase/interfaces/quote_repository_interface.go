package interfaces

import (
	"context"
	"veggiequote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for quote history.
//
// Quotes are replaced as whole objects conceptually; the two update methods
// exist so status flips and draft edits never clobber the frozen
// items/total.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateMessageByID(ctx context.Context, id, rawText, customerPhoneNumber string) (entities.Quote, error)
}
