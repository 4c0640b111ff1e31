package interfaces

import (
	"context"
	"veggiequote/internal/domain/entities"
)

// IOrderRecognizer abstracts the external image-understanding service that
// turns an order photo into a structured order. knownNames steers the
// recognizer toward catalog spellings so the compiler's exact matcher can
// do its job.
type IOrderRecognizer interface {
	RecognizeOrder(ctx context.Context, imageBase64, mimeType string, knownNames []string) (entities.ParsedOrder, error)
}
