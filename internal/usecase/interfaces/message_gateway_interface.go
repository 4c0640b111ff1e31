package interfaces

import (
	"context"
	"veggiequote/internal/domain/entities"
)

// IMessageGateway abstracts the programmatic messaging channel (WhatsApp
// Cloud API). SendText performs exactly one delivery attempt with the given
// credentials snapshot; callers never retry. The error message carries the
// provider's own wording when it can be extracted.
type IMessageGateway interface {
	SendText(ctx context.Context, cfg entities.APIConfig, toPhone, body string) error
}

// ILinkOpener abstracts opening the manual-channel deep link in a new
// browsing context. Opening is optimistic: the quote status flips before
// the result is known, and an error maps to a popup-blocked warning only.
type ILinkOpener interface {
	Open(url string) error
}
