package interfaces

import (
	"context"
	"veggiequote/internal/domain/entities"
)

// ISettingsRepository abstracts persistence of the single settings item.
// Get returns defaults when nothing has been stored yet.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
