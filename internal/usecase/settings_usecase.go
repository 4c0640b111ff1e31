package usecase

import (
	"context"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"
)

// ISettingsUseCase exposes the message/automation settings aggregate.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) Update(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	return u.repo.Put(ctx, s)
}
