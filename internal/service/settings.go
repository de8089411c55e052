package service

import (
	"context"

	"github.com/haugsdal/packboard/internal/domain/dto"
	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/realtime"
	"github.com/haugsdal/packboard/internal/repository"
)

// SettingsService manages the display settings singleton.
type SettingsService interface {
	Get(ctx context.Context) (model.DisplaySettings, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (model.DisplaySettings, error)
}

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	settingsRepo repository.SettingsRepositoryInterface
	notifier     realtime.Notifier
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepositoryInterface, notifier realtime.Notifier) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo, notifier: notifier}
}

// Get returns the stored settings with defaults applied, or pure defaults
// when nothing has been stored yet.
func (s *SettingsServiceImpl) Get(ctx context.Context) (model.DisplaySettings, error) {
	if s.settingsRepo == nil {
		return model.DisplaySettings{}, ErrRepositoryNotConfigured
	}

	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return model.DisplaySettings{}, err
	}
	if stored == nil {
		return model.DisplaySettings{}.Normalize(), nil
	}
	return stored.Normalize(), nil
}

// Update stores the settings and returns the normalized result.
func (s *SettingsServiceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (model.DisplaySettings, error) {
	if s.settingsRepo == nil {
		return model.DisplaySettings{}, ErrRepositoryNotConfigured
	}

	settings := req.ToSettings()
	if err := s.settingsRepo.Upsert(ctx, &settings); err != nil {
		return model.DisplaySettings{}, err
	}

	if s.notifier != nil {
		event := realtime.ChangeEvent{Kind: realtime.KindSettings}
		if err := s.notifier.Publish(ctx, event); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Msg("Failed to publish change event")
		}
	}

	return settings.Normalize(), nil
}
