package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings *domain.Settings) error {
	if settings.BAUReserveDays < 0 {
		return fmt.Errorf("BAU reserve days must not be negative")
	}
	if settings.Sprint.SprintDurationWeeks < 0 || settings.Sprint.SprintsPerYear < 0 {
		return fmt.Errorf("sprint settings must not be negative")
	}
	return s.settings.Upsert(ctx, settings)
}
