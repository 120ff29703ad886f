package service

import (
	"context"

	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/settings/dal"
	"github.com/homebills/tracker/settings/domain"
)

//go:generate mockery --name Settings --output=./mocks
type Settings interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
	Update(ctx context.Context, settings *domain.GlobalSettings) (*domain.GlobalSettings, error)
	Watch(ctx context.Context) (*iface.Subscription, error)
}

type SettingsService struct {
	loggerProvider logger.Provider
	dal            dal.SettingsDAL
}

func NewSettingsService(log logger.Provider, settingsDAL dal.SettingsDAL) *SettingsService {
	return &SettingsService{
		loggerProvider: log,
		dal:            settingsDAL,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.GlobalSettings, error) {
	return s.dal.Get(ctx)
}

// Update persists the given rates verbatim and returns the effective settings
// after fallback substitution, so callers see the rates future reads will use.
func (s *SettingsService) Update(ctx context.Context, settings *domain.GlobalSettings) (*domain.GlobalSettings, error) {
	if err := s.dal.Save(ctx, settings); err != nil {
		return nil, err
	}

	effective := settings.WithDefaults()

	return &effective, nil
}

func (s *SettingsService) Watch(ctx context.Context) (*iface.Subscription, error) {
	return s.dal.Subscribe(ctx)
}
