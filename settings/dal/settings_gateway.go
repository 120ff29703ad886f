package dal

import (
	"context"
	"errors"

	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/settings/domain"
)

//go:generate mockery --name SettingsDAL --output=./mocks
type SettingsDAL interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
	Save(ctx context.Context, settings *domain.GlobalSettings) error
	Subscribe(ctx context.Context) (*iface.Subscription, error)
}

// SettingsGateway reads and writes the singleton settings document through
// the request-scoped persistence gateway.
type SettingsGateway struct {
	gatewayFn iface.FromContextFun
	l         logger.Provider
}

// NewSettingsGateway returns a new SettingsGateway using the given gateway provider.
func NewSettingsGateway(log logger.Provider, fun iface.FromContextFun) *SettingsGateway {
	return &SettingsGateway{
		gatewayFn: fun,
		l:         log,
	}
}

// Get returns the owner's settings with fallback rates substituted for any
// value that is missing or non-positive. A missing document is not an error.
func (s *SettingsGateway) Get(ctx context.Context) (*domain.GlobalSettings, error) {
	snap, err := s.gatewayFn(ctx).Get(ctx, iface.CollectionSettings, iface.SettingsKey)
	if err != nil {
		if errors.Is(err, iface.ErrNotFound) {
			settings := domain.GlobalSettings{}.WithDefaults()
			return &settings, nil
		}

		return nil, err
	}

	var settings domain.GlobalSettings
	if err := snap.DataTo(&settings); err != nil {
		return nil, err
	}

	settings = settings.WithDefaults()

	return &settings, nil
}

// Save persists the given rates as a merge write so fields added to the
// settings document later are not clobbered.
func (s *SettingsGateway) Save(ctx context.Context, settings *domain.GlobalSettings) error {
	if settings == nil {
		return errors.New("settings cannot be nil")
	}

	data := map[string]interface{}{
		"electricityRate": settings.ElectricityRate,
		"milkRate":        settings.MilkRate,
	}

	return s.gatewayFn(ctx).Set(ctx, iface.CollectionSettings, iface.SettingsKey, data, true)
}

// Subscribe streams snapshots of the settings document.
func (s *SettingsGateway) Subscribe(ctx context.Context) (*iface.Subscription, error) {
	return s.gatewayFn(ctx).Subscribe(ctx, iface.CollectionSettings, iface.SettingsKey)
}
