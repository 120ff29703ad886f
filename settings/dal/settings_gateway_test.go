package dal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homebills/tracker/gateway/iface"
	gatewayMocks "github.com/homebills/tracker/gateway/mocks"
	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
	"github.com/homebills/tracker/settings/domain"
)

type stubSnapshot struct {
	id       string
	exists   bool
	settings domain.GlobalSettings
}

func (s stubSnapshot) ID() string   { return s.id }
func (s stubSnapshot) Exists() bool { return s.exists }

func (s stubSnapshot) DataTo(v interface{}) error {
	*(v.(*domain.GlobalSettings)) = s.settings
	return nil
}

func newTestSettingsGateway(gw iface.Gateway) *SettingsGateway {
	return NewSettingsGateway(
		func(_ context.Context) logger.ILogger {
			return &loggerMocks.ILogger{}
		},
		func(_ context.Context) iface.Gateway {
			return gw
		},
	)
}

func TestSettingsGateway_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		on   func(gw *gatewayMocks.Gateway)
		want domain.GlobalSettings
	}{
		{
			name: "missing document falls back to defaults",
			on: func(gw *gatewayMocks.Gateway) {
				gw.On("Get", ctx, iface.CollectionSettings, iface.SettingsKey).
					Return(nil, iface.ErrNotFound)
			},
			want: domain.GlobalSettings{ElectricityRate: 6, MilkRate: 60},
		},
		{
			name: "zero rates fall back to defaults",
			on: func(gw *gatewayMocks.Gateway) {
				gw.On("Get", ctx, iface.CollectionSettings, iface.SettingsKey).
					Return(stubSnapshot{id: iface.SettingsKey, exists: true}, nil)
			},
			want: domain.GlobalSettings{ElectricityRate: 6, MilkRate: 60},
		},
		{
			name: "stored rates returned as-is",
			on: func(gw *gatewayMocks.Gateway) {
				gw.On("Get", ctx, iface.CollectionSettings, iface.SettingsKey).
					Return(stubSnapshot{
						id:       iface.SettingsKey,
						exists:   true,
						settings: domain.GlobalSettings{ElectricityRate: 7.5, MilkRate: 55},
					}, nil)
			},
			want: domain.GlobalSettings{ElectricityRate: 7.5, MilkRate: 55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &gatewayMocks.Gateway{}
			tt.on(gw)

			got, err := newTestSettingsGateway(gw).Get(ctx)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, *got)
			gw.AssertExpectations(t)
		})
	}
}

func TestSettingsGateway_Save(t *testing.T) {
	ctx := context.Background()

	gw := &gatewayMocks.Gateway{}
	gw.On("Set", ctx, iface.CollectionSettings, iface.SettingsKey,
		map[string]interface{}{
			"electricityRate": 8.0,
			"milkRate":        65.0,
		}, true).Return(nil)

	err := newTestSettingsGateway(gw).Save(ctx, &domain.GlobalSettings{
		ElectricityRate: 8,
		MilkRate:        65,
	})

	assert.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestSettingsGateway_SaveNil(t *testing.T) {
	gw := &gatewayMocks.Gateway{}

	err := newTestSettingsGateway(gw).Save(context.Background(), nil)

	assert.Error(t, err)
	gw.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
