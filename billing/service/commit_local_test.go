package service

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billDAL "github.com/homebills/tracker/billing/dal"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/gateway/localstore"
	settingsDAL "github.com/homebills/tracker/settings/dal"
	tenantDAL "github.com/homebills/tracker/tenant/dal"
	tenantService "github.com/homebills/tracker/tenant/service"
)

// Exercises the full commit path against the file-backed gateway: tenant
// creation, the settings rate fallback, the bill append and the tenant
// reading advance, with nothing mocked below the service layer.
func TestBillingService_Commit_LocalGateway(t *testing.T) {
	ctx := context.Background()

	gateway := localstore.NewStore(afero.NewMemMapFs(), "data").Gateway("owner-1")
	gatewayFn := func(_ context.Context) iface.Gateway { return gateway }

	tenants := tenantDAL.NewTenantGateway(testLoggerProvider, gatewayFn)
	bills := billDAL.NewBillGateway(testLoggerProvider, gatewayFn)
	settings := settingsDAL.NewSettingsGateway(testLoggerProvider, gatewayFn)

	tenant, err := tenantService.NewTenantService(testLoggerProvider, tenants).
		Create(ctx, "Ramesh", 5000, 1000)
	require.NoError(t, err)
	require.NotEmpty(t, tenant.ID)

	s := NewBillingService(testLoggerProvider, bills, tenants, settings)
	committed := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return committed }

	// No explicit rate: the default electricity rate from settings applies.
	bill, err := s.Commit(ctx, BillingInput{
		TenantID:      tenant.ID,
		LatestReading: 1050,
		IncludeRent:   true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, bill.ID)

	assert.Equal(t, "Ramesh", bill.TenantName)
	assert.Equal(t, float64(50), bill.UnitsUsed)
	assert.Equal(t, float64(6), bill.Rate)
	assert.Equal(t, float64(300), bill.ElectricityAmount)
	assert.Equal(t, float64(5000), bill.RentAmount)
	assert.Equal(t, float64(5300), bill.TotalAmount)

	updated, err := tenants.Get(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1050), updated.LastReading)
	assert.True(t, committed.Equal(updated.LastReadingDate))

	stored, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, bill.ID, stored[0].ID)
	assert.Equal(t, float64(5300), stored[0].TotalAmount)
}
