package dal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homebills/tracker/gateway/iface"
	gatewayMocks "github.com/homebills/tracker/gateway/mocks"
	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
	"github.com/homebills/tracker/tenant/domain"
)

type stubSnapshot struct {
	id     string
	tenant domain.Tenant
}

func (s stubSnapshot) ID() string   { return s.id }
func (s stubSnapshot) Exists() bool { return true }

func (s stubSnapshot) DataTo(v interface{}) error {
	*(v.(*domain.Tenant)) = s.tenant
	return nil
}

func newTestTenantGateway(gw iface.Gateway) *TenantGateway {
	return NewTenantGateway(
		func(_ context.Context) logger.ILogger {
			l := &loggerMocks.ILogger{}
			l.On("Warningf", mock.Anything, mock.Anything).Maybe()

			return l
		},
		func(_ context.Context) iface.Gateway {
			return gw
		},
	)
}

func TestTenantGateway_ListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	gw := &gatewayMocks.Gateway{}
	gw.On("List", ctx, iface.CollectionTenants).Return([]iface.Snapshot{
		stubSnapshot{id: "b", tenant: domain.Tenant{Name: "Bob", CreatedAt: base.Add(48 * time.Hour)}},
		stubSnapshot{id: "a", tenant: domain.Tenant{Name: "Alice", CreatedAt: base}},
	}, nil)

	tenants, err := newTestTenantGateway(gw).List(ctx)

	assert.NoError(t, err)
	assert.Len(t, tenants, 2)
	assert.Equal(t, "a", tenants[0].ID)
	assert.Equal(t, "Alice", tenants[0].Name)
	assert.Equal(t, "b", tenants[1].ID)
}

func TestTenantGateway_UpdateLastReading(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	gw := &gatewayMocks.Gateway{}
	gw.On("Set", ctx, iface.CollectionTenants, "tenant-1",
		map[string]interface{}{
			"lastReading":     1050.0,
			"lastReadingDate": at,
		}, true).Return(nil)

	err := newTestTenantGateway(gw).UpdateLastReading(ctx, "tenant-1", 1050, at)

	assert.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestTenantGateway_GetSetsID(t *testing.T) {
	ctx := context.Background()

	gw := &gatewayMocks.Gateway{}
	gw.On("Get", ctx, iface.CollectionTenants, "tenant-1").
		Return(stubSnapshot{id: "tenant-1", tenant: domain.Tenant{Name: "Alice"}}, nil)

	tenant, err := newTestTenantGateway(gw).Get(ctx, "tenant-1")

	assert.NoError(t, err)
	assert.Equal(t, "tenant-1", tenant.ID)
	assert.Equal(t, "Alice", tenant.Name)
}
