package dal

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/tenant/domain"
)

//go:generate mockery --name TenantDAL --output=./mocks
type TenantDAL interface {
	Create(ctx context.Context, tenant *domain.Tenant) (string, error)
	Get(ctx context.Context, tenantID string) (*domain.Tenant, error)
	List(ctx context.Context) ([]*domain.Tenant, error)
	Delete(ctx context.Context, tenantID string) error
	UpdateLastReading(ctx context.Context, tenantID string, reading float64, at time.Time) error
	Subscribe(ctx context.Context) (*iface.Subscription, error)
}

// TenantGateway stores tenants through the request-scoped persistence gateway.
type TenantGateway struct {
	gatewayFn iface.FromContextFun
	l         logger.Provider
}

// NewTenantGateway returns a new TenantGateway using the given gateway provider.
func NewTenantGateway(log logger.Provider, fun iface.FromContextFun) *TenantGateway {
	return &TenantGateway{
		gatewayFn: fun,
		l:         log,
	}
}

// Create appends a tenant record and returns its generated id.
func (t *TenantGateway) Create(ctx context.Context, tenant *domain.Tenant) (string, error) {
	if tenant == nil {
		return "", errors.New("tenant cannot be nil")
	}

	return t.gatewayFn(ctx).Add(ctx, iface.CollectionTenants, tenant)
}

// Get returns the tenant stored under tenantID, or iface.ErrNotFound.
func (t *TenantGateway) Get(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	if tenantID == "" {
		return nil, errors.New("invalid tenant ID")
	}

	snap, err := t.gatewayFn(ctx).Get(ctx, iface.CollectionTenants, tenantID)
	if err != nil {
		return nil, err
	}

	var tenant domain.Tenant
	if err := snap.DataTo(&tenant); err != nil {
		return nil, err
	}

	tenant.ID = snap.ID()

	return &tenant, nil
}

// List returns the roster ordered by creation time.
func (t *TenantGateway) List(ctx context.Context) ([]*domain.Tenant, error) {
	snaps, err := t.gatewayFn(ctx).List(ctx, iface.CollectionTenants)
	if err != nil {
		return nil, err
	}

	tenants := make([]*domain.Tenant, 0, len(snaps))

	for _, snap := range snaps {
		var tenant domain.Tenant
		if err := snap.DataTo(&tenant); err != nil {
			t.l(ctx).Warningf("unable to convert to tenant: %s", err)
			continue
		}

		tenant.ID = snap.ID()
		tenants = append(tenants, &tenant)
	}

	sort.SliceStable(tenants, func(i, j int) bool {
		return tenants[i].CreatedAt.Before(tenants[j].CreatedAt)
	})

	return tenants, nil
}

// Delete removes a tenant from the roster. Bills referencing the tenant keep
// their denormalized name snapshot.
func (t *TenantGateway) Delete(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return errors.New("invalid tenant ID")
	}

	return t.gatewayFn(ctx).Delete(ctx, iface.CollectionTenants, tenantID)
}

// UpdateLastReading advances the tenant's meter state after a bill commit.
// Issued as a merge write so the rest of the record is untouched.
func (t *TenantGateway) UpdateLastReading(ctx context.Context, tenantID string, reading float64, at time.Time) error {
	if tenantID == "" {
		return errors.New("invalid tenant ID")
	}

	data := map[string]interface{}{
		"lastReading":     reading,
		"lastReadingDate": at,
	}

	return t.gatewayFn(ctx).Set(ctx, iface.CollectionTenants, tenantID, data, true)
}

// Subscribe streams snapshots of the whole tenants collection.
func (t *TenantGateway) Subscribe(ctx context.Context) (*iface.Subscription, error) {
	return t.gatewayFn(ctx).Subscribe(ctx, iface.CollectionTenants, "")
}
