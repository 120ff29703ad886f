package service

import (
	"context"
	"errors"
	"time"

	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/tenant/dal"
	"github.com/homebills/tracker/tenant/domain"
)

var (
	ErrNameRequired   = errors.New("tenant name is required")
	ErrInvalidRent    = errors.New("rent must be zero or positive")
	ErrInvalidReading = errors.New("initial reading must be zero or positive")
)

//go:generate mockery --name Tenants --output=./mocks
type Tenants interface {
	Create(ctx context.Context, name string, rent, initialReading float64) (*domain.Tenant, error)
	Get(ctx context.Context, tenantID string) (*domain.Tenant, error)
	List(ctx context.Context) ([]*domain.Tenant, error)
	Delete(ctx context.Context, tenantID string) error
	Watch(ctx context.Context) (*iface.Subscription, error)
}

type TenantService struct {
	loggerProvider logger.Provider
	dal            dal.TenantDAL

	now func() time.Time
}

func NewTenantService(log logger.Provider, tenantDAL dal.TenantDAL) *TenantService {
	return &TenantService{
		loggerProvider: log,
		dal:            tenantDAL,
		now:            time.Now,
	}
}

// Create adds a tenant to the roster. The initial reading becomes the
// baseline for the tenant's first bill.
func (s *TenantService) Create(ctx context.Context, name string, rent, initialReading float64) (*domain.Tenant, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	if rent < 0 {
		return nil, ErrInvalidRent
	}

	if initialReading < 0 {
		return nil, ErrInvalidReading
	}

	now := s.now().UTC()

	tenant := domain.Tenant{
		Name:            name,
		Rent:            rent,
		LastReading:     initialReading,
		LastReadingDate: now,
		CreatedAt:       now,
	}

	id, err := s.dal.Create(ctx, &tenant)
	if err != nil {
		return nil, err
	}

	tenant.ID = id

	return &tenant, nil
}

func (s *TenantService) Get(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.dal.Get(ctx, tenantID)
}

func (s *TenantService) List(ctx context.Context) ([]*domain.Tenant, error) {
	return s.dal.List(ctx)
}

// Delete removes the tenant permanently. Existing bills keep their
// denormalized tenant name.
func (s *TenantService) Delete(ctx context.Context, tenantID string) error {
	return s.dal.Delete(ctx, tenantID)
}

func (s *TenantService) Watch(ctx context.Context) (*iface.Subscription, error) {
	return s.dal.Subscribe(ctx)
}
