package service

import (
	"context"
	"time"

	billDAL "github.com/homebills/tracker/billing/dal"
	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	settingsDAL "github.com/homebills/tracker/settings/dal"
	tenantDAL "github.com/homebills/tracker/tenant/dal"
)

// BillingInput carries the user-supplied parameters of one billing action.
// A nil Rate means the configured electricity rate applies. A zero BillDate
// means the bill is dated now.
type BillingInput struct {
	TenantID      string
	LatestReading float64
	Rate          *float64
	IncludeRent   bool
	BillDate      time.Time
}

//go:generate mockery --name Billing --output=./mocks
type Billing interface {
	Calculate(ctx context.Context, input BillingInput) (*domain.Bill, error)
	Commit(ctx context.Context, input BillingInput) (*domain.Bill, error)
	Get(ctx context.Context, billID string) (*domain.Bill, error)
	List(ctx context.Context) ([]*domain.Bill, error)
	Watch(ctx context.Context) (*iface.Subscription, error)
}

type BillingService struct {
	loggerProvider logger.Provider
	bills          billDAL.BillDAL
	tenants        tenantDAL.TenantDAL
	settings       settingsDAL.SettingsDAL

	now func() time.Time
}

func NewBillingService(log logger.Provider, bills billDAL.BillDAL, tenants tenantDAL.TenantDAL, settings settingsDAL.SettingsDAL) *BillingService {
	return &BillingService{
		loggerProvider: log,
		bills:          bills,
		tenants:        tenants,
		settings:       settings,
		now:            time.Now,
	}
}

// Calculate produces an uncommitted bill draft for the tenant. Nothing is
// persisted; committing is a separate, explicit step.
func (s *BillingService) Calculate(ctx context.Context, input BillingInput) (*domain.Bill, error) {
	return s.draft(ctx, input)
}

// Commit finalizes a billing action: the bill is appended first, then the
// tenant's lastReading/lastReadingDate advance to the bill's latest values.
// The two writes are not atomic; if the second fails the bill still exists
// and the error is surfaced to the caller.
func (s *BillingService) Commit(ctx context.Context, input BillingInput) (*domain.Bill, error) {
	bill, err := s.draft(ctx, input)
	if err != nil {
		return nil, err
	}

	bill.CreatedAt = s.now().UTC()

	id, err := s.bills.Add(ctx, bill)
	if err != nil {
		return nil, err
	}

	bill.ID = id

	if err := s.tenants.UpdateLastReading(ctx, bill.TenantID, bill.LatestReading, bill.LatestReadingDate); err != nil {
		s.loggerProvider(ctx).Errorf("bill %s saved but tenant %s reading update failed: %v", bill.ID, bill.TenantID, err)
		return bill, err
	}

	return bill, nil
}

func (s *BillingService) Get(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.bills.Get(ctx, billID)
}

func (s *BillingService) List(ctx context.Context) ([]*domain.Bill, error) {
	return s.bills.List(ctx)
}

func (s *BillingService) Watch(ctx context.Context) (*iface.Subscription, error) {
	return s.bills.Subscribe(ctx)
}

func (s *BillingService) draft(ctx context.Context, input BillingInput) (*domain.Bill, error) {
	tenant, err := s.tenants.Get(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, input.Rate)
	if err != nil {
		return nil, err
	}

	breakdown, err := Calculate(tenant.LastReading, input.LatestReading, rate, tenant.Rent, input.IncludeRent)
	if err != nil {
		return nil, err
	}

	billDate := input.BillDate
	if billDate.IsZero() {
		billDate = s.now().UTC()
	}

	return &domain.Bill{
		TenantID:          tenant.ID,
		TenantName:        tenant.Name,
		RentIncluded:      input.IncludeRent,
		LastReading:       tenant.LastReading,
		LastReadingDate:   tenant.LastReadingDate,
		LatestReading:     input.LatestReading,
		LatestReadingDate: billDate,
		UnitsUsed:         breakdown.UnitsUsed,
		Rate:              rate,
		ElectricityAmount: breakdown.ElectricityAmount,
		RentAmount:        breakdown.RentAmount,
		TotalAmount:       breakdown.TotalAmount,
	}, nil
}

func (s *BillingService) resolveRate(ctx context.Context, rate *float64) (float64, error) {
	if rate != nil {
		return *rate, nil
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}

	return settings.ElectricityRate, nil
}
