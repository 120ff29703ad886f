package dal

import (
	"context"
	"errors"

	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/milk/domain"
)

//go:generate mockery --name MilkDAL --output=./mocks
type MilkDAL interface {
	Get(ctx context.Context, month string) (*domain.MonthLedger, error)
	Save(ctx context.Context, ledger *domain.MonthLedger) error
	Subscribe(ctx context.Context, month string) (*iface.Subscription, error)
}

// MilkGateway stores month ledgers through the request-scoped persistence
// gateway, one document per YYYY-MM month.
type MilkGateway struct {
	gatewayFn iface.FromContextFun
	l         logger.Provider
}

// NewMilkGateway returns a new MilkGateway using the given gateway provider.
func NewMilkGateway(log logger.Provider, fun iface.FromContextFun) *MilkGateway {
	return &MilkGateway{
		gatewayFn: fun,
		l:         log,
	}
}

// Get returns the ledger for the month. A month with no document yet is an
// empty ledger, not an error.
func (m *MilkGateway) Get(ctx context.Context, month string) (*domain.MonthLedger, error) {
	if month == "" {
		return nil, errors.New("invalid month key")
	}

	snap, err := m.gatewayFn(ctx).Get(ctx, iface.CollectionMilk, month)
	if err != nil {
		if errors.Is(err, iface.ErrNotFound) {
			return domain.NewMonthLedger(month), nil
		}

		return nil, err
	}

	ledger := domain.NewMonthLedger(month)
	if err := snap.DataTo(ledger); err != nil {
		return nil, err
	}

	if ledger.Days == nil {
		ledger.Days = map[string][]float64{}
	}

	ledger.Month = month

	return ledger, nil
}

// Save replaces the month document wholesale. A replace write, not a merge:
// day keys pruned from the ledger must disappear from the stored document.
func (m *MilkGateway) Save(ctx context.Context, ledger *domain.MonthLedger) error {
	if ledger == nil || ledger.Month == "" {
		return errors.New("invalid ledger")
	}

	return m.gatewayFn(ctx).Set(ctx, iface.CollectionMilk, ledger.Month, ledger, false)
}

// Subscribe streams snapshots of one month's ledger document.
func (m *MilkGateway) Subscribe(ctx context.Context, month string) (*iface.Subscription, error) {
	return m.gatewayFn(ctx).Subscribe(ctx, iface.CollectionMilk, month)
}
