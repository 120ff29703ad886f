package dal

import (
	"context"
	"errors"
	"sort"

	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
)

//go:generate mockery --name BillDAL --output=./mocks
type BillDAL interface {
	Add(ctx context.Context, bill *domain.Bill) (string, error)
	Get(ctx context.Context, billID string) (*domain.Bill, error)
	List(ctx context.Context) ([]*domain.Bill, error)
	Subscribe(ctx context.Context) (*iface.Subscription, error)
}

// BillGateway stores finalized bills through the request-scoped persistence
// gateway. Bills are append-only; there is no update or delete path.
type BillGateway struct {
	gatewayFn iface.FromContextFun
	l         logger.Provider
}

// NewBillGateway returns a new BillGateway using the given gateway provider.
func NewBillGateway(log logger.Provider, fun iface.FromContextFun) *BillGateway {
	return &BillGateway{
		gatewayFn: fun,
		l:         log,
	}
}

// Add appends a bill record and returns its generated id.
func (b *BillGateway) Add(ctx context.Context, bill *domain.Bill) (string, error) {
	if bill == nil {
		return "", errors.New("bill cannot be nil")
	}

	return b.gatewayFn(ctx).Add(ctx, iface.CollectionBills, bill)
}

// Get returns the bill stored under billID, or iface.ErrNotFound.
func (b *BillGateway) Get(ctx context.Context, billID string) (*domain.Bill, error) {
	if billID == "" {
		return nil, errors.New("invalid bill ID")
	}

	snap, err := b.gatewayFn(ctx).Get(ctx, iface.CollectionBills, billID)
	if err != nil {
		return nil, err
	}

	var bill domain.Bill
	if err := snap.DataTo(&bill); err != nil {
		return nil, err
	}

	bill.ID = snap.ID()

	return &bill, nil
}

// List returns the full history, newest first.
func (b *BillGateway) List(ctx context.Context) ([]*domain.Bill, error) {
	snaps, err := b.gatewayFn(ctx).List(ctx, iface.CollectionBills)
	if err != nil {
		return nil, err
	}

	bills := make([]*domain.Bill, 0, len(snaps))

	for _, snap := range snaps {
		var bill domain.Bill
		if err := snap.DataTo(&bill); err != nil {
			b.l(ctx).Warningf("unable to convert to bill: %s", err)
			continue
		}

		bill.ID = snap.ID()
		bills = append(bills, &bill)
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].CreatedAt.After(bills[j].CreatedAt)
	})

	return bills, nil
}

// Subscribe streams snapshots of the whole bills collection.
func (b *BillGateway) Subscribe(ctx context.Context) (*iface.Subscription, error) {
	return b.gatewayFn(ctx).Subscribe(ctx, iface.CollectionBills, "")
}
