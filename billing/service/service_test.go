package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	billMocks "github.com/homebills/tracker/billing/dal/mocks"
	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
	settingsMocks "github.com/homebills/tracker/settings/dal/mocks"
	settingsDomain "github.com/homebills/tracker/settings/domain"
	tenantMocks "github.com/homebills/tracker/tenant/dal/mocks"
	tenantDomain "github.com/homebills/tracker/tenant/domain"
)

func testLoggerProvider(_ context.Context) logger.ILogger {
	l := &loggerMocks.ILogger{}
	l.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	l.On("Warningf", mock.Anything, mock.Anything).Maybe()

	return l
}

type fields struct {
	bills    *billMocks.BillDAL
	tenants  *tenantMocks.TenantDAL
	settings *settingsMocks.SettingsDAL
}

func newFields() *fields {
	return &fields{
		bills:    &billMocks.BillDAL{},
		tenants:  &tenantMocks.TenantDAL{},
		settings: &settingsMocks.SettingsDAL{},
	}
}

func (f *fields) service(now time.Time) *BillingService {
	s := NewBillingService(testLoggerProvider, f.bills, f.tenants, f.settings)
	s.now = func() time.Time { return now }

	return s
}

func rateOf(v float64) *float64 { return &v }

func TestBillingService_Commit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	prevDate := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	alice := &tenantDomain.Tenant{
		ID:              "tenant-1",
		Name:            "Alice",
		Rent:            5000,
		LastReading:     1000,
		LastReadingDate: prevDate,
	}

	wantBill := &domain.Bill{
		TenantID:          "tenant-1",
		TenantName:        "Alice",
		RentIncluded:      true,
		LastReading:       1000,
		LastReadingDate:   prevDate,
		LatestReading:     1050,
		LatestReadingDate: now,
		UnitsUsed:         50,
		Rate:              6,
		ElectricityAmount: 300,
		RentAmount:        5000,
		TotalAmount:       5300,
		CreatedAt:         now,
	}

	t.Run("append then update tenant state", func(t *testing.T) {
		f := newFields()
		f.tenants.On("Get", ctx, "tenant-1").Return(alice, nil)
		f.bills.On("Add", ctx, wantBill).Return("bill-1", nil)
		f.tenants.On("UpdateLastReading", ctx, "tenant-1", 1050.0, now).Return(nil)

		got, err := f.service(now).Commit(ctx, BillingInput{
			TenantID:      "tenant-1",
			LatestReading: 1050,
			Rate:          rateOf(6),
			IncludeRent:   true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "bill-1", got.ID)
		assert.Equal(t, 5300.0, got.TotalAmount)
		f.bills.AssertExpectations(t)
		f.tenants.AssertExpectations(t)
	})

	t.Run("regression never writes", func(t *testing.T) {
		f := newFields()
		f.tenants.On("Get", ctx, "tenant-1").Return(alice, nil)

		_, err := f.service(now).Commit(ctx, BillingInput{
			TenantID:      "tenant-1",
			LatestReading: 900,
			Rate:          rateOf(6),
		})

		assert.ErrorIs(t, err, ErrReadingRegression)
		f.bills.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		f.tenants.AssertNotCalled(t, "UpdateLastReading", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("tenant update failure surfaces but bill exists", func(t *testing.T) {
		f := newFields()
		f.tenants.On("Get", ctx, "tenant-1").Return(alice, nil)
		f.bills.On("Add", ctx, wantBill).Return("bill-1", nil)
		f.tenants.On("UpdateLastReading", ctx, "tenant-1", 1050.0, now).
			Return(errors.New("update failed"))

		got, err := f.service(now).Commit(ctx, BillingInput{
			TenantID:      "tenant-1",
			LatestReading: 1050,
			Rate:          rateOf(6),
			IncludeRent:   true,
		})

		assert.EqualError(t, err, "update failed")
		assert.NotNil(t, got)
		assert.Equal(t, "bill-1", got.ID)
	})

	t.Run("missing rate falls back to configured rate", func(t *testing.T) {
		f := newFields()
		f.tenants.On("Get", ctx, "tenant-1").Return(alice, nil)
		f.settings.On("Get", ctx).
			Return(&settingsDomain.GlobalSettings{ElectricityRate: 8, MilkRate: 60}, nil)
		f.bills.On("Add", ctx, mock.MatchedBy(func(b *domain.Bill) bool {
			return b.Rate == 8 && b.ElectricityAmount == 400
		})).Return("bill-2", nil)
		f.tenants.On("UpdateLastReading", ctx, "tenant-1", 1050.0, now).Return(nil)

		got, err := f.service(now).Commit(ctx, BillingInput{
			TenantID:      "tenant-1",
			LatestReading: 1050,
			IncludeRent:   false,
		})

		assert.NoError(t, err)
		assert.Equal(t, 400.0, got.TotalAmount)
	})
}

func TestBillingService_Calculate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	f := newFields()
	f.tenants.On("Get", ctx, "tenant-1").Return(&tenantDomain.Tenant{
		ID:          "tenant-1",
		Name:        "Alice",
		Rent:        5000,
		LastReading: 1000,
	}, nil)

	got, err := f.service(now).Calculate(ctx, BillingInput{
		TenantID:      "tenant-1",
		LatestReading: 1050,
		Rate:          rateOf(6),
		IncludeRent:   true,
	})

	assert.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.True(t, got.CreatedAt.IsZero())
	assert.Equal(t, 5300.0, got.TotalAmount)
	f.bills.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
