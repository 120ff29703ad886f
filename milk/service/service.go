package service

import (
	"context"
	"errors"
	"math"

	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/logger"
	"github.com/homebills/tracker/milk/dal"
	"github.com/homebills/tracker/milk/domain"
	settingsDAL "github.com/homebills/tracker/settings/dal"
	"github.com/homebills/tracker/times"
)

var (
	ErrInvalidMonth  = errors.New("month must be a YYYY-MM key")
	ErrInvalidDay    = errors.New("day must be a YYYY-MM-DD key")
	ErrEntryNotFound = errors.New("milk entry not found")
)

// Summary is the month roll-up shown on the milk screen.
type Summary struct {
	Month       string  `json:"month"`
	TotalLiters float64 `json:"totalLiters"`
	Rate        float64 `json:"rate"`
	TotalCost   float64 `json:"totalCost"`
}

//go:generate mockery --name Milk --output=./mocks
type Milk interface {
	Month(ctx context.Context, month string) (*domain.MonthLedger, error)
	AddEntry(ctx context.Context, day string, qty float64) (*domain.MonthLedger, error)
	RemoveEntry(ctx context.Context, day string, index int) (*domain.MonthLedger, error)
	Summary(ctx context.Context, month string) (*Summary, error)
	Watch(ctx context.Context, month string) (*iface.Subscription, error)
}

type MilkService struct {
	loggerProvider logger.Provider
	dal            dal.MilkDAL
	settings       settingsDAL.SettingsDAL
}

func NewMilkService(log logger.Provider, milkDAL dal.MilkDAL, settings settingsDAL.SettingsDAL) *MilkService {
	return &MilkService{
		loggerProvider: log,
		dal:            milkDAL,
		settings:       settings,
	}
}

func (s *MilkService) Month(ctx context.Context, month string) (*domain.MonthLedger, error) {
	if _, err := times.AddMonths(month, 0); err != nil {
		return nil, ErrInvalidMonth
	}

	return s.dal.Get(ctx, month)
}

// AddEntry appends a delivery to the day's list within that day's month.
// A non-positive or NaN quantity is a no-op returning the current ledger.
func (s *MilkService) AddEntry(ctx context.Context, day string, qty float64) (*domain.MonthLedger, error) {
	parsed, err := times.ParseDay(day)
	if err != nil {
		return nil, ErrInvalidDay
	}

	ledger, err := s.dal.Get(ctx, times.MonthKey(parsed))
	if err != nil {
		return nil, err
	}

	if qty <= 0 || math.IsNaN(qty) {
		return ledger, nil
	}

	ledger.Days[day] = append(ledger.Days[day], qty)

	if err := s.dal.Save(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

// RemoveEntry deletes the entry at index within the day's list. The day key
// is pruned when its list becomes empty.
func (s *MilkService) RemoveEntry(ctx context.Context, day string, index int) (*domain.MonthLedger, error) {
	parsed, err := times.ParseDay(day)
	if err != nil {
		return nil, ErrInvalidDay
	}

	ledger, err := s.dal.Get(ctx, times.MonthKey(parsed))
	if err != nil {
		return nil, err
	}

	entries := ledger.Days[day]
	if index < 0 || index >= len(entries) {
		return nil, ErrEntryNotFound
	}

	entries = append(entries[:index], entries[index+1:]...)

	if len(entries) == 0 {
		delete(ledger.Days, day)
	} else {
		ledger.Days[day] = entries
	}

	if err := s.dal.Save(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

// Summary computes the month total and its cost at the configured milk rate.
func (s *MilkService) Summary(ctx context.Context, month string) (*Summary, error) {
	ledger, err := s.Month(ctx, month)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	total := ledger.Total()

	return &Summary{
		Month:       month,
		TotalLiters: total,
		Rate:        settings.MilkRate,
		TotalCost:   total * settings.MilkRate,
	}, nil
}

func (s *MilkService) Watch(ctx context.Context, month string) (*iface.Subscription, error) {
	if _, err := times.AddMonths(month, 0); err != nil {
		return nil, ErrInvalidMonth
	}

	return s.dal.Subscribe(ctx, month)
}
