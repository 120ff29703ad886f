package service

import (
	"errors"
	"math"
)

var (
	ErrInvalidReading    = errors.New("latest reading is not a valid number")
	ErrReadingRegression = errors.New("latest reading cannot be less than previous reading")
	ErrInvalidRate       = errors.New("rate must be a positive number")
)

// Breakdown is the computed portion of a bill before it is committed.
type Breakdown struct {
	UnitsUsed         float64
	ElectricityAmount float64
	RentAmount        float64
	TotalAmount       float64
}

// Calculate derives the bill breakdown from two successive meter readings.
// No rounding is applied; currency formatting is a presentation concern.
func Calculate(previous, current, rate, tenantRent float64, includeRent bool) (*Breakdown, error) {
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return nil, ErrInvalidReading
	}

	if math.IsNaN(rate) || rate <= 0 {
		return nil, ErrInvalidRate
	}

	if current < previous {
		return nil, ErrReadingRegression
	}

	units := current - previous
	elec := units * rate

	rent := 0.0
	if includeRent {
		rent = tenantRent
	}

	return &Breakdown{
		UnitsUsed:         units,
		ElectricityAmount: elec,
		RentAmount:        rent,
		TotalAmount:       elec + rent,
	}, nil
}
