package receipt

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/homebills/tracker/billing/domain"
)

func TestRender(t *testing.T) {
	bill := &domain.Bill{
		TenantName:        "Alice",
		LastReading:       1000,
		LastReadingDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		LatestReading:     1050,
		LatestReadingDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		UnitsUsed:         50,
		Rate:              6,
		ElectricityAmount: 300,
		RentAmount:        5000,
		TotalAmount:       5300,
		CreatedAt:         time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	want := `🧾 ELECTRICITY BILL
--------------------------------
Date: 1 Feb 2024
Tenant: Alice
--------------------------------
READINGS
Previous: 1000 (2 Jan 2024)
Current : 1050 (1 Feb 2024)
Units   : 50.00
Rate    : ₹6/unit
--------------------------------
CHARGES
Electricity : ₹300
Rent        : ₹5,000
--------------------------------
TOTAL DUE   : ₹5,300
--------------------------------`

	if diff := cmp.Diff(want, Render(bill)); diff != "" {
		t.Errorf("receipt mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderZeroDates(t *testing.T) {
	got := Render(&domain.Bill{TenantName: "Bob"})

	assert.Contains(t, got, "Previous: 0 (-)")
	assert.Contains(t, got, "Date: -")
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₹300", Currency(300))
	assert.Equal(t, "₹5,300", Currency(5300))
	assert.Equal(t, "₹0", Currency(0))
}
