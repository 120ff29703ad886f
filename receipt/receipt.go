// Package receipt renders a committed bill as the plain-text layout used
// for sharing over chat apps.
package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/homebills/tracker/billing/domain"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

const divider = "--------------------------------"

// Render produces the fixed-layout receipt text for a bill.
func Render(bill *domain.Bill) string {
	var b strings.Builder

	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("🧾 ELECTRICITY BILL")
	line(divider)
	line("Date: %s", formatDate(bill.CreatedAt))
	line("Tenant: %s", bill.TenantName)
	line(divider)
	line("READINGS")
	line("Previous: %s (%s)", formatReading(bill.LastReading), formatDate(bill.LastReadingDate))
	line("Current : %s (%s)", formatReading(bill.LatestReading), formatDate(bill.LatestReadingDate))
	line("Units   : %.2f", bill.UnitsUsed)
	line("Rate    : ₹%s/unit", formatReading(bill.Rate))
	line(divider)
	line("CHARGES")
	line("Electricity : %s", Currency(bill.ElectricityAmount))
	line("Rent        : %s", Currency(bill.RentAmount))
	line(divider)
	line("TOTAL DUE   : %s", Currency(bill.TotalAmount))
	b.WriteString(divider)

	return b.String()
}

// Currency formats an amount as whole rupees with Indian digit grouping.
func Currency(v float64) string {
	return "₹" + printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatDate renders a timestamp the way receipts and drafted messages show
// dates, e.g. "2 Jan 2024".
func FormatDate(t time.Time) string {
	return formatDate(t)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2 Jan 2006")
}

func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
