package ai

import (
	"fmt"
	"strconv"

	"github.com/homebills/tracker/billing/domain"
	"github.com/homebills/tracker/receipt"
	"github.com/homebills/tracker/times"
)

// UsageInsightPrompt asks for a short assessment of a bill's electricity
// consumption plus one saving tip.
func UsageInsightPrompt(bill *domain.Bill) string {
	days := times.DaysBetween(bill.LastReadingDate, bill.LatestReadingDate)

	return fmt.Sprintf(`You are an energy efficiency assistant.
Analyze this electricity usage:
- Units consumed: %.1f
- Days elapsed: %d
- Electricity Cost: ₹%s
- Rate: ₹%s/unit

Is this usage considered low, moderate, or high for a typical single room in India?
Provide one short, specific, helpful energy saving tip.
Keep the response under 40 words.`,
		bill.UnitsUsed,
		days,
		formatAmount(bill.ElectricityAmount),
		formatAmount(bill.Rate),
	)
}

// PaymentReminderPrompt asks for a short, friendly payment message for the
// tenant on a committed bill.
func PaymentReminderPrompt(bill *domain.Bill) string {
	return fmt.Sprintf(`Write a polite, friendly WhatsApp message to my tenant %s.

Details:
- Bill Date: %s
- Total Amount: %s
- Electricity Units: %.1f units
- Reading Period: %s to %s

The message should:
1. Clearly state the total amount due.
2. Mention the electricity usage.
3. Politely ask for payment.
4. Use appropriate emojis.
5. Be concise (max 50 words).`,
		bill.TenantName,
		receipt.FormatDate(bill.CreatedAt),
		receipt.Currency(bill.TotalAmount),
		bill.UnitsUsed,
		receipt.FormatDate(bill.LastReadingDate),
		receipt.FormatDate(bill.LatestReadingDate),
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
