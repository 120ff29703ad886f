package domain

// MonthLedger is one calendar month of milk deliveries, keyed by YYYY-MM-DD
// day within the month. A day key never maps to an empty list; the key is
// pruned when its last entry is removed.
type MonthLedger struct {
	Month string               `firestore:"-" json:"-"`
	Days  map[string][]float64 `firestore:"days" json:"days"`
}

// NewMonthLedger returns an empty ledger for the given YYYY-MM month.
func NewMonthLedger(month string) *MonthLedger {
	return &MonthLedger{
		Month: month,
		Days:  map[string][]float64{},
	}
}

// Total sums every delivered quantity across the month.
func (l *MonthLedger) Total() float64 {
	var total float64

	for _, entries := range l.Days {
		for _, qty := range entries {
			total += qty
		}
	}

	return total
}
