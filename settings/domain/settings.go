package domain

// Fallback rates applied whenever a stored rate is missing or non-positive.
const (
	DefaultElectricityRate float64 = 6
	DefaultMilkRate        float64 = 60
)

// GlobalSettings holds the per-owner rates shared by the billing and milk
// ledgers. A single document per owner stores them.
type GlobalSettings struct {
	ElectricityRate float64 `firestore:"electricityRate" json:"electricityRate"`
	MilkRate        float64 `firestore:"milkRate" json:"milkRate"`
}

// WithDefaults returns a copy with fallback rates substituted for unset or
// non-positive values.
func (s GlobalSettings) WithDefaults() GlobalSettings {
	if s.ElectricityRate <= 0 {
		s.ElectricityRate = DefaultElectricityRate
	}

	if s.MilkRate <= 0 {
		s.MilkRate = DefaultMilkRate
	}

	return s
}
