package domain

import "time"

// Tenant is a member of the household roster and the source of truth for
// billing inputs. LastReading advances exactly once per finalized bill and
// never decreases.
type Tenant struct {
	ID              string    `firestore:"-" json:"id"`
	Name            string    `firestore:"name" json:"name"`
	Rent            float64   `firestore:"rent" json:"rent"`
	LastReading     float64   `firestore:"lastReading" json:"lastReading"`
	LastReadingDate time.Time `firestore:"lastReadingDate" json:"lastReadingDate"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
}
