package domain

import "time"

// Bill is an immutable, append-only record of one billing action. TenantName
// is denormalized on purpose so history renders correctly even after the
// tenant is renamed or deleted.
type Bill struct {
	ID                string    `firestore:"-" json:"id"`
	TenantID          string    `firestore:"tenantId" json:"tenantId"`
	TenantName        string    `firestore:"tenantName" json:"tenantName"`
	RentIncluded      bool      `firestore:"rentIncluded" json:"rentIncluded"`
	LastReading       float64   `firestore:"lastReading" json:"lastReading"`
	LastReadingDate   time.Time `firestore:"lastReadingDate" json:"lastReadingDate"`
	LatestReading     float64   `firestore:"latestReading" json:"latestReading"`
	LatestReadingDate time.Time `firestore:"latestReadingDate" json:"latestReadingDate"`
	UnitsUsed         float64   `firestore:"unitsUsed" json:"unitsUsed"`
	Rate              float64   `firestore:"rate" json:"rate"`
	ElectricityAmount float64   `firestore:"electricityAmount" json:"electricityAmount"`
	RentAmount        float64   `firestore:"rentAmount" json:"rentAmount"`
	TotalAmount       float64   `firestore:"totalAmount" json:"totalAmount"`
	CreatedAt         time.Time `firestore:"createdAt" json:"createdAt"`
}
