package domain

import "time"

// StoreStatus indicates whether a store can log in and use the system.
type StoreStatus string

const (
	StoreActive    StoreStatus = "active"
	StoreSuspended StoreStatus = "suspended"
)

// Store is one tenant in the registry. Every piece of operational data
// (products, transactions, movements) is partitioned by StoreID.
type Store struct {
	StoreID      string      `json:"storeID"` // Short numeric login ID, e.g. "4821"
	PasswordHash string      `json:"-"`
	StoreName    string      `json:"storeName"`
	OwnerName    string      `json:"ownerName"`
	Mobile       string      `json:"mobile"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	PlanType     string      `json:"planType"` // e.g. "Monthly", "Yearly"
	StartDate    time.Time   `json:"startDate"`
	ExpiryDate   time.Time   `json:"expiryDate"`
	Status       StoreStatus `json:"status"`
	AuditFields
}

// StoreSettings is the per-tenant profile shown on printed invoices.
type StoreSettings struct {
	StoreID   string `json:"storeID"`
	StoreName string `json:"storeName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	GSTIN     string `json:"gstin"`
}
