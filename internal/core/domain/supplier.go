package domain

// Supplier is master data for a purchase counterpart. Transactions reference
// suppliers by name only, so deleting a supplier never touches history.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (UUID)
	StoreID    string `json:"storeID"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Address    string `json:"address"`
	AuditFields
}
