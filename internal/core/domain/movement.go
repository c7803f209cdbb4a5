package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind distinguishes money received from a customer (receipt) from
// money paid out to a supplier (payment).
type MovementKind string

const (
	KindReceipt MovementKind = "RECEIPT"
	KindPayment MovementKind = "PAYMENT"
)

// IDPrefix returns the movement ID prefix for this kind ("REC" or "PAY").
func (k MovementKind) IDPrefix() string {
	if k == KindPayment {
		return "PAY"
	}
	return "REC"
}

// MoneyMovement is a standalone receipt or payment against a party.
// It is linked to transactions only by the party name string; there is no
// foreign key between movements and invoices.
type MoneyMovement struct {
	MovementID string          `json:"movementID"` // e.g. "REC-1718000000000"
	StoreID    string          `json:"storeID"`
	Kind       MovementKind    `json:"kind"`
	PartyName  string          `json:"partyName"`
	Amount     decimal.Decimal `json:"amount"` // Positive
	Date       time.Time       `json:"date"`
	Mode       string          `json:"mode"`
	Note       string          `json:"note"`
	AuditFields
}
