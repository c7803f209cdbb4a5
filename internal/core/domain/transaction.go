package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes a customer sale from a supplier purchase.
// Both share the same shape; only the party role differs.
type TransactionKind string

const (
	KindSale     TransactionKind = "SALE"
	KindPurchase TransactionKind = "PURCHASE"
)

// InvoicePrefix returns the invoice ID prefix for this kind ("SAL" or "PUR").
func (k TransactionKind) InvoicePrefix() string {
	if k == KindPurchase {
		return "PUR"
	}
	return "SAL"
}

// PaymentStatus is derived from the invoice total and the amount paid at commit time.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusPartial PaymentStatus = "PARTIAL"
	StatusUnpaid  PaymentStatus = "UNPAID"
)

// LineItem is one product/quantity/price/discount/tax entry within a transaction.
// A line is owned by exactly one transaction and keeps its entry order.
type LineItem struct {
	LineID          string          `json:"lineID"`        // Primary Key (UUID)
	TransactionID   string          `json:"transactionID"` // FK -> Transaction
	ProductID       string          `json:"productID"`     // May be empty on purchase lines (unresolved item)
	ProductName     string          `json:"productName"`   // Snapshot of the product name at entry time
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"` // [0,100]
	TaxPercent      decimal.Decimal `json:"taxPercent"`      // >= 0, applied to post-discount amount
	LineTotal       decimal.Decimal `json:"lineTotal"`       // amount - discount + tax
}

// Transaction is a committed sale or purchase invoice.
// The TransactionID is immutable once issued; lines and payment fields may be
// replaced through an explicit update, which recomputes the derived totals.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // e.g. "SAL-2025-0001"
	StoreID       string          `json:"storeID"`
	Kind          TransactionKind `json:"kind"`
	PartyName     string          `json:"partyName"` // Customer for sales, supplier for purchases
	BillNo        string          `json:"billNo"`    // External reference, purchases only in practice
	Date          time.Time       `json:"date"`
	Lines         []LineItem      `json:"lines"` // Entry order, never reordered
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	Total         decimal.Decimal `json:"total"` // subtotal - discountTotal + taxTotal
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentMode   string          `json:"paymentMode"` // e.g. "Cash", "UPI", "Card"
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	BalanceDue    decimal.Decimal `json:"balanceDue"` // max(0, total - amountPaid)
	Notes         string          `json:"notes"`
	AuditFields
}
