package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// LineItemRequest is one invoice line as entered by the caller. Quantity and
// price validation beyond presence is the caller's concern; the engine passes
// negative components through arithmetic unchecked.
type LineItemRequest struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
}

// CreateTransactionRequest defines data for committing a sale or a purchase.
// The kind comes from the route, not the body.
type CreateTransactionRequest struct {
	PartyName   string            `json:"partyName" binding:"required"`
	BillNo      string            `json:"billNo"`
	Date        *time.Time        `json:"date"`
	Lines       []LineItemRequest `json:"lines" binding:"required,min=1,dive"`
	AmountPaid  decimal.Decimal   `json:"amountPaid"`
	PaymentMode string            `json:"paymentMode"`
	Notes       string            `json:"notes"`
}

// UpdateTransactionRequest replaces the mutable fields of a committed
// transaction. The invoice ID is immutable and stock is never re-adjusted.
type UpdateTransactionRequest struct {
	PartyName   string            `json:"partyName" binding:"required"`
	BillNo      string            `json:"billNo"`
	Date        *time.Time        `json:"date"`
	Lines       []LineItemRequest `json:"lines" binding:"required,min=1,dive"`
	AmountPaid  decimal.Decimal   `json:"amountPaid"`
	PaymentMode string            `json:"paymentMode"`
	Notes       string            `json:"notes"`
}

// LineItemResponse defines data returned for an invoice line.
type LineItemResponse struct {
	LineID          string          `json:"lineID"`
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
}

// TransactionResponse defines data returned for a sale or purchase invoice.
type TransactionResponse struct {
	TransactionID string               `json:"transactionID"`
	Kind          string               `json:"kind"`
	PartyName     string               `json:"partyName"`
	BillNo        string               `json:"billNo,omitempty"`
	Date          time.Time            `json:"date"`
	Lines         []LineItemResponse   `json:"lines"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	DiscountTotal decimal.Decimal      `json:"discountTotal"`
	TaxTotal      decimal.Decimal      `json:"taxTotal"`
	Total         decimal.Decimal      `json:"total"`
	AmountPaid    decimal.Decimal      `json:"amountPaid"`
	PaymentMode   string               `json:"paymentMode"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	BalanceDue    decimal.Decimal      `json:"balanceDue"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	lines := make([]LineItemResponse, len(txn.Lines))
	for i, l := range txn.Lines {
		lines[i] = LineItemResponse{
			LineID:          l.LineID,
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			TaxPercent:      l.TaxPercent,
			LineTotal:       l.LineTotal,
		}
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		PartyName:     txn.PartyName,
		BillNo:        txn.BillNo,
		Date:          txn.Date,
		Lines:         lines,
		Subtotal:      txn.Subtotal,
		DiscountTotal: txn.DiscountTotal,
		TaxTotal:      txn.TaxTotal,
		Total:         txn.Total,
		AmountPaid:    txn.AmountPaid,
		PaymentMode:   txn.PaymentMode,
		PaymentStatus: txn.PaymentStatus,
		BalanceDue:    txn.BalanceDue,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions with the next cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		list[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: list, NextToken: nextToken}
}
