package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// TransactionSvcFacade defines the service surface for committing and
// managing sale and purchase invoices.
type TransactionSvcFacade interface {
	// CommitTransaction validates, prices, numbers and persists a new invoice
	// of the given kind, applying its stock side effects atomically. A sale is
	// rejected whole (ErrInsufficientStock) if any line exceeds on-hand stock.
	CommitTransaction(ctx context.Context, storeID string, kind domain.TransactionKind, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error)

	// GetTransaction retrieves one invoice with its lines.
	GetTransaction(ctx context.Context, storeID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of invoices of one kind, newest first.
	ListTransactions(ctx context.Context, storeID string, kind domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// UpdateTransaction recomputes totals and payment status from the request
	// and replaces the invoice's mutable fields. Stock is never re-adjusted.
	UpdateTransaction(ctx context.Context, storeID, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error)

	// DeleteTransaction removes an invoice without reversing its stock effects.
	DeleteTransaction(ctx context.Context, storeID, transactionID string, kind domain.TransactionKind) error
}
