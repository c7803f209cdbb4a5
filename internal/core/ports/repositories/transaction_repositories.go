package repositories

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// TransactionReader defines read operations for committed sale and purchase invoices.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its lines.
	FindTransactionByID(ctx context.Context, storeID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of one kind of transaction,
	// newest first, using token-based pagination. Lines are included.
	ListTransactions(ctx context.Context, storeID string, kind domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactions retrieves the full unpaginated history of one kind,
	// without lines. The ledger fold consumes this.
	ListAllTransactions(ctx context.Context, storeID string, kind domain.TransactionKind) ([]domain.Transaction, error)
}

// InvoiceSequenceAllocator hands out invoice sequence numbers atomically.
// The counter is keyed by (store, prefix, year) and seeded from the existing
// invoice ID history the first time a partition is touched, so it continues
// where scan-derived IDs left off and resets naturally at each new year.
type InvoiceSequenceAllocator interface {
	AllocateInvoiceSeq(ctx context.Context, storeID, prefix string, year int) (int64, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction persists a transaction with its lines and applies the
	// given stock changes, all within a single database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, stockChanges []domain.StockChange) error

	// UpdateTransaction replaces the mutable fields (party, date, lines,
	// payment details, derived totals) of an existing transaction. Stock is
	// never touched on update.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and its lines. Stock mutations
	// from the original commit are not reversed.
	DeleteTransaction(ctx context.Context, storeID, transactionID string, kind domain.TransactionKind) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	InvoiceSequenceAllocator
}
