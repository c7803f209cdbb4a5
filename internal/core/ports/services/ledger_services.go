package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// LedgerSvcFacade defines the derived party-balance reports. Both ledgers are
// pure folds over the full history, recomputed on every call.
type LedgerSvcFacade interface {
	// CustomerLedger folds sales and receipts into per-customer balances,
	// sorted by outstanding balance descending.
	CustomerLedger(ctx context.Context, storeID string) ([]domain.LedgerEntry, error)

	// SupplierLedger folds purchases and payments into per-supplier balances,
	// sorted by outstanding balance descending.
	SupplierLedger(ctx context.Context, storeID string) ([]domain.LedgerEntry, error)
}
