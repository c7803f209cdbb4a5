package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
)

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	movementRepo    portsrepo.MovementReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(transactionRepo portsrepo.TransactionReader, movementRepo portsrepo.MovementReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		transactionRepo: transactionRepo,
		movementRepo:    movementRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// FoldLedger folds invoices and standalone movements into per-party balances.
// Each invoice contributes its total to billed and its amount paid to settled;
// each movement contributes its amount to settled. Party names match exactly,
// case sensitively. Entries come back sorted by balance descending, ties
// broken by party name so the order is stable.
func FoldLedger(transactions []domain.Transaction, movements []domain.MoneyMovement) []domain.LedgerEntry {
	byParty := make(map[string]*domain.LedgerEntry)

	entry := func(party string) *domain.LedgerEntry {
		e, ok := byParty[party]
		if !ok {
			e = &domain.LedgerEntry{PartyName: party}
			byParty[party] = e
		}
		return e
	}

	for _, txn := range transactions {
		e := entry(txn.PartyName)
		e.TotalBilled = e.TotalBilled.Add(txn.Total)
		e.TotalSettled = e.TotalSettled.Add(txn.AmountPaid)
	}
	for _, m := range movements {
		e := entry(m.PartyName)
		e.TotalSettled = e.TotalSettled.Add(m.Amount)
	}

	entries := make([]domain.LedgerEntry, 0, len(byParty))
	for _, e := range byParty {
		e.Balance = e.TotalBilled.Sub(e.TotalSettled)
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Balance.Equal(entries[j].Balance) {
			return entries[i].Balance.GreaterThan(entries[j].Balance)
		}
		return entries[i].PartyName < entries[j].PartyName
	})
	return entries
}

// CustomerLedger folds sales and receipts into per-customer balances.
func (s *ledgerService) CustomerLedger(ctx context.Context, storeID string) ([]domain.LedgerEntry, error) {
	return s.ledger(ctx, storeID, domain.KindSale, domain.KindReceipt)
}

// SupplierLedger folds purchases and payments into per-supplier balances.
func (s *ledgerService) SupplierLedger(ctx context.Context, storeID string) ([]domain.LedgerEntry, error) {
	return s.ledger(ctx, storeID, domain.KindPurchase, domain.KindPayment)
}

func (s *ledgerService) ledger(ctx context.Context, storeID string, txnKind domain.TransactionKind, movKind domain.MovementKind) ([]domain.LedgerEntry, error) {
	transactions, err := s.transactionRepo.ListAllTransactions(ctx, storeID, txnKind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for ledger",
			slog.String("store_id", storeID),
			slog.String("kind", string(txnKind)))
		return nil, err
	}

	movements, err := s.movementRepo.ListAllMovements(ctx, storeID, movKind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load movements for ledger",
			slog.String("store_id", storeID),
			slog.String("kind", string(movKind)))
		return nil, err
	}

	return FoldLedger(transactions, movements), nil
}
