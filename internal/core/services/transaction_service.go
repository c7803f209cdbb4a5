package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/utils"
	"github.com/smartstore/smartstore_backend/internal/utils/invoice"
)

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	productRepo     portsrepo.ProductRepositoryFacade
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service.
type TransactionServiceOption func(*transactionService)

// WithClock overrides the time source, used by tests to pin the invoice year.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided dependencies.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CommitTransaction validates, prices, numbers and persists a new invoice.
// For sales, every line must be covered by on-hand stock or the whole commit
// is rejected with ErrInsufficientStock before anything is written.
func (s *transactionService) CommitTransaction(ctx context.Context, storeID string, kind domain.TransactionKind, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	if strings.TrimSpace(req.PartyName) == "" {
		return nil, apperrors.NewValidationFailedError("party name is required")
	}
	if len(req.Lines) == 0 {
		return nil, apperrors.NewValidationFailedError("at least one line item is required")
	}

	products, err := s.resolveProducts(ctx, storeID, req.Lines)
	if err != nil {
		return nil, err
	}

	lines := s.buildLines(req.Lines, products, kind)

	var stockChanges []domain.StockChange
	switch kind {
	case domain.KindSale:
		stockChanges, err = dispatchStock(lines, products)
		if err != nil {
			s.LogInfo(ctx, "Sale rejected for insufficient stock",
				slog.String("store_id", storeID),
				slog.String("party", req.PartyName))
			return nil, err
		}
	case domain.KindPurchase:
		stockChanges = receiveStock(lines, products)
	default:
		return nil, apperrors.NewValidationFailedError("unknown transaction kind " + string(kind))
	}

	now := s.now().UTC()
	prefix := kind.InvoicePrefix()
	seq, err := s.transactionRepo.AllocateInvoiceSeq(ctx, storeID, prefix, now.Year())
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate invoice sequence",
			slog.String("store_id", storeID),
			slog.String("prefix", prefix))
		return nil, fmt.Errorf("failed to allocate invoice sequence: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: invoice.FormatID(prefix, now.Year(), seq),
		StoreID:       storeID,
		Kind:          kind,
		PartyName:     req.PartyName,
		BillNo:        req.BillNo,
		Date:          dateOrNow(req.Date, now),
		Lines:         lines,
		AmountPaid:    req.AmountPaid,
		PaymentMode:   paymentModeOrDefault(req.PaymentMode),
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	s.deriveMoneyFields(&txn)

	for i := range txn.Lines {
		txn.Lines[i].TransactionID = txn.TransactionID
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, stockChanges); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("store_id", storeID),
			slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction committed",
		slog.String("store_id", storeID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(kind)),
		slog.String("total", utils.FormatAmount(txn.Total)))
	return &txn, nil
}

// GetTransaction retrieves one invoice with its lines.
func (s *transactionService) GetTransaction(ctx context.Context, storeID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, storeID, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a page of invoices of one kind, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, storeID string, kind domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 25
	}
	txns, token, err := s.transactionRepo.ListTransactions(ctx, storeID, kind, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("store_id", storeID),
			slog.String("kind", string(kind)))
		return nil, nil, err
	}
	return txns, token, nil
}

// UpdateTransaction replaces the mutable fields of an invoice and recomputes
// the derived totals and payment status. The invoice ID never changes and
// stock is never re-adjusted here.
func (s *transactionService) UpdateTransaction(ctx context.Context, storeID, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error) {
	if strings.TrimSpace(req.PartyName) == "" {
		return nil, apperrors.NewValidationFailedError("party name is required")
	}
	if len(req.Lines) == 0 {
		return nil, apperrors.NewValidationFailedError("at least one line item is required")
	}

	existing, err := s.transactionRepo.FindTransactionByID(ctx, storeID, transactionID)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, storeID, req.Lines)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	txn := *existing
	txn.PartyName = req.PartyName
	txn.BillNo = req.BillNo
	txn.Date = dateOrNow(req.Date, txn.Date)
	txn.Lines = s.buildLines(req.Lines, products, txn.Kind)
	txn.AmountPaid = req.AmountPaid
	txn.PaymentMode = paymentModeOrDefault(req.PaymentMode)
	txn.Notes = req.Notes
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actor
	s.deriveMoneyFields(&txn)

	for i := range txn.Lines {
		txn.Lines[i].TransactionID = txn.TransactionID
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("store_id", storeID),
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("store_id", storeID),
		slog.String("transaction_id", transactionID))
	return &txn, nil
}

// DeleteTransaction removes an invoice. Stock mutations from the original
// commit are deliberately left in place; callers needing reversal record a
// compensating transaction instead.
func (s *transactionService) DeleteTransaction(ctx context.Context, storeID, transactionID string, kind domain.TransactionKind) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, storeID, transactionID, kind); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("store_id", storeID),
			slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("store_id", storeID),
		slog.String("transaction_id", transactionID))
	return nil
}

// resolveProducts fetches the products referenced by the request lines.
// Lines without a product ID are allowed; they simply resolve to nothing.
func (s *transactionService) resolveProducts(ctx context.Context, storeID string, lines []dto.LineItemRequest) (map[string]domain.Product, error) {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != "" {
			ids = append(ids, l.ProductID)
		}
	}
	if len(ids) == 0 {
		return map[string]domain.Product{}, nil
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, storeID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve products for transaction lines",
			slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	return products, nil
}

// buildLines turns request lines into domain lines in entry order. A sale
// line with no price falls back to the product's sell price; the product name
// is snapshotted so history survives catalogue edits.
func (s *transactionService) buildLines(reqLines []dto.LineItemRequest, products map[string]domain.Product, kind domain.TransactionKind) []domain.LineItem {
	lines := make([]domain.LineItem, len(reqLines))
	for i, rl := range reqLines {
		line := domain.LineItem{
			LineID:          uuid.NewString(),
			ProductID:       rl.ProductID,
			ProductName:     rl.ProductName,
			Quantity:        rl.Quantity,
			UnitPrice:       rl.UnitPrice,
			DiscountPercent: rl.DiscountPercent,
			TaxPercent:      rl.TaxPercent,
		}
		if p, ok := products[rl.ProductID]; ok {
			if line.ProductName == "" {
				line.ProductName = p.Name
			}
			if kind == domain.KindSale && line.UnitPrice.IsZero() {
				line.UnitPrice = p.SellPrice
			}
		}
		line.LineTotal = invoice.LineTotal(line)
		lines[i] = line
	}
	return lines
}

// deriveMoneyFields computes the invoice totals and payment status in place.
func (s *transactionService) deriveMoneyFields(txn *domain.Transaction) {
	totals := invoice.ComputeTotals(txn.Lines)
	txn.Subtotal = totals.Subtotal
	txn.DiscountTotal = totals.DiscountTotal
	txn.TaxTotal = totals.TaxTotal
	txn.Total = totals.Total
	txn.PaymentStatus, txn.BalanceDue = invoice.DerivePaymentStatus(txn.Total, txn.AmountPaid)
}

// dispatchStock checks every sale line against on-hand stock and, only if all
// pass, produces the stock changes. All-or-nothing: the first failing line
// rejects the whole sale and nothing is mutated.
func dispatchStock(lines []domain.LineItem, products map[string]domain.Product) ([]domain.StockChange, error) {
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %q not found", apperrors.ErrInsufficientStock, line.ProductName)
		}
		if p.Stock.LessThan(line.Quantity) {
			return nil, fmt.Errorf("%w: %s has %s in stock, %s requested",
				apperrors.ErrInsufficientStock, p.Name, p.Stock.String(), line.Quantity.String())
		}
	}

	changes := make([]domain.StockChange, 0, len(lines))
	for _, line := range lines {
		changes = append(changes, domain.StockChange{
			ProductID:      line.ProductID,
			QuantityDelta:  line.Quantity.Neg(),
			SoldTodayDelta: line.Quantity,
			ClampAtZero:    true,
		})
	}
	return changes, nil
}

// receiveStock produces additive stock changes for purchase lines. Lines with
// an empty or unresolvable product ID are skipped without error.
func receiveStock(lines []domain.LineItem, products map[string]domain.Product) []domain.StockChange {
	changes := make([]domain.StockChange, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		if _, ok := products[line.ProductID]; !ok {
			continue
		}
		changes = append(changes, domain.StockChange{
			ProductID:     line.ProductID,
			QuantityDelta: line.Quantity,
		})
	}
	return changes
}

func dateOrNow(date *time.Time, fallback time.Time) time.Time {
	if date != nil && !date.IsZero() {
		return date.UTC()
	}
	return fallback
}

func paymentModeOrDefault(mode string) string {
	if mode == "" {
		return "Cash"
	}
	return mode
}
