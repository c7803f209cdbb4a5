package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	"github.com/smartstore/smartstore_backend/internal/utils/invoice"
	"github.com/smartstore/smartstore_backend/internal/utils/pagination"
)

const transactionColumns = `transaction_id, store_id, kind, party_name, bill_no, date, subtotal, discount_total, tax_total, total, amount_paid, payment_mode, payment_status, balance_due, notes, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, store_id, transaction_id, product_id, product_name, quantity, unit_price, discount_percent, tax_percent, line_total`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for sale and purchase invoices.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.CollectableRow) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.StoreID,
		&t.Kind,
		&t.PartyName,
		&t.BillNo,
		&t.Date,
		&t.Subtotal,
		&t.DiscountTotal,
		&t.TaxTotal,
		&t.Total,
		&t.AmountPaid,
		&t.PaymentMode,
		&t.PaymentStatus,
		&t.BalanceDue,
		&t.Notes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

func scanLine(row pgx.CollectableRow) (domain.LineItem, error) {
	var l domain.LineItem
	var storeID string
	err := row.Scan(
		&l.LineID,
		&storeID,
		&l.TransactionID,
		&l.ProductID,
		&l.ProductName,
		&l.Quantity,
		&l.UnitPrice,
		&l.DiscountPercent,
		&l.TaxPercent,
		&l.LineTotal,
	)
	return l, err
}

// SaveTransaction persists the invoice, its lines and the stock changes in a
// single database transaction. Either everything lands or nothing does.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, stockChanges []domain.StockChange) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertTxn := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, insertTxn,
		txn.TransactionID,
		txn.StoreID,
		txn.Kind,
		txn.PartyName,
		txn.BillNo,
		txn.Date,
		txn.Subtotal,
		txn.DiscountTotal,
		txn.TaxTotal,
		txn.Total,
		txn.AmountPaid,
		txn.PaymentMode,
		txn.PaymentStatus,
		txn.BalanceDue,
		txn.Notes,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("transaction %s already exists", txn.TransactionID))
		}
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	if err := insertLines(ctx, tx, txn); err != nil {
		return err
	}

	if err := applyStockChanges(ctx, tx, txn.StoreID, stockChanges); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertLines writes the invoice lines, preserving entry order via line_no.
func insertLines(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	insertLine := `
		INSERT INTO transaction_lines (` + lineColumns + `, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for i, line := range txn.Lines {
		_, err := tx.Exec(ctx, insertLine,
			line.LineID,
			txn.StoreID,
			txn.TransactionID,
			line.ProductID,
			line.ProductName,
			line.Quantity,
			line.UnitPrice,
			line.DiscountPercent,
			line.TaxPercent,
			line.LineTotal,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line %d of %s: %w", i, txn.TransactionID, err)
		}
	}
	return nil
}

// applyStockChanges adjusts product stock inside the invoice's transaction.
// Dispatches clamp at zero so a racing correction can never drive stock negative.
func applyStockChanges(ctx context.Context, tx pgx.Tx, storeID string, changes []domain.StockChange) error {
	query := `
		UPDATE products SET
			stock = CASE WHEN $4 THEN GREATEST(stock + $3, 0) ELSE stock + $3 END,
			sold_today = sold_today + $5
		WHERE store_id = $1 AND product_id = $2;
	`
	for _, change := range changes {
		_, err := tx.Exec(ctx, query,
			storeID,
			change.ProductID,
			change.QuantityDelta,
			change.ClampAtZero,
			change.SoldTodayDelta,
		)
		if err != nil {
			return fmt.Errorf("failed to adjust stock for product %s: %w", change.ProductID, err)
		}
	}
	return nil
}

// AllocateInvoiceSeq atomically hands out the next sequence number for a
// (store, prefix, year) partition. A partition touched for the first time is
// seeded from the existing invoice ID history, so numbering continues where
// previously issued IDs left off and resets naturally each new year.
func (r *PgxTransactionRepository) AllocateInvoiceSeq(ctx context.Context, storeID, prefix string, year int) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var seq int64
	err = tx.QueryRow(ctx, `
		UPDATE invoice_sequences SET last_seq = last_seq + 1
		WHERE store_id = $1 AND prefix = $2 AND year = $3
		RETURNING last_seq;
	`, storeID, prefix, year).Scan(&seq)
	if err == nil {
		return seq, r.Commit(ctx, tx)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to bump invoice sequence %s/%s-%d: %w", storeID, prefix, year, err)
	}

	// First allocation for this partition: scan history for the highest
	// already-issued suffix and continue from there.
	rows, err := tx.Query(ctx, `
		SELECT transaction_id FROM transactions
		WHERE store_id = $1 AND transaction_id LIKE $2;
	`, storeID, fmt.Sprintf("%s-%d-%%", prefix, year))
	if err != nil {
		return 0, fmt.Errorf("failed to scan invoice history %s/%s-%d: %w", storeID, prefix, year, err)
	}
	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to collect invoice history %s/%s-%d: %w", storeID, prefix, year, err)
	}

	seed := invoice.LastSeq(ids, prefix, year)
	err = tx.QueryRow(ctx, `
		INSERT INTO invoice_sequences (store_id, prefix, year, last_seq)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (store_id, prefix, year) DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		RETURNING last_seq;
	`, storeID, prefix, year, seed+1).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to seed invoice sequence %s/%s-%d: %w", storeID, prefix, year, err)
	}

	return seq, r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its lines in entry order.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, storeID, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE store_id = $1 AND transaction_id = $2;
	`, storeID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	txn, err := pgx.CollectOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}

	lines, err := r.findLines(ctx, storeID, []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn.Lines = lines[transactionID]
	return &txn, nil
}

// findLines loads the lines for a set of transactions, keyed by transaction ID.
func (r *PgxTransactionRepository) findLines(ctx context.Context, storeID string, transactionIDs []string) (map[string][]domain.LineItem, error) {
	if len(transactionIDs) == 0 {
		return map[string][]domain.LineItem{}, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT `+lineColumns+`
		FROM transaction_lines
		WHERE store_id = $1 AND transaction_id = ANY($2)
		ORDER BY transaction_id, line_no;
	`, storeID, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction lines: %w", err)
	}
	lines, err := pgx.CollectRows(rows, scanLine)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction lines: %w", err)
	}

	byTxn := make(map[string][]domain.LineItem)
	for _, line := range lines {
		byTxn[line.TransactionID] = append(byTxn[line.TransactionID], line)
	}
	return byTxn, nil
}

// ListTransactions retrieves a page of one kind of invoice, newest first,
// using an (invoice date, created_at) cursor.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, storeID string, kind domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{storeID, kind}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE store_id = $1 AND kind = $2`

	if nextToken != nil {
		lastDate, lastCreated, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError(err.Error())
		}
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, lastDate, lastCreated)
	}

	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	txns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}

	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	lines, err := r.findLines(ctx, storeID, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range txns {
		txns[i].Lines = lines[txns[i].TransactionID]
	}

	return txns, token, nil
}

// ListAllTransactions retrieves the full history of one kind without lines.
// The ledger fold needs only party, total and amount paid.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context, storeID string, kind domain.TransactionKind) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE store_id = $1 AND kind = $2
		ORDER BY date DESC, created_at DESC;
	`, storeID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query all transactions: %w", err)
	}
	txns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan all transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction replaces the mutable fields and lines of an existing
// invoice. Stock and the invoice ID are never touched here.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE transactions SET
			party_name = $3,
			bill_no = $4,
			date = $5,
			subtotal = $6,
			discount_total = $7,
			tax_total = $8,
			total = $9,
			amount_paid = $10,
			payment_mode = $11,
			payment_status = $12,
			balance_due = $13,
			notes = $14,
			last_updated_at = $15,
			last_updated_by = $16
		WHERE store_id = $1 AND transaction_id = $2;
	`,
		txn.StoreID,
		txn.TransactionID,
		txn.PartyName,
		txn.BillNo,
		txn.Date,
		txn.Subtotal,
		txn.DiscountTotal,
		txn.TaxTotal,
		txn.Total,
		txn.AmountPaid,
		txn.PaymentMode,
		txn.PaymentStatus,
		txn.BalanceDue,
		txn.Notes,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Lines are replaced wholesale; entry order restarts from the request.
	_, err = tx.Exec(ctx, `DELETE FROM transaction_lines WHERE store_id = $1 AND transaction_id = $2;`, txn.StoreID, txn.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to clear lines of %s: %w", txn.TransactionID, err)
	}
	if err := insertLines(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and its lines without reversing
// stock mutations from the original commit.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, storeID, transactionID string, kind domain.TransactionKind) error {
	tag, err := r.Pool.Exec(ctx, `
		DELETE FROM transactions
		WHERE store_id = $1 AND transaction_id = $2 AND kind = $3;
	`, storeID, transactionID, kind)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
