package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:     newPgxProductRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		MovementRepo:    newPgxMovementRepository(dbPool),
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		StoreRepo:       newPgxStoreRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
