package services

import (
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/pkg/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	storeSvc := NewStoreService(repos.StoreRepo)

	return &portssvc.ServiceContainer{
		Product:     NewProductService(repos.ProductRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.ProductRepo),
		Movement:    NewMovementService(repos.MovementRepo),
		Ledger:      NewLedgerService(repos.TransactionRepo, repos.MovementRepo),
		Supplier:    NewSupplierService(repos.SupplierRepo),
		Store:       storeSvc,
		Settings:    storeSvc,
		Reporting:   NewReportingService(repos.ReportingRepo),
		Auth:        NewAuthService(repos.StoreRepo, cfg),
	}
}
