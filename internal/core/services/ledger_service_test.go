package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/core/services"
)

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, storeID string, kind domain.MovementKind, limit int, nextToken *string) ([]domain.MoneyMovement, *string, error) {
	args := m.Called(ctx, storeID, kind, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.MoneyMovement), token, args.Error(2)
}

func (m *MockMovementRepository) ListAllMovements(ctx context.Context, storeID string, kind domain.MovementKind) ([]domain.MoneyMovement, error) {
	args := m.Called(ctx, storeID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneyMovement), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.MoneyMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, storeID, movementID string, kind domain.MovementKind) error {
	args := m.Called(ctx, storeID, movementID, kind)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	mockMovRepo *MockMovementRepository
	service     portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockMovRepo = new(MockMovementRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockMovRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCustomerLedger_FoldsSalesAndReceipts() {
	ctx := context.Background()
	storeID := "4821"

	sales := []domain.Transaction{
		{PartyName: "Asha Traders", Total: dec("500"), AmountPaid: dec("200")},
		{PartyName: "Asha Traders", Total: dec("300"), AmountPaid: dec("0")},
		{PartyName: "Bharat Stores", Total: dec("150"), AmountPaid: dec("150")},
	}
	receipts := []domain.MoneyMovement{
		{PartyName: "Asha Traders", Amount: dec("100")},
	}
	suite.mockTxnRepo.On("ListAllTransactions", ctx, storeID, domain.KindSale).Return(sales, nil).Once()
	suite.mockMovRepo.On("ListAllMovements", ctx, storeID, domain.KindReceipt).Return(receipts, nil).Once()

	entries, err := suite.service.CustomerLedger(ctx, storeID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	// Highest outstanding balance first.
	suite.Equal("Asha Traders", entries[0].PartyName)
	suite.True(entries[0].TotalBilled.Equal(dec("800")))
	suite.True(entries[0].TotalSettled.Equal(dec("300")))
	suite.True(entries[0].Balance.Equal(dec("500")))

	suite.Equal("Bharat Stores", entries[1].PartyName)
	suite.True(entries[1].Balance.IsZero())

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockMovRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSupplierLedger_UsesPurchasesAndPayments() {
	ctx := context.Background()
	storeID := "4821"

	purchases := []domain.Transaction{
		{PartyName: "Mehta Wholesale", Total: dec("2000"), AmountPaid: dec("500")},
	}
	payments := []domain.MoneyMovement{
		{PartyName: "Mehta Wholesale", Amount: dec("700")},
	}
	suite.mockTxnRepo.On("ListAllTransactions", ctx, storeID, domain.KindPurchase).Return(purchases, nil).Once()
	suite.mockMovRepo.On("ListAllMovements", ctx, storeID, domain.KindPayment).Return(payments, nil).Once()

	entries, err := suite.service.SupplierLedger(ctx, storeID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].Balance.Equal(dec("800")))
}

func (suite *LedgerServiceTestSuite) TestLedger_RepoErrorPropagates() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListAllTransactions", ctx, "4821", domain.KindSale).Return(nil, assert.AnError).Once()

	entries, err := suite.service.CustomerLedger(ctx, "4821")

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(entries)
	suite.mockMovRepo.AssertNotCalled(suite.T(), "ListAllMovements", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// FoldLedger is pure; exercise its edge cases without the suite.
func TestFoldLedger(t *testing.T) {
	t.Run("empty history yields no entries", func(t *testing.T) {
		entries := services.FoldLedger(nil, nil)
		assert.Empty(t, entries)
	})

	t.Run("overpaid party carries a negative balance", func(t *testing.T) {
		entries := services.FoldLedger(
			[]domain.Transaction{{PartyName: "Asha", Total: dec("100"), AmountPaid: dec("100")}},
			[]domain.MoneyMovement{{PartyName: "Asha", Amount: dec("50")}},
		)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].Balance.Equal(dec("-50")))
	})

	t.Run("movement-only party appears with zero billed", func(t *testing.T) {
		entries := services.FoldLedger(nil, []domain.MoneyMovement{{PartyName: "Asha", Amount: dec("50")}})
		require.Len(t, entries, 1)
		assert.True(t, entries[0].TotalBilled.IsZero())
		assert.True(t, entries[0].Balance.Equal(dec("-50")))
	})

	t.Run("party names match case sensitively", func(t *testing.T) {
		entries := services.FoldLedger(
			[]domain.Transaction{
				{PartyName: "asha", Total: dec("10")},
				{PartyName: "Asha", Total: dec("20")},
			},
			nil,
		)
		assert.Len(t, entries, 2)
	})

	t.Run("equal balances order by party name", func(t *testing.T) {
		entries := services.FoldLedger(
			[]domain.Transaction{
				{PartyName: "Zara", Total: dec("100")},
				{PartyName: "Asha", Total: dec("100")},
			},
			nil,
		)
		require.Len(t, entries, 2)
		assert.Equal(t, "Asha", entries[0].PartyName)
		assert.Equal(t, "Zara", entries[1].PartyName)
	})
}
