package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/core/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, storeID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, storeID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, storeID string, kind domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, storeID, kind, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactions(ctx context.Context, storeID string, kind domain.TransactionKind) ([]domain.Transaction, error) {
	args := m.Called(ctx, storeID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) AllocateInvoiceSeq(ctx context.Context, storeID, prefix string, year int) (int64, error) {
	args := m.Called(ctx, storeID, prefix, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, stockChanges []domain.StockChange) error {
	args := m.Called(ctx, txn, stockChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, storeID, transactionID string, kind domain.TransactionKind) error {
	args := m.Called(ctx, storeID, transactionID, kind)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, storeID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, storeID string, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, storeID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, storeID, productID string) error {
	args := m.Called(ctx, storeID, productID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockProductRepo *MockProductRepository
	service         portssvc.TransactionSvcFacade
	now             time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockProductRepo,
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCommitSale_ComputesTotalsAndStatus() {
	ctx := context.Background()
	storeID := "4821"

	products := map[string]domain.Product{
		"p1": {ProductID: "p1", StoreID: storeID, Name: "Rice", Stock: dec("50"), SellPrice: dec("50")},
		"p2": {ProductID: "p2", StoreID: storeID, Name: "Oil", Stock: dec("10"), SellPrice: dec("150")},
	}
	suite.mockProductRepo.On("FindProductsByIDs", ctx, storeID, []string{"p1", "p2"}).Return(products, nil).Once()
	suite.mockTxnRepo.On("AllocateInvoiceSeq", ctx, storeID, "SAL", 2025).Return(int64(1), nil).Once()

	var saved domain.Transaction
	var savedChanges []domain.StockChange
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Transaction)
			savedChanges = args.Get(2).([]domain.StockChange)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		PartyName: "Asha Traders",
		Lines: []dto.LineItemRequest{
			{ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("50"), DiscountPercent: dec("10"), TaxPercent: dec("5")},
			{ProductID: "p2", Quantity: dec("1"), UnitPrice: dec("150"), DiscountPercent: dec("0"), TaxPercent: dec("0")},
		},
		AmountPaid: dec("100"),
	}

	txn, err := suite.service.CommitTransaction(ctx, storeID, domain.KindSale, req, "tester")

	suite.Require().NoError(err)
	suite.Equal("SAL-2025-0001", txn.TransactionID)
	suite.True(txn.Subtotal.Equal(dec("250")), "subtotal %s", txn.Subtotal)
	suite.True(txn.DiscountTotal.Equal(dec("10")), "discount %s", txn.DiscountTotal)
	suite.True(txn.TaxTotal.Equal(dec("4.5")), "tax %s", txn.TaxTotal)
	suite.True(txn.Total.Equal(dec("244.5")), "total %s", txn.Total)
	suite.Equal(domain.StatusPartial, txn.PaymentStatus)
	suite.True(txn.BalanceDue.Equal(dec("144.5")), "balance %s", txn.BalanceDue)

	suite.Equal(saved.TransactionID, txn.TransactionID)
	suite.Require().Len(savedChanges, 2)
	suite.True(savedChanges[0].QuantityDelta.Equal(dec("-2")))
	suite.True(savedChanges[0].SoldTodayDelta.Equal(dec("2")))
	suite.True(savedChanges[0].ClampAtZero)
	suite.True(savedChanges[1].QuantityDelta.Equal(dec("-1")))

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCommitSale_InsufficientStockRejectsWhole() {
	ctx := context.Background()
	storeID := "4821"

	products := map[string]domain.Product{
		"p1": {ProductID: "p1", Name: "Rice", Stock: dec("50"), SellPrice: dec("50")},
		"p2": {ProductID: "p2", Name: "Oil", Stock: dec("1"), SellPrice: dec("150")},
	}
	suite.mockProductRepo.On("FindProductsByIDs", ctx, storeID, []string{"p1", "p2"}).Return(products, nil).Once()

	req := dto.CreateTransactionRequest{
		PartyName: "Asha Traders",
		Lines: []dto.LineItemRequest{
			{ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("50")},
			{ProductID: "p2", Quantity: dec("5"), UnitPrice: dec("150")},
		},
	}

	txn, err := suite.service.CommitTransaction(ctx, storeID, domain.KindSale, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(txn)

	// Nothing allocated, nothing written: the first failing line aborts before
	// any side effect.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "AllocateInvoiceSeq", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCommitSale_UnknownProductRejected() {
	ctx := context.Background()
	storeID := "4821"

	suite.mockProductRepo.On("FindProductsByIDs", ctx, storeID, []string{"ghost"}).
		Return(map[string]domain.Product{}, nil).Once()

	req := dto.CreateTransactionRequest{
		PartyName: "Asha Traders",
		Lines:     []dto.LineItemRequest{{ProductID: "ghost", ProductName: "Ghost", Quantity: dec("1")}},
	}

	_, err := suite.service.CommitTransaction(ctx, storeID, domain.KindSale, req, "tester")
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (suite *TransactionServiceTestSuite) TestCommitSale_FallsBackToCatalogueSellPrice() {
	ctx := context.Background()
	storeID := "4821"

	products := map[string]domain.Product{
		"p1": {ProductID: "p1", Name: "Rice", Stock: dec("50"), SellPrice: dec("55")},
	}
	suite.mockProductRepo.On("FindProductsByIDs", ctx, storeID, []string{"p1"}).Return(products, nil).Once()
	suite.mockTxnRepo.On("AllocateInvoiceSeq", ctx, storeID, "SAL", 2025).Return(int64(3), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		PartyName: "Walk-in",
		Lines:     []dto.LineItemRequest{{ProductID: "p1", Quantity: dec("2")}},
	}

	txn, err := suite.service.CommitTransaction(ctx, storeID, domain.KindSale, req, "tester")

	suite.Require().NoError(err)
	suite.Equal("SAL-2025-0003", txn.TransactionID)
	suite.True(txn.Lines[0].UnitPrice.Equal(dec("55")))
	suite.Equal("Rice", txn.Lines[0].ProductName)
	suite.True(txn.Total.Equal(dec("110")))
}

func (suite *TransactionServiceTestSuite) TestCommitPurchase_SkipsUnresolvableLines() {
	ctx := context.Background()
	storeID := "4821"

	products := map[string]domain.Product{
		"p1": {ProductID: "p1", Name: "Rice", Stock: dec("5")},
	}
	suite.mockProductRepo.On("FindProductsByIDs", ctx, storeID, []string{"p1", "gone"}).Return(products, nil).Once()
	suite.mockTxnRepo.On("AllocateInvoiceSeq", ctx, storeID, "PUR", 2025).Return(int64(1), nil).Once()

	var savedChanges []domain.StockChange
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedChanges = args.Get(2).([]domain.StockChange)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		PartyName: "Mehta Wholesale",
		BillNo:    "MW-77",
		Lines: []dto.LineItemRequest{
			{ProductID: "p1", Quantity: dec("20"), UnitPrice: dec("40")},
			{ProductID: "gone", ProductName: "Discontinued", Quantity: dec("5"), UnitPrice: dec("10")},
			{ProductName: "Loose jaggery", Quantity: dec("3"), UnitPrice: dec("30")},
		},
	}

	txn, err := suite.service.CommitTransaction(ctx, storeID, domain.KindPurchase, req, "tester")

	suite.Require().NoError(err)
	suite.Equal("PUR-2025-0001", txn.TransactionID)
	// All three lines priced into the invoice.
	suite.True(txn.Total.Equal(dec("940")), "total %s", txn.Total)
	// Only the resolvable line adjusts stock.
	suite.Require().Len(savedChanges, 1)
	suite.Equal("p1", savedChanges[0].ProductID)
	suite.True(savedChanges[0].QuantityDelta.Equal(dec("20")))
	suite.True(savedChanges[0].SoldTodayDelta.IsZero())
	suite.False(savedChanges[0].ClampAtZero)
}

func (suite *TransactionServiceTestSuite) TestCommitTransaction_ValidationFailures() {
	ctx := context.Background()

	_, err := suite.service.CommitTransaction(ctx, "4821", domain.KindSale, dto.CreateTransactionRequest{
		PartyName: "  ",
		Lines:     []dto.LineItemRequest{{Quantity: dec("1")}},
	}, "tester")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CommitTransaction(ctx, "4821", domain.KindSale, dto.CreateTransactionRequest{
		PartyName: "Someone",
	}, "tester")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RecomputesWithoutStockOrNewID() {
	ctx := context.Background()
	storeID := "4821"

	existing := &domain.Transaction{
		TransactionID: "SAL-2025-0007",
		StoreID:       storeID,
		Kind:          domain.KindSale,
		PartyName:     "Asha Traders",
		Date:          time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		AmountPaid:    dec("0"),
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, storeID, "SAL-2025-0007").Return(existing, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, storeID, []string{"p1"}).
		Return(map[string]domain.Product{"p1": {ProductID: "p1", Name: "Rice", Stock: dec("0"), SellPrice: dec("50")}}, nil).Once()

	var updated domain.Transaction
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	req := dto.UpdateTransactionRequest{
		PartyName: "Asha Traders",
		Lines: []dto.LineItemRequest{
			{ProductID: "p1", Quantity: dec("4"), UnitPrice: dec("50")},
		},
		AmountPaid: dec("200"),
	}

	txn, err := suite.service.UpdateTransaction(ctx, storeID, "SAL-2025-0007", req, "tester")

	suite.Require().NoError(err)
	suite.Equal("SAL-2025-0007", txn.TransactionID)
	suite.True(txn.Total.Equal(dec("200")))
	suite.Equal(domain.StatusPaid, txn.PaymentStatus)
	suite.True(txn.BalanceDue.IsZero())
	suite.Equal(updated.TransactionID, txn.TransactionID)

	// Updates never touch stock or the sequence, even with zero on hand.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "AllocateInvoiceSeq", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NoStockReversal() {
	ctx := context.Background()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, "4821", "SAL-2025-0001", domain.KindSale).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "4821", "SAL-2025-0001", domain.KindSale)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
