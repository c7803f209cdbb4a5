package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/core/services"
	"github.com/smartstore/smartstore_backend/internal/utils"
	"github.com/smartstore/smartstore_backend/pkg/config"
)

// --- Mock StoreRepository ---
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *MockStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteStore(ctx context.Context, storeID string) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

func (m *MockStoreRepository) GetSettings(ctx context.Context, storeID string) (*domain.StoreSettings, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreSettings), args.Error(1)
}

func (m *MockStoreRepository) SaveSettings(ctx context.Context, settings domain.StoreSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStoreRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStoreRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "smartstore-test",
		AdminUsername:     "admin",
		AdminPassword:     "correct-horse",
	}
	suite.service = services.NewAuthService(suite.mockRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) activeStore(password string) *domain.Store {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.Store{
		StoreID:      "4821",
		PasswordHash: hash,
		StoreName:    "Asha Kirana",
		Status:       domain.StoreActive,
		ExpiryDate:   time.Now().UTC().AddDate(0, 1, 0),
	}
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestStoreLogin_Success() {
	ctx := context.Background()
	store := suite.activeStore("secret123")
	suite.mockRepo.On("FindStoreByID", ctx, "4821").Return(store, nil).Once()

	token, got, err := suite.service.StoreLogin(ctx, "4821", "secret123")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(store.StoreID, got.StoreID)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("4821", claims.Subject)
	suite.Equal(utils.RoleStore, claims.Role)
}

func (suite *AuthServiceTestSuite) TestStoreLogin_WrongPassword() {
	ctx := context.Background()
	suite.mockRepo.On("FindStoreByID", ctx, "4821").Return(suite.activeStore("secret123"), nil).Once()

	token, got, err := suite.service.StoreLogin(ctx, "4821", "wrong")

	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Empty(token)
	suite.Nil(got)
}

func (suite *AuthServiceTestSuite) TestStoreLogin_UnknownStore() {
	ctx := context.Background()
	suite.mockRepo.On("FindStoreByID", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.StoreLogin(ctx, "9999", "whatever")

	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestStoreLogin_SuspendedStore() {
	ctx := context.Background()
	store := suite.activeStore("secret123")
	store.Status = domain.StoreSuspended
	suite.mockRepo.On("FindStoreByID", ctx, "4821").Return(store, nil).Once()

	_, _, err := suite.service.StoreLogin(ctx, "4821", "secret123")

	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestStoreLogin_ExpiredPlan() {
	ctx := context.Background()
	store := suite.activeStore("secret123")
	store.ExpiryDate = time.Now().UTC().AddDate(0, 0, -1)
	suite.mockRepo.On("FindStoreByID", ctx, "4821").Return(store, nil).Once()

	_, _, err := suite.service.StoreLogin(ctx, "4821", "secret123")

	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestAdminLogin_Success() {
	token, err := suite.service.AdminLogin(context.Background(), "admin", "correct-horse")

	suite.Require().NoError(err)
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(utils.RoleAdmin, claims.Role)
	suite.Equal("admin", claims.Subject)
}

func (suite *AuthServiceTestSuite) TestAdminLogin_WrongCredentials() {
	_, err := suite.service.AdminLogin(context.Background(), "admin", "wrong")
	suite.ErrorIs(err, services.ErrInvalidCredentials)

	_, err = suite.service.AdminLogin(context.Background(), "root", "correct-horse")
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
