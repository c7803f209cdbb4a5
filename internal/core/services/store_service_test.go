package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/core/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/utils"
)

type StoreServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStoreRepository
	registry portssvc.StoreSvcFacade
	settings portssvc.SettingsSvcFacade
}

func (suite *StoreServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStoreRepository)
	svc := services.NewStoreService(suite.mockRepo)
	suite.registry = svc
	suite.settings = svc
}

// --- Test Cases ---

func (suite *StoreServiceTestSuite) TestRegisterStore_GeneratesWorkingCredentials() {
	ctx := context.Background()

	var saved domain.Store
	suite.mockRepo.On("SaveStore", ctx, mock.AnythingOfType("domain.Store")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Store)
		}).Return(nil).Once()

	req := dto.CreateStoreRequest{
		StoreName: "Asha Kirana",
		OwnerName: "Asha Patel",
		Mobile:    "9876500000",
	}
	store, password, err := suite.registry.RegisterStore(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Len(store.StoreID, 4)
	suite.Len(password, 8)
	suite.Equal(domain.StoreActive, store.Status)
	suite.Equal("Monthly", store.PlanType)

	// The returned plaintext must verify against the stored hash.
	suite.True(utils.CheckPasswordHash(password, saved.PasswordHash))
	suite.NotEqual(password, saved.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestRegisterStore_RetriesOnDuplicateID() {
	ctx := context.Background()

	suite.mockRepo.On("SaveStore", ctx, mock.AnythingOfType("domain.Store")).
		Return(apperrors.NewConflictError("store ID taken")).Once()
	suite.mockRepo.On("SaveStore", ctx, mock.AnythingOfType("domain.Store")).
		Return(nil).Once()

	store, _, err := suite.registry.RegisterStore(ctx, dto.CreateStoreRequest{
		StoreName: "Asha Kirana",
		OwnerName: "Asha Patel",
		Mobile:    "9876500000",
	}, "admin")

	suite.Require().NoError(err)
	suite.NotNil(store)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveStore", 2)
}

func (suite *StoreServiceTestSuite) TestUpdateStore_RotatesPassword() {
	ctx := context.Background()
	existing := &domain.Store{StoreID: "4821", PasswordHash: "old-hash", Status: domain.StoreActive}
	suite.mockRepo.On("FindStoreByID", ctx, "4821").Return(existing, nil).Once()

	var updated domain.Store
	suite.mockRepo.On("UpdateStore", ctx, mock.AnythingOfType("domain.Store")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Store)
		}).Return(nil).Once()

	newPassword := "rotated99"
	suspended := domain.StoreSuspended
	_, err := suite.registry.UpdateStore(ctx, "4821", dto.UpdateStoreRequest{
		Password: &newPassword,
		Status:   &suspended,
	}, "admin")

	suite.Require().NoError(err)
	suite.Equal(domain.StoreSuspended, updated.Status)
	suite.True(utils.CheckPasswordHash(newPassword, updated.PasswordHash))
}

func (suite *StoreServiceTestSuite) TestGetSettings_FallsBackToRegistry() {
	ctx := context.Background()
	suite.mockRepo.On("GetSettings", ctx, "4821").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindStoreByID", ctx, "4821").Return(&domain.Store{
		StoreID:   "4821",
		StoreName: "Asha Kirana",
		Mobile:    "9876500000",
		Address:   "Main Road",
	}, nil).Once()

	settings, err := suite.settings.GetSettings(ctx, "4821")

	suite.Require().NoError(err)
	suite.Equal("Asha Kirana", settings.StoreName)
	suite.Equal("9876500000", settings.Phone)
	suite.Equal("Main Road", settings.Address)
	suite.Empty(settings.GSTIN)
}

func (suite *StoreServiceTestSuite) TestUpdateSettings_Upserts() {
	ctx := context.Background()
	suite.mockRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.StoreSettings) bool {
		return s.StoreID == "4821" && s.GSTIN == "22AAAAA0000A1Z5"
	})).Return(nil).Once()

	settings, err := suite.settings.UpdateSettings(ctx, "4821", dto.UpdateSettingsRequest{
		StoreName: "Asha Kirana",
		GSTIN:     "22AAAAA0000A1Z5",
	})

	suite.Require().NoError(err)
	suite.Equal("4821", settings.StoreID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestStoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceTestSuite))
}
