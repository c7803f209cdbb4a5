package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/core/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
)

type MovementServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMovementRepository
	service  portssvc.MovementSvcFacade
	now      time.Time
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMovementRepository)
	suite.now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewMovementService(
		suite.mockRepo,
		services.WithMovementClock(func() time.Time { return suite.now }),
	)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_ReceiptID() {
	ctx := context.Background()

	var saved domain.MoneyMovement
	suite.mockRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.MoneyMovement")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.MoneyMovement)
		}).Return(nil).Once()

	req := dto.CreateMovementRequest{PartyName: "Asha Traders", Amount: dec("250")}
	movement, err := suite.service.CreateMovement(ctx, "4821", domain.KindReceipt, req, "tester")

	suite.Require().NoError(err)
	suite.Equal(services.MovementID(domain.KindReceipt, suite.now), movement.MovementID)
	suite.Equal(domain.KindReceipt, movement.Kind)
	suite.Equal("Cash", movement.Mode)
	suite.Equal(saved.MovementID, movement.MovementID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_RejectsNonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreateMovementRequest{PartyName: "Asha Traders", Amount: dec("0")}
	_, err := suite.service.CreateMovement(ctx, "4821", domain.KindPayment, req, "tester")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestDeleteMovement() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteMovement", ctx, "4821", "PAY-1750000000000", domain.KindPayment).Return(nil).Once()

	err := suite.service.DeleteMovement(ctx, "4821", "PAY-1750000000000", domain.KindPayment)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}

func TestMovementID(t *testing.T) {
	at := time.UnixMilli(1718000000000).UTC()
	assert.Equal(t, "REC-1718000000000", services.MovementID(domain.KindReceipt, at))
	assert.Equal(t, "PAY-1718000000000", services.MovementID(domain.KindPayment, at))
}
