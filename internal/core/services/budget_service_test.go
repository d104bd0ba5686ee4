package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/core/services"
	"github.com/moneymap/moneymap_backend/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo    *MockBudgetRepository
	mockAnalyticsRepo *MockAnalyticsRepository
	service           portssvc.BudgetSvcFacade

	userID string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockAnalyticsRepo = new(MockAnalyticsRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockAnalyticsRepo)
	suite.userID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category: "Groceries",
		Amount:   amt(300),
		Month:    5,
		Year:     2024,
	}

	suite.mockBudgetRepo.On("FindBudgetByPeriodCategory", ctx, suite.userID, "Groceries", 5, 2024).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.NotEmpty(budget.BudgetID)
	suite.Equal("Groceries", budget.Category)
	suite.Equal(5, budget.Month)
	suite.Equal(2024, budget.Year)
	suite.WithinDuration(time.Now(), budget.CreatedAt, time.Second)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicatePeriodCategory() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category: "Groceries",
		Amount:   amt(300),
		Month:    5,
		Year:     2024,
	}
	existing := &domain.Budget{BudgetID: uuid.NewString(), Category: "Groceries", Month: 5, Year: 2024}

	suite.mockBudgetRepo.On("FindBudgetByPeriodCategory", ctx, suite.userID, "Groceries", 5, 2024).
		Return(existing, nil).Once()

	_, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_InvalidMonth() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category: "Groceries",
		Amount:   amt(300),
		Month:    13,
		Year:     2024,
	}

	_, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestListBudgets_AnnotatesSpending() {
	ctx := context.Background()
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   suite.userID,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(100),
		Month:    5,
		Year:     2024,
	}

	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.userID, (*int)(nil), (*int)(nil)).
		Return([]domain.Budget{budget}, nil).Once()
	suite.mockAnalyticsRepo.On("SumExpensesByCategory", mock.Anything, suite.userID, "Groceries",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(120), nil).Once()

	statuses, err := suite.service.ListBudgets(ctx, suite.userID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)
	suite.True(decimal.NewFromInt(120).Equal(statuses[0].Spent))
	suite.True(decimal.NewFromInt(-20).Equal(statuses[0].Remaining))
	suite.True(statuses[0].Exceeded)
	suite.mockAnalyticsRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListBudgets_UnderBudgetNotExceeded() {
	ctx := context.Background()
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   suite.userID,
		Category: "Transport",
		Amount:   decimal.NewFromInt(100),
		Month:    5,
		Year:     2024,
	}

	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.userID, (*int)(nil), (*int)(nil)).
		Return([]domain.Budget{budget}, nil).Once()
	suite.mockAnalyticsRepo.On("SumExpensesByCategory", mock.Anything, suite.userID, "Transport",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(100), nil).Once()

	statuses, err := suite.service.ListBudgets(ctx, suite.userID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)
	suite.True(statuses[0].Remaining.IsZero())
	// Spending exactly the cap does not exceed it.
	suite.False(statuses[0].Exceeded)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_ChangesAmount() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	existing := &domain.Budget{
		BudgetID: budgetID,
		UserID:   suite.userID,
		Category: "Groceries",
		Amount:   decimal.NewFromInt(100),
		Month:    5,
		Year:     2024,
	}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.userID, budgetID).Return(existing, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.UpdateBudget(ctx, suite.userID, budgetID, dto.UpdateBudgetRequest{Amount: amt(150)})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(150).Equal(budget.Amount))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	ctx := context.Background()
	budgetID := uuid.NewString()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.userID, budgetID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBudget(ctx, suite.userID, budgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "DeleteBudget")
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
