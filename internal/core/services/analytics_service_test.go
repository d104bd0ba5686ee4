package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/core/services"
	"github.com/moneymap/moneymap_backend/internal/utils/timewindow"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockAnalyticsRepo *MockAnalyticsRepository
	service           portssvc.AnalyticsSvcFacade

	userID string
	now    time.Time
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockAnalyticsRepo = new(MockAnalyticsRepository)
	suite.now = time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	suite.service = services.NewAnalyticsService(suite.mockAnalyticsRepo,
		services.WithClock(func() time.Time { return suite.now }))
	suite.userID = uuid.NewString()
}

func txnOn(date time.Time, amount int64, txType domain.TransactionType, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        decimal.NewFromInt(amount),
		Type:          txType,
		Category:      category,
		Date:          date,
	}
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalytics_MonthlyDefaultWindow() {
	ctx := context.Background()
	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAnalyticsRepo.On("FindByDateRange", ctx, suite.userID, monthStart, suite.now).
		Return([]domain.Transaction{}, nil).Once()

	report, err := suite.service.GetAnalytics(ctx, suite.userID, timewindow.Monthly, nil, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.Totals.TotalIncome.IsZero())
	suite.Empty(report.Categories)
	suite.mockAnalyticsRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalytics_TotalsTrendsAndCategories() {
	ctx := context.Background()
	day1 := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	day1Later := time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		txnOn(day1, 1000, domain.Income, "Salary"),
		txnOn(day1, 50, domain.Expense, "Groceries"),
		txnOn(day1Later, 30, domain.Expense, "Groceries"),
		txnOn(day2, 20, domain.Expense, "Transport"),
	}

	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	suite.mockAnalyticsRepo.On("FindByDateRange", ctx, suite.userID, monthStart, suite.now).
		Return(txns, nil).Once()

	report, err := suite.service.GetAnalytics(ctx, suite.userID, timewindow.Monthly, nil, nil)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1000).Equal(report.Totals.TotalIncome))
	suite.True(decimal.NewFromInt(100).Equal(report.Totals.TotalExpense))
	suite.True(decimal.NewFromInt(900).Equal(report.Totals.NetSavings))

	suite.Require().Len(report.IncomeTrend, 1)
	suite.Equal("2024-03-10", report.IncomeTrend[0].Date)

	// Same-day expenses collapse into one bucket, days stay chronological.
	suite.Require().Len(report.ExpenseTrend, 2)
	suite.Equal("2024-03-10", report.ExpenseTrend[0].Date)
	suite.True(decimal.NewFromInt(80).Equal(report.ExpenseTrend[0].Amount))
	suite.Equal("2024-03-11", report.ExpenseTrend[1].Date)

	// Category breakdown covers expenses only.
	suite.Require().Len(report.Categories, 2)
	suite.Equal("Groceries", report.Categories[0].Category)
	suite.True(decimal.NewFromInt(80).Equal(report.Categories[0].Amount))
	suite.Equal("Transport", report.Categories[1].Category)
}

func (suite *AnalyticsServiceTestSuite) TestGetAnalytics_ExplicitBoundsWin() {
	ctx := context.Background()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAnalyticsRepo.On("FindByDateRange", ctx, suite.userID, start, end).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetAnalytics(ctx, suite.userID, timewindow.Daily, &start, &end)

	suite.Require().NoError(err)
	suite.mockAnalyticsRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetDateView_TodayWindow() {
	ctx := context.Background()
	selected := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)
	dayStart := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2024, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	txns := []domain.Transaction{
		txnOn(selected, 40, domain.Expense, "Groceries"),
	}
	suite.mockAnalyticsRepo.On("FindByDateRangeWithAccounts", ctx, suite.userID, dayStart, dayEnd).
		Return(txns, nil).Once()

	view, err := suite.service.GetDateView(ctx, suite.userID, timewindow.Today, selected)

	suite.Require().NoError(err)
	suite.Equal(dayStart, view.StartDate)
	suite.Equal(dayEnd, view.EndDate)
	suite.True(decimal.NewFromInt(40).Equal(view.Totals.TotalExpense))
	suite.Len(view.Transactions, 1)
}

func (suite *AnalyticsServiceTestSuite) TestGetDateView_InvalidView() {
	ctx := context.Background()

	_, err := suite.service.GetDateView(ctx, suite.userID, timewindow.View("quarter"), suite.now)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAnalyticsRepo.AssertNotCalled(suite.T(), "FindByDateRangeWithAccounts")
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
