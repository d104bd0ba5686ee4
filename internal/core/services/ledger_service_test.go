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
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/core/services"
	"github.com/moneymap/moneymap_backend/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade

	userID    string
	accountID string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockAccountRepo)
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) account(id string) *domain.Account {
	return &domain.Account{
		AccountID:   id,
		UserID:      suite.userID,
		Name:        "Checking",
		AccountType: domain.BankAccount,
		Balance:     decimal.NewFromInt(1000),
	}
}

func (suite *LedgerServiceTestSuite) existingTransaction(amount int64, txType domain.TransactionType) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		AccountID:     suite.accountID,
		Amount:        decimal.NewFromInt(amount),
		Type:          txType,
		Category:      "Groceries",
		Date:          time.Now().UTC(),
	}
}

func amt(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// --- Create ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_IncomeAppliesPositiveDelta() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amt(100),
		Type:      domain.Income,
		Category:  "Salary",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(suite.account(suite.accountID), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimal.NewFromInt(100)).
		Return(decimal.NewFromInt(1100), nil).Once()

	txn, balance, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Income, txn.Type)
	suite.True(decimal.NewFromInt(1100).Equal(balance))
	suite.WithinDuration(time.Now(), txn.Date, time.Second)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ExpenseAppliesNegativeDelta() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amt(40),
		Type:      domain.Expense,
		Category:  "Groceries",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(suite.account(suite.accountID), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), decimal.NewFromInt(-40)).
		Return(decimal.NewFromInt(960), nil).Once()

	_, balance, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(960).Equal(balance))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ZeroAmountIsAccepted() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amt(0),
		Type:      domain.Expense,
		Category:  "Misc",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(suite.account(suite.accountID), nil).Once()
	// The delta's exponent depends on how it was computed, so match on value.
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() })).
		Return(decimal.NewFromInt(1000), nil).Once()

	_, balance, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1000).Equal(balance))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amt(-5),
		Type:      domain.Income,
		Category:  "Salary",
	}

	_, _, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_UnknownTypeRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amt(10),
		Type:      domain.TransactionType("transfer"),
		Category:  "Misc",
	}

	_, _, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_MissingAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Amount:    amt(10),
		Type:      domain.Income,
		Category:  "Salary",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

// --- Update ---

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_SameAccountCombinesDeltas() {
	ctx := context.Background()
	existing := suite.existingTransaction(100, domain.Income)
	newType := domain.Expense

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(suite.account(suite.accountID), nil).Once()

	// Reverting +100 and applying -40 is one combined -140 delta.
	expectedChanges := map[string]decimal.Decimal{
		suite.accountID: decimal.NewFromInt(-140),
	}
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), expectedChanges, suite.accountID).
		Return(decimal.NewFromInt(860), nil).Once()

	req := dto.UpdateTransactionRequest{Amount: amt(40), Type: &newType}
	txn, balance, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, txn.Type)
	suite.True(decimal.NewFromInt(40).Equal(txn.Amount))
	suite.True(decimal.NewFromInt(860).Equal(balance))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_CrossAccountMovesBothBalances() {
	ctx := context.Background()
	existing := suite.existingTransaction(50, domain.Expense)
	targetAccountID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(suite.account(suite.accountID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, targetAccountID).
		Return(suite.account(targetAccountID), nil).Once()

	// The old account gets the expense back (+50), the new one absorbs it (-50).
	expectedChanges := map[string]decimal.Decimal{
		suite.accountID: decimal.NewFromInt(50),
		targetAccountID: decimal.NewFromInt(-50),
	}
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction"), expectedChanges, targetAccountID).
		Return(decimal.NewFromInt(950), nil).Once()

	req := dto.UpdateTransactionRequest{AccountID: &targetAccountID}
	txn, balance, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(targetAccountID, txn.AccountID)
	suite.True(decimal.NewFromInt(950).Equal(balance))
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{Amount: amt(5)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_EmptyCategoryRejected() {
	ctx := context.Background()
	existing := suite.existingTransaction(100, domain.Income)
	empty := "   "

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.accountID).
		Return(suite.account(suite.accountID), nil).Once()

	_, _, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, dto.UpdateTransactionRequest{Category: &empty})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

// --- Delete ---

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_RevertsSignedDelta() {
	ctx := context.Background()
	existing := suite.existingTransaction(75, domain.Expense)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).
		Return(existing, nil).Once()
	// Deleting a 75 expense returns +75 to the account.
	suite.mockTxnRepo.On("DeleteTransaction", ctx, suite.userID, existing.TransactionID, suite.accountID, decimal.NewFromInt(75)).
		Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, existing.TransactionID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

// --- List ---

func (suite *LedgerServiceTestSuite) TestListTransactions_DefaultsAndClampsLimit() {
	ctx := context.Background()

	defaulted := portsrepo.TransactionFilter{Limit: 50}
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, defaulted).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, suite.userID, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)

	clamped := portsrepo.TransactionFilter{Limit: 200}
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, clamped).
		Return([]domain.Transaction{}, nil).Once()

	_, err = suite.service.ListTransactions(ctx, suite.userID, portsrepo.TransactionFilter{Limit: 999})
	suite.Require().NoError(err)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_InvalidTypeRejected() {
	ctx := context.Background()

	_, err := suite.service.ListTransactions(ctx, suite.userID, portsrepo.TransactionFilter{Type: "transfer"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
