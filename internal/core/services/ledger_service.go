package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/dto"
	"github.com/moneymap/moneymap_backend/internal/utils/accounting"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ledgerService is the sole write path for transactions. Every mutation is
// expressed as signed balance deltas applied exactly once to exactly the
// account(s) currently holding the transaction, so the balance invariant
// holds without ever re-summing history.
type ledgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
}

// NewLedgerService creates the ledger consistency engine.
func NewLedgerService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateAmount enforces the non-negative magnitude rule. Zero is allowed
// and produces a zero delta.
func validateAmount(amount *decimal.Decimal) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Zero, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	return *amount, nil
}

// CreateTransaction validates the request, verifies account ownership, and
// persists the record together with its balance effect in one atomic unit.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, decimal.Decimal, error) {
	amount, err := validateAmount(req.Amount)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !domain.ValidTransactionType(req.Type) {
		return nil, decimal.Zero, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, decimal.Zero, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}

	// Ownership check: the account must exist for this user.
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
		}
		s.LogError(ctx, err, "Failed to fetch account for transaction create", slog.String("account_id", req.AccountID))
		return nil, decimal.Zero, fmt.Errorf("failed to fetch account: %w", err)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	note := ""
	if req.Note != nil {
		note = strings.TrimSpace(*req.Note)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		Amount:        amount,
		Type:          req.Type,
		Category:      category,
		Date:          date,
		Note:          note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	delta, err := accounting.SignedDelta(txn.Type, txn.Amount)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	newBalance, err := s.transactionRepo.SaveTransaction(ctx, txn, delta)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
		return nil, decimal.Zero, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("account_id", txn.AccountID))
	return &txn, newBalance, nil
}

// GetTransactionByID fetches a single transaction scoped to the user.
func (s *ledgerService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// UpdateTransaction reconciles the balance effect of a patch. The previous
// effect is reverted and the new one applied: on the same account the two
// deltas collapse into one combined mutation, on different accounts both
// mutations happen inside the same storage transaction. Either way no reader
// can observe a transiently wrong balance.
func (s *ledgerService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, decimal.Decimal, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	oldAccountID := txn.AccountID
	oldAmount := txn.Amount
	oldType := txn.Type

	newAccountID := oldAccountID
	if req.AccountID != nil && *req.AccountID != "" {
		newAccountID = *req.AccountID
	}

	newAmount := oldAmount
	if req.Amount != nil {
		newAmount, err = validateAmount(req.Amount)
		if err != nil {
			return nil, decimal.Zero, err
		}
	}
	newType := oldType
	if req.Type != nil {
		if !domain.ValidTransactionType(*req.Type) {
			return nil, decimal.Zero, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		newType = *req.Type
	}

	// Both the current and the target account must resolve for this user.
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, oldAccountID); err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, oldAccountID)
	}
	if newAccountID != oldAccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, newAccountID); err != nil {
			return nil, decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, newAccountID)
		}
	}

	revertDelta, err := accounting.RevertDelta(oldType, oldAmount)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	applyDelta, err := accounting.SignedDelta(newType, newAmount)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	balanceChanges := make(map[string]decimal.Decimal)
	if newAccountID == oldAccountID {
		// One combined mutation on one row instead of two observable writes.
		balanceChanges[oldAccountID] = revertDelta.Add(applyDelta)
	} else {
		balanceChanges[oldAccountID] = revertDelta
		balanceChanges[newAccountID] = applyDelta
	}

	now := time.Now().UTC()
	txn.AccountID = newAccountID
	txn.Amount = newAmount
	txn.Type = newType
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, decimal.Zero, fmt.Errorf("%w: category must not be empty", apperrors.ErrValidation)
		}
		txn.Category = category
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Note != nil {
		txn.Note = strings.TrimSpace(*req.Note)
	}
	txn.LastUpdatedAt = now

	newBalance, err := s.transactionRepo.UpdateTransaction(ctx, *txn, balanceChanges, newAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, decimal.Zero, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID), slog.String("account_id", newAccountID))
	return txn, newBalance, nil
}

// DeleteTransaction reverts the transaction's effect on its account and
// removes the record. A vanished account only skips the revert; the record
// delete still proceeds.
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	revertDelta, err := accounting.RevertDelta(txn.Type, txn.Amount)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID, txn.AccountID, revertDelta); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ListTransactions returns the user's transactions most recent first, with
// the limit clamped to [1, 200].
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Type != "" && !domain.ValidTransactionType(filter.Type) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, filter.Type)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
