package repositories

import (
	"context"
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// filter"; Limit is clamped by the service.
type TransactionFilter struct {
	AccountID string
	Type      domain.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// TransactionRepository is the storage side of the ledger consistency
// engine. Every mutation pairs the transaction-record write with the
// account-balance delta(s) inside one database transaction, so a reader can
// never observe the record without its balance effect or vice versa. Balance
// deltas are applied with atomic in-place increments, never read-modify-write.
type TransactionRepository interface {
	// SaveTransaction inserts the record and applies delta to its account's
	// balance atomically, returning the account's new balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) (decimal.Decimal, error)

	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// UpdateTransaction persists the record's new field values and applies
	// every entry of balanceChanges to its account atomically. It returns
	// the new balance of resultAccountID (the account that now holds the
	// transaction).
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal, resultAccountID string) (decimal.Decimal, error)

	// DeleteTransaction applies revertDelta to the referenced account and
	// removes the record atomically. A missing account row is tolerated:
	// the revert is skipped and the delete still proceeds.
	DeleteTransaction(ctx context.Context, userID, transactionID, accountID string, revertDelta decimal.Decimal) error

	// ListTransactions returns matching transactions most recent first, each
	// annotated with its account's name and type.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)

	// CountByAccountID reports how many transactions reference an account;
	// used by the account deletion guard.
	CountByAccountID(ctx context.Context, userID, accountID string) (int64, error)
}
