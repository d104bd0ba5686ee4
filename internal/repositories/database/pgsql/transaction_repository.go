package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	"github.com/moneymap/moneymap_backend/internal/models"
	"github.com/moneymap/moneymap_backend/internal/utils/mapping"
)

// PgxTransactionRepository is the storage side of the ledger. Every mutation
// runs the record write and its balance delta(s) inside one pgx transaction,
// and deltas are applied as in-place increments so concurrent mutations
// serialize on the account row instead of clobbering each other.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, account_id, amount, transaction_type, category, transaction_date, note, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.Amount,
		&m.Type,
		&m.Category,
		&m.Date,
		&m.Note,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// applyBalanceDelta increments an account's balance in place and returns the
// new value. ErrNotFound when the account row does not exist for this user.
func applyBalanceDelta(ctx context.Context, tx pgx.Tx, userID, accountID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $3, last_updated_at = $4
		WHERE user_id = $1 AND account_id = $2
		RETURNING balance;
	`
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, userID, accountID, delta, now).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to apply balance delta to account %s: %w", accountID, err)
	}
	return balance, nil
}

// SaveTransaction inserts the record and applies its signed delta to the
// account, atomically, returning the account's new balance.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) (decimal.Decimal, error) {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insert,
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.Amount,
		m.Type,
		m.Category,
		m.Date,
		m.Note,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return decimal.Zero, fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503":
				return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
			}
		}
		return decimal.Zero, fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	balance, err := applyBalanceDelta(ctx, tx, m.UserID, m.AccountID, delta, m.LastUpdatedAt)
	if err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// FindTransactionByID retrieves a transaction scoped to its owning user,
// annotated with its account's name and type like the list queries.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.user_id, t.account_id, t.amount, t.transaction_type, t.category, t.transaction_date, t.note, t.created_at, t.last_updated_at,
		       a.name AS account_name, a.account_type
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.user_id = $1 AND t.transaction_id = $2;
	`

	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, userID, transactionID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.Amount,
		&m.Type,
		&m.Category,
		&m.Date,
		&m.Note,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.AccountName,
		&m.AccountType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// UpdateTransaction persists the record's new field values and applies every
// balance change atomically. Accounts are touched in sorted ID order so two
// concurrent cross-account updates cannot deadlock. Returns the new balance
// of resultAccountID.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal, resultAccountID string) (decimal.Decimal, error) {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback(ctx)

	update := `
		UPDATE transactions
		SET account_id = $3, amount = $4, transaction_type = $5, category = $6, transaction_date = $7, note = $8, last_updated_at = $9
		WHERE user_id = $1 AND transaction_id = $2;
	`
	tag, err := tx.Exec(ctx, update,
		m.UserID,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.Type,
		m.Category,
		m.Date,
		m.Note,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
		}
		return decimal.Zero, fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return decimal.Zero, apperrors.ErrNotFound
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}
	sort.Strings(accountIDs)

	resultBalance := decimal.Zero
	for _, accountID := range accountIDs {
		balance, err := applyBalanceDelta(ctx, tx, m.UserID, accountID, balanceChanges[accountID], m.LastUpdatedAt)
		if err != nil {
			return decimal.Zero, err
		}
		if accountID == resultAccountID {
			resultBalance = balance
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return resultBalance, nil
}

// DeleteTransaction reverts the balance effect and removes the record
// atomically. A missing account row only skips the revert; the record is
// still deleted so orphaned history stays removable.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID, accountID string, revertDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	revert := `
		UPDATE accounts
		SET balance = balance + $3, last_updated_at = $4
		WHERE user_id = $1 AND account_id = $2;
	`
	if _, err := tx.Exec(ctx, revert, userID, accountID, revertDelta, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to revert balance on account %s: %w", accountID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND transaction_id = $2;`, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ListTransactions returns the user's transactions most recent first, each
// annotated with its account's name and type via a join.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.transaction_id, t.user_id, t.account_id, t.amount, t.transaction_type, t.category, t.transaction_date, t.note, t.created_at, t.last_updated_at,
		       a.name AS account_name, a.account_type
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.user_id = $1`)

	args := []any{userID}
	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		fmt.Fprintf(&sb, " AND t.account_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		fmt.Fprintf(&sb, " AND t.transaction_type = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&sb, " AND t.transaction_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&sb, " AND t.transaction_date <= $%d", len(args))
	}
	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " ORDER BY t.transaction_date DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.AccountID,
			&m.Amount,
			&m.Type,
			&m.Category,
			&m.Date,
			&m.Note,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.AccountName,
			&m.AccountType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// CountByAccountID reports how many transactions reference the account.
func (r *PgxTransactionRepository) CountByAccountID(ctx context.Context, userID, accountID string) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND account_id = $2;`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, userID, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}
	return count, nil
}
