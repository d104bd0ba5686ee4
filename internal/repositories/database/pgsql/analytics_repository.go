package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	"github.com/moneymap/moneymap_backend/internal/models"
	"github.com/moneymap/moneymap_backend/internal/utils/mapping"
)

// PgxAnalyticsRepository serves the read-only aggregation queries. It shares
// the transactions table with the ledger but never writes to it.
type PgxAnalyticsRepository struct {
	BaseRepository
}

// newPgxAnalyticsRepository creates a new repository for aggregation reads.
func newPgxAnalyticsRepository(pool *pgxpool.Pool) *PgxAnalyticsRepository {
	return &PgxAnalyticsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

// FindByDateRange returns the user's transactions with date in [start, end],
// oldest first, which keeps trend bucketing chronological.
func (r *PgxAnalyticsRepository) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3
		ORDER BY transaction_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
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

// FindByDateRangeWithAccounts returns the same window most recent first,
// each transaction annotated with its account's name and type.
func (r *PgxAnalyticsRepository) FindByDateRangeWithAccounts(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.user_id, t.account_id, t.amount, t.transaction_type, t.category, t.transaction_date, t.note, t.created_at, t.last_updated_at,
		       a.name AS account_name, a.account_type
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.user_id = $1 AND t.transaction_date >= $2 AND t.transaction_date <= $3
		ORDER BY t.transaction_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions with accounts: %w", err)
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

// SumExpensesByCategory totals expense amounts for one category within
// [start, end]; zero when nothing matches.
func (r *PgxAnalyticsRepository) SumExpensesByCategory(ctx context.Context, userID, category string, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category = $2 AND transaction_type = 'expense'
		  AND transaction_date >= $3 AND transaction_date <= $4;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, category, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for category %s: %w", category, err)
	}
	return total, nil
}
