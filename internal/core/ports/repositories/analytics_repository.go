package repositories

import (
	"context"
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsRepository is the read-only query surface of the aggregation
// engine. Nothing here mutates state.
type AnalyticsRepository interface {
	// FindByDateRange returns a user's transactions with date in
	// [start, end], ordered by date ascending.
	FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error)

	// FindByDateRangeWithAccounts returns the same set ordered by date
	// descending, each annotated with its account's name and type.
	FindByDateRangeWithAccounts(ctx context.Context, userID string, start, end time.Time) ([]domain.Transaction, error)

	// SumExpensesByCategory totals expense-type amounts for one category
	// within [start, end]; zero when nothing matches.
	SumExpensesByCategory(ctx context.Context, userID, category string, start, end time.Time) (decimal.Decimal, error)
}
