package repositories

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
)

// BudgetRepository defines persistence operations for budgets. SaveBudget
// maps a unique-index violation on (user, category, month, year) to
// apperrors.ErrDuplicate, so duplicates lose even when two creates race past
// the service pre-check.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)
	FindBudgetByPeriodCategory(ctx context.Context, userID, category string, month, year int) (*domain.Budget, error)
	// ListBudgets filters by month and/or year when provided, newest first.
	ListBudgets(ctx context.Context, userID string, month, year *int) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
