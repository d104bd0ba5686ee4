package repositories

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
)

// DebtRepository defines persistence operations for debts.
type DebtRepository interface {
	SaveDebt(ctx context.Context, debt domain.Debt) error
	FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, debt domain.Debt) error
	DeleteDebt(ctx context.Context, userID, debtID string) error
}
