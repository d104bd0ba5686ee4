package services

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/dto"
)

// BudgetSvcFacade exposes budget operations. Listing annotates each budget
// with its derived spent/remaining/exceeded figures.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string, month, year *int) ([]domain.BudgetStatus, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
