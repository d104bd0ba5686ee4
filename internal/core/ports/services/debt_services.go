package services

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/dto"
)

// DebtSvcFacade exposes debt tracking operations.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.Debt, error)
	GetDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, userID, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, userID, debtID string) error
}
