package services

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/dto"
)

// AccountSvcFacade exposes account operations to the transport layer.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// DeleteAccount fails with apperrors.ErrConflict while any transaction
	// still references the account.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
