package repositories

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts. Every
// lookup is scoped by the owning user; a row owned by someone else behaves
// as if it does not exist.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	// DeleteAccount removes the account row. The schema's ON DELETE RESTRICT
	// foreign key backstops the service-level referential check; a violation
	// surfaces as apperrors.ErrConflict.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
