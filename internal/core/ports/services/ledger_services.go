package services

import (
	"context"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	"github.com/moneymap/moneymap_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the only write path for transactions. Each mutation
// returns the resulting balance of the account that holds the transaction
// after the operation.
type LedgerSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, decimal.Decimal, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, decimal.Decimal, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
}
