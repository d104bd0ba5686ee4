package dto

import (
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is a pointer so that a legitimate zero amount still passes the
// required check.
type CreateTransactionRequest struct {
	AccountID string                 `json:"accountId" binding:"required"`
	Amount    *decimal.Decimal       `json:"amount" binding:"required"`
	Type      domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Category  string                 `json:"category" binding:"required"`
	Date      *time.Time             `json:"date"`
	Note      *string                `json:"note"`
}

// UpdateTransactionRequest is a partial patch; every field is optional and
// unset fields keep their current values. Changing AccountID moves the
// transaction to another account owned by the same user.
type UpdateTransactionRequest struct {
	AccountID *string                 `json:"accountId"`
	Amount    *decimal.Decimal        `json:"amount"`
	Type      *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Category  *string                 `json:"category"`
	Date      *time.Time              `json:"date"`
	Note      *string                 `json:"note"`
}

// ListTransactionsParams are the supported list filters. Date bounds arrive
// as strings and are parsed by the handler (date-only or RFC3339).
type ListTransactionsParams struct {
	AccountID string `form:"accountId"`
	Type      string `form:"type"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Limit     int    `form:"limit"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Category      string                 `json:"category"`
	Date          time.Time              `json:"date"`
	Note          string                 `json:"note"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	AccountName   string                 `json:"accountName,omitempty"`
	AccountType   domain.AccountType     `json:"accountType,omitempty"`
}

// AccountBalance carries the resulting balance of the account a mutation
// touched, echoed back so clients never recompute it.
type AccountBalance struct {
	Balance decimal.Decimal `json:"balance"`
}

// TransactionMutationResponse is returned by create and update: the
// transaction plus the new balance of the account that now holds it.
type TransactionMutationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Account     AccountBalance      `json:"account"`
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Type:          t.Type,
		Category:      t.Category,
		Date:          t.Date,
		Note:          t.Note,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
		AccountName:   t.AccountName,
		AccountType:   t.AccountType,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToTransactionResponse(&ts[i])
	}
	return out
}
