package dto

import (
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to track a debt.
type CreateDebtRequest struct {
	PersonName string           `json:"personName" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Type       domain.DebtType  `json:"type" binding:"required,oneof=give take"`
	DueDate    *time.Time       `json:"dueDate"`
	Notes      *string          `json:"notes"`
}

// UpdateDebtRequest is a partial patch over a debt's fields.
type UpdateDebtRequest struct {
	PersonName *string          `json:"personName"`
	Amount     *decimal.Decimal `json:"amount"`
	Type       *domain.DebtType `json:"type" binding:"omitempty,oneof=give take"`
	DueDate    *time.Time       `json:"dueDate"`
	Notes      *string          `json:"notes"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID        string          `json:"debtID"`
	PersonName    string          `json:"personName"`
	Amount        decimal.Decimal `json:"amount"`
	Type          domain.DebtType `json:"type"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListDebtsResponse wraps a list of debts.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToDebtResponse converts a domain.Debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:        d.DebtID,
		PersonName:    d.PersonName,
		Amount:        d.Amount,
		Type:          d.Type,
		DueDate:       d.DueDate,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}
