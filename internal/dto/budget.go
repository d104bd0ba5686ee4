package dto

import (
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a spending cap.
type CreateBudgetRequest struct {
	Category string           `json:"category" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Month    int              `json:"month" binding:"required,min=1,max=12"`
	Year     int              `json:"year" binding:"required"`
}

// UpdateBudgetRequest allows changing only the cap amount; the period and
// category identify the budget and stay fixed.
type UpdateBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// ListBudgetsParams filters the budget list by period.
type ListBudgetsParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year"`
}

// BudgetResponse is a budget annotated with its derived spending figures.
type BudgetResponse struct {
	BudgetID      string          `json:"budgetID"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Exceeded      bool            `json:"exceeded"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListBudgetsResponse wraps a list of annotated budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts an annotated budget to its response DTO.
func ToBudgetResponse(b domain.BudgetStatus) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Category:      b.Category,
		Amount:        b.Amount,
		Month:         b.Month,
		Year:          b.Year,
		Spent:         b.Spent,
		Remaining:     b.Remaining,
		Exceeded:      b.Exceeded,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToBareBudgetResponse converts a budget without derived figures (create and
// update responses, where nothing has been spent-checked).
func ToBareBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Category:      b.Category,
		Amount:        b.Amount,
		Month:         b.Month,
		Year:          b.Year,
		Spent:         decimal.Zero,
		Remaining:     b.Amount,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}
