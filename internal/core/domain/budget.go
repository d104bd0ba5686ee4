package domain

import (
	"github.com/shopspring/decimal"
)

// Budget is a user-defined spending cap for a category within one calendar
// month. At most one budget exists per (user, category, month, year).
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`   // Owner
	Category string          `json:"category"` // Trimmed, non-empty
	Amount   decimal.Decimal `json:"amount"`   // >= 0
	Month    int             `json:"month"`    // 1-12
	Year     int             `json:"year"`
	AuditFields
}

// BudgetStatus is a Budget annotated with its derived spending figures.
// Spent/Remaining/Exceeded are computed at read time from the transaction
// store and never persisted.
type BudgetStatus struct {
	Budget
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Exceeded  bool            `json:"exceeded"`
}

// NewBudgetStatus projects the derived spending figures onto a budget.
func NewBudgetStatus(b Budget, spent decimal.Decimal) BudgetStatus {
	return BudgetStatus{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Amount.Sub(spent),
		Exceeded:  spent.GreaterThan(b.Amount),
	}
}
