package models

import (
	"github.com/shopspring/decimal"
)

// Budget is the DB row representation of a budget.
type Budget struct {
	BudgetID string          `db:"budget_id"`
	UserID   string          `db:"user_id"`
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Month    int             `db:"month"`
	Year     int             `db:"year"`
	AuditFields
}
