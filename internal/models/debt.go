package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType mirrors domain.DebtType for DB storage.
type DebtType string

// Debt is the DB row representation of a debt.
type Debt struct {
	DebtID     string          `db:"debt_id"`
	UserID     string          `db:"user_id"`
	PersonName string          `db:"person_name"`
	Amount     decimal.Decimal `db:"amount"`
	Type       DebtType        `db:"debt_type"`
	DueDate    *time.Time      `db:"due_date"`
	Notes      string          `db:"notes"`
	AuditFields
}
