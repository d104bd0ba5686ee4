package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType distinguishes money the user owes from money owed to them.
type DebtType string

const (
	DebtGive DebtType = "give" // user owes someone
	DebtTake DebtType = "take" // someone owes the user
)

// ValidDebtType reports whether t is a supported debt type.
func ValidDebtType(t DebtType) bool {
	return t == DebtGive || t == DebtTake
}

// Debt tracks an informal IOU with another person. Debts are bookkeeping
// notes only; they never touch account balances.
type Debt struct {
	DebtID     string          `json:"debtID"` // Primary Key (UUID)
	UserID     string          `json:"userID"` // Owner
	PersonName string          `json:"personName"`
	Amount     decimal.Decimal `json:"amount"` // >= 0
	Type       DebtType        `json:"type"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
	Notes      string          `json:"notes"`
	AuditFields
}
