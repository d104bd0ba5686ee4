package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from
// its account's balance.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ValidTransactionType reports whether t is a supported transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == Income || t == Expense
}

// Transaction records a single money movement against exactly one account.
// Amount is a non-negative magnitude; the type tag determines the sign of
// its effect on the account balance.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owner
	AccountID     string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // >= 0
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"` // Trimmed, non-empty
	Date          time.Time       `json:"date"`     // Defaults to creation time
	Note          string          `json:"note"`
	AuditFields

	// Annotations populated by account-joined queries; not persisted on the
	// transaction row itself.
	AccountName string      `json:"accountName,omitempty"`
	AccountType AccountType `json:"accountType,omitempty"`
}
