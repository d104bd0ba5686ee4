package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for DB storage.
type TransactionType string

// Transaction is the DB row representation of a transaction.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          TransactionType `db:"transaction_type"`
	Category      string          `db:"category"`
	Date          time.Time       `db:"transaction_date"`
	Note          string          `db:"note"`
	AuditFields

	// Populated by account-joined queries only.
	AccountName string      `db:"account_name"`
	AccountType AccountType `db:"account_type"`
}
