package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the kind of account a balance lives in.
type AccountType string

const (
	BankAccount AccountType = "Bank Account"
	CreditCard  AccountType = "Credit Card"
	DebitCard   AccountType = "Debit Card"
	CashWallet  AccountType = "Cash Wallet"
)

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case BankAccount, CreditCard, DebitCard, CashWallet:
		return true
	}
	return false
}

// Account represents a financial account within the core domain.
// Balance always equals the initial balance plus the net signed effect of
// every transaction currently referencing the account; only the ledger
// service mutates it.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // Owner; every query is scoped by this
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
