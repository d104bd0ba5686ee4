package accounting

import (
	"fmt"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedDelta returns the value a transaction adds to its account balance:
// +amount for income, -amount for expense. Amount is always a non-negative
// magnitude; the type tag carries the sign. Used by the ledger service and
// its repository so that every balance mutation shares one definition.
func SignedDelta(txType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	switch txType {
	case domain.Income:
		return amount, nil
	case domain.Expense:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q", txType)
	}
}

// RevertDelta returns the inverse of a transaction's previously-applied
// signed delta, used to undo its effect before applying a new one.
func RevertDelta(txType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	delta, err := SignedDelta(txType, amount)
	if err != nil {
		return decimal.Zero, err
	}
	return delta.Neg(), nil
}
