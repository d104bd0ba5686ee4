package mapping

import (
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/models"
)

// ToModelBudget converts a domain.Budget to its DB row representation.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID: d.BudgetID,
		UserID:   d.UserID,
		Category: d.Category,
		Amount:   d.Amount,
		Month:    d.Month,
		Year:     d.Year,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainBudget converts a DB row to a domain.Budget.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID: m.BudgetID,
		UserID:   m.UserID,
		Category: m.Category,
		Amount:   m.Amount,
		Month:    m.Month,
		Year:     m.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainBudgetSlice converts a slice of rows to domain budgets.
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
