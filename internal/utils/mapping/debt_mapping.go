package mapping

import (
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/models"
)

// ToModelDebt converts a domain.Debt to its DB row representation.
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:     d.DebtID,
		UserID:     d.UserID,
		PersonName: d.PersonName,
		Amount:     d.Amount,
		Type:       models.DebtType(d.Type),
		DueDate:    d.DueDate,
		Notes:      d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainDebt converts a DB row to a domain.Debt.
func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:     m.DebtID,
		UserID:     m.UserID,
		PersonName: m.PersonName,
		Amount:     m.Amount,
		Type:       domain.DebtType(m.Type),
		DueDate:    m.DueDate,
		Notes:      m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainDebtSlice converts a slice of rows to domain debts.
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
