package mapping

import (
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its DB row
// representation. Account annotations are not persisted.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		Category:      d.Category,
		Date:          d.Date,
		Note:          d.Note,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a DB row to a domain.Transaction, carrying
// any account annotations a joined query filled in.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
		Date:          m.Date,
		Note:          m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		AccountName: m.AccountName,
		AccountType: domain.AccountType(m.AccountType),
	}
}

// ToDomainTransactionSlice converts a slice of rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
