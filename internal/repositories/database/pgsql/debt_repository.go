package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	"github.com/moneymap/moneymap_backend/internal/models"
	"github.com/moneymap/moneymap_backend/internal/utils/mapping"
)

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt data.
func newPgxDebtRepository(pool *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, user_id, person_name, amount, debt_type, due_date, notes, created_at, last_updated_at`

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.PersonName,
		&m.Amount,
		&m.Type,
		&m.DueDate,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveDebt inserts a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)

	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.UserID,
		m.PersonName,
		m.Amount,
		m.Type,
		m.DueDate,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: debt with ID %s already exists", apperrors.ErrDuplicate, m.DebtID)
		}
		return fmt.Errorf("failed to save debt %s: %w", m.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt scoped to its owning user.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1 AND debt_id = $2;`

	m, err := scanDebt(r.Pool.QueryRow(ctx, query, userID, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}

	d := mapping.ToDomainDebt(m)
	return &d, nil
}

// ListDebts returns all of the user's debts, newest first.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var ms []models.Debt
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading debt rows: %w", err)
	}
	return mapping.ToDomainDebtSlice(ms), nil
}

// UpdateDebt persists a debt's new field values.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		UPDATE debts
		SET person_name = $3, amount = $4, debt_type = $5, due_date = $6, notes = $7, last_updated_at = $8
		WHERE user_id = $1 AND debt_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		debt.UserID,
		debt.DebtID,
		debt.PersonName,
		debt.Amount,
		string(debt.Type),
		debt.DueDate,
		debt.Notes,
		debt.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt %s: %w", debt.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDebt removes a debt row.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM debts WHERE user_id = $1 AND debt_id = $2;`, userID, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
