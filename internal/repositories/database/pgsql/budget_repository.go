package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	"github.com/moneymap/moneymap_backend/internal/models"
	"github.com/moneymap/moneymap_backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, user_id, category, amount, month, year, created_at, last_updated_at`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.Amount,
		&m.Month,
		&m.Year,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveBudget inserts a new budget. The unique index on (user_id, category,
// month, year) makes duplicate creation lose even when two requests race
// past the service pre-check.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Category,
		m.Amount,
		m.Month,
		m.Year,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget for %s %d/%d already exists", apperrors.ErrDuplicate, m.Category, m.Month, m.Year)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget scoped to its owning user.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND budget_id = $2;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	b := mapping.ToDomainBudget(m)
	return &b, nil
}

// FindBudgetByPeriodCategory looks up the budget for one (category, month,
// year) tuple.
func (r *PgxBudgetRepository) FindBudgetByPeriodCategory(ctx context.Context, userID, category string, month, year int) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND category = $2 AND month = $3 AND year = $4;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, category, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for %s %d/%d: %w", category, month, year, err)
	}

	b := mapping.ToDomainBudget(m)
	return &b, nil
}

// ListBudgets returns the user's budgets, optionally filtered by month
// and/or year, newest first.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string, month, year *int) ([]domain.Budget, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1`)

	args := []any{userID}
	if month != nil {
		args = append(args, *month)
		fmt.Fprintf(&sb, " AND month = $%d", len(args))
	}
	if year != nil {
		args = append(args, *year)
		fmt.Fprintf(&sb, " AND year = $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var ms []models.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading budget rows: %w", err)
	}
	return mapping.ToDomainBudgetSlice(ms), nil
}

// UpdateBudget persists a budget's new cap amount.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		UPDATE budgets
		SET amount = $3, last_updated_at = $4
		WHERE user_id = $1 AND budget_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		budget.UserID,
		budget.BudgetID,
		budget.Amount,
		budget.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", budget.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget row.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE user_id = $1 AND budget_id = $2;`, userID, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
