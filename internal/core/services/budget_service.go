package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/dto"
	"github.com/moneymap/moneymap_backend/internal/utils/timewindow"
)

// spentQueryConcurrency caps the fan-out of per-budget spent queries.
const spentQueryConcurrency = 8

type budgetService struct {
	BaseService
	budgetRepo    portsrepo.BudgetRepository
	analyticsRepo portsrepo.AnalyticsRepository
}

// NewBudgetService creates a budget service. The analytics repository backs
// the spent computation.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, analyticsRepo portsrepo.AnalyticsRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:    budgetRepo,
		analyticsRepo: analyticsRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget creates a spending cap. At most one budget may exist per
// (category, month, year); the storage unique index backstops the pre-check
// here against races.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if req.Amount == nil || req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	existing, err := s.budgetRepo.FindBudgetByPeriodCategory(ctx, userID, category, req.Month, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing budget", slog.String("category", category))
		return nil, fmt.Errorf("failed to check for existing budget: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: budget already exists for %s %d/%d", apperrors.ErrDuplicate, category, req.Month, req.Year)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Category: category,
		Amount:   *req.Amount,
		Month:    req.Month,
		Year:     req.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save budget", slog.String("category", category))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// ListBudgets returns the user's budgets, each annotated with its spent,
// remaining and exceeded figures computed from the transaction store. Spent
// queries for the budgets run concurrently.
func (s *budgetService) ListBudgets(ctx context.Context, userID string, month, year *int) ([]domain.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID, month, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	statuses := make([]domain.BudgetStatus, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spentQueryConcurrency)
	for i := range budgets {
		g.Go(func() error {
			b := budgets[i]
			start, end := timewindow.MonthWindow(b.Month, b.Year, time.UTC)
			spent, err := s.analyticsRepo.SumExpensesByCategory(gctx, userID, b.Category, start, end)
			if err != nil {
				return fmt.Errorf("failed to compute spent for budget %s: %w", b.BudgetID, err)
			}
			statuses[i] = domain.NewBudgetStatus(b, spent)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute budget spending")
		return nil, err
	}
	return statuses, nil
}

// UpdateBudget changes a budget's cap amount.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	budget.LastUpdatedAt = time.Now().UTC()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}

// DeleteBudget removes a budget. Transactions are untouched; budgets only
// ever observe them.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
