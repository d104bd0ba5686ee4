package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneymap/moneymap_backend/internal/apperrors"
	"github.com/moneymap/moneymap_backend/internal/core/domain"
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
	"github.com/moneymap/moneymap_backend/internal/utils/timewindow"
)

// analyticsService is the read-only aggregation engine. It never writes;
// everything it reports is derived from the transaction store at call time.
type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepository
	now           func() time.Time
}

// AnalyticsServiceOption configures the analytics service.
type AnalyticsServiceOption func(*analyticsService)

// WithClock overrides the service's notion of "now"; tests pin it.
func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates the aggregation engine.
func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepository, opts ...AnalyticsServiceOption) portssvc.AnalyticsSvcFacade {
	s := &analyticsService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// GetAnalytics resolves the period window and aggregates the transactions
// inside it into totals, per-day trend series, and the expense category
// breakdown.
func (s *analyticsService) GetAnalytics(ctx context.Context, userID string, period timewindow.Period, start, end *time.Time) (*domain.AnalyticsReport, error) {
	from, to := timewindow.ResolvePeriod(period, start, end, s.now())

	txns, err := s.analyticsRepo.FindByDateRange(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to query transactions for analytics")
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return buildReport(txns), nil
}

// GetDateView resolves a calendar snapshot window and returns its totals
// together with the matching transactions.
func (s *analyticsService) GetDateView(ctx context.Context, userID string, view timewindow.View, selected time.Time) (*domain.DateView, error) {
	from, to, err := timewindow.ResolveView(view, selected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	txns, err := s.analyticsRepo.FindByDateRangeWithAccounts(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to query transactions for date view")
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	totals := computeTotals(txns)
	return &domain.DateView{
		StartDate:    from,
		EndDate:      to,
		Totals:       totals,
		Transactions: txns,
	}, nil
}

// computeTotals sums income and expense magnitudes over a transaction set.
// NetSavings is income minus expense and may be negative.
func computeTotals(txns []domain.Transaction) domain.Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for i := range txns {
		switch txns[i].Type {
		case domain.Income:
			income = income.Add(txns[i].Amount)
		case domain.Expense:
			expense = expense.Add(txns[i].Amount)
		}
	}
	return domain.Totals{
		TotalIncome:  income,
		TotalExpense: expense,
		NetSavings:   income.Sub(expense),
	}
}

// trendBuckets accumulates per-day amounts while preserving the order the
// days were first seen. Input sorted by date ascending yields a
// chronological series.
type trendBuckets struct {
	order   []string
	amounts map[string]decimal.Decimal
}

func newTrendBuckets() *trendBuckets {
	return &trendBuckets{amounts: make(map[string]decimal.Decimal)}
}

func (b *trendBuckets) add(date time.Time, amount decimal.Decimal) {
	b.addKey(timewindow.DayKey(date), amount)
}

// addKey buckets by an arbitrary string key; the category breakdown uses it
// directly.
func (b *trendBuckets) addKey(key string, amount decimal.Decimal) {
	if _, seen := b.amounts[key]; !seen {
		b.order = append(b.order, key)
	}
	b.amounts[key] = b.amounts[key].Add(amount)
}

func (b *trendBuckets) points() []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(b.order))
	for _, key := range b.order {
		points = append(points, domain.TrendPoint{Date: key, Amount: b.amounts[key]})
	}
	return points
}

// buildReport aggregates an ascending-ordered transaction slice into the
// full analytics report. The category breakdown covers expenses only.
func buildReport(txns []domain.Transaction) *domain.AnalyticsReport {
	incomeTrend := newTrendBuckets()
	expenseTrend := newTrendBuckets()
	categories := newTrendBuckets()

	for i := range txns {
		t := &txns[i]
		switch t.Type {
		case domain.Income:
			incomeTrend.add(t.Date, t.Amount)
		case domain.Expense:
			expenseTrend.add(t.Date, t.Amount)
			categories.addKey(t.Category, t.Amount)
		}
	}

	report := &domain.AnalyticsReport{
		Totals:       computeTotals(txns),
		IncomeTrend:  incomeTrend.points(),
		ExpenseTrend: expenseTrend.points(),
		Categories:   make([]domain.CategoryAmount, 0, len(categories.order)),
	}
	for _, cat := range categories.order {
		report.Categories = append(report.Categories, domain.CategoryAmount{
			Category: cat,
			Amount:   categories.amounts[cat],
		})
	}
	return report
}
