package services

import (
	"context"
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
	"github.com/moneymap/moneymap_backend/internal/utils/timewindow"
)

// AnalyticsSvcFacade exposes the read-only aggregation engine.
type AnalyticsSvcFacade interface {
	// GetAnalytics resolves the period window (explicit bounds win) and
	// returns totals, per-day trend series, and the expense category
	// breakdown over it.
	GetAnalytics(ctx context.Context, userID string, period timewindow.Period, start, end *time.Time) (*domain.AnalyticsReport, error)

	// GetDateView resolves a calendar snapshot window anchored to the
	// selected date and returns its totals plus the matching transactions.
	GetDateView(ctx context.Context, userID string, view timewindow.View, selected time.Time) (*domain.DateView, error)
}
