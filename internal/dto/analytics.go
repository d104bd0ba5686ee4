package dto

import (
	"time"

	"github.com/moneymap/moneymap_backend/internal/core/domain"
)

// AnalyticsParams are the query inputs for the period-based aggregation.
// Date bounds arrive as strings and are parsed by the handler.
type AnalyticsParams struct {
	Period    string `form:"period"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TrendSeries holds the two independent per-day trend series.
type TrendSeries struct {
	Income  []domain.TrendPoint `json:"income"`
	Expense []domain.TrendPoint `json:"expense"`
}

// AnalyticsResponse is the aggregation output for a resolved period window.
type AnalyticsResponse struct {
	Totals     domain.Totals           `json:"totals"`
	Trends     TrendSeries             `json:"trends"`
	Categories []domain.CategoryAmount `json:"categories"`
	Period     string                  `json:"period"`
}

// DateViewParams are the query inputs for a calendar snapshot view.
type DateViewParams struct {
	View string `form:"view" binding:"required"`
	Date string `form:"date" binding:"required"`
}

// DateRange echoes the resolved window back to the client.
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// DateViewResponse is the snapshot output: range, transactions, totals.
type DateViewResponse struct {
	View         string                `json:"view"`
	DateRange    DateRange             `json:"dateRange"`
	Transactions []TransactionResponse `json:"transactions"`
	Totals       domain.Totals         `json:"totals"`
}

// ToAnalyticsResponse converts a domain report into the transport shape.
func ToAnalyticsResponse(r *domain.AnalyticsReport, period string) AnalyticsResponse {
	return AnalyticsResponse{
		Totals: r.Totals,
		Trends: TrendSeries{
			Income:  r.IncomeTrend,
			Expense: r.ExpenseTrend,
		},
		Categories: r.Categories,
		Period:     period,
	}
}

// ToDateViewResponse converts a domain date view into the transport shape.
func ToDateViewResponse(v *domain.DateView, view string) DateViewResponse {
	return DateViewResponse{
		View: view,
		DateRange: DateRange{
			StartDate: v.StartDate,
			EndDate:   v.EndDate,
		},
		Transactions: ToTransactionResponses(v.Transactions),
		Totals:       v.Totals,
	}
}
