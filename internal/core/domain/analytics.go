package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals summarizes a set of transactions.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetSavings   decimal.Decimal `json:"netSavings"`
}

// TrendPoint is one calendar-day bucket in a trend series.
type TrendPoint struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}

// CategoryAmount is one slice of the expense category breakdown.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// AnalyticsReport is the full aggregation over a resolved period window.
type AnalyticsReport struct {
	Totals       Totals           `json:"totals"`
	IncomeTrend  []TrendPoint     `json:"incomeTrend"`
	ExpenseTrend []TrendPoint     `json:"expenseTrend"`
	Categories   []CategoryAmount `json:"categories"`
}

// DateView is the snapshot of a calendar-aligned window: the resolved range,
// its totals, and the matching transactions (most recent first).
type DateView struct {
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	Totals       Totals        `json:"totals"`
	Transactions []Transaction `json:"transactions"`
}
