package timewindow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymap/moneymap_backend/internal/utils/timewindow"
)

var now = time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)

func TestResolvePeriod_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		period    timewindow.Period
		wantStart time.Time
	}{
		{"daily starts at midnight of the end day", timewindow.Daily, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"weekly reaches seven days back", timewindow.Weekly, time.Date(2024, time.March, 8, 18, 0, 0, 0, time.UTC)},
		{"monthly starts at the first of the month", timewindow.Monthly, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"yearly starts at january first", timewindow.Yearly, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"unknown period behaves as monthly", timewindow.Period("fortnight"), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := timewindow.ResolvePeriod(tt.period, nil, nil, now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, now, end)
		})
	}
}

func TestResolvePeriod_ExplicitBoundsWin(t *testing.T) {
	explicitStart := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	explicitEnd := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)

	start, end := timewindow.ResolvePeriod(timewindow.Daily, &explicitStart, &explicitEnd, now)

	assert.Equal(t, explicitStart, start)
	assert.Equal(t, explicitEnd, end)
}

func TestResolvePeriod_ExplicitEndAnchorsDefaults(t *testing.T) {
	explicitEnd := time.Date(2023, time.June, 20, 12, 0, 0, 0, time.UTC)

	start, end := timewindow.ResolvePeriod(timewindow.Monthly, nil, &explicitEnd, now)

	assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, explicitEnd, end)
}

func TestResolveView_Today(t *testing.T) {
	selected := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	start, end, err := timewindow.ResolveView(timewindow.Today, selected)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestResolveView_WeekStartsOnSunday(t *testing.T) {
	// 2024-03-15 is a Friday; its week starts Sunday 2024-03-10.
	selected := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	start, end, err := timewindow.ResolveView(timewindow.Week, selected)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 16, 23, 59, 59, 0, time.UTC), end)
}

func TestResolveView_WeekOnSundayStaysPut(t *testing.T) {
	selected := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

	start, _, err := timewindow.ResolveView(timewindow.Week, selected)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), start)
}

func TestResolveView_MonthHandlesShortMonths(t *testing.T) {
	// February 2024 is a leap February.
	selected := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)

	start, end, err := timewindow.ResolveView(timewindow.Month, selected)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), end)
}

func TestResolveView_Year(t *testing.T) {
	selected := time.Date(2024, time.July, 4, 8, 0, 0, 0, time.UTC)

	start, end, err := timewindow.ResolveView(timewindow.Year, selected)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestResolveView_InvalidView(t *testing.T) {
	_, _, err := timewindow.ResolveView(timewindow.View("quarter"), now)
	assert.Error(t, err)
}

func TestMonthWindow(t *testing.T) {
	start, end := timewindow.MonthWindow(2, 2023, time.UTC)

	assert.Equal(t, time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.February, 28, 23, 59, 59, 0, time.UTC), end)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-03-05", timewindow.DayKey(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)))
}
