package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2026-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2026, date.Year)
		assert.Equal(t, 1, date.Month)
		assert.Equal(t, 15, date.Day)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2026/01/15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := ParseDate("2026-13-15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "month must be between 1 and 12")
	})

	t.Run("Invalid day", func(t *testing.T) {
		_, err := ParseDate("2026-01-32")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "day must be between 1 and 31")
	})
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, 1))
	assert.Equal(t, 28, DaysInMonth(2026, 2))
	assert.Equal(t, 29, DaysInMonth(2028, 2)) // leap year
	assert.Equal(t, 28, DaysInMonth(2100, 2)) // century, not leap
	assert.Equal(t, 30, DaysInMonth(2026, 4))
}

func TestCalculateDateDifference(t *testing.T) {
	t.Run("Single day", func(t *testing.T) {
		diff, err := CalculateDateDifference(Date{2026, 10, 1}, Date{2026, 10, 1})
		assert.NoError(t, err)
		assert.Equal(t, 0, diff.Months)
		assert.Equal(t, 1, diff.Days)
	})

	t.Run("Whole months leave a day rollover", func(t *testing.T) {
		diff, err := CalculateDateDifference(Date{2026, 10, 1}, Date{2026, 12, 31})
		assert.NoError(t, err)
		assert.Equal(t, 2, diff.Months)
		assert.Equal(t, 31, diff.Days)
	})

	t.Run("Inverted range", func(t *testing.T) {
		_, err := CalculateDateDifference(Date{2026, 12, 1}, Date{2026, 10, 1})
		assert.Error(t, err)
	})
}

func TestCalculateLeaseCost(t *testing.T) {
	const monthly = int64(120_000)

	t.Run("Exact months", func(t *testing.T) {
		// Oct 1 to Dec 31 inclusive is three whole months.
		total, err := CalculateLeaseCost("2026-10-01", "2026-12-31", monthly)
		assert.NoError(t, err)
		assert.Equal(t, int64(360_000), total)
	})

	t.Run("Partial month pro-rated", func(t *testing.T) {
		// One month plus 15 days at 1/30 of the monthly rate per day.
		breakdown, err := CalculateLeaseCostWithBreakdown("2026-10-01", "2026-11-15", monthly)
		assert.NoError(t, err)
		assert.Equal(t, 1, breakdown.Months)
		assert.Equal(t, 15, breakdown.Days)
		assert.Equal(t, int64(120_000), breakdown.MonthsCost)
		assert.Equal(t, int64(60_000), breakdown.DaysCost)
		assert.Equal(t, int64(180_000), breakdown.TotalCost)
	})

	t.Run("Short stay", func(t *testing.T) {
		total, err := CalculateLeaseCost("2026-10-01", "2026-10-03", monthly)
		assert.NoError(t, err)
		assert.Equal(t, int64(12_000), total) // 3 days inclusive
	})

	t.Run("Invalid dates", func(t *testing.T) {
		_, err := CalculateLeaseCost("garbage", "2026-10-03", monthly)
		assert.Error(t, err)
		_, err = CalculateLeaseCost("2026-12-01", "2026-10-03", monthly)
		assert.Error(t, err)
	})
}
