package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateDifference represents the difference between two dates
type DateDifference struct {
	Months int
	Days   int
}

// LeaseCostBreakdown provides a detailed cost breakdown for a lease term
type LeaseCostBreakdown struct {
	Months     int
	Days       int
	MonthsCost int64
	DaysCost   int64
	TotalCost  int64
}

// proRataDaysPerMonth is the day-count convention for partial months.
const proRataDaysPerMonth = 30

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	// All other months have 31 days
	return 31
}

// CalculateDateDifference computes the difference between two dates
// Returns (months, days) where both start and end dates are included
func CalculateDateDifference(startDate, endDate Date) (DateDifference, error) {
	if endDate.Year < startDate.Year ||
		(endDate.Year == startDate.Year && endDate.Month < startDate.Month) ||
		(endDate.Year == startDate.Year && endDate.Month == startDate.Month && endDate.Day < startDate.Day) {
		return DateDifference{}, fmt.Errorf("end date must be >= start date")
	}

	// Initial difference calculation
	years := endDate.Year - startDate.Year
	months := endDate.Month - startDate.Month
	days := endDate.Day - startDate.Day + 1 // +1 to include both ends

	// If days < 0, borrow from months
	if days < 0 {
		months -= 1
		// Calculate days in the previous month
		prevMonth := endDate.Month - 1
		prevYear := endDate.Year
		if prevMonth < 1 {
			prevMonth = 12
			prevYear -= 1
		}
		daysInPrevMonth := DaysInMonth(prevYear, prevMonth)
		days = daysInPrevMonth + days
	}

	// If months are negative, borrow from years
	if months < 0 {
		years -= 1
		months += 12
	}

	// Convert years to months
	months += 12 * years

	return DateDifference{Months: months, Days: days}, nil
}

// CalculateLeaseCost computes the total rent for an inclusive lease term
// at the given monthly rate. Full months are charged at the monthly rate;
// a trailing partial month is pro-rated on a 30-day convention.
func CalculateLeaseCost(startDate, endDate string, monthlyRentCents int64) (int64, error) {
	breakdown, err := CalculateLeaseCostWithBreakdown(startDate, endDate, monthlyRentCents)
	if err != nil {
		return 0, err
	}
	return breakdown.TotalCost, nil
}

// CalculateLeaseCostWithBreakdown provides the detailed month/day split of
// a lease term's total rent
func CalculateLeaseCostWithBreakdown(startDate, endDate string, monthlyRentCents int64) (LeaseCostBreakdown, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return LeaseCostBreakdown{}, fmt.Errorf("invalid start date: %v", err)
	}

	end, err := ParseDate(endDate)
	if err != nil {
		return LeaseCostBreakdown{}, fmt.Errorf("invalid end date: %v", err)
	}

	diff, err := CalculateDateDifference(start, end)
	if err != nil {
		return LeaseCostBreakdown{}, err
	}

	// A whole number of months leaves days == 0 after the inclusive +1
	// rollover; anything else is a partial trailing month.
	months := diff.Months
	days := diff.Days
	if days >= proRataDaysPerMonth {
		months += 1
		days = 0
	}

	monthsCost := int64(months) * monthlyRentCents
	daysCost := int64(days) * monthlyRentCents / proRataDaysPerMonth

	return LeaseCostBreakdown{
		Months:     months,
		Days:       days,
		MonthsCost: monthsCost,
		DaysCost:   daysCost,
		TotalCost:  monthsCost + daysCost,
	}, nil
}
