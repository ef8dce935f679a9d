package library

import (
	"fmt"
	"time"
)

// dateLayout is the calendar date format accepted by CalculatePenalty.
const dateLayout = "2006-01-02"

// PenaltyConfig holds the late-fee inputs. Zero values are legal: a zero
// DailyRate disables fees, a zero MaxPenalty caps every fee at zero.
type PenaltyConfig struct {
	LoanPeriodDays int
	GraceDays      int
	DailyRate      float64
	MaxPenalty     float64
}

// DefaultPenaltyConfig returns the stock penalty settings.
func DefaultPenaltyConfig() PenaltyConfig {
	return PenaltyConfig{
		LoanPeriodDays: DefaultLoanPeriodDays,
		GraceDays:      DefaultGraceDays,
		DailyRate:      DefaultDailyRate,
		MaxPenalty:     DefaultMaxPenalty,
	}
}

// Penalty computes the fee for a loan issued on issueDate and returned
// on returnDate, both "YYYY-MM-DD" day-granularity dates.
//
// The due date is the issue date plus the loan period plus the grace
// days. Every whole day past due counts as late, except that each
// Saturday or Sunday in the late window is forgiven. The weekend check
// walks the window day by day so month and year boundaries behave like
// the calendar, not like a closed-form count. The result is the late-day
// count times the daily rate, capped at MaxPenalty, and never negative.
func (c PenaltyConfig) Penalty(issueDate, returnDate string) (float64, error) {
	issued, err := time.Parse(dateLayout, issueDate)
	if err != nil {
		return 0, fmt.Errorf("bad issue date %q: %w", issueDate, err)
	}
	returned, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return 0, fmt.Errorf("bad return date %q: %w", returnDate, err)
	}

	due := issued.AddDate(0, 0, c.LoanPeriodDays+c.GraceDays)
	lateDays := int(returned.Sub(due).Hours() / 24)
	if lateDays < 0 {
		lateDays = 0
	}

	chargeable := lateDays
	for i := 1; i <= lateDays; i++ {
		switch due.AddDate(0, 0, i).Weekday() {
		case time.Saturday, time.Sunday:
			chargeable--
		}
	}

	penalty := float64(chargeable) * c.DailyRate
	if penalty > c.MaxPenalty {
		penalty = c.MaxPenalty
	}
	return penalty, nil
}
