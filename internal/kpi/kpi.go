package kpi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidRange rejects malformed or future-dated dashboard ranges before
// any query runs.
var ErrInvalidRange = errors.New("invalid date range")

// Metric is a collaborator-provided counting function over a half-open
// [start, end) instant range.
type Metric func(ctx context.Context, start, end time.Time) (int64, error)

// Period is a half-open [Start, End) instant range normalized to midnights.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Trend is one dashboard KPI: the current period's value and its growth
// against the immediately preceding period of equal length.
type Trend struct {
	Value            int64   `json:"value"`
	GrowthPercentage float64 `json:"growthPercentage"`
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateRange checks a caller-supplied inclusive [from, to] date pair:
// both required, from <= to, to not after today. Comparison is date-only.
func ValidateRange(from, to, now time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidRange)
	}
	from, to = truncateToDay(from), truncateToDay(to)
	if from.After(to) {
		return fmt.Errorf("%w: from is after to", ErrInvalidRange)
	}
	if to.After(truncateToDay(now)) {
		return fmt.Errorf("%w: to is in the future", ErrInvalidRange)
	}
	return nil
}

// CurrentPeriod converts an inclusive [from, to] date pair into a half-open
// period covering the full calendar day of to.
func CurrentPeriod(from, to time.Time) Period {
	return Period{
		Start: truncateToDay(from),
		End:   truncateToDay(to).AddDate(0, 0, 1),
	}
}

// PreviousPeriod derives the immediately preceding period of identical day
// count, ending the day before from.
func PreviousPeriod(from, to time.Time) Period {
	from, to = truncateToDay(from), truncateToDay(to)
	// Calendar day count; rounding absorbs DST-shortened or -lengthened days.
	days := int(math.Round(to.Sub(from).Hours()/24)) + 1
	prevEnd := from.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))
	return Period{Start: prevStart, End: prevEnd.AddDate(0, 0, 1)}
}

// Growth is the period-over-period growth percentage. A zero previous period
// yields 100 when anything happened in the current one, otherwise 0.
func Growth(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// Compute evaluates one metric over the current and preceding periods. The
// range is assumed validated; sibling KPIs are fanned out by the caller.
func Compute(ctx context.Context, from, to time.Time, fn Metric) (Trend, error) {
	current := CurrentPeriod(from, to)
	previous := PreviousPeriod(from, to)

	currentValue, err := fn(ctx, current.Start, current.End)
	if err != nil {
		return Trend{}, err
	}
	previousValue, err := fn(ctx, previous.Start, previous.End)
	if err != nil {
		return Trend{}, err
	}

	return Trend{
		Value:            currentValue,
		GrowthPercentage: Growth(currentValue, previousValue),
	}, nil
}
