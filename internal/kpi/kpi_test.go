package kpi

import (
	"context"
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGrowth(t *testing.T) {
	testCases := []struct {
		name     string
		current  int64
		previous int64
		expected float64
	}{
		{"both zero", 0, 0, 0},
		{"from zero", 5, 0, 100},
		{"normal growth", 15, 10, 50},
		{"decline", 5, 10, -50},
		{"flat", 10, 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Growth(tc.current, tc.previous)
			if got != tc.expected {
				t.Errorf("Growth(%d, %d) = %f, want %f", tc.current, tc.previous, got, tc.expected)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	now := date(2026, time.March, 15)

	testCases := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantErr bool
	}{
		{"valid", date(2026, time.March, 1), date(2026, time.March, 10), false},
		{"single day", date(2026, time.March, 10), date(2026, time.March, 10), false},
		{"ends today", date(2026, time.March, 1), date(2026, time.March, 15), false},
		{"from after to", date(2026, time.March, 10), date(2026, time.March, 1), true},
		{"to in future", date(2026, time.March, 1), date(2026, time.March, 16), true},
		{"missing from", time.Time{}, date(2026, time.March, 10), true},
		{"missing to", date(2026, time.March, 1), time.Time{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRange(tc.from, tc.to, now)
			if tc.wantErr && !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Expected ErrInvalidRange, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestPeriodDerivation(t *testing.T) {
	from := date(2026, time.March, 8)
	to := date(2026, time.March, 14) // 7 days inclusive

	current := CurrentPeriod(from, to)
	if !current.Start.Equal(date(2026, time.March, 8)) {
		t.Errorf("Unexpected current start: %v", current.Start)
	}
	// Exclusive upper bound includes the whole calendar day of to.
	if !current.End.Equal(date(2026, time.March, 15)) {
		t.Errorf("Unexpected current end: %v", current.End)
	}

	previous := PreviousPeriod(from, to)
	if !previous.Start.Equal(date(2026, time.March, 1)) {
		t.Errorf("Unexpected previous start: %v", previous.Start)
	}
	if !previous.End.Equal(date(2026, time.March, 8)) {
		t.Errorf("Unexpected previous end: %v", previous.End)
	}
}

func TestPeriodDerivationAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// March 8, 2026 is a 23-hour day in New York (spring forward). The
	// two-day range must still derive a two-day previous period.
	from := time.Date(2026, time.March, 8, 0, 0, 0, 0, loc)
	to := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)

	previous := PreviousPeriod(from, to)
	wantStart := time.Date(2026, time.March, 6, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2026, time.March, 8, 0, 0, 0, 0, loc)
	if !previous.Start.Equal(wantStart) || !previous.End.Equal(wantEnd) {
		t.Errorf("Expected previous period [%v, %v), got [%v, %v)",
			wantStart, wantEnd, previous.Start, previous.End)
	}
}

func TestPeriodDerivationSingleDay(t *testing.T) {
	from := date(2026, time.March, 10)
	previous := PreviousPeriod(from, from)
	if !previous.Start.Equal(date(2026, time.March, 9)) || !previous.End.Equal(date(2026, time.March, 10)) {
		t.Errorf("Expected previous period to be March 9 only, got %+v", previous)
	}
}

func TestCompute(t *testing.T) {
	from := date(2026, time.March, 8)
	to := date(2026, time.March, 14)

	counts := map[time.Time]int64{
		date(2026, time.March, 8): 15, // current period keyed by start
		date(2026, time.March, 1): 10, // previous period
	}
	metric := func(ctx context.Context, start, end time.Time) (int64, error) {
		return counts[start], nil
	}

	trend, err := Compute(context.Background(), from, to, metric)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if trend.Value != 15 {
		t.Errorf("Expected value 15, got %d", trend.Value)
	}
	if trend.GrowthPercentage != 50 {
		t.Errorf("Expected growth 50, got %f", trend.GrowthPercentage)
	}
}

func TestComputePropagatesError(t *testing.T) {
	boom := errors.New("store down")
	metric := func(ctx context.Context, start, end time.Time) (int64, error) {
		return 0, boom
	}
	_, err := Compute(context.Background(), date(2026, time.March, 1), date(2026, time.March, 2), metric)
	if !errors.Is(err, boom) {
		t.Errorf("Expected metric error to propagate, got %v", err)
	}
}
