package market

import (
	"testing"
	"time"
)

// 2024-06-05 is a Wednesday.
func wednesday(hour, minute, sec int) time.Time {
	return time.Date(2024, time.June, 5, hour, minute, sec, 0, time.UTC)
}

func TestMarketOpenBoundaries(t *testing.T) {
	cal := NewCalendar(time.UTC)

	cases := []struct {
		name string
		at   time.Time
		open bool
	}{
		{"before open", wednesday(8, 59, 59), false},
		{"at open", wednesday(9, 0, 0), true},
		{"midday", wednesday(11, 30, 0), true},
		{"at close", wednesday(14, 0, 0), true},
		{"after close", wednesday(14, 0, 1), false},
		{"evening", wednesday(20, 0, 0), false},
		{"saturday midday", time.Date(2024, time.June, 8, 11, 0, 0, 0, time.UTC), false},
		{"sunday midday", time.Date(2024, time.June, 9, 11, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := cal.MarketOpen(tc.at); got != tc.open {
			t.Fatalf("%s: MarketOpen = %v, want %v", tc.name, got, tc.open)
		}
		if got := cal.SubmissionsOpen(tc.at); got == tc.open {
			t.Fatalf("%s: submissions must close exactly while the market trades", tc.name)
		}
	}
}

func TestNextSettlementSameDay(t *testing.T) {
	cal := NewCalendar(time.UTC)

	next := cal.NextSettlement(wednesday(10, 0, 0))
	want := wednesday(14, 1, 0)
	if !next.Equal(want) {
		t.Fatalf("expected %v, got %v", want, next)
	}
}

func TestNextSettlementRollsToNextWeekday(t *testing.T) {
	cal := NewCalendar(time.UTC)

	// After Wednesday's settlement instant the next one is Thursday.
	next := cal.NextSettlement(wednesday(14, 1, 0))
	want := time.Date(2024, time.June, 6, 14, 1, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("expected %v, got %v", want, next)
	}

	// Friday evening rolls over the weekend to Monday.
	friday := time.Date(2024, time.June, 7, 18, 0, 0, 0, time.UTC)
	next = cal.NextSettlement(friday)
	want = time.Date(2024, time.June, 10, 14, 1, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("expected %v, got %v", want, next)
	}
}

func TestCalendarRespectsLocation(t *testing.T) {
	loc := time.FixedZone("TEST", -5*3600)
	cal := NewCalendar(loc)

	// 15:00 UTC is 10:00 in the calendar's zone, inside market hours.
	at := wednesday(15, 0, 0)
	if !cal.MarketOpen(at) {
		t.Fatalf("expected market open at %v in %v", at, loc)
	}
}
