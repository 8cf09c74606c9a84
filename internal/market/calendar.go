package market

import "time"

// Trading-day boundaries, local to the calendar's location.
const (
	openHour     = 9
	closeHour    = 14
	settleMinute = 1 // settlement fires at close + 1 minute
)

// Calendar answers market-hours questions for a single exchange location.
// Transitions are computed, not polled: callers ask for the next settlement
// instant and sleep until exactly then.
type Calendar struct {
	loc *time.Location
}

// NewCalendar builds a calendar in the given location.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// MarketOpen reports whether the market is trading at t: weekdays between
// 09:00:00 and 14:00:00 inclusive.
func (c Calendar) MarketOpen(t time.Time) bool {
	t = t.In(c.loc)
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return sec >= openHour*3600 && sec <= closeHour*3600
}

// SubmissionsOpen reports whether prediction submissions are accepted:
// any time the market is not trading.
func (c Calendar) SubmissionsOpen(t time.Time) bool {
	return !c.MarketOpen(t)
}

// NextSettlement returns the first settlement instant strictly after t:
// the next weekday at close + 1 minute local time.
func (c Calendar) NextSettlement(t time.Time) time.Time {
	local := t.In(c.loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), closeHour, settleMinute, 0, 0, c.loc)
	for !candidate.After(t) || candidate.Weekday() == time.Saturday || candidate.Weekday() == time.Sunday {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}
