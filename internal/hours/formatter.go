// Package hours turns a raw weekly schedule into the operating-hours view shown with a restaurant.
package hours

import (
	"fmt"
	"time"

	"restaurant-finder/internal/models"
)

const (
	rawLayout     = "1504"
	displayLayout = "03:04 PM"
)

// Weekday maps t to the Monday=0 index used by periods and weekday_text.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Format builds the operating-hours view for the moment now. It returns nil when raw is nil.
//
// periods and weekday_text are indexed by Weekday(now). current_period is only set
// when today's period has both an open and a close time that parse as "HHMM".
// open_now is the upstream flag OR the locally derived state; it never turns an
// upstream true into false.
func Format(raw *models.PlaceOpeningHours, now time.Time) *models.OperatingHours {
	if raw == nil {
		return nil
	}

	today := Weekday(now)
	out := &models.OperatingHours{
		Periods:     append([]models.Period{}, raw.Periods...),
		WeekdayText: append([]string{}, raw.WeekdayText...),
		Today:       today,
		DayNames:    append([]string{}, models.DayNames...),
	}

	if len(raw.WeekdayText) > today {
		out.TodayHours = models.StringPtr(raw.WeekdayText[today])
	}

	isOpen := false
	if len(raw.Periods) > today {
		if cp, ok := currentPeriod(raw.Periods[today], now); ok {
			out.CurrentPeriod = cp
			isOpen = cp.IsOpen
		}
	}

	out.OpenNow = raw.OpenNow || isOpen
	return out
}

func currentPeriod(p models.Period, now time.Time) (*models.CurrentPeriod, bool) {
	if p.Open == nil || p.Close == nil || p.Open.Time == "" || p.Close.Time == "" {
		return nil, false
	}

	open, err := formatClock(p.Open.Time)
	if err != nil {
		return nil, false
	}
	closing, err := formatClock(p.Close.Time)
	if err != nil {
		return nil, false
	}
	isOpen, err := openAt(p.Open.Time, p.Close.Time, now)
	if err != nil {
		return nil, false
	}

	return &models.CurrentPeriod{Open: open, Close: closing, IsOpen: isOpen}, true
}

// openAt reports whether a venue open from open to close ("HHMM") is open at the time of day of at.
// A close earlier than open means the period runs past midnight.
func openAt(open, close string, at time.Time) (bool, error) {
	o, err := parseRaw(open)
	if err != nil {
		return false, err
	}
	c, err := parseRaw(close)
	if err != nil {
		return false, err
	}
	return openBetween(o, c, at), nil
}

// formatClock renders a raw "HHMM" time as "03:04 PM".
func formatClock(raw string) (string, error) {
	t, err := parseRaw(raw)
	if err != nil {
		return "", err
	}
	return t.Format(displayLayout), nil
}

func openBetween(open, closing, at time.Time) bool {
	o := sinceMidnight(open)
	c := sinceMidnight(closing)
	cur := sinceMidnight(at)

	if c < o {
		return cur >= o || cur <= c
	}
	return o <= cur && cur <= c
}

func parseRaw(s string) (time.Time, error) {
	if len(s) != 4 {
		return time.Time{}, fmt.Errorf("invalid time %q: want HHMM", s)
	}
	t, err := time.Parse(rawLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
