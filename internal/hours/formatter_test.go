// internal/hours/formatter_test.go
package hours

import (
	"testing"
	"time"

	"restaurant-finder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-04 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, 3, 4+day, hour, minute, 0, 0, time.UTC)
}

func weekOf(open, close string) []models.Period {
	periods := make([]models.Period, 7)
	for d := range periods {
		periods[d] = models.Period{
			Open:  &models.DayTime{Day: d, Time: open},
			Close: &models.DayTime{Day: d, Time: close},
		}
	}
	return periods
}

func weekdayText() []string {
	out := make([]string, 7)
	for i, name := range models.DayNames {
		out[i] = name + ": 11:00 AM – 10:00 PM"
	}
	return out
}

// ==========================
// Period helpers
// ==========================

func TestOpenAt(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		now      time.Time
		expected bool
	}{
		{name: "midnight crossing, after midnight", open: "2200", close: "0200", now: at(0, 1, 0), expected: true},
		{name: "midnight crossing, midday", open: "2200", close: "0200", now: at(0, 12, 0), expected: false},
		{name: "midnight crossing, late evening", open: "2200", close: "0200", now: at(0, 23, 30), expected: true},
		{name: "normal range, afternoon", open: "1100", close: "2200", now: at(0, 15, 0), expected: true},
		{name: "normal range, late night", open: "1100", close: "2200", now: at(0, 23, 0), expected: false},
		{name: "normal range, opening minute", open: "1100", close: "2200", now: at(0, 11, 0), expected: true},
		{name: "normal range, closing minute", open: "1100", close: "2200", now: at(0, 22, 0), expected: true},
		{name: "normal range, before opening", open: "1100", close: "2200", now: at(0, 10, 59), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := openAt(tt.open, tt.close, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOpenAt_InvalidTimes(t *testing.T) {
	for _, bad := range []string{"", "11", "2500", "12:00", "ab00", "11000"} {
		_, err := openAt(bad, "2200", at(0, 12, 0))
		assert.Error(t, err, "open=%q", bad)
	}
}

func TestFormatClock(t *testing.T) {
	got, err := formatClock("0930")
	require.NoError(t, err)
	assert.Equal(t, "09:30 AM", got)

	got, err = formatClock("2200")
	require.NoError(t, err)
	assert.Equal(t, "10:00 PM", got)

	got, err = formatClock("0000")
	require.NoError(t, err)
	assert.Equal(t, "12:00 AM", got)
}

// ==========================
// Format
// ==========================

func TestFormat_Nil(t *testing.T) {
	assert.Nil(t, Format(nil, at(0, 12, 0)))
}

func TestFormat_TodayIsMondayBased(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		today int
	}{
		{name: "monday", now: at(0, 12, 0), today: 0},
		{name: "wednesday", now: at(2, 12, 0), today: 2},
		{name: "sunday", now: at(6, 12, 0), today: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Format(&models.PlaceOpeningHours{WeekdayText: weekdayText()}, tt.now)
			require.NotNil(t, out)
			assert.Equal(t, tt.today, out.Today)
			require.NotNil(t, out.TodayHours)
			assert.Contains(t, *out.TodayHours, models.DayNames[tt.today])
		})
	}
}

func TestFormat_CurrentPeriod(t *testing.T) {
	raw := &models.PlaceOpeningHours{
		Periods:     weekOf("1100", "2200"),
		WeekdayText: weekdayText(),
	}

	out := Format(raw, at(3, 15, 0))

	require.NotNil(t, out.CurrentPeriod)
	assert.Equal(t, "11:00 AM", out.CurrentPeriod.Open)
	assert.Equal(t, "10:00 PM", out.CurrentPeriod.Close)
	assert.True(t, out.CurrentPeriod.IsOpen)
	assert.True(t, out.OpenNow)
	assert.Equal(t, models.DayNames, out.DayNames)
	assert.Len(t, out.Periods, 7)
}

func TestFormat_OpenNowIsUpstreamOrDerived(t *testing.T) {
	tests := []struct {
		name     string
		upstream bool
		now      time.Time
		expected bool
	}{
		{name: "upstream open, derived closed", upstream: true, now: at(0, 23, 30), expected: true},
		{name: "upstream closed, derived open", upstream: false, now: at(0, 12, 0), expected: true},
		{name: "both closed", upstream: false, now: at(0, 23, 30), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Format(&models.PlaceOpeningHours{
				OpenNow: tt.upstream,
				Periods: weekOf("1100", "2200"),
			}, tt.now)
			assert.Equal(t, tt.expected, out.OpenNow)
		})
	}
}

func TestFormat_MalformedTimeLeavesNoCurrentPeriod(t *testing.T) {
	raw := &models.PlaceOpeningHours{Periods: weekOf("11:00", "2200")}

	out := Format(raw, at(0, 12, 0))

	require.NotNil(t, out)
	assert.Nil(t, out.CurrentPeriod)
	assert.False(t, out.OpenNow)
}

func TestFormat_ClosedDayAndShortSchedule(t *testing.T) {
	periods := weekOf("1100", "2200")
	periods[1] = models.Period{}

	out := Format(&models.PlaceOpeningHours{Periods: periods}, at(1, 12, 0))
	assert.Nil(t, out.CurrentPeriod)
	assert.Nil(t, out.TodayHours)

	// Only three entries: Friday has nothing to index.
	out = Format(&models.PlaceOpeningHours{Periods: periods[:3], WeekdayText: weekdayText()[:3]}, at(4, 12, 0))
	assert.Nil(t, out.CurrentPeriod)
	assert.Nil(t, out.TodayHours)
	assert.Len(t, out.Periods, 3)
}

func TestFormat_EmptyScheduleSerializesAsEmptyLists(t *testing.T) {
	out := Format(&models.PlaceOpeningHours{OpenNow: true}, at(0, 12, 0))

	assert.NotNil(t, out.Periods)
	assert.NotNil(t, out.WeekdayText)
	assert.Empty(t, out.Periods)
	assert.True(t, out.OpenNow)
}
