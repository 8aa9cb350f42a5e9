package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/session"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, start, end int) session.Entry {
	return session.Entry{Date: date, Start: start, End: end}
}

func testLog() *session.Log {
	return &session.Log{
		Payperiod: session.Payperiod{
			Type:  session.PayperiodBiweekly,
			Start: day(2026, time.August, 3),
		},
		Entries: []session.Entry{
			entry(day(2026, time.August, 3), 540, 720),  // Mon, 3h
			entry(day(2026, time.August, 3), 780, 900),  // Mon, 2h
			entry(day(2026, time.August, 5), 600, 630),  // Wed, 30m
			entry(day(2026, time.August, 12), 540, 540), // next week, zero length
			entry(day(2026, time.August, 20), 600, 660), // next payperiod, 1h
		},
	}
}

func TestBuildTotals(t *testing.T) {
	log := testLog()
	r := Build(log)

	t.Run("TotalEqualsSumOfEntries", func(t *testing.T) {
		assert.Equal(t, log.Total(), r.Total)
		assert.Equal(t, 6*time.Hour+30*time.Minute, r.Total)
	})

	t.Run("TotalEqualsSumOfDays", func(t *testing.T) {
		var sum time.Duration
		for _, d := range r.Days() {
			sum += d.Total
		}
		assert.Equal(t, r.Total, sum)
	})

	t.Run("TotalEqualsSumOfWeeks", func(t *testing.T) {
		var sum time.Duration
		for _, d := range r.Weekly {
			sum += d
		}
		assert.Equal(t, r.Total, sum)
	})

	t.Run("TotalEqualsSumOfPeriods", func(t *testing.T) {
		var sum time.Duration
		for _, d := range r.Periods {
			sum += d
		}
		assert.Equal(t, r.Total, sum)
	})
}

func TestBuildGrouping(t *testing.T) {
	r := Build(testLog())

	t.Run("DailyMergesSameDay", func(t *testing.T) {
		assert.Equal(t, 5*time.Hour, r.Daily[day(2026, time.August, 3)])
	})

	t.Run("ZeroLengthEntryKeepsDay", func(t *testing.T) {
		total, ok := r.Daily[day(2026, time.August, 12)]
		assert.True(t, ok)
		assert.Equal(t, time.Duration(0), total)
	})

	t.Run("WeeklyBuckets", func(t *testing.T) {
		y, w := day(2026, time.August, 3).ISOWeek()
		assert.Equal(t, 5*time.Hour+30*time.Minute, r.Weekly[WeekKey{y, w}])
	})

	t.Run("PayperiodBuckets", func(t *testing.T) {
		assert.Equal(t, 5*time.Hour+30*time.Minute, r.Periods[day(2026, time.August, 3)])
		assert.Equal(t, time.Hour, r.Periods[day(2026, time.August, 17)])
	})

	t.Run("DaysSorted", func(t *testing.T) {
		days := r.Days()
		require.Len(t, days, 4)
		for i := 1; i < len(days); i++ {
			assert.True(t, days[i-1].Date.Before(days[i].Date))
		}
	})
}

func TestSummarize(t *testing.T) {
	r := Build(testLog())

	t.Run("RecordedDay", func(t *testing.T) {
		s := r.Summarize(day(2026, time.August, 5))
		assert.True(t, s.Today.Recorded)
		assert.Equal(t, 30*time.Minute, s.Today.Total)
		assert.True(t, s.ThisWeek.Recorded)
		assert.Equal(t, 5*time.Hour+30*time.Minute, s.ThisWeek.Total)
		assert.False(t, s.LastWeek.Recorded)
		assert.True(t, s.ThisPeriod.Recorded)
		assert.Equal(t, 5*time.Hour+30*time.Minute, s.ThisPeriod.Total)
		assert.False(t, s.LastPeriod.Recorded)
		assert.Equal(t, r.Total, s.Total)
	})

	t.Run("EmptyDay", func(t *testing.T) {
		s := r.Summarize(day(2026, time.August, 4))
		assert.False(t, s.Today.Recorded)
		assert.True(t, s.ThisWeek.Recorded)
	})

	t.Run("LastWeekLookup", func(t *testing.T) {
		s := r.Summarize(day(2026, time.August, 12))
		assert.True(t, s.LastWeek.Recorded)
		assert.Equal(t, 5*time.Hour+30*time.Minute, s.LastWeek.Total)
	})

	t.Run("LastPeriodLookup", func(t *testing.T) {
		s := r.Summarize(day(2026, time.August, 20))
		assert.True(t, s.ThisPeriod.Recorded)
		assert.Equal(t, time.Hour, s.ThisPeriod.Total)
		assert.True(t, s.LastPeriod.Recorded)
		assert.Equal(t, 5*time.Hour+30*time.Minute, s.LastPeriod.Total)
	})

	t.Run("TimeOfDayIgnored", func(t *testing.T) {
		noon := time.Date(2026, time.August, 5, 12, 34, 56, 0, time.UTC)
		s := r.Summarize(noon)
		assert.Equal(t, day(2026, time.August, 5), s.AsOf)
		assert.True(t, s.Today.Recorded)
	})
}

func TestSummarizeLastWeekAcrossYearBoundary(t *testing.T) {
	// ISO week 1 of 2026 starts Mon 29 Dec 2025; the week before it is
	// week 52 of 2025. A plain week-1 lookup would miss it.
	log := &session.Log{
		Payperiod: session.Payperiod{}.WithDefaults(),
		Entries: []session.Entry{
			entry(day(2025, time.December, 24), 540, 600), // Wed, 2025-W52, 1h
			entry(day(2025, time.December, 30), 540, 660), // Tue, 2026-W01, 2h
		},
	}
	r := Build(log)

	t.Run("AsOfInWeekOne", func(t *testing.T) {
		s := r.Summarize(day(2025, time.December, 30))
		assert.True(t, s.ThisWeek.Recorded)
		assert.Equal(t, 2*time.Hour, s.ThisWeek.Total)
		assert.True(t, s.LastWeek.Recorded)
		assert.Equal(t, time.Hour, s.LastWeek.Total)
	})

	t.Run("AsOfInNewYear", func(t *testing.T) {
		s := r.Summarize(day(2026, time.January, 5))
		assert.True(t, s.LastWeek.Recorded)
		assert.Equal(t, 2*time.Hour, s.LastWeek.Total)
	})
}

func TestSummarizeMonthly(t *testing.T) {
	log := &session.Log{
		Payperiod: session.Payperiod{Type: session.PayperiodMonthly},
		Entries: []session.Entry{
			entry(day(2025, time.December, 30), 540, 600),
			entry(day(2026, time.January, 2), 540, 660),
		},
	}
	r := Build(log)

	s := r.Summarize(day(2026, time.January, 15))
	assert.True(t, s.ThisPeriod.Recorded)
	assert.Equal(t, 2*time.Hour, s.ThisPeriod.Total)
	assert.True(t, s.LastPeriod.Recorded)
	assert.Equal(t, time.Hour, s.LastPeriod.Total)
}
