// Package report aggregates work sessions into daily, weekly and payperiod
// totals.
package report

import (
	"sort"
	"time"

	"worklog/internal/session"
)

// WeekKey identifies an ISO week.
type WeekKey struct {
	Year int
	Week int
}

// Report holds the aggregated totals for one parsed log.
type Report struct {
	Daily   map[time.Time]time.Duration
	Weekly  map[WeekKey]time.Duration
	Periods map[time.Time]time.Duration // keyed by pay period start day
	Total   time.Duration

	payperiod session.Payperiod
}

// Day is one row of the sorted daily breakdown.
type Day struct {
	Date  time.Time
	Total time.Duration
}

// Build aggregates every entry in the log. Entries are assumed valid; the
// parsers reject anything else.
func Build(log *session.Log) *Report {
	r := &Report{
		Daily:     make(map[time.Time]time.Duration),
		Weekly:    make(map[WeekKey]time.Duration),
		Periods:   make(map[time.Time]time.Duration),
		payperiod: log.Payperiod.WithDefaults(),
	}
	for _, e := range log.Entries {
		d := e.Duration()
		r.Daily[e.Date] += d
		y, w := e.Date.ISOWeek()
		r.Weekly[WeekKey{y, w}] += d
		r.Periods[r.payperiod.BucketStart(e.Date)] += d
		r.Total += d
	}
	return r
}

// Days returns the daily totals in chronological order.
func (r *Report) Days() []Day {
	days := make([]Day, 0, len(r.Daily))
	for date, total := range r.Daily {
		days = append(days, Day{Date: date, Total: total})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// Bucket is a total that may be absent: a week with no recorded sessions has
// no bucket at all, which the report distinguishes from a zero total.
type Bucket struct {
	Total    time.Duration
	Recorded bool
}

// Summary is the headline view of a report relative to a reference day.
type Summary struct {
	AsOf       time.Time
	Today      Bucket
	ThisWeek   Bucket
	LastWeek   Bucket
	ThisPeriod Bucket
	LastPeriod Bucket
	Total      time.Duration
}

// Summarize computes the headline buckets for the given reference day.
func (r *Report) Summarize(asOf time.Time) Summary {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	s := Summary{AsOf: day, Total: r.Total}
	s.Today = r.dailyBucket(day)
	s.ThisWeek = r.weeklyBucket(day)
	s.LastWeek = r.weeklyBucket(day.AddDate(0, 0, -7))

	thisPeriod := r.payperiod.BucketStart(day)
	s.ThisPeriod = r.periodBucket(thisPeriod)
	s.LastPeriod = r.periodBucket(r.payperiod.PreviousBucket(thisPeriod))
	return s
}

func (r *Report) dailyBucket(day time.Time) Bucket {
	total, ok := r.Daily[day]
	return Bucket{Total: total, Recorded: ok}
}

func (r *Report) weeklyBucket(day time.Time) Bucket {
	y, w := day.ISOWeek()
	total, ok := r.Weekly[WeekKey{y, w}]
	return Bucket{Total: total, Recorded: ok}
}

func (r *Report) periodBucket(start time.Time) Bucket {
	total, ok := r.Periods[start]
	return Bucket{Total: total, Recorded: ok}
}
