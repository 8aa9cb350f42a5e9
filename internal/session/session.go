package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the day/month/year format used throughout log files.
const DateLayout = "02/01/2006"

var (
	ErrEndBeforeStart = errors.New("end time is before start time")
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

// Entry represents one recorded work session.
type Entry struct {
	Date  time.Time
	Start int // minutes after midnight
	End   int
	Notes []string
}

// Duration returns the length of the session. A session with Start == End
// has zero duration.
func (e Entry) Duration() time.Duration {
	return time.Duration(e.End-e.Start) * time.Minute
}

// Validate checks the entry's time-of-day invariants.
func (e Entry) Validate() error {
	if e.Start < 0 || e.Start > 24*60 {
		return fmt.Errorf("start %d: %w", e.Start, ErrTimeOutOfRange)
	}
	if e.End < 0 || e.End > 24*60 {
		return fmt.Errorf("end %d: %w", e.End, ErrTimeOutOfRange)
	}
	if e.End < e.Start {
		return fmt.Errorf("start %s, end %s: %w", FormatClock(e.Start), FormatClock(e.End), ErrEndBeforeStart)
	}
	return nil
}

// Log is one parsed log file: the recorded sessions plus the payperiod
// configuration used to bucket them.
type Log struct {
	Payperiod Payperiod
	Entries   []Entry
}

// Total sums the duration of every entry.
func (l *Log) Total() time.Duration {
	var total time.Duration
	for _, e := range l.Entries {
		total += e.Duration()
	}
	return total
}

// ParseDate parses a DD/MM/YYYY date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want DD/MM/YYYY)", s)
	}
	return d, nil
}

// ParseClock parses an "HH:MM" time of day into minutes after midnight.
// "24:00" is accepted so an entry can end exactly at midnight. The whole
// string must be a clock time; trailing text like "12:30pm" is rejected.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time %q: %w", s, ErrTimeOutOfRange)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
