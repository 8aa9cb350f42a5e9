package session

import (
	"fmt"
	"time"
)

type PayperiodType string

const (
	PayperiodBiweekly PayperiodType = "biweekly"
	PayperiodMonthly  PayperiodType = "monthly"
)

// defaultBiweeklyStart anchors the biweekly cycle when the log file does not
// configure one.
var defaultBiweeklyStart = time.Date(2024, time.January, 22, 0, 0, 0, 0, time.UTC)

// Payperiod describes how sessions are grouped into pay periods: fixed
// two-week buckets counted from Start, or calendar months.
type Payperiod struct {
	Type  PayperiodType
	Start time.Time
}

// WithDefaults fills in the type and cycle anchor for log files that omit them.
func (p Payperiod) WithDefaults() Payperiod {
	if p.Type == "" {
		p.Type = PayperiodBiweekly
	}
	if p.Start.IsZero() {
		switch p.Type {
		case PayperiodMonthly:
			p.Start = time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		default:
			p.Start = defaultBiweeklyStart
		}
	}
	return p
}

// Validate rejects unknown payperiod types.
func (p Payperiod) Validate() error {
	switch p.Type {
	case PayperiodBiweekly, PayperiodMonthly, "":
		return nil
	default:
		return fmt.Errorf("unknown payperiod type %q", p.Type)
	}
}

// BucketStart returns the first day of the pay period containing date.
// Dates before the biweekly anchor fall into earlier buckets, counted
// backwards from the anchor.
func (p Payperiod) BucketStart(date time.Time) time.Time {
	if p.Type == PayperiodMonthly {
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	}
	days := int(date.Sub(p.Start).Hours() / 24)
	periods := days / 14
	if days < 0 && days%14 != 0 {
		periods--
	}
	return p.Start.AddDate(0, 0, periods*14)
}

// PreviousBucket returns the start of the pay period immediately before the
// one starting at bucket.
func (p Payperiod) PreviousBucket(bucket time.Time) time.Time {
	if p.Type == PayperiodMonthly {
		return bucket.AddDate(0, -1, 0)
	}
	return bucket.AddDate(0, 0, -14)
}
