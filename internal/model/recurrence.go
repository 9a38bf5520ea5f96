package model

import (
	"fmt"
	"time"
)

type RecurrencePeriod string

const (
	PeriodDaily   RecurrencePeriod = "DAILY"
	PeriodWeekly  RecurrencePeriod = "WEEKLY"
	PeriodMonthly RecurrencePeriod = "MONTHLY"
	PeriodYearly  RecurrencePeriod = "YEARLY"
)

// Valid reports whether p is one of the known periods.
func (p RecurrencePeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Recurrence describes a repeating series: every Interval Periods, at most
// Limit occurrences in total (the first one included). A nil Limit repeats
// forever. It is embedded in Transaction and Task with a column prefix.
type Recurrence struct {
	Period   RecurrencePeriod `gorm:"type:varchar(16)" json:"period,omitempty"`
	Interval int              `json:"interval,omitempty"`
	Limit    *int             `json:"limit,omitempty"`
}

// IsZero reports whether no recurrence is configured.
func (r Recurrence) IsZero() bool {
	return r.Period == ""
}

// Validate checks a configured recurrence. A zero recurrence is valid.
func (r Recurrence) Validate() error {
	if r.IsZero() {
		return nil
	}
	if !r.Period.Valid() {
		return fmt.Errorf("invalid recurrence period %q", r.Period)
	}
	if r.Interval < 1 {
		return fmt.Errorf("recurrence interval must be >= 1, got %d", r.Interval)
	}
	if r.Limit != nil && *r.Limit < 1 {
		return fmt.Errorf("recurrence limit must be >= 1, got %d", *r.Limit)
	}
	return nil
}

// Occurrence returns the date of the n-th occurrence (0 = start).
// Monthly and yearly steps are computed from start, so a series that
// begins on the 31st does not drift after a short month.
func (r Recurrence) Occurrence(start time.Time, n int) time.Time {
	if n == 0 || r.IsZero() {
		return start
	}
	step := n * r.Interval
	switch r.Period {
	case PeriodDaily:
		return start.AddDate(0, 0, step)
	case PeriodWeekly:
		return start.AddDate(0, 0, 7*step)
	case PeriodMonthly:
		return addMonthsClamped(start, step)
	case PeriodYearly:
		return addMonthsClamped(start, 12*step)
	}
	return start
}

// Allows reports whether the n-th occurrence is within the repeat limit.
func (r Recurrence) Allows(n int) bool {
	if r.IsZero() {
		return n == 0
	}
	return r.Limit == nil || n < *r.Limit
}

// addMonthsClamped adds months keeping the day of month, clamped to the
// last day of the target month (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
