package date

import (
	"fmt"
	"time"
)

// MonthFormat is the wire format for months ("2025-07").
const MonthFormat = "2006-01"

const readMonthFormat = "2006-1" // permissive, accepts "2025-7"

// Month represents a calendar month, the scoping unit for analytics views.
// The zero value means "no month filter".
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{t.Year(), t.Month()}
}

// ThisMonth returns the current month.
func ThisMonth() Month {
	now := time.Now()
	return NewMonth(now.Year(), now.Month())
}

// ParseMonth parses a Month from a string like "2025-07".
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// IsZero reports whether m is the "no filter" value.
func (m Month) IsZero() bool { return m == Month{} }

// Contains reports whether the day d falls inside the month.
func (m Month) Contains(d Date) bool { return d.Year() == m.y && d.Month() == m.m }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// String formats the month in its standard "2006-01" form.
// The zero value formats as "".
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}
