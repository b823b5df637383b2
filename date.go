package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// MonthLabelFormat is the format used for month labels in trend reports.
const MonthLabelFormat = "Jan 2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// MonthLabel returns the month of the date as a label like "Aug 2026".
func (d Date) MonthLabel() string { return d.Format(MonthLabelFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
// The day of month is preserved, normalized by the calendar (Jan 31 + 1
// month lands in early March).
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// SameMonth reports whether d and x fall in the same calendar month.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// readDateFormats are tried in order when parsing a date string. Data files
// exported by earlier versions of the app stored full RFC3339 timestamps, so
// those still round-trip.
var readDateFormats = []string{
	DateFormat,
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
}

// ParseDate parses a Date from a string. It is lenient: it accepts "2025-7-1"
// as well as full timestamps.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, format := range readDateFormats {
		if on, err := time.Parse(format, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, want format %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Period selects the slice of history a report covers, anchored on a
// reference date.
type Period int

const (
	// All covers the whole history.
	All Period = iota
	// Yearly covers the calendar year of the reference date.
	Yearly
	// Monthly covers the calendar month of the reference date.
	Monthly
	// Weekly covers the rolling seven days up to the reference date.
	Weekly
)

func (p Period) String() string {
	switch p {
	case All:
		return "all"
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Contains reports whether 'day' falls inside the period anchored on 'ref'.
// Weekly is a rolling window: the seven days ending on ref had no upper
// bound in the original reports, and future-dated records stay visible.
func (p Period) Contains(day, ref Date) bool {
	switch p {
	case All:
		return true
	case Yearly:
		return day.Year() == ref.Year()
	case Monthly:
		return day.SameMonth(ref)
	case Weekly:
		return !day.Before(ref.Add(-7))
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "all", "":
		return All, nil
	case "yearly", "year":
		return Yearly, nil
	case "monthly", "month":
		return Monthly, nil
	case "weekly", "week":
		return Weekly, nil
	default:
		return All, fmt.Errorf("unknown period %q", p)
	}
}
