package weekday

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the only textual date format accepted by Parse (DD-MM-YYYY).
const Layout = "02-01-2006"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date without time of day or location.
// The zero value is January 1, year 1.
type Date struct {
	t time.Time
}

// NewDate returns the date for year, month and day. Out-of-range values are
// normalised the way time.Date does it (October 32 becomes November 1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses s in the DD-MM-YYYY layout.
// It returns ErrInvalidDate if s does not match the layout or is not a real date.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Date{}, errors.Join(ErrInvalidDate, fmt.Errorf("cannot parse %q as DD-MM-YYYY: %w", s, err))
	}
	return Date{t: t}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of days from d to other, negative when other
// is earlier.
func (d Date) DaysUntil(other Date) int {
	// Both sides are UTC midnights, so the difference is a whole number of days.
	// Unix seconds avoid the ~292 year limit of time.Duration.
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// String formats the date in the DD-MM-YYYY layout.
func (d Date) String() string {
	return d.t.Format(Layout)
}
