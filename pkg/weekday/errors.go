package weekday

import "errors"

var (
	// ErrInvalidDate is returned when a string is not a real date in the DD-MM-YYYY layout.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNegativeTimePeriod is returned when the start of a range is after its end.
	ErrNegativeTimePeriod = errors.New("start date is after end date")

	// ErrInvalidWeekday is returned for weekday values or names that do not denote a day of the week.
	ErrInvalidWeekday = errors.New("invalid weekday")
)
