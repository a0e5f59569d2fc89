package weekday

import (
	"errors"
	"fmt"
	"time"
)

// Count returns how many days in the inclusive range [from, to] fall on target.
// Both dates use the DD-MM-YYYY layout.
//
// It returns ErrInvalidDate if either date does not parse and
// ErrNegativeTimePeriod if from is after to. The order check runs only once
// both dates are valid.
func Count(from, to string, target time.Weekday) (int, error) {
	if !validWeekday(target) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(target))
	}

	start, err := Parse(from)
	if err != nil {
		return 0, fmt.Errorf("date from: %w", err)
	}

	end, err := Parse(to)
	if err != nil {
		return 0, fmt.Errorf("date to: %w", err)
	}

	return CountBetween(start, end, target)
}

// CountSundays returns how many Sundays fall in the inclusive range [from, to].
func CountSundays(from, to string) (int, error) {
	return Count(from, to, time.Sunday)
}

// CountBetween is Count for already parsed dates.
func CountBetween(start, end Date, target time.Weekday) (int, error) {
	if !validWeekday(target) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(target))
	}

	if start.After(end) {
		return 0, errors.Join(ErrNegativeTimePeriod, fmt.Errorf("range %s to %s", start, end))
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDays(1) {
		if day.Weekday() == target {
			count++
		}
	}

	return count, nil
}

func validWeekday(w time.Weekday) bool {
	return w >= time.Sunday && w <= time.Saturday
}
