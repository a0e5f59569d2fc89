// Package weekday counts how many times a given weekday occurs in an
// inclusive range of calendar dates.
//
// Dates are exchanged as strings in the fixed DD-MM-YYYY layout, e.g.
// "01-05-2021". Parsing is strict: the separators, the field order and the
// zero padding must match exactly, and impossible dates such as "31-04-2021"
// are rejected.
//
// Counting is done on calendar dates only. Each Date is held as midnight UTC,
// so daylight-saving transitions in the local time zone never shift a day.
//
//	n, err := weekday.Count("01-05-2021", "30-05-2021", time.Sunday)
//	// n == 5
//
// Errors are reported with sentinel values that can be tested with errors.Is:
// ErrInvalidDate when a string does not parse, and ErrNegativeTimePeriod when
// both dates parse but the range ends before it starts.
package weekday
