package ordinal

import "errors"

// ErrNegativeInteger is returned when an ordinal is requested for a negative number.
var ErrNegativeInteger = errors.New("ordinal suffixes: negative integers are not supported")
