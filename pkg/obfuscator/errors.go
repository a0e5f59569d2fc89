package obfuscator

import "errors"

// ErrUnsupportedPattern is returned when the input is neither an e-mail address
// nor a phone number.
var ErrUnsupportedPattern = errors.New("no obfuscation pattern implemented for input")
