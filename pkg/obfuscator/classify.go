package obfuscator

import "regexp"

// Pre-compiled classification patterns, matched against the whole input.
var (
	// Anything with an allowed local part, an "@" and at least one more character.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

	// Optional leading "+", then 9 or more digit groups each followed by at most
	// one whitespace character. RE2 accepts the same strings a backtracking
	// engine does, so an unbroken run of 9+ digits is a phone number too.
	phoneRegex = regexp.MustCompile(`^\+?(\d+\s?){9,}$`)
)

// Classification tags the kind of personal data a string looks like.
type Classification int

const (
	// Unrecognized is the zero value: no strategy applies.
	Unrecognized Classification = iota
	Email
	Phone
)

func (c Classification) String() string {
	switch c {
	case Email:
		return "email"
	case Phone:
		return "phone"
	default:
		return "unrecognized"
	}
}

// Classify reports which kind of personal data input looks like.
// The e-mail pattern wins when both would match.
func Classify(input string) Classification {
	switch {
	case emailRegex.MatchString(input):
		return Email
	case phoneRegex.MatchString(input):
		return Phone
	default:
		return Unrecognized
	}
}
