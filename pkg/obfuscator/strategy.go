package obfuscator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	emailMask      = "*****"
	phoneMaskChar  = '*'
	phoneRevealed  = 4
	phoneSeparator = "-"
)

// Strategy masks a string that has already been classified.
// The set of strategies is closed; the zero value masks nothing.
type Strategy struct {
	kind Classification
}

// StrategyFor returns the strategy for c and false when c has none.
func StrategyFor(c Classification) (Strategy, bool) {
	switch c {
	case Email, Phone:
		return Strategy{kind: c}, true
	default:
		return Strategy{}, false
	}
}

// Kind returns the classification the strategy handles.
func (s Strategy) Kind() Classification {
	return s.kind
}

// Apply masks input. Input must match the strategy's pattern; Apply does not
// check it again. The zero Strategy returns input unchanged.
func (s Strategy) Apply(input string) string {
	switch s.kind {
	case Email:
		return maskEmail(input)
	case Phone:
		return maskPhone(input)
	default:
		return input
	}
}

// maskEmail lower-cases the address and keeps only the first and last
// characters of the local part. A one-character local part is repeated.
func maskEmail(input string) string {
	// cases.Caser is stateful, one per call keeps maskEmail safe for concurrent use.
	lowered := cases.Lower(language.Und).String(input)

	local, domain, found := strings.Cut(lowered, "@")
	if !found || local == "" {
		return lowered
	}

	// The local part is ASCII by construction of emailRegex.
	var b strings.Builder
	b.Grow(len(lowered) + len(emailMask))
	b.WriteByte(local[0])
	b.WriteString(emailMask)
	b.WriteByte(local[len(local)-1])
	b.WriteByte('@')
	b.WriteString(domain)
	return b.String()
}

// maskPhone replaces spaces with hyphens and masks every digit except the last
// phoneRevealed ones, which keep their position.
func maskPhone(input string) string {
	hyphenated := strings.ReplaceAll(input, " ", phoneSeparator)

	out := []byte(hyphenated)
	for i := range out {
		if isDigit(out[i]) {
			out[i] = phoneMaskChar
		}
	}

	revealed := 0
	for i := len(hyphenated) - 1; i >= 0 && revealed < phoneRevealed; i-- {
		if isDigit(hyphenated[i]) {
			out[i] = hyphenated[i]
			revealed++
		}
	}

	return string(out)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
