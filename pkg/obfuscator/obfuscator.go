package obfuscator

import (
	"errors"
	"fmt"
)

// Obfuscate classifies input and masks it with the matching strategy.
// It returns ErrUnsupportedPattern when input is neither an e-mail address nor
// a phone number.
func Obfuscate(input string) (string, error) {
	strategy, ok := StrategyFor(Classify(input))
	if !ok {
		return "", errors.Join(ErrUnsupportedPattern, fmt.Errorf("input %q", input))
	}
	return strategy.Apply(input), nil
}

// MustObfuscate is like Obfuscate but panics on unsupported input.
// Intended for constants and tests.
func MustObfuscate(input string) string {
	out, err := Obfuscate(input)
	if err != nil {
		panic(err)
	}
	return out
}
