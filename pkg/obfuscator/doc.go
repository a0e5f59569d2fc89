// Package obfuscator masks personal strings before they are displayed or
// logged.
//
// Input is first classified with a pair of deliberately permissive patterns:
// anything shaped like local@domain is an e-mail address, and a run of at least
// nine digits (optionally grouped by single spaces and prefixed by "+") is a
// phone number. Anything else is rejected with ErrUnsupportedPattern.
//
// Each classification maps to exactly one Strategy:
//
//   - Email keeps the first and last character of the local part and replaces
//     the rest with five asterisks. The whole address is lower-cased.
//   - Phone turns spaces into hyphens and masks every digit except the last
//     four, which stay in place.
//
// # Usage
//
//	import "github.com/dmitrymomot/kyckit/pkg/obfuscator"
//
//	masked, err := obfuscator.Obfuscate("John.Doe@Gmail.com")
//	// masked == "j*****e@gmail.com"
//
//	masked, err = obfuscator.Obfuscate("+33 6 12 34 56 78")
//	// masked == "+**-*-**-**-56-78"
//
// # Error handling
//
// Obfuscate returns ErrUnsupportedPattern, joined with a message carrying the
// offending input, when neither pattern matches. Test with errors.Is.
//
// The package holds no mutable state; all functions are safe for concurrent
// use.
package obfuscator
