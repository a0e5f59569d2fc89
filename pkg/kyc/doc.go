// Package kyc exposes the KYC preparation helpers behind a single Service:
// masking personal strings, counting weekdays in a date range and formatting
// ordinals.
//
// Service only delegates to the obfuscator, weekday and ordinal packages and
// logs rejected input at debug level. Log records carry the operation, the
// detected classification and the error kind, never the raw personal value.
//
//	svc, err := kyc.NewFromEnv()
//	if err != nil {
//	    return err
//	}
//
//	masked, err := svc.ObfuscatePersonalInfo("john.doe@gmail.com") // "j*****e@gmail.com"
//	sundays, err := svc.CountSundays("01-05-2021", "30-05-2021")   // 5
//	rank, err := svc.AppendOrdinal(21)                             // "21st"
//
// A Service is stateless apart from its logger and safe for concurrent use.
package kyc
