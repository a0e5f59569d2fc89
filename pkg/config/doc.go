// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default `.env` file in the working directory is loaded once, if it
//     exists, before the first Load; LoadEnv loads explicit files instead;
//   - Load parses the environment into any struct using `env` field tags;
//   - each configuration type is parsed once and cached for the lifetime of
//     the process. ResetCache clears the cache, which is mostly useful in tests.
//
// # Usage
//
//	type Config struct {
//	    Env     string `env:"KYC_ENV" envDefault:"development"`
//	    Service string `env:"KYC_SERVICE" envDefault:"kyc"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Variables already present in the process environment always win over
// values from `.env` files.
//
// # Errors
//
// Load returns ErrNilPointer for a nil target and ErrParsingConfig joined with
// the underlying env error when parsing fails. Test with errors.Is.
package config
