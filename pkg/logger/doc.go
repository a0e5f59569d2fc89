// Package logger builds *slog.Logger instances with a small set of functional
// options and provides attribute helpers that keep key names consistent.
//
// # Usage
//
//	import "github.com/dmitrymomot/kyckit/pkg/logger"
//
//	log := logger.New(logger.WithEnvironment("production", "kyc"))
//	log.Debug("obfuscation rejected",
//	    logger.Operation("obfuscate"),
//	    logger.Classification("unrecognized"),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction – presets per environment.
//   - WithEnvironment – selects a preset from a configured string.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithOutput – destination writer.
//   - WithAttr – static attributes on every record.
//
// Discard returns a logger that drops everything; libraries use it when the
// caller did not provide one.
//
// Helpers such as Error return an empty slog.Attr for nil input, which slog
// omits from the output, so callers do not need a nil check.
package logger
