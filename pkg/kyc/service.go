package kyc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/kyckit/pkg/config"
	"github.com/dmitrymomot/kyckit/pkg/logger"
	"github.com/dmitrymomot/kyckit/pkg/obfuscator"
	"github.com/dmitrymomot/kyckit/pkg/ordinal"
	"github.com/dmitrymomot/kyckit/pkg/weekday"
)

const component = "kyc"

// Service groups the KYC helpers.
type Service struct {
	log *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for rejected input. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Service. Without WithLogger nothing is logged.
func New(opts ...Option) *Service {
	s := &Service{log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component(component))
	return s
}

// NewFromEnv loads Config from the environment and builds a Service whose
// logger follows the configured environment preset.
func NewFromEnv(opts ...Option) (*Service, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load kyc config: %w", err)
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("load kyc config: KYC_LOG_LEVEL: %w", err)
		}
	}
	return NewWithConfig(cfg, opts...), nil
}

// NewWithConfig builds a Service with a logger derived from cfg.
// Options are applied after the config, so WithLogger wins.
// Panics if cfg.LogLevel is not a valid slog level name.
func NewWithConfig(cfg Config, opts ...Option) *Service {
	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
	)
	return New(append([]Option{WithLogger(log)}, opts...)...)
}

// ObfuscatePersonalInfo masks an e-mail address or phone number.
// It returns obfuscator.ErrUnsupportedPattern for anything else.
func (s *Service) ObfuscatePersonalInfo(input string) (string, error) {
	out, err := obfuscator.Obfuscate(input)
	if err != nil {
		s.reject("obfuscate_personal_info", "unsupported_pattern",
			logger.Classification(obfuscator.Unrecognized.String()))
		return "", err
	}
	return out, nil
}

// CountWeekday counts the days in the inclusive range [from, to], both in
// DD-MM-YYYY layout, that fall on target.
func (s *Service) CountWeekday(from, to string, target time.Weekday) (int, error) {
	n, err := weekday.Count(from, to, target)
	if err != nil {
		s.reject("count_weekday", weekdayErrorKind(err))
		return 0, err
	}
	return n, nil
}

// CountSundays is CountWeekday for time.Sunday.
func (s *Service) CountSundays(from, to string) (int, error) {
	return s.CountWeekday(from, to, time.Sunday)
}

// AppendOrdinal returns n with its English ordinal suffix.
// It returns ordinal.ErrNegativeInteger for n < 0.
func (s *Service) AppendOrdinal(n int) (string, error) {
	out, err := ordinal.Append(n)
	if err != nil {
		s.reject("append_ordinal", "negative_integer")
		return "", err
	}
	return out, nil
}

func (s *Service) reject(operation, kind string, attrs ...slog.Attr) {
	attrs = append(attrs, logger.Operation(operation), logger.ErrorKind(kind))
	s.log.LogAttrs(context.Background(), slog.LevelDebug, "input rejected", attrs...)
}

func weekdayErrorKind(err error) string {
	switch {
	case errors.Is(err, weekday.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, weekday.ErrNegativeTimePeriod):
		return "negative_time_period"
	case errors.Is(err, weekday.ErrInvalidWeekday):
		return "invalid_weekday"
	default:
		return "unknown"
	}
}
