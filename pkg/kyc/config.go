package kyc

// Config is loaded from the environment by NewFromEnv.
type Config struct {
	Env         string `env:"KYC_ENV" envDefault:"development"`
	ServiceName string `env:"KYC_SERVICE" envDefault:"kyc"`
	// LogLevel overrides the environment preset when set ("debug", "info", ...).
	LogLevel    string `env:"KYC_LOG_LEVEL"`
}
