package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "TRENDIES"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Env var names used by tests and tooling.
const (
	EnvAppEnv        = "TRENDIES_APP_ENV"
	EnvPort          = "TRENDIES_APP_PORT"
	EnvBrevoAPIKey   = "TRENDIES_BREVO_API_KEY"
	EnvSimAutoStart  = "TRENDIES_SIMULATOR_AUTO_START"
	EnvSimMinDelay   = "TRENDIES_SIMULATOR_MIN_DELAY"
	EnvSimMaxDelay   = "TRENDIES_SIMULATOR_MAX_DELAY"
	EnvCORSOrigins   = "TRENDIES_CORS_ALLOWED_ORIGINS"
	EnvBrevoBaseURL  = "TRENDIES_BREVO_BASE_URL"
	EnvBrevoSender   = "TRENDIES_BREVO_SENDER_EMAIL"
	EnvBrevoSenderNm = "TRENDIES_BREVO_SENDER_NAME"
)

type Config struct {
	App       AppConfig
	Brevo     BrevoConfig
	Simulator SimulatorConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Simulator.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TRENDIES_APP_ENV" default:"development"`
	Port         string `envconfig:"TRENDIES_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TRENDIES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TRENDIES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// BrevoConfig configures the transactional email provider. An empty APIKey
// switches the gateway into simulate-only mode.
type BrevoConfig struct {
	APIKey      string        `envconfig:"TRENDIES_BREVO_API_KEY"`
	BaseURL     string        `envconfig:"TRENDIES_BREVO_BASE_URL" default:"https://api.brevo.com/v3"`
	SenderName  string        `envconfig:"TRENDIES_BREVO_SENDER_NAME" default:"Trendies Morocco"`
	SenderEmail string        `envconfig:"TRENDIES_BREVO_SENDER_EMAIL" default:"contact@trendiesmaroc.com"`
	Timeout     time.Duration `envconfig:"TRENDIES_BREVO_TIMEOUT" default:"10s"`
}

// Configured reports whether a provider credential is present.
func (b BrevoConfig) Configured() bool {
	return strings.TrimSpace(b.APIKey) != ""
}

type SimulatorConfig struct {
	AutoStart bool          `envconfig:"TRENDIES_SIMULATOR_AUTO_START" default:"false"`
	MinDelay  time.Duration `envconfig:"TRENDIES_SIMULATOR_MIN_DELAY" default:"5s"`
	MaxDelay  time.Duration `envconfig:"TRENDIES_SIMULATOR_MAX_DELAY" default:"12s"`
}

func (s SimulatorConfig) validate() error {
	if s.MinDelay <= 0 {
		return fmt.Errorf("%s must be positive", EnvSimMinDelay)
	}
	if s.MaxDelay < s.MinDelay {
		return fmt.Errorf("%s must be >= %s", EnvSimMaxDelay, EnvSimMinDelay)
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"TRENDIES_CORS_ALLOWED_ORIGINS" default:"*"`
}
