package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App     App     `env-prefix:"APP_"`
		Logger  Logger  `env-prefix:"LOGGER_"`
		API     API     `env-prefix:"API_"`
		Retry   Retry   `env-prefix:"RETRY_"`
		Metrics Metrics `env-prefix:"METRICS_"`
		Env     string  `                       env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    validate:"required" env-default:"nexus"`
		Version string `env:"VERSION" validate:"required" env-default:"dev"`
	}

	API struct {
		BaseURL   string        `env:"BASE_URL"   validate:"required,url"`
		Timeout   time.Duration `env:"TIMEOUT"    validate:"gte=100ms,lte=5m" env-default:"30s"`
		UserAgent string        `env:"USER_AGENT"                             env-default:"nexus-client/1.0"`
	}

	Retry struct {
		MaxAttempts    int           `env:"MAX_ATTEMPTS"     validate:"min=1,max=10"                              env-default:"3"`
		BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY" validate:"gte=10ms,lte=10s"                          env-default:"100ms"`
		MaxRetryDelay  time.Duration `env:"MAX_RETRY_DELAY"  validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay" env-default:"2s"`
		SlowThreshold  time.Duration `env:"SLOW_THRESHOLD"   validate:"gte=100ms,lte=1m"                          env-default:"1s"`
	}

	Metrics struct {
		Enabled           bool          `env:"ENABLED"                                                 env-default:"false"`
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"             validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/nexus.log"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"              validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"               validate:"min=1,max=365"`
		Console    bool   `env:"CONSOLE"     env-default:"false"`
	}
)

// LoadPath reads and validates configuration from a file, with environment
// variables overriding file values.
func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	validate := validator.New()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	var validationErrors []string
	if err := validate.Struct(&cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, ve := range validationErrs {
				validationErrors = append(validationErrors,
					fmt.Sprintf("%s=%v must satisfy '%s'", ve.Field(), ve.Value(), ve.Tag()))
			}
			return nil, fmt.Errorf(
				"%s: config validation: %v", op,
				strings.Join(validationErrors, "; "),
			)
		}
		return nil, fmt.Errorf("%s: config validation: %w", op, err)
	}

	return &cfg, nil
}

// LoadEnv reads configuration from the environment alone, for setups
// that ship no config file.
func LoadEnv() (*Config, error) {
	const op = "config.LoadEnv"

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: read env: %w", op, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: config validation: %w", op, err)
	}

	return &cfg, nil
}
