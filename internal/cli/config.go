package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds CLI configuration.
// Values come from the environment first and flags override them.
type Config struct {
	ThinkDelay  time.Duration `env:"TICTACTOE_THINK_DELAY" env-default:"500ms" validate:"gte=0"`
	Countdown   time.Duration `env:"TICTACTOE_COUNTDOWN" env-default:"3s" validate:"gte=0"`
	NoColor     bool          `env:"TICTACTOE_NO_COLOR" env-default:"false"`
	ClearScreen bool          `env:"TICTACTOE_CLEAR" env-default:"true"`
	LogLevel    string        `env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile     string        `env:"TICTACTOE_LOG_FILE"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration after flags are applied
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewLogger builds the JSON logger. Logs are discarded unless a log file is set.
// The returned close function releases the log file.
func (c *Config) NewLogger() (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, closeFn, nil
}
