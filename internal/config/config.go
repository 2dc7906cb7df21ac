package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DBPathVar is the one required setting.
const DBPathVar = "WORK_TRACKER_DB_PATH"

// ErrConfiguration marks every failure to assemble a usable Config.
var ErrConfiguration = errors.New("configuration error")

// Config defines tracker configuration.
type Config struct {
	// DBPath is only read from the environment.
	DBPath  string        `env:"WORK_TRACKER_DB_PATH,required,notEmpty" yaml:"-" toml:"-"`
	Log     LogConfig     `envPrefix:"WORK_TRACKER_LOG_" yaml:"log" toml:"log"`
	Display DisplayConfig `envPrefix:"WORK_TRACKER_" yaml:"display" toml:"display"`
}

type LogConfig struct {
	Level string `env:"LEVEL" yaml:"level" toml:"level" validate:"oneof=debug info warn warning error"`
	Path  string `env:"PATH" yaml:"path" toml:"path"`
}

type DisplayConfig struct {
	Color      string `env:"COLOR" yaml:"color" toml:"color" validate:"oneof=auto always never"`
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format" toml:"time_format" validate:"required"`
}

// Defaults returns the configuration used before any file or environment
// override is applied.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Level: "warn",
		},
		Display: DisplayConfig{
			Color:      "auto",
			TimeFormat: "2006-01-02 15:04:05",
		},
	}
}

// Load reads configuration from an optional YAML or TOML file and
// environment variables. Environment values win over the file.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("WORK_TRACKER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Display.Color = strings.ToLower(strings.TrimSpace(cfg.Display.Color))
	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}

// IsMissingDBPath reports whether err was caused by an unset or empty
// WORK_TRACKER_DB_PATH.
func IsMissingDBPath(err error) bool {
	if !errors.Is(err, ErrConfiguration) {
		return false
	}
	var aggErr env.AggregateError
	if !errors.As(err, &aggErr) {
		return false
	}
	for _, e := range aggErr.Errors {
		var notSet env.VarIsNotSetError
		var empty env.EmptyVarError
		if errors.As(e, &notSet) && notSet.Key == DBPathVar {
			return true
		}
		if errors.As(e, &empty) && empty.Key == DBPathVar {
			return true
		}
	}
	return false
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config file: %w", err)
		}
	}
	return nil
}
