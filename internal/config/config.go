package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	LocalFile = "config.yml"
	XDGFile   = "tictactoe/config.yml"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Color    string `yaml:"color" env:"TICTACTOE_COLOR" env-default:"auto"`
}

// Load - reads the config file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ResolvePath - picks the explicit path, then ./config.yml, then the XDG config dir.
// An empty result means no file was found.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if _, err := os.Stat(LocalFile); err == nil {
		return LocalFile
	}

	if path, err := xdg.SearchConfigFile(XDGFile); err == nil {
		return path
	}

	return ""
}

func (that *Config) Validate() error {
	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	switch that.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownColorMode, that.Color)
	}
}

func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownLogLevel, that.LogLevel)
	}
}

// UseColor - decides on colors; tty tells whether the output is a terminal.
func (that *Config) UseColor(tty bool) bool {
	switch that.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return tty
	}
}
