// Package config provides Viper-based configuration loading for Ardentia.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// GameConfig holds gameplay settings.
type GameConfig struct {
	// Seed for random number generation. A seed of 0 means a random seed
	// is generated at startup.
	Seed int64 `mapstructure:"seed"`
	// Zone is the catalog zone type a new game starts in.
	Zone string `mapstructure:"zone"`
	// PlayerName is the name given to the player on New Game.
	PlayerName string `mapstructure:"player_name"`
	// LoadingDelay is how long loading and pass-through screens stay up.
	LoadingDelay time.Duration `mapstructure:"loading_delay"`
	// DeadDelay is how long the death screen stays up.
	DeadDelay time.Duration `mapstructure:"dead_delay"`
	// TickInterval is how often the loop checks timed screens.
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the log destination. The terminal belongs to the game, so
	// this defaults to a file.
	Output string `mapstructure:"output"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the top-level application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Zone == "" {
		errs = append(errs, "game.zone must not be empty")
	}
	if g.PlayerName == "" {
		errs = append(errs, "game.player_name must not be empty")
	}
	if g.LoadingDelay < 0 {
		errs = append(errs, "game.loading_delay must not be negative")
	}
	if g.DeadDelay < 0 {
		errs = append(errs, "game.dead_delay must not be negative")
	}
	if g.TickInterval <= 0 {
		errs = append(errs, fmt.Sprintf("game.tick_interval must be positive, got %s", g.TickInterval))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

// Load reads configuration, applies environment variable overrides, and
// validates the result.
//
// When path is empty, ardentia.yaml in the working directory is used if it
// exists and defaults apply otherwise. A non-empty path must exist.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ARDENTIA_ prefix
	v.SetEnvPrefix("ARDENTIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("ardentia")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewViper returns a Viper instance holding only the defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.zone", "jungle")
	v.SetDefault("game.player_name", "You")
	v.SetDefault("game.loading_delay", "1s")
	v.SetDefault("game.dead_delay", "5s")
	v.SetDefault("game.tick_interval", "100ms")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "ardentia.log")

	v.SetDefault("telemetry.enabled", true)
}
