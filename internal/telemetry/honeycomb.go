package telemetry

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// HoneycombConfig holds the exporter settings read from the environment.
type HoneycombConfig struct {
	APIKey   string `env:"HONEYCOMB_ARDENTIA_API_KEY"`
	Dataset  string `env:"HONEYCOMB_ARDENTIA_DATASET" envDefault:"ardentia"`
	Endpoint string `env:"HONEYCOMB_ARDENTIA_ENDPOINT" envDefault:"https://api.honeycomb.io"`
}

// LoadHoneycombConfig parses HoneycombConfig from the process environment.
func LoadHoneycombConfig() (HoneycombConfig, error) {
	var cfg HoneycombConfig
	if err := env.Parse(&cfg); err != nil {
		return HoneycombConfig{}, fmt.Errorf("parsing honeycomb env: %w", err)
	}
	return cfg, nil
}

// ExporterEnv returns the OTEL_* variables the OTLP exporter reads.
// Headers are only present when an API key is configured; the .env file may
// carry an unexpanded reference, so they are always built here.
func (c HoneycombConfig) ExporterEnv() map[string]string {
	vars := map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": c.Endpoint,
	}
	if c.APIKey != "" {
		vars["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.APIKey, c.Dataset)
	}
	return vars
}

// Apply exports ExporterEnv into the process environment.
func (c HoneycombConfig) Apply() error {
	for k, v := range c.ExporterEnv() {
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("setting %s: %w", k, err)
		}
	}
	return nil
}
