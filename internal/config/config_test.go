package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Game: GameConfig{
			Seed:         7,
			Zone:         "jungle",
			PlayerName:   "You",
			LoadingDelay: time.Second,
			DeadDelay:    5 * time.Second,
			TickInterval: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "ardentia.log",
		},
		Telemetry: TelemetryConfig{Enabled: true},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Game.Zone = ""
	cfg.Game.TickInterval = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.zone")
	assert.Contains(t, err.Error(), "game.tick_interval")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateRejectsNegativeDelays(t *testing.T) {
	cfg := validConfig()
	cfg.Game.DeadDelay = -time.Second
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.dead_delay")
}

func TestValidateLoggingLevel_Property(t *testing.T) {
	valid := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "level")
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.Equal(rt, valid[level], cfg.Validate() == nil)
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.Equal(t, "jungle", cfg.Game.Zone)
	assert.Equal(t, "You", cfg.Game.PlayerName)
	assert.Equal(t, time.Second, cfg.Game.LoadingDelay)
	assert.Equal(t, 5*time.Second, cfg.Game.DeadDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, "ardentia.log", cfg.Logging.Output)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
game:
  seed: 1234
  loading_delay: 250ms
logging:
  level: debug
  format: console
telemetry:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.LoadingDelay)
	assert.Equal(t, 5*time.Second, cfg.Game.DeadDelay, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ARDENTIA_GAME_SEED", "99")
	t.Setenv("ARDENTIA_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromViperValidates(t *testing.T) {
	v := NewViper()
	v.Set("logging.level", "verbose")

	_, err := LoadFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
