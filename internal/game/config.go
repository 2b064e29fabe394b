package game

import (
	"time"

	"github.com/samdwyer/ardentia/internal/config"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Zone is the catalog zone type every run starts in.
	Zone string
	// PlayerName is given to the player created on New Game.
	PlayerName string
	// LoadingDelay is how long pass-through screens stay up.
	LoadingDelay time.Duration
	// DeadDelay is how long the death screen stays up.
	DeadDelay time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Zone:         "jungle",
		PlayerName:   "You",
		LoadingDelay: time.Second,
		DeadDelay:    5 * time.Second,
	}
}

// ConfigFrom converts loaded application settings into a game Config.
func ConfigFrom(g config.GameConfig) Config {
	return Config{
		Seed:         g.Seed,
		Zone:         g.Zone,
		PlayerName:   g.PlayerName,
		LoadingDelay: g.LoadingDelay,
		DeadDelay:    g.DeadDelay,
	}
}

// delay returns how long a timed screen stays up.
func (c Config) delay(kind ScreenKind) time.Duration {
	if kind == KindDeadPlayer {
		return c.DeadDelay
	}
	return c.LoadingDelay
}
