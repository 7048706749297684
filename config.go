package contextpack

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	// DefaultRecencyWindow is the trailing time span for which raw messages
	// are kept verbatim instead of relying on a summary.
	DefaultRecencyWindow = 60 * time.Minute
)

// DefaultSessionsRoot returns the conventional per-user sessions directory.
// It falls back to a relative directory if the home directory is unknown.
func DefaultSessionsRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".contextpack", "sessions")
	}
	return filepath.Join(home, ".contextpack", "sessions")
}

// Config holds assembler configuration.
type Config struct {
	// SessionsRoot is the directory holding per-session summary files.
	// Only consulted when no explicit SummaryStore is supplied to New.
	// Default: <home>/.contextpack/sessions
	SessionsRoot string

	// RecencyWindow is the trailing time span for which messages are kept
	// verbatim. Messages older than now minus RecencyWindow are presumed
	// covered by the summaries and dropped from the recent tail.
	// Default: 60 minutes
	RecencyWindow time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		SessionsRoot:  DefaultSessionsRoot(),
		RecencyWindow: DefaultRecencyWindow,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.SessionsRoot == "" {
		c.SessionsRoot = DefaultSessionsRoot()
	}
	if c.RecencyWindow == 0 {
		c.RecencyWindow = DefaultRecencyWindow
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.SessionsRoot == "" {
		return fmt.Errorf("%w: sessions_root is required", ErrInvalidConfig)
	}
	if c.RecencyWindow <= 0 {
		return fmt.Errorf("%w: recency_window must be positive, got %s", ErrInvalidConfig, c.RecencyWindow)
	}
	return nil
}
