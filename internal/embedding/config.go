package embedding

import (
	"os"
	"time"
)

// Default TTLs for cached vectors. Long-lived skill-profile text keeps its
// vector for a day; ephemeral parse-session text expires after an hour.
const (
	DefaultProfileTTL = 24 * time.Hour
	DefaultSessionTTL = time.Hour

	defaultModel = "text-embedding-004"
)

// Config holds provider configuration. An empty APIKey is a normal state, not
// an error: it selects the deterministic local generator instead of the
// network provider.
type Config struct {
	APIKey     string
	Model      string
	Dimension  int
	ProfileTTL time.Duration
	SessionTTL time.Duration
}

// DefaultConfig returns a Config with the standard model, dimension, and TTLs.
func DefaultConfig() Config {
	return Config{
		Model:      defaultModel,
		Dimension:  DefaultDimension,
		ProfileTTL: DefaultProfileTTL,
		SessionTTL: DefaultSessionTTL,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for anything unset. GEMINI_API_KEY selects the network provider.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if model := os.Getenv("EMBEDDING_MODEL"); model != "" {
		cfg.Model = model
	}
	return cfg
}

// withDefaults fills zero values so constructors can rely on the config.
func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Dimension <= 0 {
		c.Dimension = DefaultDimension
	}
	if c.ProfileTTL <= 0 {
		c.ProfileTTL = DefaultProfileTTL
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	return c
}
