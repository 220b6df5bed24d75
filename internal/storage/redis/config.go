package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// KeyPrefix namespaces every key this store writes
	KeyPrefix string

	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration

	// GameTTL is a sliding expiry, refreshed whenever a game is read or saved.
	// Zero keeps games until they are deleted.
	GameTTL time.Duration
}

// DefaultConfig returns the defaults used by the server
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    "rsquare",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		GameTTL:      24 * time.Hour,
	}
}
