package sqlite

import "time"

// Config holds SQLite database settings
type Config struct {
	// Path is the database file, created if missing
	Path string

	BusyTimeout time.Duration
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path:        "data/rsquare.db",
		BusyTimeout: 5 * time.Second,
	}
}
