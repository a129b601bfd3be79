// Package store persists matching runs: which streams were searched
// with which pattern, and the match intervals found. The SQLite
// backend uses a pure-Go driver; ":memory:" selects the in-memory
// store.
package store

import (
	"fmt"

	"github.com/google/uuid"
)

// StreamID identifies one searched stream within a store.
type StreamID = uuid.UUID

// Stream records one searched stream.
type Stream struct {
	ID      StreamID
	Path    string
	Pattern string
}

// Match is a persisted match interval.
type Match struct {
	Stream StreamID
	Path   string
	Start  int
	End    int
}

// Store provides persistence for matching runs.
type Store interface {
	// AddStream registers a searched stream and returns its id.
	AddStream(path, pattern string) (StreamID, error)

	// AddMatch records one match interval for a stream.
	AddMatch(id StreamID, start, end int) error

	// GetMatches retrieves the matches of one stream in start order.
	GetMatches(id StreamID) ([]*Match, error)

	// GetAllMatches retrieves every match, grouped by stream and
	// sorted by start.
	GetAllMatches() ([]*Match, error)

	// Close releases the backing resources.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path. ":memory:" selects the
	// in-memory store.
	Path string
}

// New creates a Store for the configured path.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}
