package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite via the pure-Go driver.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed store at path, initializing the
// schema if needed.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddStream registers a searched stream and returns its id.
func (s *SQLiteStore) AddStream(path, pattern string) (StreamID, error) {
	id := uuid.New()
	_, err := s.db.Exec(
		"INSERT INTO streams (id, path, pattern) VALUES (?, ?, ?)",
		id.String(), path, pattern,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting stream: %w", err)
	}
	return id, nil
}

// AddMatch records one match interval for a stream.
func (s *SQLiteStore) AddMatch(id StreamID, start, end int) error {
	_, err := s.db.Exec(
		"INSERT INTO matches (stream_id, start_frame, end_frame) VALUES (?, ?, ?)",
		id.String(), start, end,
	)
	if err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}
	return nil
}

// GetMatches retrieves the matches of one stream in start order.
func (s *SQLiteStore) GetMatches(id StreamID) ([]*Match, error) {
	rows, err := s.db.Query(`
		SELECT m.stream_id, s.path, m.start_frame, m.end_frame
		FROM matches m JOIN streams s ON s.id = m.stream_id
		WHERE m.stream_id = ?
		ORDER BY m.start_frame
	`, id.String())
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// GetAllMatches retrieves every match, grouped by stream insertion
// order and sorted by start within each stream.
func (s *SQLiteStore) GetAllMatches() ([]*Match, error) {
	rows, err := s.db.Query(`
		SELECT m.stream_id, s.path, m.start_frame, m.end_frame
		FROM matches m JOIN streams s ON s.id = m.stream_id
		ORDER BY s.rowid, m.start_frame
	`)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanMatches(rows *sql.Rows) ([]*Match, error) {
	var out []*Match
	for rows.Next() {
		var m Match
		var idStr string

		if err := rows.Scan(&idStr, &m.Path, &m.Start, &m.End); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parsing stream id: %w", err)
		}
		m.Stream = id

		out = append(out, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}
	return out, nil
}
