package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store with in-memory data structures. Used
// for ":memory:" paths and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[StreamID]*Stream
	order   []StreamID
	matches map[StreamID][]*Match
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		streams: make(map[StreamID]*Stream),
		matches: make(map[StreamID][]*Match),
	}
}

// AddStream registers a searched stream and returns its id.
func (m *MemoryStore) AddStream(path, pattern string) (StreamID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New()
	m.streams[id] = &Stream{ID: id, Path: path, Pattern: pattern}
	m.order = append(m.order, id)
	return id, nil
}

// AddMatch records one match interval for a stream.
func (m *MemoryStore) AddMatch(id StreamID, start, end int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stream, ok := m.streams[id]
	if !ok {
		return fmt.Errorf("unknown stream %s", id)
	}

	m.matches[id] = append(m.matches[id], &Match{
		Stream: id,
		Path:   stream.Path,
		Start:  start,
		End:    end,
	})
	return nil
}

// GetMatches retrieves the matches of one stream in start order.
func (m *MemoryStore) GetMatches(id StreamID) ([]*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := append([]*Match(nil), m.matches[id]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

// GetAllMatches retrieves every match, grouped by stream insertion
// order and sorted by start within each stream.
func (m *MemoryStore) GetAllMatches() ([]*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Match
	for _, id := range m.order {
		matches := append([]*Match(nil), m.matches[id]...)
		sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
		out = append(out, matches...)
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
