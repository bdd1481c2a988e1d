package requestlog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store with an in-memory circular buffer.
// Oldest entries are evicted first once the buffer is full.
type MemoryStore struct {
	entries    []*Entry
	maxEntries int
	mu         sync.RWMutex
}

// NewMemoryStore creates a new MemoryStore with the given capacity.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = 1000 // Default
	}
	return &MemoryStore{
		entries:    make([]*Entry, 0, maxEntries),
		maxEntries: maxEntries,
	}
}

// Log records a request log entry.
func (s *MemoryStore) Log(entry *Entry) {
	if entry == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Generate ID if not set
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	// Set timestamp if not set
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	// FIFO eviction: remove oldest if at capacity
	if len(s.entries) >= s.maxEntries {
		s.entries = s.entries[1:]
	}

	s.entries = append(s.entries, entry)
}

// Get retrieves a log entry by ID.
func (s *MemoryStore) Get(id string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// List returns log entries newest first, optionally filtered.
func (s *MemoryStore) List(filter *Filter) []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Entry, 0, len(s.entries))

	// Iterate in reverse order so newest entries come first
	for i := len(s.entries) - 1; i >= 0; i-- {
		entry := s.entries[i]
		if filter != nil && !matchesFilter(entry, filter) {
			continue
		}
		result = append(result, entry)
	}

	// Apply offset and limit
	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(result) {
				return []*Entry{}
			}
			result = result[filter.Offset:]
		}
		if filter.Limit > 0 && filter.Limit < len(result) {
			result = result[:filter.Limit]
		}
	}

	return result
}

// Clear removes all log entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]*Entry, 0, s.maxEntries)
}

// Count returns the number of log entries.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// matchesFilter checks if an entry matches all filter criteria.
func matchesFilter(entry *Entry, filter *Filter) bool {
	if filter.Method != "" && entry.Method != filter.Method {
		return false
	}
	if filter.Path != "" && !strings.HasPrefix(entry.Path, filter.Path) {
		return false
	}
	if filter.Status != 0 && entry.Status != filter.Status {
		return false
	}
	if filter.Overridden != nil && entry.Overridden != *filter.Overridden {
		return false
	}
	return true
}
