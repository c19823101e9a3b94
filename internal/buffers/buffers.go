// Package buffers keeps the unsaved, in-memory text of edited documents.
// Buffers are never flushed to the catalog and never deleted: they live
// until the workspace is torn down, so a closed and reopened document
// shows its edited text.
package buffers

import "sort"

// Store maps document ids to their edited text
type Store struct {
	buffers map[string]string
}

// New creates an empty store
func New() *Store {
	return &Store{buffers: make(map[string]string)}
}

// Write overwrites (or creates) the buffer for id. Empty text is a real buffer.
func (s *Store) Write(id, text string) {
	s.buffers[id] = text
}

// Read returns the buffer for id, or fallback when none was written
func (s *Store) Read(id, fallback string) string {
	if text, ok := s.buffers[id]; ok {
		return text
	}
	return fallback
}

// Has reports whether id has been edited
func (s *Store) Has(id string) bool {
	_, ok := s.buffers[id]
	return ok
}

// Len returns the number of buffers
func (s *Store) Len() int {
	return len(s.buffers)
}

// IDs returns the edited document ids, sorted
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.buffers))
	for id := range s.buffers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy of the store
func (s *Store) Clone() *Store {
	c := &Store{buffers: make(map[string]string, len(s.buffers))}
	for id, text := range s.buffers {
		c.buffers[id] = text
	}
	return c
}
