package tabs

import (
	"github.com/studiowebux/cloudide/internal/types"
)

// Strip is the ordered list of open documents, at most one entry per id
type Strip struct {
	entries []types.TabEntry
}

// New creates an empty tab strip
func New() *Strip {
	return &Strip{entries: []types.TabEntry{}}
}

// Open appends an entry for doc unless one already exists.
// Existing entries keep their position. Returns the entry for doc.
func (s *Strip) Open(doc types.Document) types.TabEntry {
	if i := s.Index(doc.ID); i >= 0 {
		return s.entries[i]
	}

	entry := types.TabEntry{
		DocumentID: doc.ID,
		Title:      doc.Name,
		Language:   doc.Language,
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Close removes the entry for id and reports whether one was removed
func (s *Strip) Close(id string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}

	remaining := make([]types.TabEntry, 0, len(s.entries)-1)
	remaining = append(remaining, s.entries[:i]...)
	remaining = append(remaining, s.entries[i+1:]...)
	s.entries = remaining
	return true
}

// Entries returns a copy of the open entries in strip order
func (s *Strip) Entries() []types.TabEntry {
	entries := make([]types.TabEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Index returns the position of id, or -1
func (s *Strip) Index(id string) int {
	for i, e := range s.entries {
		if e.DocumentID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is open
func (s *Strip) Contains(id string) bool {
	return s.Index(id) >= 0
}

// Len returns the number of open entries
func (s *Strip) Len() int {
	return len(s.entries)
}

// Next returns the id after id, wrapping to the first entry.
// Returns "" when id is not open.
func (s *Strip) Next(id string) string {
	return s.Step(id, 1)
}

// Prev returns the id before id, wrapping to the last entry
func (s *Strip) Prev(id string) string {
	return s.Step(id, -1)
}

// Step returns the id delta positions away from id, wrapping in both
// directions. Returns "" when id is not open.
func (s *Strip) Step(id string, delta int) string {
	i := s.Index(id)
	if i < 0 {
		return ""
	}
	n := len(s.entries)
	return s.entries[((i+delta%n)%n+n)%n].DocumentID
}

// Clone returns an independent copy of the strip
func (s *Strip) Clone() *Strip {
	return &Strip{entries: s.Entries()}
}

// ActiveAfterClose picks the active id once closedID has been removed.
// A non-active close leaves previousActive in place; closing the active tab
// selects the first remaining entry, or none ("") when the strip is empty.
func ActiveAfterClose(closedID, previousActive string, remaining []types.TabEntry) string {
	if closedID != previousActive {
		return previousActive
	}
	if len(remaining) > 0 {
		return remaining[0].DocumentID
	}
	return ""
}
