package tui

import (
	"regexp"
	"strings"
	"sync"

	"github.com/studiowebux/cloudide/internal/tree"
	"github.com/studiowebux/cloudide/internal/types"
)

// ExplorerState manages sidebar navigation and document search with thread safety
type ExplorerState struct {
	mu sync.RWMutex

	// Explorer view
	rows   []tree.Row // Visible rows of the document tree
	cursor int        // Selected row index
	offset int        // Scroll offset for the row list

	// Search view
	searchQuery   string           // Current search query
	searchResults []types.Document // Documents whose name matches the query
	resultIndex   int              // Selected result
}

// NewExplorerState creates an empty explorer state
func NewExplorerState() *ExplorerState {
	return &ExplorerState{}
}

// SetRows replaces the visible rows, keeping the cursor on the same node
// when it is still visible and clamping it otherwise
func (e *ExplorerState) SetRows(rows []tree.Row) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := ""
	if e.cursor >= 0 && e.cursor < len(e.rows) {
		current = e.rows[e.cursor].Node.ID
	}

	e.rows = rows
	if i := e.indexLocked(current); i >= 0 {
		e.cursor = i
	}
	e.clampLocked()
}

// GetRows returns a copy of the visible rows
func (e *ExplorerState) GetRows() []tree.Row {
	e.mu.RLock()
	defer e.mu.RUnlock()
	rows := make([]tree.Row, len(e.rows))
	copy(rows, e.rows)
	return rows
}

// GetCursor returns the selected row index
func (e *ExplorerState) GetCursor() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor
}

// GetCurrentRow returns the selected row (or nil if there are no rows)
func (e *ExplorerState) GetCurrentRow() *tree.Row {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.rows) == 0 {
		return nil
	}
	row := e.rows[e.cursor]
	return &row
}

// Navigate moves the selection by delta rows (supports wrapping)
func (e *ExplorerState) Navigate(delta int, pageSize int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.rows) == 0 {
		return
	}

	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = len(e.rows) - 1
	} else if e.cursor >= len(e.rows) {
		e.cursor = 0
	}

	e.adjustScrollOffsetLocked(pageSize)
}

// GoToTop selects the first row
func (e *ExplorerState) GoToTop(pageSize int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = 0
	e.adjustScrollOffsetLocked(pageSize)
}

// GoToBottom selects the last row
func (e *ExplorerState) GoToBottom(pageSize int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = max(0, len(e.rows)-1)
	e.adjustScrollOffsetLocked(pageSize)
}

// Reveal moves the cursor onto id if it is visible
func (e *ExplorerState) Reveal(id string, pageSize int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return false
	}
	e.cursor = i
	e.adjustScrollOffsetLocked(pageSize)
	return true
}

// GetScrollOffset returns the current scroll offset
func (e *ExplorerState) GetScrollOffset() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.offset
}

// AdjustScrollOffset adjusts the scroll offset based on current index and page size
func (e *ExplorerState) AdjustScrollOffset(pageSize int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.adjustScrollOffsetLocked(pageSize)
}

// indexLocked finds a row by node id (must be called with lock held)
func (e *ExplorerState) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range e.rows {
		if row.Node.ID == id {
			return i
		}
	}
	return -1
}

// clampLocked keeps cursor and offset inside the rows (must be called with lock held)
func (e *ExplorerState) clampLocked() {
	if e.cursor >= len(e.rows) {
		e.cursor = len(e.rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.offset > e.cursor {
		e.offset = e.cursor
	}
}

// adjustScrollOffsetLocked adjusts scroll offset (must be called with lock held)
func (e *ExplorerState) adjustScrollOffsetLocked(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if e.cursor < e.offset {
		e.offset = e.cursor
	} else if e.cursor >= e.offset+pageSize {
		e.offset = e.cursor - pageSize + 1
	}
}

// Search matches document names against query (regex or substring).
// An empty query clears the results.
func (e *ExplorerState) Search(query string, docs []types.Document) (matchCount int, errorMsg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.searchQuery = query
	e.searchResults = nil
	e.resultIndex = 0

	if query == "" {
		return 0, ""
	}

	// Auto-detect regex, falling back to substring search when it does not compile.
	// Both paths ignore case.
	matched := false
	if isRegexPattern(query) {
		if pattern, err := regexp.Compile("(?i)" + query); err == nil {
			matched = true
			for _, doc := range docs {
				if pattern.MatchString(doc.Name) {
					e.searchResults = append(e.searchResults, doc)
				}
			}
		}
	}
	if !matched {
		e.searchSubstringLocked(query, docs)
	}

	if len(e.searchResults) == 0 {
		return 0, "No matching documents found"
	}
	return len(e.searchResults), ""
}

// searchSubstringLocked performs case-insensitive substring search (must be called with lock held)
func (e *ExplorerState) searchSubstringLocked(query string, docs []types.Document) {
	queryLower := strings.ToLower(query)
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Name), queryLower) {
			e.searchResults = append(e.searchResults, doc)
		}
	}
}

// NavigateResults moves the selected search result (supports wrapping)
func (e *ExplorerState) NavigateResults(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.searchResults)
	if n == 0 {
		return
	}
	e.resultIndex = ((e.resultIndex+delta)%n + n) % n
}

// GetCurrentResult returns the selected search result (or nil if none)
func (e *ExplorerState) GetCurrentResult() *types.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.searchResults) == 0 {
		return nil
	}
	doc := e.searchResults[e.resultIndex]
	return &doc
}

// GetSearchInfo returns current search state
func (e *ExplorerState) GetSearchInfo() (query string, results []types.Document, selected int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	results = make([]types.Document, len(e.searchResults))
	copy(results, e.searchResults)
	return e.searchQuery, results, e.resultIndex
}

// ClearSearch clears the current search
func (e *ExplorerState) ClearSearch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.searchQuery = ""
	e.searchResults = nil
	e.resultIndex = 0
}

// isRegexPattern detects if a pattern looks like regex
func isRegexPattern(s string) bool {
	return strings.ContainsAny(s, ".*+?[]{}()|^$\\")
}
