package tui

import (
	"sync"
	"testing"

	"github.com/studiowebux/cloudide/internal/tree"
	"github.com/studiowebux/cloudide/internal/types"
)

func testRows(ids ...string) []tree.Row {
	rows := make([]tree.Row, len(ids))
	for i, id := range ids {
		rows[i] = tree.Row{Node: types.File(id, id+".ts", "typescript", "")}
	}
	return rows
}

func TestExplorerState_NewInitialization(t *testing.T) {
	state := NewExplorerState()

	AssertModelField(t, "cursor", state.GetCursor(), 0)
	AssertModelField(t, "offset", state.GetScrollOffset(), 0)
	if state.GetCurrentRow() != nil {
		t.Error("Expected no current row")
	}

	query, results, selected := state.GetSearchInfo()
	AssertModelField(t, "searchQuery", query, "")
	AssertModelField(t, "results", len(results), 0)
	AssertModelField(t, "selected", selected, 0)
}

func TestExplorerState_NavigateWraps(t *testing.T) {
	state := NewExplorerState()
	state.SetRows(testRows("a", "b", "c"))

	state.Navigate(1, 10)
	AssertModelField(t, "after down", state.GetCursor(), 1)

	state.Navigate(2, 10)
	AssertModelField(t, "wrap to top", state.GetCursor(), 0)

	state.Navigate(-1, 10)
	AssertModelField(t, "wrap to bottom", state.GetCursor(), 2)
}

func TestExplorerState_SetRowsKeepsNode(t *testing.T) {
	state := NewExplorerState()
	state.SetRows(testRows("a", "b", "c"))
	state.Navigate(2, 10)

	// a row inserted above the cursor
	state.SetRows(testRows("a", "x", "b", "c"))
	AssertModelField(t, "cursor follows c", state.GetCurrentRow().Node.ID, "c")

	// the cursor row disappears: clamp
	state.SetRows(testRows("a"))
	AssertModelField(t, "clamped", state.GetCursor(), 0)

	state.SetRows(nil)
	if state.GetCurrentRow() != nil {
		t.Error("Expected no current row for empty rows")
	}
}

func TestExplorerState_ScrollOffset(t *testing.T) {
	state := NewExplorerState()
	state.SetRows(testRows("a", "b", "c", "d", "e"))

	state.GoToBottom(2)
	AssertModelField(t, "cursor", state.GetCursor(), 4)
	AssertModelField(t, "offset", state.GetScrollOffset(), 3)

	state.GoToTop(2)
	AssertModelField(t, "offset at top", state.GetScrollOffset(), 0)
}

func TestExplorerState_Reveal(t *testing.T) {
	state := NewExplorerState()
	state.SetRows(testRows("a", "b", "c"))

	if !state.Reveal("c", 10) {
		t.Fatal("Reveal(c) = false")
	}
	AssertModelField(t, "cursor", state.GetCursor(), 2)

	if state.Reveal("missing", 10) {
		t.Error("Reveal(missing) = true")
	}
	AssertModelField(t, "cursor unchanged", state.GetCursor(), 2)
}

func TestExplorerState_Search(t *testing.T) {
	docs := []types.Document{
		{ID: "page", Name: "page.tsx"},
		{ID: "layout", Name: "layout.tsx"},
		{ID: "readme", Name: "README.md"},
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantErr   bool
	}{
		{"substring case-insensitive", "readme", 1, false},
		{"regex", `^(page|layout)\.tsx$`, 2, false},
		{"regex case-insensitive", "Page.tsx", 1, false},
		{"regex anchored case-insensitive", `^readme\.md$`, 1, false},
		{"invalid regex falls back to substring", "page.tsx(", 0, true},
		{"no match", "button", 0, true},
		{"empty query", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewExplorerState()
			count, errMsg := state.Search(tt.query, docs)

			AssertModelField(t, "count", count, tt.wantCount)
			AssertModelField(t, "has error", errMsg != "", tt.wantErr)
		})
	}
}

func TestExplorerState_NavigateResults(t *testing.T) {
	docs := []types.Document{{ID: "a", Name: "a.ts"}, {ID: "b", Name: "b.ts"}}
	state := NewExplorerState()
	state.Search(".ts", docs)

	AssertModelField(t, "first", state.GetCurrentResult().ID, "a")
	state.NavigateResults(1)
	AssertModelField(t, "second", state.GetCurrentResult().ID, "b")
	state.NavigateResults(1)
	AssertModelField(t, "wrapped", state.GetCurrentResult().ID, "a")
	state.NavigateResults(-1)
	AssertModelField(t, "wrapped back", state.GetCurrentResult().ID, "b")

	state.ClearSearch()
	if state.GetCurrentResult() != nil {
		t.Error("Expected no result after ClearSearch")
	}
}

func TestExplorerState_ConcurrentAccess(t *testing.T) {
	state := NewExplorerState()
	state.SetRows(testRows("a", "b", "c"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			state.Navigate(1, 2)
		}()
		go func() {
			defer wg.Done()
			_ = state.GetCurrentRow()
			_ = state.GetRows()
		}()
	}
	wg.Wait()
}
