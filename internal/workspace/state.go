package workspace

import (
	"github.com/studiowebux/cloudide/internal/buffers"
	"github.com/studiowebux/cloudide/internal/tabs"
	"github.com/studiowebux/cloudide/internal/tree"
	"github.com/studiowebux/cloudide/internal/types"
)

// Mode is the coarse position of the workspace state machine
type Mode string

const (
	ModeNoSelection Mode = "no-selection"
	ModeViewing     Mode = "viewing"
	ModeEditing     Mode = "editing" // Viewing a document whose buffer has been written
)

// SidebarView selects what the sidebar shows
type SidebarView string

const (
	ViewExplorer SidebarView = "explorer"
	ViewSearch   SidebarView = "search"
	ViewGit      SidebarView = "git"
	ViewDebug    SidebarView = "debug"
)

// SidebarViews lists the sidebar views in activity bar order
var SidebarViews = []SidebarView{ViewExplorer, ViewSearch, ViewGit, ViewDebug}

// Title returns the heading shown above a sidebar view
func (v SidebarView) Title() string {
	switch v {
	case ViewExplorer:
		return "EXPLORER"
	case ViewSearch:
		return "SEARCH"
	case ViewGit:
		return "SOURCE CONTROL"
	case ViewDebug:
		return "RUN AND DEBUG"
	}
	return string(v)
}

func (v SidebarView) valid() bool {
	for _, known := range SidebarViews {
		if v == known {
			return true
		}
	}
	return false
}

// State is the whole workspace. Values are replaced, never mutated, by Reduce:
// a changed component is cloned first, unchanged components stay shared.
type State struct {
	Tree    *tree.Tree
	Tabs    *tabs.Strip
	Buffers *buffers.Store
	Active  string // Document id, "" when nothing is selected

	SidebarExpanded bool
	TerminalVisible bool
	SidebarView     SidebarView
}

// Options sets the display toggles a new workspace starts with
type Options struct {
	SidebarCollapsed bool
	TerminalHidden   bool
}

// NewState builds the initial state around a loaded tree
func NewState(t *tree.Tree, opts Options) State {
	return State{
		Tree:            t,
		Tabs:            tabs.New(),
		Buffers:         buffers.New(),
		SidebarExpanded: !opts.SidebarCollapsed,
		TerminalVisible: !opts.TerminalHidden,
		SidebarView:     ViewExplorer,
	}
}

// Snapshot is the read-only view handed to the rendering surface
type Snapshot struct {
	Tabs           []types.TabEntry
	ActiveID       string
	ActiveDocument *types.Document
	EditorText     string
	Dirty          []string // Ids with an edit buffer

	SidebarExpanded bool
	TerminalVisible bool
	SidebarView     SidebarView

	mode Mode
}

// Mode reports which state machine point the snapshot is at
func (s Snapshot) Mode() Mode {
	return s.mode
}

// IsDirty reports whether id has an edit buffer
func (s Snapshot) IsDirty(id string) bool {
	for _, d := range s.Dirty {
		if d == id {
			return true
		}
	}
	return false
}

// Snapshot derives the read-only view of s
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Tabs:            s.Tabs.Entries(),
		ActiveID:        s.Active,
		Dirty:           s.Buffers.IDs(),
		SidebarExpanded: s.SidebarExpanded,
		TerminalVisible: s.TerminalVisible,
		SidebarView:     s.SidebarView,
		mode:            ModeNoSelection,
	}

	if s.Active == "" {
		return snap
	}

	if doc, ok := s.Tree.Document(s.Active); ok {
		snap.ActiveDocument = &doc
		snap.EditorText = s.Buffers.Read(doc.ID, doc.Content)
	}

	snap.mode = ModeViewing
	if s.Buffers.Has(s.Active) {
		snap.mode = ModeEditing
	}
	return snap
}
