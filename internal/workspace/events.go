package workspace

// Event is a user interaction forwarded by the rendering surface
type Event interface {
	Name() string
}

// Select opens a document from the tree (or a tab) and makes it active
type Select struct {
	DocumentID string
}

// SwitchTab activates an already open tab
type SwitchTab struct {
	TabID string
}

// CloseTab removes a tab, reselecting when it was active
type CloseTab struct {
	TabID string
}

// EditActive replaces the edit buffer of the active document
type EditActive struct {
	Text string
}

// CycleTab moves the active selection Delta tabs along the strip, wrapping
type CycleTab struct {
	Delta int
}

// ToggleExpanded flips a folder's expand flag in the tree
type ToggleExpanded struct {
	GroupID string
}

// ToggleSidebar shows or hides the sidebar
type ToggleSidebar struct{}

// ToggleTerminal shows or hides the terminal panel
type ToggleTerminal struct{}

// SetSidebarView switches the sidebar between its views
type SetSidebarView struct {
	View SidebarView
}

func (Select) Name() string         { return "select" }
func (SwitchTab) Name() string      { return "switch_tab" }
func (CloseTab) Name() string       { return "close_tab" }
func (EditActive) Name() string     { return "edit_active" }
func (CycleTab) Name() string       { return "cycle_tab" }
func (ToggleExpanded) Name() string { return "toggle_expanded" }
func (ToggleSidebar) Name() string  { return "toggle_sidebar" }
func (ToggleTerminal) Name() string { return "toggle_terminal" }
func (SetSidebarView) Name() string { return "set_sidebar_view" }
