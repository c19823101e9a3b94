package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerExplorerBindings(r)
	registerSearchBindings(r)
	registerTabBindings(r)
	registerEditorBindings(r)
	registerTerminalBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all panes.
// Only modifier and function keys live here: the editor and the terminal
// prompt consume printable keys.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextGlobal, "tab", ActionSwitchFocus)
	r.Register(ContextGlobal, "shift+tab", ActionSwitchFocusBack)
	r.Register(ContextGlobal, "ctrl+b", ActionToggleSidebar)
	r.Register(ContextGlobal, "ctrl+t", ActionToggleTerminal)
	r.Register(ContextGlobal, "ctrl+y", ActionCopyEditor)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)

	// Activity bar
	r.Register(ContextGlobal, "alt+1", ActionViewExplorer)
	r.Register(ContextGlobal, "alt+2", ActionViewSearch)
	r.Register(ContextGlobal, "alt+3", ActionViewGit)
	r.Register(ContextGlobal, "alt+4", ActionViewDebug)
}

// registerExplorerBindings sets up the document tree keys
func registerExplorerBindings(r *Registry) {
	r.RegisterMultiple(ContextExplorer, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextExplorer, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextExplorer, []string{"home", "gg"}, ActionGoToTop)
	r.RegisterMultiple(ContextExplorer, []string{"end", "G"}, ActionGoToBottom)
	r.RegisterMultiple(ContextExplorer, []string{"enter", " ", "l"}, ActionOpen)
	r.Register(ContextExplorer, "/", ActionViewSearch)
	r.Register(ContextExplorer, "?", ActionOpenHelp)
	r.Register(ContextExplorer, "q", ActionQuit)
}

// registerSearchBindings sets up the search view; printable keys edit the query
func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "up", ActionNavigateUp)
	r.Register(ContextSearch, "down", ActionNavigateDown)
	r.Register(ContextSearch, "enter", ActionOpen)
	r.Register(ContextSearch, "esc", ActionClearSearch)
}

// registerTabBindings sets up tab strip keys, matched after the pane context
func registerTabBindings(r *Registry) {
	r.Register(ContextTabs, "ctrl+w", ActionCloseTab)
	r.RegisterMultiple(ContextTabs, []string{"ctrl+pgdown", "alt+right"}, ActionNextTab)
	r.RegisterMultiple(ContextTabs, []string{"ctrl+pgup", "alt+left"}, ActionPrevTab)
}

// registerEditorBindings sets up the editor pane; everything else is typed
func registerEditorBindings(r *Registry) {
	r.Register(ContextEditor, "esc", ActionFocusExplorer)
}

// registerTerminalBindings sets up the terminal prompt
func registerTerminalBindings(r *Registry) {
	r.Register(ContextTerminal, "enter", ActionTerminalSubmit)
	r.Register(ContextTerminal, "esc", ActionFocusExplorer)
	r.Register(ContextTerminal, "pgup", ActionScrollUp)
	r.Register(ContextTerminal, "pgdown", ActionScrollDown)
}

// registerHelpBindings sets up the help overlay
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "?", "f1"}, ActionCloseModal)
}
