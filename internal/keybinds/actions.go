package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal   Context = "global"   // Available everywhere
	ContextExplorer Context = "explorer" // Sidebar focused, explorer view
	ContextSearch   Context = "search"   // Sidebar focused, search view
	ContextTabs     Context = "tabs"     // Tab strip operations, shared by explorer and editor
	ContextEditor   Context = "editor"   // Editor pane focused
	ContextTerminal Context = "terminal" // Terminal prompt focused
	ContextHelp     Context = "help"     // Help overlay
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)
	ActionNone      Action = "none"       // Unbinds a key in a user config

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move up one row
	ActionNavigateDown Action = "navigate_down" // Move down one row
	ActionGoToTop      Action = "go_to_top"     // First row
	ActionGoToBottom   Action = "go_to_bottom"  // Last row
	ActionScrollUp     Action = "scroll_up"     // Scroll terminal history up
	ActionScrollDown   Action = "scroll_down"   // Scroll terminal history down

	// Focus
	ActionSwitchFocus     Action = "switch_focus"      // Next visible pane
	ActionSwitchFocusBack Action = "switch_focus_back" // Previous visible pane
	ActionFocusExplorer   Action = "focus_explorer"    // Jump back to the sidebar

	// Explorer
	ActionOpen        Action = "open"         // Toggle folder or select document
	ActionClearSearch Action = "clear_search" // Empty the search query

	// Tabs
	ActionCloseTab Action = "close_tab" // Close the active tab
	ActionNextTab  Action = "next_tab"  // Activate the next tab (wraps)
	ActionPrevTab  Action = "prev_tab"  // Activate the previous tab (wraps)

	// Layout
	ActionToggleSidebar  Action = "toggle_sidebar"  // Show or hide the sidebar
	ActionToggleTerminal Action = "toggle_terminal" // Show or hide the terminal
	ActionViewExplorer   Action = "view_explorer"   // Sidebar shows the explorer
	ActionViewSearch     Action = "view_search"     // Sidebar shows search
	ActionViewGit        Action = "view_git"        // Sidebar shows source control
	ActionViewDebug      Action = "view_debug"      // Sidebar shows run and debug

	// Editor and terminal
	ActionCopyEditor     Action = "copy_editor"     // Copy editor text to the clipboard
	ActionTerminalSubmit Action = "terminal_submit" // Run the prompt line

	// Help
	ActionOpenHelp   Action = "open_help"
	ActionCloseModal Action = "close_modal"
)

// KnownActions lists every action the TUI handles
var KnownActions = map[Action]bool{
	ActionQuit:            true,
	ActionQuitForce:       true,
	ActionNone:            true,
	ActionNavigateUp:      true,
	ActionNavigateDown:    true,
	ActionGoToTop:         true,
	ActionGoToBottom:      true,
	ActionScrollUp:        true,
	ActionScrollDown:      true,
	ActionSwitchFocus:     true,
	ActionSwitchFocusBack: true,
	ActionFocusExplorer:   true,
	ActionOpen:            true,
	ActionClearSearch:     true,
	ActionCloseTab:        true,
	ActionNextTab:         true,
	ActionPrevTab:         true,
	ActionToggleSidebar:   true,
	ActionToggleTerminal:  true,
	ActionViewExplorer:    true,
	ActionViewSearch:      true,
	ActionViewGit:         true,
	ActionViewDebug:       true,
	ActionCopyEditor:      true,
	ActionTerminalSubmit:  true,
	ActionOpenHelp:        true,
	ActionCloseModal:      true,
}

// Contexts lists every context in display order
var Contexts = []Context{
	ContextGlobal,
	ContextExplorer,
	ContextSearch,
	ContextTabs,
	ContextEditor,
	ContextTerminal,
	ContextHelp,
}
