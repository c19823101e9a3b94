package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Sidebar width: 25% of the screen, clamped
	SidebarWidthRatio = 0.25
	SidebarMinWidth   = 24
	SidebarMaxWidth   = 40

	// Terminal pane height: 30% of the main column, at least this many rows
	TerminalHeightRatio = 0.3
	TerminalMinHeight   = 6

	// Borders and chrome
	BorderSize      = 2 // Rounded border, both sides
	StatusBarHeight = 1
	TabBarHeight    = 1
	PaneTitleHeight = 1

	// Status messages longer than this are truncated with "..."
	MaxStatusLength = 100

	// Terminal scroll step for pgup/pgdown
	TerminalScrollLines = 3
)

// Text shown by the panes when they have nothing to display
const (
	WelcomeTitle      = "Welcome to cloudide"
	WelcomeHint       = "Select a file to start editing"
	EditorPlaceholder = "Start coding here..."
	NoTabsText        = "No open editors"
	SearchPlaceholder = "Search documents (regex allowed)"
	EmptyViewText     = "Nothing to show yet"
)
