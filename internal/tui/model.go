package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/cloudide/internal/keybinds"
	"github.com/studiowebux/cloudide/internal/logging"
	"github.com/studiowebux/cloudide/internal/terminal"
	"github.com/studiowebux/cloudide/internal/workspace"
)

// Pane identifies the focusable areas of the screen
type Pane int

const (
	PaneExplorer Pane = iota
	PaneEditor
	PaneTerminal
)

func (p Pane) String() string {
	switch p {
	case PaneExplorer:
		return "explorer"
	case PaneEditor:
		return "editor"
	case PaneTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Options carries the collaborators of a Model. Zero values get defaults.
type Options struct {
	Keybinds  *keybinds.Registry
	Session   *terminal.Session
	Logger    *logrus.Entry
	Clipboard func(string) error // clipboard.WriteAll when nil
}

// Model is the Bubble Tea model. It holds view state only; the workspace
// state belongs to the controller and is read through snapshots.
type Model struct {
	ctrl     *workspace.Controller
	keybinds *keybinds.Registry
	logger   *logrus.Entry
	copy     func(string) error

	snap      workspace.Snapshot
	editorFor string // Document id loaded in the editor widget

	explorer  *ExplorerState
	search    textinput.Model
	editor    textarea.Model
	term      *terminal.Session
	termInput textinput.Model
	termView  viewport.Model

	focus    Pane
	showHelp bool

	width  int
	height int

	statusMsg string
	errorMsg  string
}

// New creates a model over ctrl
func New(ctrl *workspace.Controller, opts Options) Model {
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Session == nil {
		opts.Session = terminal.NewSession(terminal.DefaultBanner, terminal.DefaultPrompt)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.Placeholder = EditorPlaceholder
	editor.Prompt = ""
	editor.CharLimit = 0
	editor.MaxHeight = 0

	search := textinput.New()
	search.Prompt = "> "
	search.Placeholder = SearchPlaceholder

	termInput := textinput.New()
	termInput.Prompt = opts.Session.Prompt()

	m := Model{
		ctrl:      ctrl,
		keybinds:  opts.Keybinds,
		logger:    opts.Logger.WithField("component", "tui"),
		copy:      opts.Clipboard,
		explorer:  NewExplorerState(),
		search:    search,
		editor:    editor,
		term:      opts.Session,
		termInput: termInput,
		termView:  viewport.New(80, TerminalMinHeight),
		focus:     PaneExplorer,
	}

	m.refresh(ctrl.Snapshot())
	m.refreshTerminal()
	return m
}

// Init sets the window title
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("cloudide")
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.termView.GotoBottom()
	}

	return m, cmd
}

// View renders the current state
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// apply sends ev to the controller and redraws from the result
func (m *Model) apply(ev workspace.Event) {
	m.refresh(m.ctrl.Dispatch(ev))
}

// refresh takes a new snapshot: it rebuilds the explorer rows, reloads the
// editor widget when the active document changed and moves focus off
// panes that were hidden
func (m *Model) refresh(snap workspace.Snapshot) {
	prev := m.snap
	m.snap = snap
	if prev.SidebarExpanded != snap.SidebarExpanded || prev.TerminalVisible != snap.TerminalVisible {
		m.resize()
	}
	m.explorer.SetRows(m.ctrl.Tree().VisibleRows())

	if snap.ActiveID != m.editorFor {
		m.editor.SetValue(snap.EditorText)
		m.editorFor = snap.ActiveID
		if snap.ActiveID != "" {
			m.explorer.Reveal(snap.ActiveID, m.pageSize())
		}
	}

	if !m.paneVisible(m.focus) {
		m.focus = PaneEditor
	}
	m.applyFocus()
}

// paneVisible reports whether p is currently on screen
func (m Model) paneVisible(p Pane) bool {
	switch p {
	case PaneExplorer:
		return m.snap.SidebarExpanded
	case PaneTerminal:
		return m.snap.TerminalVisible
	default:
		return true
	}
}

// cycleFocus moves focus to the next visible pane in delta direction
func (m *Model) cycleFocus(delta int) {
	panes := []Pane{PaneExplorer, PaneEditor, PaneTerminal}
	next := int(m.focus)
	for range panes {
		next = (next + delta + len(panes)) % len(panes)
		if m.paneVisible(panes[next]) {
			m.setFocus(panes[next])
			return
		}
	}
}

// setFocus focuses p when it is visible
func (m *Model) setFocus(p Pane) {
	if !m.paneVisible(p) {
		return
	}
	m.focus = p
	m.applyFocus()
}

// applyFocus forwards focus to the bubbles widgets
func (m *Model) applyFocus() {
	if m.focus == PaneEditor && m.snap.ActiveDocument != nil {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}

	if m.focus == PaneTerminal {
		m.termInput.Focus()
	} else {
		m.termInput.Blur()
	}

	if m.focus == PaneExplorer && m.snap.SidebarView == workspace.ViewSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

// resize recomputes widget dimensions after a window or layout change
func (m *Model) resize() {
	l := m.layout()

	m.editor.SetWidth(max(1, l.mainWidth-BorderSize))
	m.editor.SetHeight(max(1, l.editorHeight-BorderSize-TabBarHeight))

	m.search.Width = max(1, l.sidebarWidth-BorderSize-len(m.search.Prompt)-1)

	m.termView.Width = max(1, l.mainWidth-BorderSize)
	m.termView.Height = max(1, l.terminalHeight-BorderSize-PaneTitleHeight-1)
	m.termInput.Width = max(1, l.mainWidth-BorderSize-len(m.termInput.Prompt)-1)

	m.explorer.AdjustScrollOffset(m.pageSize())
}

// layout holds the outer sizes of each pane, borders included
type layout struct {
	sidebarWidth   int
	mainWidth      int
	bodyHeight     int
	editorHeight   int
	terminalHeight int
}

func (m Model) layout() layout {
	l := layout{bodyHeight: max(0, m.height-StatusBarHeight)}

	if m.snap.SidebarExpanded {
		l.sidebarWidth = int(float64(m.width) * SidebarWidthRatio)
		l.sidebarWidth = min(max(l.sidebarWidth, SidebarMinWidth), SidebarMaxWidth)
		l.sidebarWidth = min(l.sidebarWidth, m.width/2)
	}
	l.mainWidth = m.width - l.sidebarWidth

	if m.snap.TerminalVisible {
		l.terminalHeight = max(TerminalMinHeight, int(float64(l.bodyHeight)*TerminalHeightRatio))
		l.terminalHeight = min(l.terminalHeight, l.bodyHeight/2)
	}
	l.editorHeight = l.bodyHeight - l.terminalHeight

	return l
}

// pageSize is the number of explorer rows that fit in the sidebar
func (m Model) pageSize() int {
	// border, title and blank line
	return max(1, m.layout().bodyHeight-BorderSize-PaneTitleHeight-1)
}

// refreshTerminal redraws the terminal history and scrolls to the end
func (m *Model) refreshTerminal() {
	m.termView.SetContent(strings.Join(m.term.Lines(), "\n"))
	m.termView.GotoBottom()
}

// setStatusMessage shows msg in the status bar, clearing any error
func (m *Model) setStatusMessage(msg string) {
	m.errorMsg = ""
	m.statusMsg = truncate(msg, MaxStatusLength)
}

// setErrorMessage shows msg as an error in the status bar
func (m *Model) setErrorMessage(format string, args ...any) {
	m.statusMsg = ""
	m.errorMsg = truncate(fmt.Sprintf(format, args...), MaxStatusLength)
}

// truncate shortens s to n runes, ending with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
