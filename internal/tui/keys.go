package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cloudide/internal/keybinds"
	"github.com/studiowebux/cloudide/internal/workspace"
)

// handleKeyPress routes key presses based on the focused pane
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		return m.handleHelpKeys(msg)
	}

	switch m.focus {
	case PaneExplorer:
		if m.snap.SidebarView == workspace.ViewSearch {
			return m.handleSearchKeys(msg)
		}
		return m.handleExplorerKeys(msg)
	case PaneEditor:
		return m.handleEditorKeys(msg)
	case PaneTerminal:
		return m.handleTerminalKeys(msg)
	}

	return nil
}

// handleHelpKeys handles the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionCloseModal:
		m.showHelp = false
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit
	}
	return nil
}

// handleExplorerKeys handles the tree view, including "gg"
func (m *Model) handleExplorerKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	action, complete, partial := m.keybinds.MatchMultiKey(keybinds.ContextExplorer, key)
	if partial {
		return nil
	}
	if !complete {
		var ok bool
		if action, ok = m.keybinds.MatchIn(key, keybinds.ContextTabs); !ok {
			return nil
		}
	}
	return m.runAction(action)
}

// handleSearchKeys handles the search view. Unbound keys edit the query.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.MatchIn(msg.String(), keybinds.ContextSearch, keybinds.ContextTabs); ok {
		return m.runAction(action)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.runSearch()
	}
	return cmd
}

// handleEditorKeys handles the editor. Unbound keys go to the textarea and
// any resulting change is written to the active document's buffer.
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.MatchIn(msg.String(), keybinds.ContextEditor, keybinds.ContextTabs); ok {
		return m.runAction(action)
	}
	if m.snap.ActiveDocument == nil {
		return nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before && after != m.snap.EditorText {
		m.apply(workspace.EditActive{Text: after})
	}
	return cmd
}

// handleTerminalKeys handles the terminal prompt
func (m *Model) handleTerminalKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.MatchIn(msg.String(), keybinds.ContextTerminal); ok {
		return m.runAction(action)
	}

	var cmd tea.Cmd
	m.termInput, cmd = m.termInput.Update(msg)
	return cmd
}

// runAction performs a matched action
func (m *Model) runAction(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	// Sidebar
	case keybinds.ActionNavigateUp:
		m.navigate(-1)
	case keybinds.ActionNavigateDown:
		m.navigate(1)
	case keybinds.ActionGoToTop:
		if m.snap.SidebarView == workspace.ViewExplorer {
			m.explorer.GoToTop(m.pageSize())
		}
	case keybinds.ActionGoToBottom:
		if m.snap.SidebarView == workspace.ViewExplorer {
			m.explorer.GoToBottom(m.pageSize())
		}
	case keybinds.ActionOpen:
		m.openSelection()
	case keybinds.ActionClearSearch:
		m.search.SetValue("")
		m.explorer.ClearSearch()

	// Focus
	case keybinds.ActionSwitchFocus:
		m.cycleFocus(1)
	case keybinds.ActionSwitchFocusBack:
		m.cycleFocus(-1)
	case keybinds.ActionFocusExplorer:
		m.setFocus(PaneExplorer)

	// Tabs
	case keybinds.ActionCloseTab:
		m.closeActiveTab()
	case keybinds.ActionNextTab:
		m.apply(workspace.CycleTab{Delta: 1})
	case keybinds.ActionPrevTab:
		m.apply(workspace.CycleTab{Delta: -1})

	// Layout
	case keybinds.ActionToggleSidebar:
		m.apply(workspace.ToggleSidebar{})
	case keybinds.ActionToggleTerminal:
		m.apply(workspace.ToggleTerminal{})
	case keybinds.ActionViewExplorer:
		m.showView(workspace.ViewExplorer)
	case keybinds.ActionViewSearch:
		m.showView(workspace.ViewSearch)
	case keybinds.ActionViewGit:
		m.showView(workspace.ViewGit)
	case keybinds.ActionViewDebug:
		m.showView(workspace.ViewDebug)

	// Editor and terminal
	case keybinds.ActionCopyEditor:
		m.copyEditor()
	case keybinds.ActionTerminalSubmit:
		m.submitTerminal()
	case keybinds.ActionScrollUp:
		m.termView.LineUp(TerminalScrollLines)
	case keybinds.ActionScrollDown:
		m.termView.LineDown(TerminalScrollLines)

	// Help
	case keybinds.ActionOpenHelp:
		m.showHelp = true
	case keybinds.ActionCloseModal:
		m.showHelp = false
	}

	return nil
}
