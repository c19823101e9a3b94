package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cloudide/internal/workspace"
)

func TestNew_InitializesStateCorrectly(t *testing.T) {
	m, _ := CreateTestModel(t)

	AssertModelField(t, "focus", m.focus, PaneExplorer)
	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeNoSelection)
	AssertModelField(t, "visible rows", len(m.explorer.GetRows()), 8)
	AssertModelField(t, "editorFor", m.editorFor, "")
	AssertModelField(t, "showHelp", m.showHelp, false)

	lines := m.term.Lines()
	if len(lines) == 0 || lines[0] != "Welcome to cloudide Terminal" {
		t.Errorf("terminal history = %v, want banner first", lines)
	}
}

func TestExplorer_OpenDocument(t *testing.T) {
	m, _ := CreateTestModel(t)

	for i := 0; i < 5; i++ {
		press(m, runeKey('j'))
	}
	AssertModelField(t, "cursor row", m.explorer.GetCurrentRow().Node.ID, "package")

	press(m, keyEnter)

	AssertModelField(t, "active", m.snap.ActiveID, "package")
	AssertModelField(t, "tabs", len(m.snap.Tabs), 1)
	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeViewing)
	AssertModelField(t, "focus stays", m.focus, PaneExplorer)
	AssertModelField(t, "editor text", m.editor.Value(), m.snap.ActiveDocument.Content)
	AssertModelField(t, "status", m.statusMsg, "Opened package.json")
}

func TestExplorer_ToggleFolder(t *testing.T) {
	m, _ := CreateTestModel(t)

	// cursor starts on src
	press(m, keyEnter)
	AssertModelField(t, "rows after collapse", len(m.explorer.GetRows()), 5)
	AssertModelField(t, "no tabs opened", len(m.snap.Tabs), 0)
	AssertModelField(t, "cursor stays on src", m.explorer.GetCurrentRow().Node.ID, "src")

	press(m, runeKey(' '))
	AssertModelField(t, "rows after expand", len(m.explorer.GetRows()), 8)
}

func TestExplorer_JumpKeys(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, runeKey('G'))
	AssertModelField(t, "bottom", m.explorer.GetCurrentRow().Node.ID, "readme")

	press(m, runeKey('g'), runeKey('g'))
	AssertModelField(t, "top", m.explorer.GetCurrentRow().Node.ID, "src")
}

func TestEditor_TypingWritesBuffer(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "readme")
	original := m.snap.EditorText

	press(m, keyTab)
	AssertModelField(t, "focus", m.focus, PaneEditor)

	typeText(m, "x")

	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeEditing)
	AssertModelField(t, "editor text", m.snap.EditorText, original+"x")
	AssertModelField(t, "dirty", m.snap.IsDirty("readme"), true)
}

func TestEditor_CursorMovesDoNotWrite(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "package")
	press(m, keyTab)

	press(m, keyLeft, keyLeft)

	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeViewing)
	AssertModelField(t, "dirty count", len(m.snap.Dirty), 0)
}

func TestEditor_NoSelectionIgnoresTyping(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, keyTab)

	typeText(m, "hello")

	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeNoSelection)
	AssertModelField(t, "editor", m.editor.Value(), "")
}

func TestTabs_CloseActiveSelectsFirstRemaining(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "package")
	openByRow(t, m, "tsconfig")
	openByRow(t, m, "readme")

	press(m, keyCtrlW)

	AssertModelField(t, "active", m.snap.ActiveID, "package")
	AssertModelField(t, "tabs", len(m.snap.Tabs), 2)
	AssertModelField(t, "editor shows package", m.editor.Value(), m.snap.EditorText)
	AssertModelField(t, "status", m.statusMsg, "Closed README.md")
}

func TestTabs_CloseLastShowsWelcome(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "readme")

	press(m, keyCtrlW)

	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeNoSelection)
	if !strings.Contains(m.View(), WelcomeTitle) {
		t.Error("expected the welcome screen after closing the last tab")
	}
}

func TestTabs_Cycle(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "package")
	openByRow(t, m, "readme")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlPgDown})
	AssertModelField(t, "next wraps", m.snap.ActiveID, "package")

	press(m, tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	AssertModelField(t, "next", m.snap.ActiveID, "readme")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlPgUp})
	AssertModelField(t, "prev", m.snap.ActiveID, "package")
}

func TestEdit_RetainedAfterCloseAndReopen(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "readme")
	press(m, keyTab)
	typeText(m, "!")
	edited := m.snap.EditorText

	press(m, keyCtrlW)
	press(m, keyEsc) // no-selection: esc from the editor returns to the sidebar
	AssertModelField(t, "focus", m.focus, PaneExplorer)

	openByRow(t, m, "readme")

	AssertModelField(t, "reopened text", m.snap.EditorText, edited)
	AssertModelField(t, "editor widget", m.editor.Value(), edited)
	AssertModelField(t, "mode", m.snap.Mode(), workspace.ModeEditing)
}

func TestFocus_CycleSkipsHiddenPanes(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, keyTab)
	AssertModelField(t, "editor", m.focus, PaneEditor)
	press(m, keyTab)
	AssertModelField(t, "terminal", m.focus, PaneTerminal)
	press(m, keyTab)
	AssertModelField(t, "explorer", m.focus, PaneExplorer)

	press(m, keyCtrlT)
	AssertModelField(t, "terminal hidden", m.snap.TerminalVisible, false)
	press(m, keyTab, keyTab)
	AssertModelField(t, "skips terminal", m.focus, PaneExplorer)

	press(m, keyCtrlB)
	AssertModelField(t, "sidebar hidden", m.snap.SidebarExpanded, false)
	AssertModelField(t, "focus moved off hidden sidebar", m.focus, PaneEditor)
	press(m, keyTab)
	AssertModelField(t, "only editor left", m.focus, PaneEditor)
}

func TestToggles_DoNotTouchTabs(t *testing.T) {
	m, _ := CreateTestModel(t)
	openByRow(t, m, "package")

	press(m, keyCtrlB, keyCtrlT, keyCtrlB, keyCtrlT)

	AssertModelField(t, "active", m.snap.ActiveID, "package")
	AssertModelField(t, "tabs", len(m.snap.Tabs), 1)
	AssertModelField(t, "sidebar", m.snap.SidebarExpanded, true)
	AssertModelField(t, "terminal", m.snap.TerminalVisible, true)
}

func TestTerminal_Submit(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, keyTab, keyTab)

	typeText(m, "pwd")
	press(m, keyEnter)

	lines := m.term.Lines()
	AssertModelField(t, "prompt line", lines[len(lines)-2], "$ pwd")
	AssertModelField(t, "reply", lines[len(lines)-1], "/home/user/project")
	AssertModelField(t, "input cleared", m.termInput.Value(), "")

	typeText(m, "clear")
	press(m, keyEnter)
	AssertModelField(t, "history cleared", len(m.term.Lines()), 0)
}

func TestTerminal_TypingQDoesNotQuit(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, keyTab, keyTab)

	_, cmd := m.Update(runeKey('q'))

	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("typing q in the terminal quit the program")
		}
	}
	AssertModelField(t, "input", m.termInput.Value(), "q")
}

func TestExplorer_QQuits(t *testing.T) {
	m, _ := CreateTestModel(t)

	_, cmd := m.Update(runeKey('q'))

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestCopyEditor(t *testing.T) {
	m, clip := CreateTestModel(t)

	press(m, keyCtrlY)
	AssertModelField(t, "nothing to copy", m.errorMsg, "No document to copy")

	openByRow(t, m, "package")
	press(m, keyCtrlY)

	AssertModelField(t, "clipboard", clip.text, m.snap.EditorText)
	AssertModelField(t, "status", m.statusMsg, "Copied package.json to clipboard")
}

func TestCopyEditor_Failure(t *testing.T) {
	m, clip := CreateTestModel(t)
	clip.err = errors.New("no clipboard utility")
	openByRow(t, m, "package")

	press(m, keyCtrlY)

	AssertModelField(t, "error", m.errorMsg, "Failed to copy: no clipboard utility")
}

func TestSearchView_FindAndOpen(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, altKey('2'))
	AssertModelField(t, "view", m.snap.SidebarView, workspace.ViewSearch)
	AssertModelField(t, "focus", m.focus, PaneExplorer)

	typeText(m, "card")
	_, results, _ := m.explorer.GetSearchInfo()
	AssertModelField(t, "results", len(results), 1)

	press(m, keyEnter)
	AssertModelField(t, "active", m.snap.ActiveID, "card")
	AssertModelField(t, "focus editor", m.focus, PaneEditor)
}

func TestSearchView_EscClears(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, runeKey('/'))
	AssertModelField(t, "view", m.snap.SidebarView, workspace.ViewSearch)

	typeText(m, "tsx")
	press(m, keyEsc)

	query, results, _ := m.explorer.GetSearchInfo()
	AssertModelField(t, "query", query, "")
	AssertModelField(t, "results", len(results), 0)
	AssertModelField(t, "input", m.search.Value(), "")
}

func TestViewSwitch_ExpandsCollapsedSidebar(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, keyCtrlB)

	press(m, altKey('3'))

	AssertModelField(t, "sidebar", m.snap.SidebarExpanded, true)
	AssertModelField(t, "view", m.snap.SidebarView, workspace.ViewGit)
	AssertModelField(t, "focus", m.focus, PaneExplorer)
}

func TestHelp_OpenAndClose(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, keyF1)
	AssertModelField(t, "open", m.showHelp, true)
	if !strings.Contains(m.View(), "Keybindings") {
		t.Error("expected help overlay")
	}

	// explorer keys are inactive while help is shown
	press(m, runeKey('j'))
	AssertModelField(t, "cursor", m.explorer.GetCursor(), 0)

	press(m, keyEsc)
	AssertModelField(t, "closed", m.showHelp, false)
}

func TestSetStatusMessage_Truncates(t *testing.T) {
	m, _ := CreateTestModel(t)

	m.setStatusMessage(strings.Repeat("a", 150))

	AssertModelField(t, "length", len(m.statusMsg), MaxStatusLength)
	if !strings.HasSuffix(m.statusMsg, "...") {
		t.Error("expected ellipsis")
	}
}
