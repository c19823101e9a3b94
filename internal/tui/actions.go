package tui

import (
	"fmt"

	"github.com/studiowebux/cloudide/internal/workspace"
)

// navigate moves the sidebar selection of the current view
func (m *Model) navigate(delta int) {
	switch m.snap.SidebarView {
	case workspace.ViewExplorer:
		m.explorer.Navigate(delta, m.pageSize())
	case workspace.ViewSearch:
		m.explorer.NavigateResults(delta)
	}
}

// openSelection toggles the selected folder or opens the selected document
func (m *Model) openSelection() {
	switch m.snap.SidebarView {
	case workspace.ViewExplorer:
		row := m.explorer.GetCurrentRow()
		if row == nil {
			return
		}
		if row.Node.IsFolder() {
			m.apply(workspace.ToggleExpanded{GroupID: row.Node.ID})
			return
		}
		m.apply(workspace.Select{DocumentID: row.Node.ID})
		m.setStatusMessage(fmt.Sprintf("Opened %s", row.Node.Name))

	case workspace.ViewSearch:
		doc := m.explorer.GetCurrentResult()
		if doc == nil {
			return
		}
		m.apply(workspace.Select{DocumentID: doc.ID})
		m.setFocus(PaneEditor)
		m.setStatusMessage(fmt.Sprintf("Opened %s", doc.Name))
	}
}

// closeActiveTab closes the active tab, if any
func (m *Model) closeActiveTab() {
	if m.snap.ActiveDocument == nil {
		return
	}
	name := m.snap.ActiveDocument.Name
	m.apply(workspace.CloseTab{TabID: m.snap.ActiveID})
	m.setStatusMessage(fmt.Sprintf("Closed %s", name))
}

// showView switches the sidebar to v, expanding it when collapsed
func (m *Model) showView(v workspace.SidebarView) {
	if !m.snap.SidebarExpanded {
		m.apply(workspace.ToggleSidebar{})
	}
	m.apply(workspace.SetSidebarView{View: v})
	m.setFocus(PaneExplorer)
	if v == workspace.ViewSearch {
		m.runSearch()
	}
}

// runSearch matches the search query against every document in the tree
func (m *Model) runSearch() {
	count, errMsg := m.explorer.Search(m.search.Value(), m.ctrl.Tree().Documents())
	switch {
	case errMsg != "":
		m.setErrorMessage("%s", errMsg)
	case count > 0:
		m.setStatusMessage(fmt.Sprintf("Match: %d documents", count))
	default:
		m.statusMsg, m.errorMsg = "", ""
	}
}

// copyEditor copies the editor text to the system clipboard
func (m *Model) copyEditor() {
	if m.snap.ActiveDocument == nil {
		m.setErrorMessage("No document to copy")
		return
	}
	if err := m.copy(m.snap.EditorText); err != nil {
		m.logger.WithError(err).Warn("clipboard write failed")
		m.setErrorMessage("Failed to copy: %v", err)
		return
	}
	m.setStatusMessage(fmt.Sprintf("Copied %s to clipboard", m.snap.ActiveDocument.Name))
}

// submitTerminal runs the prompt line through the command simulator
func (m *Model) submitTerminal() {
	line := m.termInput.Value()
	m.termInput.SetValue("")

	reply := m.term.Submit(line)
	m.logger.WithField("command", line).WithField("clear", reply.Clear).Debug("terminal command")
	m.refreshTerminal()
}
