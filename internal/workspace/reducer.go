package workspace

import (
	"github.com/studiowebux/cloudide/internal/tabs"
)

// Reduce applies one event and returns the next state. It never fails:
// events naming unknown ids, folders where documents are expected, or an
// absent active document leave the state as it was.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Select:
		doc, ok := s.Tree.Document(ev.DocumentID)
		if !ok {
			return s
		}
		s.Tabs = s.Tabs.Clone()
		s.Tabs.Open(doc)
		s.Active = doc.ID

	case SwitchTab:
		if !s.Tabs.Contains(ev.TabID) {
			return s
		}
		s.Active = ev.TabID

	case CloseTab:
		if !s.Tabs.Contains(ev.TabID) {
			return s
		}
		s.Tabs = s.Tabs.Clone()
		s.Tabs.Close(ev.TabID)
		s.Active = tabs.ActiveAfterClose(ev.TabID, s.Active, s.Tabs.Entries())

	case EditActive:
		if s.Active == "" {
			return s
		}
		s.Buffers = s.Buffers.Clone()
		s.Buffers.Write(s.Active, ev.Text)

	case CycleTab:
		if s.Active == "" || ev.Delta == 0 {
			return s
		}
		if next := s.Tabs.Step(s.Active, ev.Delta); next != "" {
			s.Active = next
		}

	case ToggleExpanded:
		if n, ok := s.Tree.Node(ev.GroupID); !ok || !n.IsFolder() {
			return s
		}
		s.Tree = s.Tree.Clone()
		s.Tree.ToggleExpanded(ev.GroupID)

	case ToggleSidebar:
		s.SidebarExpanded = !s.SidebarExpanded

	case ToggleTerminal:
		s.TerminalVisible = !s.TerminalVisible

	case SetSidebarView:
		if !ev.View.valid() {
			return s
		}
		s.SidebarView = ev.View
	}

	return s
}
