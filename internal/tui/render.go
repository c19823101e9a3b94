package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/cloudide/internal/keybinds"
	"github.com/studiowebux/cloudide/internal/workspace"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"} // Dark blue / Soft blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorCyan)
)

// languageIcons maps a document language to its tab label
var languageIcons = map[string]string{
	"javascript": "js",
	"typescript": "ts",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"html":       "html",
	"css":        "css",
	"json":       "json",
	"markdown":   "md",
	"python":     "py",
	"go":         "go",
	"rust":       "rs",
	"java":       "java",
	"c":          "c",
	"cpp":        "cpp",
}

// languageIcon returns the short label shown before a tab title
func languageIcon(language string) string {
	if language == "" {
		return "txt"
	}
	if icon, ok := languageIcons[strings.ToLower(language)]; ok {
		return icon
	}
	if runes := []rune(language); len(runes) > 3 {
		return strings.ToLower(string(runes[:3]))
	}
	return strings.ToLower(language)
}

// box draws a rounded border of the given outer size, green when focused
func box(content string, width, height int, focused bool) string {
	border := colorGray
	if focused {
		border = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(1, width-BorderSize)).
		Height(max(1, height-BorderSize)).
		Render(content)
}

// renderMain renders the sidebar, the editor column and the status bar
func (m Model) renderMain() string {
	l := m.layout()

	var column []string
	column = append(column, box(m.renderEditor(l.mainWidth-BorderSize, l.editorHeight-BorderSize), l.mainWidth, l.editorHeight, m.focus == PaneEditor))
	if m.snap.TerminalVisible {
		column = append(column, box(m.renderTerminal(), l.mainWidth, l.terminalHeight, m.focus == PaneTerminal))
	}
	main := lipgloss.JoinVertical(lipgloss.Left, column...)

	if m.snap.SidebarExpanded {
		sidebar := box(m.renderSidebar(l.sidebarWidth-BorderSize), l.sidebarWidth, l.bodyHeight, m.focus == PaneExplorer)
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

// renderSidebar renders the current sidebar view
func (m Model) renderSidebar(width int) string {
	lines := []string{styleTitle.Render(m.snap.SidebarView.Title()), ""}

	switch m.snap.SidebarView {
	case workspace.ViewExplorer:
		lines = append(lines, m.renderExplorerRows(width)...)
	case workspace.ViewSearch:
		lines = append(lines, m.renderSearch(width)...)
	default:
		lines = append(lines, styleSubtle.Render(EmptyViewText))
	}

	return strings.Join(lines, "\n")
}

// renderExplorerRows renders the visible page of the document tree
func (m Model) renderExplorerRows(width int) []string {
	rows := m.explorer.GetRows()
	cursor := m.explorer.GetCursor()
	offset := m.explorer.GetScrollOffset()
	end := min(len(rows), offset+m.pageSize())

	var lines []string
	for i := offset; i < end; i++ {
		row := rows[i]

		marker := "  "
		if row.Node.IsFolder() {
			marker = "▸ "
			if row.Expanded {
				marker = "▾ "
			}
		}

		name := row.Node.Name
		if m.snap.IsDirty(row.Node.ID) {
			name += " ●"
		}
		line := truncate(strings.Repeat("  ", row.Depth)+marker+name, max(4, width))

		switch {
		case i == cursor && m.focus == PaneExplorer:
			line = styleSelected.Render(line)
		case row.Node.ID == m.snap.ActiveID:
			line = styleActive.Render(line)
		}
		lines = append(lines, line)
	}

	if len(rows) == 0 {
		lines = append(lines, styleSubtle.Render("No documents"))
	}
	return lines
}

// renderSearch renders the query input and matching documents
func (m Model) renderSearch(width int) []string {
	lines := []string{m.search.View(), ""}

	query, results, selected := m.explorer.GetSearchInfo()
	for i, doc := range results {
		line := truncate(doc.Name, max(4, width))
		if i == selected {
			line = styleSelected.Render(line)
		}
		lines = append(lines, line)
	}

	if query != "" && len(results) == 0 {
		lines = append(lines, styleSubtle.Render("No results"))
	}
	return lines
}

// renderTabBar renders one label per open tab
func (m Model) renderTabBar(width int) string {
	if len(m.snap.Tabs) == 0 {
		return styleSubtle.Render(NoTabsText)
	}

	labels := make([]string, 0, len(m.snap.Tabs))
	for _, tab := range m.snap.Tabs {
		label := fmt.Sprintf("%s %s", languageIcon(tab.Language), tab.Title)
		if m.snap.IsDirty(tab.DocumentID) {
			label += " ●"
		}
		if tab.DocumentID == m.snap.ActiveID {
			label = styleActiveTab.Render(label)
		} else {
			label = styleSubtle.Render(label)
		}
		labels = append(labels, label)
	}

	bar := strings.Join(labels, styleSubtle.Render(" │ "))
	if lipgloss.Width(bar) > width {
		bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}

// renderEditor renders the tab bar above the editor or the welcome screen
func (m Model) renderEditor(width, height int) string {
	if m.snap.ActiveDocument == nil {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderTabBar(width), m.renderWelcome(width, height-TabBarHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabBar(width), m.editor.View())
}

// renderWelcome renders the no-selection screen
func (m Model) renderWelcome(width, height int) string {
	text := lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.Render(WelcomeTitle),
		"",
		styleSubtle.Render(WelcomeHint),
	)
	return lipgloss.Place(max(1, width), max(1, height), lipgloss.Center, lipgloss.Center, text)
}

// renderTerminal renders the history and the prompt
func (m Model) renderTerminal() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render("TERMINAL"),
		m.termView.View(),
		m.termInput.View(),
	)
}

// renderStatusBar renders mode and document on the left, messages on the right
func (m Model) renderStatusBar() string {
	left := string(m.snap.Mode())
	if doc := m.snap.ActiveDocument; doc != nil {
		left = fmt.Sprintf("%s | %s", left, doc.Name)
		if doc.Language != "" {
			left = fmt.Sprintf("%s (%s)", left, doc.Language)
		}
	}
	if n := len(m.snap.Dirty); n > 0 {
		left = fmt.Sprintf("%s | %d modified", left, n)
	}

	right := ""
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s focus | %s help | %s quit",
			m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionSwitchFocus),
			m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextGlobal, keybinds.ActionQuit)))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}

// helpSections lists what the help overlay documents, per context
var helpSections = []struct {
	title   string
	context keybinds.Context
	actions []keybinds.Action
}{
	{"Global", keybinds.ContextGlobal, []keybinds.Action{
		keybinds.ActionSwitchFocus, keybinds.ActionToggleSidebar, keybinds.ActionToggleTerminal,
		keybinds.ActionCopyEditor, keybinds.ActionViewExplorer, keybinds.ActionViewSearch,
		keybinds.ActionViewGit, keybinds.ActionViewDebug, keybinds.ActionQuit,
	}},
	{"Explorer", keybinds.ContextExplorer, []keybinds.Action{
		keybinds.ActionNavigateUp, keybinds.ActionNavigateDown, keybinds.ActionGoToTop,
		keybinds.ActionGoToBottom, keybinds.ActionOpen,
	}},
	{"Search", keybinds.ContextSearch, []keybinds.Action{
		keybinds.ActionNavigateUp, keybinds.ActionNavigateDown, keybinds.ActionOpen, keybinds.ActionClearSearch,
	}},
	{"Tabs", keybinds.ContextTabs, []keybinds.Action{
		keybinds.ActionCloseTab, keybinds.ActionNextTab, keybinds.ActionPrevTab,
	}},
	{"Editor", keybinds.ContextEditor, []keybinds.Action{keybinds.ActionFocusExplorer}},
	{"Terminal", keybinds.ContextTerminal, []keybinds.Action{
		keybinds.ActionTerminalSubmit, keybinds.ActionScrollUp, keybinds.ActionScrollDown,
	}},
}

// renderHelp renders the keybinding overlay
func (m Model) renderHelp() string {
	lines := []string{styleTitle.Render("Keybindings"), ""}
	for _, section := range helpSections {
		lines = append(lines, styleWarning.Render(section.title))
		for _, action := range section.actions {
			lines = append(lines, fmt.Sprintf("  %-22s %s", m.keybinds.GetBindingString(section.context, action), action))
		}
		lines = append(lines, "")
	}
	lines = append(lines, styleSubtle.Render(fmt.Sprintf("%s to close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal))))

	return box(strings.Join(lines, "\n"), m.width, m.height, true)
}
