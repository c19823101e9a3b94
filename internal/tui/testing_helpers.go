package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/cloudide/internal/catalog"
	"github.com/studiowebux/cloudide/internal/workspace"
)

// testClipboard records what the model copies
type testClipboard struct {
	text string
	err  error
}

func (c *testClipboard) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// CreateTestModel creates a Model over the sample catalog with a fake clipboard
func CreateTestModel(t *testing.T) (*Model, *testClipboard) {
	t.Helper()

	tr, err := catalog.Sample().Tree()
	if err != nil {
		t.Fatalf("Failed to build sample tree: %v", err)
	}

	clip := &testClipboard{}
	ctrl := workspace.NewController(workspace.NewState(tr, workspace.Options{}), nil)
	m := New(ctrl, Options{Clipboard: clip.write})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return &m, clip
}

// press sends each key to the model in order
func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

// typeText sends s one rune at a time
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(runeKey(r))
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyCtrlW = tea.KeyMsg{Type: tea.KeyCtrlW}
	keyCtrlB = tea.KeyMsg{Type: tea.KeyCtrlB}
	keyCtrlT = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyCtrlY = tea.KeyMsg{Type: tea.KeyCtrlY}
	keyF1    = tea.KeyMsg{Type: tea.KeyF1}
)

// openByRow moves the explorer cursor to the row with id and presses enter
func openByRow(t *testing.T, m *Model, id string) {
	t.Helper()
	if !m.explorer.Reveal(id, m.pageSize()) {
		t.Fatalf("row %q is not visible", id)
	}
	press(m, keyEnter)
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
