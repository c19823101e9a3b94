package keybinds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeKeybinds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write keybinds file: %v", err)
	}
	return path
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}

	if action, _ := r.Match(ContextTabs, "ctrl+w"); action != ActionCloseTab {
		t.Errorf("expected defaults, ctrl+w = %q", action)
	}
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	r, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}
	if !r.HasBinding(ContextGlobal, "ctrl+c") {
		t.Error("expected defaults")
	}
}

func TestLoadOrDefault_AppliesOverrides(t *testing.T) {
	path := writeKeybinds(t, `{
  "version": "1.0",
  "global": {"ctrl+t": "none", "ctrl+j": "toggle_terminal"},
  "explorer": {"o": "open"}
}`)

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}

	if _, ok := r.Match(ContextGlobal, "ctrl+t"); ok {
		t.Error("ctrl+t should be unbound")
	}
	if action, _ := r.Match(ContextEditor, "ctrl+j"); action != ActionToggleTerminal {
		t.Errorf("ctrl+j = %q, want toggle_terminal", action)
	}
	if action, _ := r.Match(ContextExplorer, "o"); action != ActionOpen {
		t.Errorf("o = %q, want open", action)
	}
	if action, _ := r.Match(ContextExplorer, "enter"); action != ActionOpen {
		t.Errorf("defaults lost, enter = %q", action)
	}
}

func TestLoadOrDefault_InvalidJSON(t *testing.T) {
	path := writeKeybinds(t, `{"global": `)

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadOrDefault_UnknownAction(t *testing.T) {
	path := writeKeybinds(t, `{"editor": {"ctrl+s": "save_everything"}}`)

	_, err := LoadOrDefault(path)
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
	if !strings.Contains(err.Error(), "save_everything") {
		t.Errorf("error should name the action: %v", err)
	}
}

func TestExportDefaults_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")

	if err := SaveConfig(ExportDefaults(), path); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	AssertEqual(t, "version", cfg.Version, ConfigVersion)
	AssertEqual(t, "global ctrl+c", cfg.Global["ctrl+c"], string(ActionQuitForce))
	AssertEqual(t, "explorer gg", cfg.Explorer["gg"], string(ActionGoToTop))
	AssertEqual(t, "tabs ctrl+w", cfg.Tabs["ctrl+w"], string(ActionCloseTab))
	AssertEqual(t, "terminal enter", cfg.Terminal["enter"], string(ActionTerminalSubmit))

	r := NewRegistry()
	if err := ApplyConfig(r, cfg); err != nil {
		t.Fatalf("ApplyConfig returned error: %v", err)
	}
	for _, context := range Contexts {
		if got, want := len(r.ListBindings(context)), len(NewDefaultRegistry().ListBindings(context)); got != want {
			t.Errorf("%s: %d bindings after round trip, want %d", context, got, want)
		}
	}
}

// AssertEqual reports a mismatch on a named value
func AssertEqual[T comparable](t *testing.T, name string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
