package keybinds

import (
	"reflect"
	"testing"
)

func TestRegistry_MatchFallsBackToGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextExplorer, "q", ActionQuit)

	tests := []struct {
		name    string
		context Context
		key     string
		want    Action
		wantOK  bool
	}{
		{"context binding", ContextExplorer, "q", ActionQuit, true},
		{"global fallback", ContextExplorer, "ctrl+c", ActionQuitForce, true},
		{"other context does not see explorer", ContextEditor, "q", "", false},
		{"unbound", ContextEditor, "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Match(tt.context, tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRegistry_MatchInOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "esc", ActionQuit)
	r.Register(ContextTabs, "esc", ActionCloseTab)
	r.Register(ContextEditor, "esc", ActionFocusExplorer)

	if got, _ := r.MatchIn("esc", ContextEditor, ContextTabs); got != ActionFocusExplorer {
		t.Errorf("editor first: got %q", got)
	}
	if got, _ := r.MatchIn("esc", ContextTabs, ContextEditor); got != ActionCloseTab {
		t.Errorf("tabs first: got %q", got)
	}
	if got, _ := r.MatchIn("esc"); got != ActionQuit {
		t.Errorf("no contexts: got %q", got)
	}
}

func TestRegistry_MatchMultiKey(t *testing.T) {
	r := NewDefaultRegistry()

	_, complete, partial := r.MatchMultiKey(ContextExplorer, "g")
	if complete || !partial {
		t.Fatalf("first g: complete=%v partial=%v, want partial", complete, partial)
	}

	action, complete, partial := r.MatchMultiKey(ContextExplorer, "g")
	if action != ActionGoToTop || !complete || partial {
		t.Errorf("gg = (%q, %v, %v), want go_to_top", action, complete, partial)
	}

	action, complete, _ = r.MatchMultiKey(ContextExplorer, "j")
	if action != ActionNavigateDown || !complete {
		t.Errorf("j = (%q, %v), want navigate_down", action, complete)
	}
}

func TestRegistry_MatchMultiKey_BrokenSequence(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextExplorer, "g")
	action, complete, partial := r.MatchMultiKey(ContextExplorer, "j")

	if action != "" || complete || partial {
		t.Errorf("gj = (%q, %v, %v), want no match", action, complete, partial)
	}

	// state cleared: j works again
	if action, _, _ := r.MatchMultiKey(ContextExplorer, "j"); action != ActionNavigateDown {
		t.Errorf("j after broken sequence = %q", action)
	}
}

func TestRegistry_MatchMultiKey_NoSequenceInEditor(t *testing.T) {
	r := NewDefaultRegistry()

	_, _, partial := r.MatchMultiKey(ContextEditor, "g")
	if partial {
		t.Error("g should not start a sequence in the editor")
	}
}

func TestRegistry_ClearMultiKeyState(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextExplorer, "g")
	r.ClearMultiKeyState(ContextExplorer)

	_, _, partial := r.MatchMultiKey(ContextExplorer, "g")
	if !partial {
		t.Error("expected a fresh partial match after clearing")
	}
}

func TestRegistry_GetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		action  Action
		want    string
	}{
		{ContextExplorer, ActionNavigateUp, "k, up"},
		{ContextExplorer, ActionToggleSidebar, "ctrl+b"},
		{ContextTabs, ActionNextTab, "alt+right, ctrl+pgdown"},
		{ContextEditor, ActionTerminalSubmit, "unbound"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := r.GetBindingString(tt.context, tt.action); got != tt.want {
				t.Errorf("GetBindingString(%s, %s) = %q, want %q", tt.context, tt.action, got, tt.want)
			}
		})
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewDefaultRegistry()

	r.Unregister(ContextTabs, "ctrl+w")

	if _, ok := r.Match(ContextTabs, "ctrl+w"); ok {
		t.Error("ctrl+w should be unbound")
	}
	if !r.HasBinding(ContextTabs, "ctrl+pgdown") {
		t.Error("other tab bindings should survive")
	}
}

func TestRegistry_ListBindingsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextTerminal, "pgup", ActionScrollUp)
	r.Register(ContextTerminal, "enter", ActionTerminalSubmit)
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)

	got := r.ListBindings(ContextTerminal)
	want := []Binding{
		{Key: "enter", Action: ActionTerminalSubmit, Context: ContextTerminal},
		{Key: "pgup", Action: ActionScrollUp, Context: ContextTerminal},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListBindings = %+v, want %+v", got, want)
	}
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := NewDefaultRegistry()
	clone := r.Clone()

	clone.Register(ContextExplorer, "x", ActionCloseTab)

	if r.HasBinding(ContextExplorer, "x") {
		t.Error("Clone shares bindings with the original")
	}
	if !clone.HasBinding(ContextExplorer, "j") {
		t.Error("Clone lost default bindings")
	}
}

func TestDefaultRegistry_Valid(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() {
		t.Errorf("default registry has errors:\n%s", result.String())
	}
}

func TestDefaultRegistry_GlobalHasNoPrintableKeys(t *testing.T) {
	for _, b := range NewDefaultRegistry().ListBindings(ContextGlobal) {
		if len(b.Key) == 1 {
			t.Errorf("global binding %q would swallow typing in the editor", b.Key)
		}
	}
}
