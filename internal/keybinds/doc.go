/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys map to actions within contexts. The TUI asks the registry what a key
means for the focused pane and acts on the returned Action; it never
compares raw key strings itself.

# Key Concepts

Contexts:
  - Global: modifier and function keys available in every pane
  - Explorer / Search: the sidebar, depending on its current view
  - Tabs: tab strip keys, consulted after the explorer or editor context
  - Editor / Terminal: text panes, which receive every unbound key
  - Help: the help overlay

MatchIn checks the given contexts in order and then Global, so a pane
binding shadows a global one.

Sequences:
  - A bound key like "gg" makes "g" a pending prefix in that context
  - MatchMultiKey reports partial matches so the caller can wait

# Configuration File Format

Keybindings are stored in JSON, one object per context mapping key to
action. The action "none" removes a default binding:

	{
	  "version": "1.0",
	  "global": {
	    "ctrl+t": "none",
	    "ctrl+j": "toggle_terminal"
	  },
	  "explorer": {
	    "o": "open"
	  }
	}

Unknown actions and empty keys are rejected before anything is applied.
Rebinding ctrl+c away from quit_force is reported as a warning.

# Usage

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}
	action, ok := registry.MatchIn(msg.String(), keybinds.ContextEditor, keybinds.ContextTabs)

`cloudide keybinds export` writes ExportDefaults() as a starting point.
*/
package keybinds
