/*
Package tui implements the terminal user interface for cloudide.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern. It is
a rendering surface only: the workspace state (tabs, buffers, selection,
layout flags) lives in a workspace.Controller. Key presses become
workspace events; every dispatch returns a snapshot the view redraws from.

# Key Components

  - model.go: Model struct, focus and layout
  - keys.go: keyboard routing per focused pane through keybinds.Registry
  - actions.go: effects of matched actions (open, close, copy, run)
  - render.go: lipgloss rendering of panes, tab bar and status bar
  - explorer_state.go: tree cursor and document search

# Panes

  - Sidebar: explorer tree or search results, per the sidebar view
  - Editor: tab bar plus a bubbles textarea, or the welcome screen
  - Terminal: command simulator history in a viewport and a prompt

Focus cycles explorer, editor, terminal and skips hidden panes. The editor
writes a buffer only when its text actually changes.
*/
package tui
