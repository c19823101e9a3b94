/*
Package workspace implements the editor workspace state machine.

# State Machine

The workspace is at one of three points:
  - no-selection: nothing is active (the tab strip may still be empty)
  - viewing: a document is active and therefore open in the tab strip
  - editing: viewing, and the active document's edit buffer has been written

Transitions are driven by events:

	Select{id}          open id in the tab strip, make it active
	SwitchTab{id}       make an open tab active
	CloseTab{id}        remove the tab; if it was active, select the first
	                    remaining tab or nothing
	EditActive{text}    overwrite the active document's edit buffer
	CycleTab{delta}     move along the tab strip, wrapping
	ToggleExpanded{id}  flip a folder's display flag
	ToggleSidebar{}     display only
	ToggleTerminal{}    display only
	SetSidebarView{v}   display only

Reduce is a total function: unknown ids and events that do not apply to the
current state return the state unchanged. Nothing in this package returns
an error.

# Invariants

  - A non-empty active id is always present in the tab strip.
  - The tab strip holds at most one entry per document and never reorders.
  - Edit buffers are never discarded; closing and reopening a document
    shows the edited text.
  - The editor text is the active document's buffer, or its original
    content when it has none.

# Threading Model

Controller serializes Dispatch behind a mutex and is the only writer.
Rendering code works from Snapshot values and never mutates state.

# Example Usage

	t, _ := tree.New(catalog.Sample(), "src")
	ctrl := workspace.NewController(workspace.NewState(t, workspace.Options{}), logger)

	snap := ctrl.Dispatch(workspace.Select{DocumentID: "page"})
	snap = ctrl.Dispatch(workspace.EditActive{Text: "export {}"})
	fmt.Println(snap.Mode(), snap.EditorText)
*/
package workspace
