package tree

import (
	"errors"
	"fmt"

	"github.com/studiowebux/cloudide/internal/types"
)

var (
	// ErrDuplicateID is returned when two catalog nodes share an id
	ErrDuplicateID = errors.New("duplicate node id")
	// ErrEmptyID is returned when a catalog node has no id
	ErrEmptyID = errors.New("empty node id")
)

// Row is one line of the flattened, currently visible tree
type Row struct {
	Node     types.Node
	Depth    int
	Expanded bool // Only meaningful for folders
}

// Tree is the read-only document catalog plus per-folder expand flags.
// The node hierarchy never changes after New; only the display flags do.
type Tree struct {
	roots    []types.Node
	nodes    map[string]types.Node
	order    []string // Document ids in depth-first order
	expanded map[string]bool
}

// New indexes the given roots. Folder ids listed in expanded start open;
// ids that do not name a folder are ignored.
func New(roots []types.Node, expanded ...string) (*Tree, error) {
	t := &Tree{
		roots:    roots,
		nodes:    make(map[string]types.Node),
		expanded: make(map[string]bool),
	}

	if err := t.index(roots); err != nil {
		return nil, err
	}

	for _, id := range expanded {
		if n, ok := t.nodes[id]; ok && n.IsFolder() {
			t.expanded[id] = true
		}
	}

	return t, nil
}

func (t *Tree) index(nodes []types.Node) error {
	for _, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("%w (name %q)", ErrEmptyID, n.Name)
		}
		if _, exists := t.nodes[n.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
		t.nodes[n.ID] = n

		if n.IsFolder() {
			if err := t.index(n.Items); err != nil {
				return err
			}
		} else {
			t.order = append(t.order, n.ID)
		}
	}
	return nil
}

// ListRoots returns the top-level nodes in catalog order
func (t *Tree) ListRoots() []types.Node {
	roots := make([]types.Node, len(t.roots))
	copy(roots, t.roots)
	return roots
}

// ToggleExpanded flips the display flag of a folder.
// Unknown ids and document ids are ignored.
func (t *Tree) ToggleExpanded(groupID string) {
	n, ok := t.nodes[groupID]
	if !ok || !n.IsFolder() {
		return
	}
	t.expanded[groupID] = !t.expanded[groupID]
}

// IsExpanded reports the display flag of a folder
func (t *Tree) IsExpanded(id string) bool {
	return t.expanded[id]
}

// Node looks up any node by id
func (t *Tree) Node(id string) (types.Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Document looks up a document by id. Folders are not documents.
func (t *Tree) Document(id string) (types.Document, bool) {
	n, ok := t.nodes[id]
	if !ok || n.IsFolder() {
		return types.Document{}, false
	}
	return n.Document(), true
}

// Documents returns every document in depth-first catalog order
func (t *Tree) Documents() []types.Document {
	docs := make([]types.Document, 0, len(t.order))
	for _, id := range t.order {
		docs = append(docs, t.nodes[id].Document())
	}
	return docs
}

// VisibleRows flattens the tree, descending only into expanded folders
func (t *Tree) VisibleRows() []Row {
	var rows []Row
	t.appendRows(&rows, t.roots, 0)
	return rows
}

func (t *Tree) appendRows(rows *[]Row, nodes []types.Node, depth int) {
	for _, n := range nodes {
		open := n.IsFolder() && t.expanded[n.ID]
		*rows = append(*rows, Row{Node: n, Depth: depth, Expanded: open})
		if open {
			t.appendRows(rows, n.Items, depth+1)
		}
	}
}

// Clone copies the expand flags so reducers can hand out a fresh tree
// without sharing display state. Nodes are immutable and stay shared.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		roots:    t.roots,
		nodes:    t.nodes,
		order:    t.order,
		expanded: make(map[string]bool, len(t.expanded)),
	}
	for id, open := range t.expanded {
		c.expanded[id] = open
	}
	return c
}
