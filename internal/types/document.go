package types

// NodeType distinguishes documents (files) from groups (folders) in the catalog
type NodeType string

const (
	NodeFile   NodeType = "file"
	NodeFolder NodeType = "folder"
)

// Document is a single editable text unit. Immutable once loaded.
type Document struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"` // Display-only content kind
	Content  string `json:"content,omitempty" yaml:"content,omitempty"`   // Original text, empty when none
}

// Node is a catalog entry: a Document when Type is file, a Group when Type is folder.
// Groups own an ordered list of child nodes in Items.
type Node struct {
	Type     NodeType `json:"type" yaml:"type"`
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Language string   `json:"language,omitempty" yaml:"language,omitempty"`
	Content  string   `json:"content,omitempty" yaml:"content,omitempty"`
	Items    []Node   `json:"items,omitempty" yaml:"items,omitempty"`
}

// File builds a document node
func File(id, name, language, content string) Node {
	return Node{Type: NodeFile, ID: id, Name: name, Language: language, Content: content}
}

// Folder builds a group node with the given children
func Folder(id, name string, items ...Node) Node {
	return Node{Type: NodeFolder, ID: id, Name: name, Items: items}
}

// IsFolder reports whether the node is a group
func (n Node) IsFolder() bool {
	return n.Type == NodeFolder
}

// Document returns the document view of a file node
func (n Node) Document() Document {
	return Document{
		ID:       n.ID,
		Name:     n.Name,
		Language: n.Language,
		Content:  n.Content,
	}
}

// TabEntry marks a document as open in the tab strip
type TabEntry struct {
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	Language   string `json:"language,omitempty"`
}
