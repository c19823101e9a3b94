package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/cloudide/internal/tree"
	"github.com/studiowebux/cloudide/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

var (
	// ErrUnsupportedFormat is returned for catalog files that are not YAML or JSON
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrInvalidNodeType is returned when a node type is neither file nor folder
	ErrInvalidNodeType = errors.New("invalid node type")
)

// Catalog is the initial document source: the node hierarchy plus the
// folders that start expanded
type Catalog struct {
	Roots    []types.Node `json:"roots" yaml:"roots"`
	Expanded []string     `json:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// languageByExt infers the content kind of files that do not name one
var languageByExt = map[string]string{
	".ts":   "typescript",
	".tsx":  "typescript",
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".html": "html",
	".css":  "css",
	".json": "json",
	".md":   "markdown",
	".py":   "python",
	".go":   "go",
	".rs":   "rust",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".yaml": "yaml",
	".yml":  "yaml",
}

// Sample returns the built-in sample project
func Sample() *Catalog {
	c, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded sample catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML or JSON file
func Load(path string) (*Catalog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog. YAML is a superset of JSON, so both are accepted.
// The document is either a bare list of nodes or a {roots, expanded} mapping.
func Parse(data []byte) (*Catalog, error) {
	var roots []types.Node
	if err := yaml.Unmarshal(data, &roots); err == nil {
		return normalize(&Catalog{Roots: roots})
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return normalize(&c)
}

// Tree builds the document tree for the catalog
func (c *Catalog) Tree() (*tree.Tree, error) {
	t, err := tree.New(c.Roots, c.Expanded...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return t, nil
}

func normalize(c *Catalog) (*Catalog, error) {
	for i := range c.Roots {
		if err := normalizeNode(&c.Roots[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func normalizeNode(n *types.Node) error {
	switch n.Type {
	case "":
		if len(n.Items) > 0 {
			n.Type = types.NodeFolder
		} else {
			n.Type = types.NodeFile
		}
	case types.NodeFile, types.NodeFolder:
	default:
		return fmt.Errorf("%w %q for %s", ErrInvalidNodeType, n.Type, n.ID)
	}

	if n.Type == types.NodeFile {
		if n.Language == "" {
			n.Language = languageByExt[strings.ToLower(filepath.Ext(n.Name))]
		}
		n.Items = nil
		return nil
	}

	for i := range n.Items {
		if err := normalizeNode(&n.Items[i]); err != nil {
			return err
		}
	}
	return nil
}
