package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/studiowebux/cloudide/internal/catalog"
	"github.com/studiowebux/cloudide/internal/terminal"
	"github.com/studiowebux/cloudide/internal/tree"
	"github.com/studiowebux/cloudide/internal/types"
	"gopkg.in/yaml.v3"
)

// ErrUnknownDocument is returned by Cat for ids that are not documents
var ErrUnknownDocument = errors.New("unknown document")

// isInteractive checks if stdin is a terminal (not piped)
func isInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// PrintTree writes the catalog in the given format (text, json or yaml)
func PrintTree(w io.Writer, c *catalog.Catalog, format string) error {
	out, err := formatCatalog(c, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// formatCatalog formats the catalog based on the output format
func formatCatalog(c *catalog.Catalog, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text", "":
		expanded := make(map[string]bool, len(c.Expanded))
		for _, id := range c.Expanded {
			expanded[id] = true
		}

		var sb strings.Builder
		writeNodes(&sb, c.Roots, 0, expanded)
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// writeNodes prints one node per line, folders with a trailing slash and
// a star on the ones that start expanded
func writeNodes(sb *strings.Builder, nodes []types.Node, depth int, expanded map[string]bool) {
	for _, n := range nodes {
		sb.WriteString(strings.Repeat("  ", depth))
		if n.IsFolder() {
			sb.WriteString(n.Name + "/")
			if expanded[n.ID] {
				sb.WriteString(" *")
			}
			sb.WriteString("\n")
			writeNodes(sb, n.Items, depth+1, expanded)
			continue
		}

		sb.WriteString(n.Name)
		if n.Language != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", n.Language))
		}
		sb.WriteString("\n")
	}
}

// Cat writes the original content of document id
func Cat(w io.Writer, t *tree.Tree, id string) error {
	doc, ok := t.Document(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDocument, id)
	}

	content := doc.Content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := io.WriteString(w, content)
	return err
}

// RunTerm feeds the command simulator. With args it runs them as one
// command line; otherwise it reads one command per line from in until EOF.
func RunTerm(in io.Reader, out io.Writer, session *terminal.Session, args []string) error {
	if len(args) > 0 {
		return writeReply(out, session.Submit(strings.Join(args, " ")))
	}

	interactive := in == os.Stdin && isInteractive()
	if interactive {
		for _, line := range session.Lines() {
			fmt.Fprintln(out, line)
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, session.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		if err := writeReply(out, session.Submit(scanner.Text())); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// writeReply prints a reply; clear is shown as the ANSI clear sequence
func writeReply(out io.Writer, reply terminal.Reply) error {
	var err error
	switch {
	case reply.Clear:
		_, err = io.WriteString(out, "\x1b[2J\x1b[H")
	case reply.Output != "":
		_, err = fmt.Fprintln(out, reply.Output)
	}
	return err
}
