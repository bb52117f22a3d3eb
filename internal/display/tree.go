package display

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/backmassage/pathprune/internal/prune"
	"github.com/backmassage/pathprune/internal/term"
)

// Node is a folder or file in a preview tree.
type Node struct {
	Name     string
	Dir      bool
	Exists   bool // Dir only: the folder is already on disk.
	Children []*Node

	index map[string]*Node // child folders by name
}

// BuildTree groups paths into a folder tree. Empty path components are
// skipped, an absolute path hangs under a "/" folder, and the last
// component of each path is a file. exists is asked once per distinct
// folder path; it may be nil. Siblings are sorted case-insensitively.
func BuildTree(paths []string, exists func(string) bool) *Node {
	root := &Node{Dir: true}
	for _, p := range paths {
		addPath(root, p, exists)
	}
	sortTree(root)
	return root
}

func addPath(root *Node, path string, exists func(string) bool) {
	if path == "" {
		return
	}
	parts := strings.Split(path, prune.Separator)
	parent := root
	current := ""
	if parts[0] == "" && len(parts) > 1 {
		current = prune.Separator
		parent = parent.dir(prune.Separator, current, exists)
	}

	for _, part := range parts[:len(parts)-1] {
		if part == "" {
			continue
		}
		if current == "" || current == prune.Separator {
			current += part
		} else {
			current += prune.Separator + part
		}
		parent = parent.dir(part, current, exists)
	}

	if leaf := parts[len(parts)-1]; leaf != "" {
		parent.Children = append(parent.Children, &Node{Name: leaf})
	}
}

// dir returns the child folder name, creating it on first use.
func (n *Node) dir(name, fullPath string, exists func(string) bool) *Node {
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	if child, ok := n.index[name]; ok {
		return child
	}
	child := &Node{Name: name, Dir: true, Exists: exists != nil && exists(fullPath)}
	n.index[name] = child
	n.Children = append(n.Children, child)
	return child
}

func sortTree(n *Node) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		return strings.ToLower(n.Children[i].Name) < strings.ToLower(n.Children[j].Name)
	})
	for _, c := range n.Children {
		sortTree(c)
	}
}

// RenderTree draws root's children. Existing folders are blue, folders
// that renaming would create are green and marked "+", files are plain.
func RenderTree(root *Node, p term.Palette) string {
	t := tree.New()
	for _, c := range root.Children {
		t.Child(renderNode(c, p))
	}
	return t.String()
}

func renderNode(n *Node, p term.Palette) any {
	if !n.Dir {
		return n.Name
	}
	label := n.Name
	if label != prune.Separator {
		label += prune.Separator
	}
	if n.Exists {
		label = p.Blue.Render(label)
	} else {
		label = p.Green.Render("+ " + label)
	}

	t := tree.Root(label)
	for _, c := range n.Children {
		t.Child(renderNode(c, p))
	}
	return t
}
