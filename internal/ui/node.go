// Package ui builds and styles the control-panel node tree. It knows nothing
// about the renderer; the render layer walks the tree to lay out, draw, and
// hit-test controls.
package ui

import "strings"

// TextTag is the tag of leaf text nodes produced by Build.
const TextTag = "#text"

// Node is one element in the control panel tree: a container, label, checkbox
// input, button, or leaf text. Checked and the handlers are only meaningful on
// interactive nodes and are wired by the assembler after Build.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string // leaf text, only on TextTag nodes
	Children []*Node

	Checked  bool
	OnChange func(checked bool)
	OnClick  func()
}

// ID returns the node's id attribute, or "".
func (n *Node) ID() string {
	return n.Attrs["id"]
}

// Class returns the node's class attribute, or "".
func (n *Node) Class() string {
	return n.Attrs["class"]
}

// Append attaches children to the node.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// RemoveAll detaches every child. Used to clear a partially built panel when
// initialization fails.
func (n *Node) RemoveAll() {
	n.Children = nil
}

// Find returns the first node in the subtree (depth-first, including n itself)
// with the given id, or nil.
func (n *Node) Find(id string) *Node {
	if n.ID() == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of all leaf nodes in the subtree.
func (n *Node) TextContent() string {
	if n.Tag == TextTag {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}
