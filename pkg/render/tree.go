package render

import (
	"fmt"

	"webling/pkg/html"

	tp "github.com/xlab/treeprint"
)

// Node is a render tree node. The render tree has the shape of the DOM it
// was built from, and holds copies of the DOM node data rather than
// references to DOM nodes.
type Node struct {
	Type       html.NodeType
	Kind       html.ElementKind
	Attributes []html.Attribute
	Text       string
	Style      Style

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// AppendChild links child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.PrevSibling = n.LastChild
	if n.LastChild != nil {
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// Walk calls f for n and its descendants in preorder, stopping at the
// first error.
func (n *Node) Walk(f func(*Node) error) error {
	if err := f(n); err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := c.Walk(f); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) Count() int {
	count := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += c.Count()
	}
	return count
}

// IsElement reports whether n is an element of the given kind.
func (n *Node) IsElement(kind html.ElementKind) bool {
	return n != nil && n.Type == html.ElementNode && n.Kind == kind
}

// attributeIs reports whether any attribute called name has the given value.
func (n *Node) attributeIs(name, value string) bool {
	for _, a := range n.Attributes {
		if a.Name == name && a.Value == value {
			return true
		}
	}
	return false
}

// Equal compares node data and style, not links.
func (n *Node) Equal(other *Node) bool {
	if n.Type != other.Type || n.Kind != other.Kind || n.Text != other.Text || n.Style != other.Style {
		return false
	}
	if len(n.Attributes) != len(other.Attributes) {
		return false
	}
	for i, a := range n.Attributes {
		if other.Attributes[i] != a {
			return false
		}
	}
	return true
}

// TreeEqual reports whether two render trees have equal nodes in the same shape.
func TreeEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.Equal(b) {
		return false
	}
	ca, cb := a.FirstChild, b.FirstChild
	for ; ca != nil && cb != nil; ca, cb = ca.NextSibling, cb.NextSibling {
		if !TreeEqual(ca, cb) {
			return false
		}
	}
	return ca == nil && cb == nil
}

// SameShape reports whether a render tree mirrors a DOM tree node for node.
func SameShape(r *Node, d *html.Node) bool {
	if r == nil || d == nil {
		return r == nil && d == nil
	}
	if r.Type != d.Type || r.Kind != d.Kind {
		return false
	}
	cr, cd := r.FirstChild, d.FirstChild
	for ; cr != nil && cd != nil; cr, cd = cr.NextSibling, cd.NextSibling {
		if !SameShape(cr, cd) {
			return false
		}
	}
	return cr == nil && cd == nil
}

func (n *Node) Label() string {
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return fmt.Sprintf("#text %q", n.Text)
	}
	return fmt.Sprintf("%s [%s]", n.Kind, n.Style)
}

// Dump renders a render tree as an indented tree.
func Dump(n *Node) string {
	tree := tp.New()
	tree.SetValue(n.Label())
	dumpChildren(tree, n)
	return tree.String()
}

func dumpChildren(t tp.Tree, n *Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.FirstChild == nil {
			t.AddNode(c.Label())
			continue
		}
		dumpChildren(t.AddBranch(c.Label()), c)
	}
}
