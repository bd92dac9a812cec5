package html

import (
	"strings"
	"unicode/utf8"
)

type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	}
	return "?"
}

// Node is a DOM node. Children are linked through FirstChild/NextSibling,
// which own the subtree; Parent, PrevSibling and LastChild are
// back-references kept in sync by AppendChild.
type Node struct {
	Type       NodeType
	Kind       ElementKind // element nodes only
	Attributes []Attribute // element nodes only, in source order

	data []byte // text nodes only, UTF-8

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// NewDocument creates the root node of a new tree.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// NewElement creates a detached element node. The attribute slice is
// copied.
func NewElement(kind ElementKind, attrs []Attribute) *Node {
	n := &Node{Type: ElementNode, Kind: kind}
	if len(attrs) > 0 {
		n.Attributes = append([]Attribute(nil), attrs...)
	}
	return n
}

// NewText creates a detached text node holding s.
func NewText(s string) *Node {
	return &Node{Type: TextNode, data: []byte(s)}
}

// Text returns the character data of a text node.
func (n *Node) Text() string {
	return string(n.data)
}

// AppendRune appends a character to a text node's data.
func (n *Node) AppendRune(r rune) {
	n.data = utf8.AppendRune(n.data, r)
}

// AppendChild adds child as the last child of n and sets up the parent and
// sibling links.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.NextSibling = nil
	child.PrevSibling = n.LastChild
	if n.LastChild != nil {
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// Children returns the direct children of n in order.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// GetAttribute returns the value of the named attribute. With duplicate
// names the last one wins.
func (n *Node) GetAttribute(name string) (string, bool) {
	val, found := "", false
	for _, a := range n.Attributes {
		if a.Name == name {
			val, found = a.Value, true
		}
	}
	return val, found
}

// HasAttribute reports whether any attribute called name has the given value.
func (n *Node) HasAttribute(name, value string) bool {
	for _, a := range n.Attributes {
		if a.Name == name && a.Value == value {
			return true
		}
	}
	return false
}

// IsElement reports whether n is an element of the given kind.
func (n *Node) IsElement(kind ElementKind) bool {
	return n != nil && n.Type == ElementNode && n.Kind == kind
}

// Find returns the first element of the given kind in document order,
// or nil.
func (n *Node) Find(kind ElementKind) *Node {
	if n.IsElement(kind) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := c.Find(kind); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns all elements of the given kind in document order.
func (n *Node) FindAll(kind ElementKind) []*Node {
	var result []*Node
	n.Walk(func(m *Node) {
		if m.IsElement(kind) {
			result = append(result, m)
		}
	})
	return result
}

// Walk calls f for n and all its descendants in preorder.
func (n *Node) Walk(f func(*Node)) {
	f(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		c.Walk(f)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	for ; other != nil; other = other.Parent {
		if other == n {
			return true
		}
	}
	return false
}

// Equal compares the variant and the variant-specific fields of two nodes.
// Attributes are not compared.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Type != other.Type {
		return false
	}
	switch n.Type {
	case ElementNode:
		return n.Kind == other.Kind
	case TextNode:
		return n.Text() == other.Text()
	}
	return true
}

// TreeEqual compares two subtrees node by node using Equal.
func TreeEqual(a, b *Node) bool {
	if !a.Equal(b) {
		return false
	}
	if a == nil {
		return true
	}
	ca, cb := a.FirstChild, b.FirstChild
	for ca != nil && cb != nil {
		if !TreeEqual(ca, cb) {
			return false
		}
		ca, cb = ca.NextSibling, cb.NextSibling
	}
	return ca == nil && cb == nil
}

// Serialize returns the innerHTML of this node: the serialized HTML of
// all child nodes, but not the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		serializeNode(&sb, c)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case DocumentNode:
		sb.WriteString(n.Serialize())
		return
	case TextNode:
		sb.WriteString(escapeHTML(n.Text()))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Kind.String())
	for _, a := range n.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if n.Kind == Link {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		serializeNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(n.Kind.String())
	sb.WriteByte('>')
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
