package html

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders the subtree rooted at n as an indented tree, one node
// per line.
func Dump(n *Node) string {
	p := tp.New()
	p.SetValue(n.Label())
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(p, c)
	}
	return p.String()
}

func dumpNode(p tp.Tree, n *Node) {
	if n.FirstChild == nil {
		p.AddNode(n.Label())
		return
	}
	branch := p.AddBranch(n.Label())
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(branch, c)
	}
}

// Label is a short one-line description of n.
func (n *Node) Label() string {
	switch n.Type {
	case DocumentNode:
		return "#document"
	case TextNode:
		return fmt.Sprintf("#text %q", n.Text())
	}
	var sb strings.Builder
	sb.WriteString(n.Kind.String())
	for _, a := range n.Attributes {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	return sb.String()
}
