package render

import (
	"errors"
	"fmt"

	"webling/pkg/css"
	"webling/pkg/html"
)

// ErrUnknownProperty is returned for declarations of properties the
// builder cannot apply.
var ErrUnknownProperty = errors.New("unknown property")

// BuildOptions configures Build.
type BuildOptions struct {
	// IgnoreUnknownProperties drops declarations of unknown properties
	// instead of failing.
	IgnoreUnknownProperties bool
}

// Build mirrors doc into a render tree with default styles, then applies
// the rules of sheet in source order to every matching element. sheet may
// be nil.
func Build(doc *html.Node, sheet *css.StyleSheet, opts BuildOptions) (*Node, error) {
	root := mirror(doc)
	if sheet == nil {
		return root, nil
	}
	for _, rule := range sheet.Rules {
		err := root.Walk(func(n *Node) error {
			if !Matches(n, rule.Selector) {
				return nil
			}
			tracer().Debugf("render: %s matches %s", rule.Selector, n.Kind)
			for _, decl := range rule.Declarations {
				if err := applyDeclaration(&n.Style, decl, opts); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			tracer().Errorf("render: %v", err)
			return nil, err
		}
	}
	return root, nil
}

func mirror(d *html.Node) *Node {
	n := &Node{
		Type:  d.Type,
		Kind:  d.Kind,
		Style: DefaultStyle(d.Kind),
	}
	switch d.Type {
	case html.ElementNode:
		n.Attributes = append([]html.Attribute(nil), d.Attributes...)
	case html.TextNode:
		n.Text = d.Text()
	}
	for c := d.FirstChild; c != nil; c = c.NextSibling {
		n.AppendChild(mirror(c))
	}
	return n
}

// Matches reports whether the element n is selected by sel. Class
// selectors compare against the whole class attribute value.
func Matches(n *Node, sel css.Selector) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch sel.Type {
	case css.TypeSelector:
		return n.Kind.String() == sel.Name
	case css.ClassSelector:
		return n.attributeIs("class", sel.Name)
	case css.IDSelector:
		return n.attributeIs("id", sel.Name)
	}
	return false
}

func applyDeclaration(s *Style, decl css.Declaration, opts BuildOptions) error {
	v := decl.Value
	switch decl.Property {
	case "background-color":
		s.BackgroundColor = keywordColor(v, White)
	case "color":
		s.Color = keywordColor(v, Black)
	case "width":
		s.Width = length(v)
	case "height":
		s.Height = length(v)
	case "display":
		if v.Type == css.KeywordValue {
			switch v.Keyword {
			case "block":
				s.Display = Block
			case "inline":
				s.Display = Inline
			}
		}
	default:
		if opts.IgnoreUnknownProperties {
			tracer().Infof("render: ignoring unknown property %q", decl.Property)
			return nil
		}
		return fmt.Errorf("render: %w %q", ErrUnknownProperty, decl.Property)
	}
	return nil
}

// keywordColor maps red, green and blue to their colors and every other
// value to fallback.
func keywordColor(v css.ComponentValue, fallback Color) Color {
	if v.Type == css.KeywordValue {
		if c, ok := colorKeywords[v.Keyword]; ok {
			return c
		}
	}
	return fallback
}

func length(v css.ComponentValue) uint64 {
	if v.Type == css.NumberValue {
		return v.Number
	}
	return 0
}
