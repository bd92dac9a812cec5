package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	nethtml "golang.org/x/net/html"
)

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", input, err)
	}
	checkLinks(t, doc)
	return doc
}

// shape renders the tree as nested kind names, e.g. "html(head,body)".
func shape(n *Node) string {
	var sb strings.Builder
	writeShape(&sb, n)
	return sb.String()
}

func writeShape(sb *strings.Builder, n *Node) {
	switch n.Type {
	case DocumentNode:
		sb.WriteString("#document")
	case TextNode:
		sb.WriteString("#text")
	default:
		sb.WriteString(n.Kind.String())
	}
	if n.FirstChild == nil {
		return
	}
	sb.WriteByte('(')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c != n.FirstChild {
			sb.WriteByte(',')
		}
		writeShape(sb, c)
	}
	sb.WriteByte(')')
}

// checkLinks verifies the parent/sibling invariants of every node and that
// text nodes are never empty.
func checkLinks(t *testing.T, root *Node) {
	t.Helper()
	if root.Type != DocumentNode || root.Parent != nil {
		t.Fatalf("expected a document root without parent")
	}
	root.Walk(func(n *Node) {
		if n != root {
			if n.Type == DocumentNode {
				t.Errorf("document node below the root")
			}
			seen := 0
			for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
				if c == n {
					seen++
				}
			}
			if seen != 1 {
				t.Errorf("%s reachable %d times from its parent", n.Label(), seen)
			}
			if !root.Contains(n) || n.Contains(n.Parent) {
				t.Errorf("%s: parent chain does not lead to the root", n.Label())
			}
		}
		if n.NextSibling != nil && n.NextSibling.PrevSibling != n {
			t.Errorf("%s: next/previous sibling links not reciprocal", n.Label())
		}
		if n.FirstChild != nil && n.FirstChild.Parent != n {
			t.Errorf("%s: first child has another parent", n.Label())
		}
		if n.LastChild != nil && n.LastChild.NextSibling != nil {
			t.Errorf("%s: last child has a next sibling", n.Label())
		}
		if n.Type == TextNode && (n.Text() == "" || strings.TrimSpace(n.Text()) == "") {
			t.Errorf("text node with collapsible content %q", n.Text())
		}
	})
}

func TestParser_Empty(t *testing.T) {
	doc := mustParse(t, "")
	if doc.FirstChild != nil {
		t.Errorf("expected a childless document, got %s", shape(doc))
	}
}

func TestParser_Scenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webling.html")
	defer teardown()
	//
	tests := []struct {
		input string
		want  string
	}{
		{"<html><head></head><body></body></html>", "#document(html(head,body))"},
		{"<body>abc</body>", "#document(html(head,body(#text)))"},
		{`<html><head><link rel='stylesheet' href="styles.css"></head></html>`, "#document(html(head(link),body))"},
		{"<html>", "#document(html(head,body))"},
		{"<html></html>", "#document(html(head,body))"},
		{"abc", "#document(html(head,body(#text)))"},
		{"<div><ul><li>a</li><li>b</li></ul></div>", "#document(html(head,body(div(ul(li(#text),li(#text))))))"},
		{"<div>a<div>b</div>c</div>", "#document(html(head,body(div(#text,div(#text),#text))))"},
		{"<head><style>p{}</style><script>1</script></head>", "#document(html(head(style(#text),script(#text)),body))"},
		{"<body><style>.a{}</style><div></div></body>", "#document(html(head,body(style(#text),div)))"},
		{"<body><style>a<div></div></body>", "#document(html(head,body(style(#text,div))))"},
		{"<head><script>1<link></head>", "#document(html(head(script(#text,link)),body))"},
		{"<div></li></ul></div>", "#document(html(head,body(div)))"},
		{"</p><html>", "#document(html(head,body))"},
		{"<html><body></body></html>x<div></div>", "#document(html(head,body,div))"},
	}
	for _, test := range tests {
		doc := mustParse(t, test.input)
		if got := shape(doc); got != test.want {
			t.Errorf("input %q:\nexpected %s\n     got %s\n%s", test.input, test.want, got, Dump(doc))
		}
	}
}

func TestParser_TextContent(t *testing.T) {
	doc := mustParse(t, "<body>abc</body>")
	body := doc.Find(Body)
	if body == nil || body.FirstChild == nil || body.FirstChild != body.LastChild {
		t.Fatalf("expected body with exactly one child, got %s", shape(doc))
	}
	if body.FirstChild.Type != TextNode || body.FirstChild.Text() != "abc" {
		t.Errorf("expected text 'abc', got %s", body.FirstChild.Label())
	}
}

func TestParser_WhitespaceCollapse(t *testing.T) {
	doc := mustParse(t, "<body>\n  <div>  a b  </div>\n</body>")
	div := doc.Find(Div)
	if div == nil || div.FirstChild == nil {
		t.Fatalf("expected div with text, got %s", shape(doc))
	}
	if got := div.FirstChild.Text(); got != "a b  " {
		t.Errorf("expected leading whitespace to be dropped, got %q", got)
	}
	if body := doc.Find(Body); body.FirstChild != div || body.LastChild != div {
		t.Errorf("expected whitespace around div to be dropped, got %s", shape(doc))
	}
}

func TestParser_LinkAttributes(t *testing.T) {
	doc := mustParse(t, `<html><head><link rel='stylesheet' href="styles.css"></head></html>`)
	link := doc.Find(Link)
	if link == nil {
		t.Fatal("expected a link element")
	}
	want := []Attribute{{"rel", "stylesheet"}, {"href", "styles.css"}}
	if len(link.Attributes) != len(want) {
		t.Fatalf("expected %d attributes, got %v", len(want), link.Attributes)
	}
	for i, a := range want {
		if link.Attributes[i] != a {
			t.Errorf("attribute %d: expected %v, got %v", i, a, link.Attributes[i])
		}
	}
	if link.FirstChild != nil {
		t.Errorf("expected link to be empty")
	}
}

func TestParser_StyleAndScriptText(t *testing.T) {
	doc := mustParse(t, "<html><head><style>\n.leaf { width: 5; }</style><script>1+2</script></head></html>")
	style := doc.Find(Style)
	if style == nil || style.FirstChild == nil {
		t.Fatalf("expected style with text, got %s", shape(doc))
	}
	if got := style.FirstChild.Text(); got != ".leaf { width: 5; }" {
		t.Errorf("unexpected style text %q", got)
	}
	script := doc.Find(Script)
	if script == nil || script.FirstChild == nil || script.FirstChild.Text() != "1+2" {
		t.Fatalf("expected script text '1+2', got %s", shape(doc))
	}
}

func TestParser_UnknownElement(t *testing.T) {
	_, err := Parse("<body><p>text</p></body>")
	if !errors.Is(err, ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
	// unknown end tags are ignored
	mustParse(t, "<body></p></body>")
}

func TestParser_DuplicateAttributes(t *testing.T) {
	doc := mustParse(t, `<div id="a" id="b"></div>`)
	div := doc.Find(Div)
	if len(div.Attributes) != 2 {
		t.Fatalf("expected duplicate attributes to be kept, got %v", div.Attributes)
	}
	if id, _ := div.GetAttribute("id"); id != "b" {
		t.Errorf("expected last id to win, got %q", id)
	}
}

func TestParser_SerializeRoundTrip(t *testing.T) {
	input := `<html><head><style>.a{}</style></head><body><div class="a"><ul><li>x</li></ul></div></body></html>`
	doc := mustParse(t, input)
	again := mustParse(t, doc.Serialize())
	if !TreeEqual(doc, again) {
		t.Errorf("expected serialized tree to parse to the same DOM\n%s\n%s", Dump(doc), Dump(again))
	}
}

func TestParser_EqualIgnoresAttributes(t *testing.T) {
	a := NewElement(Div, []Attribute{{"id", "x"}})
	b := NewElement(Div, nil)
	if !a.Equal(b) {
		t.Errorf("expected elements of the same kind to be equal")
	}
	if a.Equal(NewElement(Li, nil)) {
		t.Errorf("expected elements of different kinds to differ")
	}
	if NewText("a").Equal(NewText("b")) {
		t.Errorf("expected text nodes with different data to differ")
	}
}

// elementShape projects an x/net/html tree to element names only.
func elementShape(n *nethtml.Node) string {
	var sb strings.Builder
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		first := true
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != nethtml.ElementNode {
				continue
			}
			if first {
				sb.WriteByte('(')
				first = false
			} else {
				sb.WriteByte(',')
			}
			sb.WriteString(c.Data)
			walk(c)
		}
		if !first {
			sb.WriteByte(')')
		}
	}
	walk(n)
	return sb.String()
}

func ownElementShape(n *Node) string {
	var sb strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		first := true
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != ElementNode {
				continue
			}
			if first {
				sb.WriteByte('(')
				first = false
			} else {
				sb.WriteByte(',')
			}
			sb.WriteString(c.Kind.String())
			walk(c)
		}
		if !first {
			sb.WriteByte(')')
		}
	}
	walk(n)
	return sb.String()
}

func TestParser_AgreesWithReferenceParser(t *testing.T) {
	inputs := []string{
		"<html><head></head><body></body></html>",
		"<body>abc</body>",
		`<html><head><link rel="stylesheet" href="a.css"><style>.a{}</style></head><body><div class="a"></div></body></html>`,
		"<div><ul><li>one</li><li>two</li></ul></div><div id=x>y</div>",
		"<head><script>1+2</script></head><body><div><div></div></div></body>",
	}
	for _, input := range inputs {
		ref, err := nethtml.Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("reference parser failed on %q: %v", input, err)
		}
		doc := mustParse(t, input)
		if want, got := elementShape(ref), ownElementShape(doc); want != got {
			t.Errorf("input %q:\nreference %s\n      got %s", input, want, got)
		}
	}
}
