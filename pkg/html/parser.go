package html

type insertionMode int

const (
	initialMode insertionMode = iota
	beforeHTMLMode
	beforeHeadMode
	inHeadMode
	afterHeadMode
	inBodyMode
	textMode
	afterBodyMode
	afterAfterBodyMode
)

var modeNames = [...]string{
	"Initial", "BeforeHtml", "BeforeHead", "InHead", "AfterHead",
	"InBody", "Text", "AfterBody", "AfterAfterBody",
}

func (m insertionMode) String() string {
	return modeNames[m]
}

// modeHandler processes one token in one insertion mode. It returns whether
// the token has to be reprocessed, and the insertion mode to continue with.
type modeHandler func(tok Token) (reprocess bool, next insertionMode, err error)

// Parser builds a DOM from a token stream.
type Parser struct {
	tokenizer    *Tokenizer
	doc          *Node
	stack        []*Node // stack of open elements; may hold an open text node on top
	mode         insertionMode
	originalMode insertionMode
	handlers     [afterAfterBodyMode + 1]modeHandler
}

func NewParser(html string) *Parser {
	p := &Parser{
		tokenizer: NewTokenizer(html),
		doc:       NewDocument(),
		mode:      initialMode,
	}
	p.handlers = [...]modeHandler{
		initialMode:        p.initialModeHandler,
		beforeHTMLMode:     p.beforeHTMLModeHandler,
		beforeHeadMode:     p.beforeHeadModeHandler,
		inHeadMode:         p.inHeadModeHandler,
		afterHeadMode:      p.afterHeadModeHandler,
		inBodyMode:         p.inBodyModeHandler,
		textMode:           p.textModeHandler,
		afterBodyMode:      p.afterBodyModeHandler,
		afterAfterBodyMode: p.afterAfterBodyModeHandler,
	}
	return p
}

// ConstructTree consumes all tokens and returns the document node. The only
// fatal error is a start tag outside the supported element kinds.
func (p *Parser) ConstructTree() (*Node, error) {
	for {
		tok, ok := p.tokenizer.Next()
		if !ok {
			break
		}
		if err := p.dispatch(tok); err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			break
		}
	}
	return p.doc, nil
}

func (p *Parser) dispatch(tok Token) error {
	switch tok.Type {
	case TokenStartTag:
		if _, err := KindForTag(tok.Name); err != nil {
			tracer().Errorf("html parser: %v", err)
			return err
		}
		p.closeTextRun()
	case TokenEndTag, TokenEOF:
		p.closeTextRun()
	}
	for {
		reprocess, next, err := p.handlers[p.mode](tok)
		if err != nil {
			return err
		}
		if next != p.mode {
			tracer().Debugf("html parser: %s -> %s on %s", p.mode, next, tok)
		}
		p.mode = next
		if !reprocess {
			return nil
		}
	}
}

// Parse parses HTML source into a DOM.
func Parse(html string) (*Node, error) {
	return NewParser(html).ConstructTree()
}

// --- Stack of open elements ------------------------------------------------

// currentNode returns the top of the stack of open elements, or nil.
func (p *Parser) currentNode() *Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// insertionPoint is the node new children are appended to.
func (p *Parser) insertionPoint() *Node {
	if n := p.currentNode(); n != nil {
		return n
	}
	return p.doc
}

func (p *Parser) push(node *Node) {
	p.stack = append(p.stack, node)
}

func (p *Parser) pop() *Node {
	if len(p.stack) == 0 {
		return nil
	}
	node := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return node
}

// popCurrentIf pops the current node if it is an element of the given kind.
func (p *Parser) popCurrentIf(kind ElementKind) bool {
	if p.currentNode().IsElement(kind) {
		p.pop()
		return true
	}
	return false
}

// popUntil pops nodes until an element of the given kind has been popped.
// The stack is left alone if it holds no such element.
func (p *Parser) popUntil(kind ElementKind) {
	if !p.contains(kind) {
		tracer().Debugf("html parser: no <%s> on stack of open elements", kind)
		return
	}
	for {
		if n := p.pop(); n.IsElement(kind) {
			return
		}
	}
}

func (p *Parser) contains(kind ElementKind) bool {
	for _, n := range p.stack {
		if n.IsElement(kind) {
			return true
		}
	}
	return false
}

// closeTextRun pops an open text node, so that the next element does not
// end up inside it.
func (p *Parser) closeTextRun() {
	if n := p.currentNode(); n != nil && n.Type == TextNode {
		p.pop()
	}
}

// --- Insertion primitives --------------------------------------------------

// insertElement creates an element for kind, appends it to the current
// insertion point and pushes it onto the stack of open elements.
func (p *Parser) insertElement(kind ElementKind, attrs []Attribute) *Node {
	node := NewElement(kind, attrs)
	p.insertionPoint().AppendChild(node)
	p.push(node)
	return node
}

// insertElementForToken inserts the element a start tag names.
func (p *Parser) insertElementForToken(tok Token) (*Node, error) {
	kind, err := KindForTag(tok.Name)
	if err != nil {
		return nil, err
	}
	return p.insertElement(kind, tok.Attributes), nil
}

// insertCharacter appends c to an open text node. Whitespace which would
// start a new text node is dropped.
func (p *Parser) insertCharacter(c rune) {
	if n := p.currentNode(); n != nil && n.Type == TextNode {
		n.AppendRune(c)
		return
	}
	if isSpace(c) {
		return
	}
	text := &Node{Type: TextNode}
	text.AppendRune(c)
	p.insertionPoint().AppendChild(text)
	p.push(text)
}
