package html

import "unicode/utf8"

type tokenizerState int

const (
	dataState tokenizerState = iota
	tagOpenState
	endTagOpenState
	tagNameState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
)

var stateNames = [...]string{
	"Data", "TagOpen", "EndTagOpen", "TagName", "BeforeAttributeName",
	"AttributeName", "AfterAttributeName", "BeforeAttributeValue",
	"AttributeValueDoubleQuoted", "AttributeValueSingleQuoted",
	"AttributeValueUnquoted", "AfterAttributeValueQuoted",
	"SelfClosingStartTag", "BogusComment",
}

func (s tokenizerState) String() string {
	return stateNames[s]
}

// Tokenizer turns HTML source into a lazy sequence of tokens. It holds its
// own copy of the input; every character is consumed exactly once, a
// reconsume re-dispatches the last character without advancing.
type Tokenizer struct {
	input     []rune
	pos       int
	state     tokenizerState
	reconsume bool
	latest    *Token // tag under construction
	done      bool   // EOF token has been emitted
}

func NewTokenizer(html string) *Tokenizer {
	input := make([]rune, 0, utf8.RuneCountInString(html))
	for _, r := range html {
		input = append(input, r)
	}
	return &Tokenizer{input: input}
}

// Next returns the next token. The EOF token is returned exactly once;
// afterwards Next reports false forever.
func (t *Tokenizer) Next() (Token, bool) {
	if t.done {
		return Token{}, false
	}
	for {
		c, eof := t.consume()
		if eof && t.state != dataState && t.state != tagOpenState &&
			t.state != beforeAttributeNameState && t.state != attributeNameState {
			// premature end of input inside a tag drops the tag
			return t.emitEOF(), true
		}
		if tok, ok := t.step(c, eof); ok {
			return tok, true
		}
	}
}

// Tokenize collects the complete token stream of html, EOF included.
func Tokenize(html string) []Token {
	t := NewTokenizer(html)
	var tokens []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (t *Tokenizer) step(c rune, eof bool) (Token, bool) {
	switch t.state {
	case dataState:
		if eof {
			return t.emitEOF(), true
		}
		if c == '<' {
			t.state = tagOpenState
			return Token{}, false
		}
		return Char(c), true

	case tagOpenState:
		if c == '/' {
			t.state = endTagOpenState
			return Token{}, false
		}
		if c == '!' {
			t.state = bogusCommentState
			return Token{}, false
		}
		if !eof && isASCIIAlpha(c) {
			t.latest = &Token{Type: TokenStartTag}
			t.reconsumeIn(tagNameState)
			return Token{}, false
		}
		t.reconsumeIn(dataState)
		return Token{}, false

	case endTagOpenState:
		if isASCIIAlpha(c) {
			t.latest = &Token{Type: TokenEndTag}
			t.reconsumeIn(tagNameState)
			return Token{}, false
		}
		// "</>" and friends are dropped
		t.state = dataState
		return Token{}, false

	case tagNameState:
		switch {
		case isSpace(c):
			t.state = beforeAttributeNameState
		case c == '/':
			t.state = selfClosingStartTagState
		case c == '>':
			t.state = dataState
			return t.emitTag(), true
		default:
			t.latest.Name += string(toLower(c))
		}
		return Token{}, false

	case beforeAttributeNameState:
		if eof || c == '/' || c == '>' {
			t.reconsumeIn(afterAttributeNameState)
			return Token{}, false
		}
		if isSpace(c) {
			return Token{}, false
		}
		t.startAttribute()
		t.reconsumeIn(attributeNameState)
		return Token{}, false

	case attributeNameState:
		switch {
		case eof || isSpace(c) || c == '/' || c == '>':
			t.reconsumeIn(afterAttributeNameState)
		case c == '=':
			t.state = beforeAttributeValueState
		default:
			t.currentAttribute().Name += string(toLower(c))
		}
		return Token{}, false

	case afterAttributeNameState:
		if eof {
			return t.emitEOF(), true
		}
		switch {
		case isSpace(c):
		case c == '/':
			t.state = selfClosingStartTagState
		case c == '=':
			t.state = beforeAttributeValueState
		case c == '>':
			t.state = dataState
			return t.emitTag(), true
		default:
			t.startAttribute()
			t.reconsumeIn(attributeNameState)
		}
		return Token{}, false

	case beforeAttributeValueState:
		switch {
		case isSpace(c):
		case c == '"':
			t.state = attributeValueDoubleQuotedState
		case c == '\'':
			t.state = attributeValueSingleQuotedState
		default:
			t.reconsumeIn(attributeValueUnquotedState)
		}
		return Token{}, false

	case attributeValueDoubleQuotedState:
		if c == '"' {
			t.state = afterAttributeValueQuotedState
		} else {
			t.currentAttribute().Value += string(c)
		}
		return Token{}, false

	case attributeValueSingleQuotedState:
		if c == '\'' {
			t.state = afterAttributeValueQuotedState
		} else {
			t.currentAttribute().Value += string(c)
		}
		return Token{}, false

	case attributeValueUnquotedState:
		switch {
		case isSpace(c):
			t.state = beforeAttributeNameState
		case c == '>':
			t.state = dataState
			return t.emitTag(), true
		default:
			t.currentAttribute().Value += string(c)
		}
		return Token{}, false

	case afterAttributeValueQuotedState:
		switch {
		case isSpace(c):
			t.state = beforeAttributeNameState
		case c == '/':
			t.state = selfClosingStartTagState
		case c == '>':
			t.state = dataState
			return t.emitTag(), true
		default:
			t.reconsumeIn(beforeAttributeValueState)
		}
		return Token{}, false

	case selfClosingStartTagState:
		if c == '>' {
			t.latest.SelfClosing = true
			t.state = dataState
			return t.emitTag(), true
		}
		// anything else is a parse error; the attribute list continues
		t.reconsumeIn(beforeAttributeNameState)
		return Token{}, false

	case bogusCommentState:
		if c == '>' {
			t.state = dataState
		}
		return Token{}, false
	}
	return Token{}, false
}

// consume reads the next character, or re-reads the previous one when the
// reconsume flag is set. Reading one position past the end of input
// reports eof.
func (t *Tokenizer) consume() (rune, bool) {
	if t.reconsume {
		t.reconsume = false
	} else {
		t.pos++
	}
	if t.pos > len(t.input) {
		return 0, true
	}
	return t.input[t.pos-1], false
}

func (t *Tokenizer) reconsumeIn(s tokenizerState) {
	tracer().Debugf("html tokenizer: reconsume in %s at %d", s, t.pos)
	t.reconsume = true
	t.state = s
}

func (t *Tokenizer) startAttribute() {
	t.latest.Attributes = append(t.latest.Attributes, Attribute{})
}

func (t *Tokenizer) currentAttribute() *Attribute {
	return &t.latest.Attributes[len(t.latest.Attributes)-1]
}

func (t *Tokenizer) emitTag() Token {
	tok := *t.latest
	t.latest = nil
	if tok.Type == TokenEndTag {
		tok.Attributes = nil // end tags carry no attributes
	}
	return tok
}

func (t *Tokenizer) emitEOF() Token {
	t.latest = nil
	t.done = true
	return EOF()
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\f' || c == '\r'
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
