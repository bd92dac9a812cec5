package css

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnexpectedChar is returned for characters outside the tokenizer's
// alphabet.
var ErrUnexpectedChar = errors.New("unexpected character")

type TokenType int

const (
	TokenHash       TokenType = iota // #name
	TokenDelim                       // .
	TokenColon                       // :
	TokenSemicolon                   // ;
	TokenOpenCurly                   // {
	TokenCloseCurly                  // }
	TokenIdent
	TokenNumber
	TokenEOF
)

var tokenTypeNames = [...]string{
	"Hash", "Delim", "Colon", "SemiColon", "OpenCurly", "CloseCurly", "Ident", "Number", "EOF",
}

func (t TokenType) String() string {
	return tokenTypeNames[t]
}

type Token struct {
	Type   TokenType
	Value  string // hash (with leading '#'), ident, or delimiter text
	Number uint64
}

func (t Token) String() string {
	switch t.Type {
	case TokenHash, TokenIdent, TokenDelim:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	case TokenNumber:
		return fmt.Sprintf("Number(%d)", t.Number)
	}
	return t.Type.String()
}

// Tokenizer produces CSS tokens lazily from its own copy of the input.
type Tokenizer struct {
	input []rune
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input)}
}

// NextToken returns the next token, TokenEOF at the end of input (and on
// every call after that).
func (t *Tokenizer) NextToken() (Token, error) {
	t.skipWhitespace()
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}, nil
	}
	ch := t.input[t.pos]
	t.pos++
	switch {
	case ch == '#':
		return Token{Type: TokenHash, Value: "#" + t.consumeName()}, nil
	case ch == '.':
		return Token{Type: TokenDelim, Value: "."}, nil
	case ch == ':':
		return Token{Type: TokenColon}, nil
	case ch == ';':
		return Token{Type: TokenSemicolon}, nil
	case ch == '{':
		return Token{Type: TokenOpenCurly}, nil
	case ch == '}':
		return Token{Type: TokenCloseCurly}, nil
	case isDigit(ch):
		t.pos--
		return t.consumeNumber()
	case isLetter(ch):
		t.pos--
		return Token{Type: TokenIdent, Value: t.consumeName()}, nil
	}
	return Token{}, t.Error(ErrUnexpectedChar, strconv.QuoteRune(ch))
}

// consumeName reads a run of name characters, stopping in front of the
// first character that does not belong to it.
func (t *Tokenizer) consumeName() string {
	start := t.pos
	for t.pos < len(t.input) && isNameChar(t.input[t.pos]) {
		t.pos++
	}
	return string(t.input[start:t.pos])
}

func (t *Tokenizer) consumeNumber() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		t.pos++
	}
	n, err := strconv.ParseUint(string(t.input[start:t.pos]), 10, 64)
	if err != nil {
		return Token{}, t.Error(err, "number out of range")
	}
	return Token{Type: TokenNumber, Number: n}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) {
		if isWhitespace(t.input[t.pos]) {
			t.pos++
		} else if t.pos+1 < len(t.input) && t.input[t.pos] == '/' && t.input[t.pos+1] == '*' {
			t.skipComment()
		} else {
			break
		}
	}
}

// skipComment skips a /* ... */ comment. Assumes pos is at the '/'.
func (t *Tokenizer) skipComment() {
	t.pos += 2 // skip /*
	for t.pos+1 < len(t.input) {
		if t.input[t.pos] == '*' && t.input[t.pos+1] == '/' {
			t.pos += 2
			return
		}
		t.pos++
	}
	// Unterminated comment: skip to end
	t.pos = len(t.input)
}

// Error returns a formatted error with position information, wrapping err.
func (t *Tokenizer) Error(err error, detail string) error {
	return fmt.Errorf("CSS tokenizer error at position %d: %w: %s", t.pos, err, detail)
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' || ch == '\f'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-'
}
