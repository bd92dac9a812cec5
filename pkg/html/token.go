package html

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenCharacter
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenStartTag:
		return "StartTag"
	case TokenEndTag:
		return "EndTag"
	case TokenCharacter:
		return "Char"
	case TokenEOF:
		return "EOF"
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Attribute is a single name/value pair of a start tag. Names are
// lowercased by the tokenizer, values keep their case.
type Attribute struct {
	Name  string
	Value string
}

type Token struct {
	Type        TokenType
	Name        string // tag name, lowercase
	SelfClosing bool
	Attributes  []Attribute // start tags only, in source order
	Char        rune        // character tokens only
}

// StartTag creates a start tag token.
func StartTag(name string, attrs ...Attribute) Token {
	return Token{Type: TokenStartTag, Name: name, Attributes: attrs}
}

// EndTag creates an end tag token.
func EndTag(name string) Token {
	return Token{Type: TokenEndTag, Name: name}
}

// Char creates a character token.
func Char(c rune) Token {
	return Token{Type: TokenCharacter, Char: c}
}

// EOF creates the end-of-input token.
func EOF() Token {
	return Token{Type: TokenEOF}
}

// Equal compares two tokens field by field, including the attribute list.
func (t Token) Equal(other Token) bool {
	if t.Type != other.Type || t.Name != other.Name || t.SelfClosing != other.SelfClosing || t.Char != other.Char {
		return false
	}
	if len(t.Attributes) != len(other.Attributes) {
		return false
	}
	for i, a := range t.Attributes {
		if a != other.Attributes[i] {
			return false
		}
	}
	return true
}

func (t Token) String() string {
	switch t.Type {
	case TokenStartTag:
		s := "<" + t.Name
		for _, a := range t.Attributes {
			s += fmt.Sprintf(" %s=%q", a.Name, a.Value)
		}
		if t.SelfClosing {
			s += "/"
		}
		return s + ">"
	case TokenEndTag:
		return "</" + t.Name + ">"
	case TokenCharacter:
		return strconv.QuoteRune(t.Char)
	}
	return "EOF"
}
