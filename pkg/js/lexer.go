package js

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnexpectedChar is returned for characters outside the script alphabet.
	ErrUnexpectedChar = errors.New("unexpected character")
	// ErrUnterminatedString is returned when input ends inside a string literal.
	ErrUnterminatedString = errors.New("unterminated string literal")
)

type TokenType int

const (
	TokenIdentifier TokenType = iota
	TokenKeyword              // var, function, return
	TokenPunctuator           // + - ; = ( ) { } ,
	TokenString
	TokenNumber
	TokenEOF
)

var tokenTypeNames = [...]string{"Identifier", "Keyword", "Punctuator", "String", "Number", "EOF"}

func (t TokenType) String() string {
	return tokenTypeNames[t]
}

var keywords = map[string]bool{
	"var":      true,
	"function": true,
	"return":   true,
}

// Token is a lexical unit of a script. Value holds the name, keyword,
// punctuator or string body; Number holds the value of a numeric literal.
type Token struct {
	Type   TokenType
	Value  string
	Number uint64
	Pos    int
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return fmt.Sprintf("Number(%d)", t.Number)
	case TokenString:
		return fmt.Sprintf("String(%q)", t.Value)
	case TokenEOF:
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// IsPunctuator reports whether t is the punctuator p.
func (t Token) IsPunctuator(p string) bool {
	return t.Type == TokenPunctuator && t.Value == p
}

// Lexer splits script source into tokens.
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(src string) *Lexer {
	return &Lexer{input: []rune(src)}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	saved := l.pos
	tok, err := l.Next()
	l.pos = saved
	return tok, err
}

// Next consumes and returns the next token. At the end of input it
// returns TokenEOF on every call.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start}, nil
	}
	ch := l.input[l.pos]
	switch {
	case isIdentStart(ch):
		l.pos++
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		word := string(l.input[start:l.pos])
		if keywords[word] {
			return Token{Type: TokenKeyword, Value: word, Pos: start}, nil
		}
		return Token{Type: TokenIdentifier, Value: word, Pos: start}, nil
	case isDigit(ch):
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		n, err := strconv.ParseUint(string(l.input[start:l.pos]), 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("script lexer at %d: %w: %s", start, ErrNumberRange, string(l.input[start:l.pos]))
		}
		return Token{Type: TokenNumber, Number: n, Pos: start}, nil
	case ch == '"':
		l.pos++
		for l.pos < len(l.input) && l.input[l.pos] != '"' {
			l.pos++
		}
		if l.pos >= len(l.input) {
			return Token{}, fmt.Errorf("script lexer at %d: %w", start, ErrUnterminatedString)
		}
		body := string(l.input[start+1 : l.pos])
		l.pos++
		return Token{Type: TokenString, Value: body, Pos: start}, nil
	case isPunctuator(ch):
		l.pos++
		return Token{Type: TokenPunctuator, Value: string(ch), Pos: start}, nil
	}
	return Token{}, fmt.Errorf("script lexer at %d: %w %s", start, ErrUnexpectedChar, strconv.QuoteRune(ch))
}

// Tokenize lexes a whole script, including the final TokenEOF.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isIdentStart(ch rune) bool {
	return isLetter(ch) || ch == '_' || ch == '$'
}

func isIdentPart(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '$'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isPunctuator(ch rune) bool {
	switch ch {
	case '+', '-', ';', '=', '(', ')', '{', '}', ',':
		return true
	}
	return false
}
