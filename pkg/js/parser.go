package js

import (
	"errors"
	"fmt"
)

// ErrUnexpectedToken is returned when a statement or operand starts with a
// token the grammar does not allow there.
var ErrUnexpectedToken = errors.New("unexpected token")

// Parser is a recursive descent parser over a Lexer.
//
//	program    := statement*
//	statement  := keyword ... ';' | ';' | expression ';'?
//	expression := literal (('+' | '-') literal)?
//	literal    := number | string
//
// Statements led by a keyword are reserved: they are skipped up to and
// including the next ';' and produce no node.
type Parser struct {
	lexer *Lexer
}

func NewParser(src string) *Parser {
	return &Parser{lexer: NewLexer(src)}
}

// Parse parses a complete script.
func Parse(src string) (*Program, error) {
	return NewParser(src).ParseProgram()
}

func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for {
		tok, err := p.lexer.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return prog, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
	}
}

func (p *Parser) parseStatement() (Node, error) {
	tok, err := p.lexer.Peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Type == TokenKeyword:
		tracer().Infof("script parser: %q statement not supported, skipped", tok.Value)
		return nil, p.skipStatement()
	case tok.IsPunctuator(";"):
		p.lexer.Next()
		return nil, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, err = p.lexer.Peek(); err != nil {
		return nil, err
	}
	if tok.IsPunctuator(";") {
		p.lexer.Next()
	}
	return &ExpressionStatement{Expression: expr}, nil
}

// skipStatement consumes tokens through the next ';' or up to the end of input.
func (p *Parser) skipStatement() error {
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return err
		}
		if tok.Type == TokenEOF || tok.IsPunctuator(";") {
			return nil
		}
	}
}

func (p *Parser) parseExpression() (Node, error) {
	left, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	tok, err := p.lexer.Peek()
	if err != nil {
		return nil, err
	}
	if !tok.IsPunctuator("+") && !tok.IsPunctuator("-") {
		return left, nil
	}
	p.lexer.Next()
	right, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &BinaryExpression{Operator: tok.Value, Left: left, Right: right}, nil
}

func (p *Parser) parseLiteral() (Node, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case TokenNumber:
		return &NumericLiteral{Value: tok.Number}, nil
	case TokenString:
		return &StringLiteral{Value: tok.Value}, nil
	}
	return nil, fmt.Errorf("script parser at %d: %w %s, expected literal", tok.Pos, ErrUnexpectedToken, tok)
}
