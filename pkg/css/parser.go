package css

import (
	"errors"
	"fmt"
)

// ErrUnexpectedToken is returned when the parser meets a token that cannot
// start or continue the construct it is reading.
var ErrUnexpectedToken = errors.New("unexpected token")

// Parser turns CSS tokens into a stylesheet. It follows the
// list-of-rules / list-of-declarations scheme of CSS Syntax Level 3,
// restricted to qualified rules with a single simple selector.
type Parser struct {
	tokenizer *Tokenizer
	current   Token
	reconsume bool
}

func NewParser(input string) *Parser {
	return &Parser{tokenizer: NewTokenizer(input)}
}

// ParseStyleSheet parses CSS stylesheet content into rules.
func ParseStyleSheet(input string) (*StyleSheet, error) {
	return NewParser(input).ParseStyleSheet()
}

// ParseStyleSheet consumes the whole input. Rules cut short by the end of
// input and declarations without a colon are dropped; characters or tokens
// which cannot occur at their position are fatal.
func (p *Parser) ParseStyleSheet() (*StyleSheet, error) {
	rules, err := p.consumeListOfRules()
	if err != nil {
		tracer().Errorf("css parser: %v", err)
		return nil, err
	}
	return &StyleSheet{Rules: rules}, nil
}

func (p *Parser) next() (Token, error) {
	if p.reconsume {
		p.reconsume = false
		return p.current, nil
	}
	tok, err := p.tokenizer.NextToken()
	if err != nil {
		return Token{}, err
	}
	p.current = tok
	return tok, nil
}

func (p *Parser) reconsumeCurrent() {
	p.reconsume = true
}

func (p *Parser) unexpected(tok Token, context string) error {
	return fmt.Errorf("css parser: %w %s in %s", ErrUnexpectedToken, tok, context)
}

func (p *Parser) consumeListOfRules() ([]QualifiedRule, error) {
	var rules []QualifiedRule
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return rules, nil
		}
		p.reconsumeCurrent()
		rule, ok, err := p.consumeQualifiedRule()
		if err != nil {
			return nil, err
		}
		if ok {
			rules = append(rules, rule)
		}
	}
}

// consumeQualifiedRule reads a prelude and a declaration block. With more
// than one selector in the prelude the last one is kept.
func (p *Parser) consumeQualifiedRule() (QualifiedRule, bool, error) {
	var rule QualifiedRule
	for {
		tok, err := p.next()
		if err != nil {
			return rule, false, err
		}
		switch tok.Type {
		case TokenEOF:
			tracer().Infof("css parser: end of input in rule prelude, rule dropped")
			return rule, false, nil
		case TokenOpenCurly:
			decls, ok, err := p.consumeListOfDeclarations()
			if err != nil {
				return rule, false, err
			}
			if !ok {
				tracer().Infof("css parser: end of input in %s block, rule dropped", rule.Selector)
				return rule, false, nil
			}
			rule.Declarations = decls
			return rule, true, nil
		default:
			p.reconsumeCurrent()
			sel, err := p.consumeSelector()
			if err != nil {
				return rule, false, err
			}
			rule.Selector = sel
		}
	}
}

func (p *Parser) consumeSelector() (Selector, error) {
	tok, err := p.next()
	if err != nil {
		return Selector{}, err
	}
	switch {
	case tok.Type == TokenHash:
		return Selector{Type: IDSelector, Name: tok.Value[1:]}, nil
	case tok.Type == TokenDelim && tok.Value == ".":
		name, err := p.consumeIdent()
		if err != nil {
			return Selector{}, err
		}
		return Selector{Type: ClassSelector, Name: name}, nil
	case tok.Type == TokenIdent:
		return Selector{Type: TypeSelector, Name: tok.Value}, nil
	}
	return Selector{}, p.unexpected(tok, "selector")
}

func (p *Parser) consumeIdent() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Type != TokenIdent {
		return "", p.unexpected(tok, "class selector")
	}
	return tok.Value, nil
}

// consumeListOfDeclarations reads declarations up to the closing brace.
// It reports false if the input ends before the block is closed.
func (p *Parser) consumeListOfDeclarations() ([]Declaration, bool, error) {
	var decls []Declaration
	for {
		tok, err := p.next()
		if err != nil {
			return nil, false, err
		}
		switch tok.Type {
		case TokenCloseCurly:
			return decls, true, nil
		case TokenSemicolon:
		case TokenIdent:
			p.reconsumeCurrent()
			decl, ok, err := p.consumeDeclaration()
			if err != nil {
				return nil, false, err
			}
			if ok {
				decls = append(decls, decl)
			}
		case TokenEOF:
			return decls, false, nil
		default:
			return nil, false, p.unexpected(tok, "declaration list")
		}
	}
}

// consumeDeclaration reads "property: value". Without a colon the
// declaration is dropped and the parser skips to the next ';' or '}'.
func (p *Parser) consumeDeclaration() (Declaration, bool, error) {
	tok, err := p.next()
	if err != nil {
		return Declaration{}, false, err
	}
	decl := Declaration{Property: tok.Value}
	tok, err = p.next()
	if err != nil {
		return decl, false, err
	}
	if tok.Type != TokenColon {
		tracer().Infof("css parser: expected ':' after %q, got %s; declaration dropped", decl.Property, tok)
		return decl, false, p.skipDeclaration(tok)
	}
	decl.Value, err = p.consumeComponentValue()
	if err != nil {
		return decl, false, err
	}
	return decl, true, nil
}

// skipDeclaration discards tokens up to the end of a broken declaration.
// A closing brace or the end of input is left for the caller.
func (p *Parser) skipDeclaration(tok Token) error {
	for {
		switch tok.Type {
		case TokenSemicolon:
			return nil
		case TokenCloseCurly, TokenEOF:
			p.reconsumeCurrent()
			return nil
		}
		var err error
		if tok, err = p.next(); err != nil {
			return err
		}
	}
}

func (p *Parser) consumeComponentValue() (ComponentValue, error) {
	tok, err := p.next()
	if err != nil {
		return ComponentValue{}, err
	}
	switch tok.Type {
	case TokenIdent:
		return Keyword(tok.Value), nil
	case TokenNumber:
		return Number(tok.Number), nil
	case TokenEOF:
		return Keyword(""), nil
	}
	return ComponentValue{}, p.unexpected(tok, "component value")
}
