package html

// Insertion mode handlers. Each handler either consumes the token or asks
// for it to be reprocessed in the mode it returns. An EOF token that a mode
// accepts ends tree construction.

func isWhitespaceChar(tok Token) bool {
	return tok.Type == TokenCharacter && isSpace(tok.Char)
}

func isStartTag(tok Token, names ...string) bool {
	return tok.Type == TokenStartTag && matchesName(tok.Name, names)
}

func isEndTag(tok Token, names ...string) bool {
	return tok.Type == TokenEndTag && matchesName(tok.Name, names)
}

func matchesName(name string, names []string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (p *Parser) initialModeHandler(tok Token) (bool, insertionMode, error) {
	return true, beforeHTMLMode, nil
}

func (p *Parser) beforeHTMLModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case isWhitespaceChar(tok):
		return false, beforeHTMLMode, nil
	case isStartTag(tok, "html"):
		p.insertElement(Html, tok.Attributes)
		return false, beforeHeadMode, nil
	case tok.Type == TokenEndTag && !matchesName(tok.Name, []string{"head", "body", "html", "br"}):
		tracer().Debugf("html parser: ignoring %s before <html>", tok)
		return false, beforeHTMLMode, nil
	case tok.Type == TokenEOF:
		return false, beforeHTMLMode, nil
	}
	p.insertElement(Html, nil)
	return true, beforeHeadMode, nil
}

func (p *Parser) beforeHeadModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case isWhitespaceChar(tok):
		return false, beforeHeadMode, nil
	case isStartTag(tok, "head"):
		p.insertElement(Head, tok.Attributes)
		return false, inHeadMode, nil
	}
	p.insertElement(Head, nil)
	return true, inHeadMode, nil
}

func (p *Parser) inHeadModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case isWhitespaceChar(tok):
		p.insertCharacter(tok.Char)
		return false, inHeadMode, nil
	case isStartTag(tok, "link", "style", "script"):
		next := p.insertHeadElement(tok, inHeadMode)
		return false, next, nil
	case isEndTag(tok, "head"):
		p.popUntil(Head)
		return false, afterHeadMode, nil
	}
	p.popUntil(Head)
	return true, afterHeadMode, nil
}

// insertHeadElement handles the start tags that may occur inside <head>.
// <link> is a void element and is popped right away; <style> and <script>
// switch to the text mode and remember the mode to return to.
func (p *Parser) insertHeadElement(tok Token, current insertionMode) insertionMode {
	switch tok.Name {
	case "link":
		p.insertElement(Link, tok.Attributes)
		p.popCurrentIf(Link)
		return current
	case "style":
		p.insertElement(Style, tok.Attributes)
	default:
		p.insertElement(Script, tok.Attributes)
	}
	p.originalMode = current
	return textMode
}

func (p *Parser) afterHeadModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case isWhitespaceChar(tok):
		p.insertCharacter(tok.Char)
		return false, afterHeadMode, nil
	case isStartTag(tok, "body"):
		p.insertElement(Body, tok.Attributes)
		return false, inBodyMode, nil
	}
	p.insertElement(Body, nil)
	return true, inBodyMode, nil
}

func (p *Parser) inBodyModeHandler(tok Token) (bool, insertionMode, error) {
	switch tok.Type {
	case TokenCharacter:
		p.insertCharacter(tok.Char)
	case TokenStartTag:
		switch tok.Name {
		case "ul", "li", "div":
			if _, err := p.insertElementForToken(tok); err != nil {
				return false, inBodyMode, err
			}
		case "link", "style", "script":
			return false, p.insertHeadElement(tok, inBodyMode), nil
		default:
			tracer().Debugf("html parser: ignoring %s in body", tok)
		}
	case TokenEndTag:
		switch tok.Name {
		case "body":
			if !p.contains(Body) {
				tracer().Debugf("html parser: ignoring unbalanced %s", tok)
				return false, inBodyMode, nil
			}
			p.popUntil(Body)
			return false, afterBodyMode, nil
		case "html":
			if p.popCurrentIf(Body) {
				p.popCurrentIf(Html)
				return false, afterBodyMode, nil
			}
			tracer().Debugf("html parser: ignoring %s with open elements", tok)
		case "ul", "li", "div":
			kind, _ := KindForTag(tok.Name)
			p.popUntil(kind)
		default:
			tracer().Debugf("html parser: ignoring unbalanced %s", tok)
		}
	}
	return false, inBodyMode, nil
}

func (p *Parser) textModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case tok.Type == TokenCharacter:
		p.insertCharacter(tok.Char)
		return false, textMode, nil
	case tok.Type == TokenEOF:
		return false, textMode, nil
	case isEndTag(tok, "style") && p.currentNode().IsElement(Style):
		p.popUntil(Style)
		return false, p.originalMode, nil
	case isEndTag(tok, "script") && p.currentNode().IsElement(Script):
		p.popUntil(Script)
		return false, p.originalMode, nil
	}
	// any other tag is reprocessed in the original mode; the raw text
	// element stays open and receives what follows
	return true, p.originalMode, nil
}

func (p *Parser) afterBodyModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case tok.Type == TokenCharacter:
		return false, afterBodyMode, nil
	case isEndTag(tok, "html"):
		return false, afterAfterBodyMode, nil
	case tok.Type == TokenEOF:
		return false, afterBodyMode, nil
	}
	return true, inBodyMode, nil
}

func (p *Parser) afterAfterBodyModeHandler(tok Token) (bool, insertionMode, error) {
	switch {
	case tok.Type == TokenCharacter:
		return false, afterAfterBodyMode, nil
	case isEndTag(tok, "html"):
		return false, afterAfterBodyMode, nil
	case tok.Type == TokenEOF:
		return false, afterAfterBodyMode, nil
	}
	return true, inBodyMode, nil
}
