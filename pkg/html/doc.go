/*
Package html tokenizes HTML source and builds a DOM from it.

The tokenizer is a character-driven state machine covering a subset of
the tokenization states of the HTML Standard. The tree builder is an
insertion-mode state machine over a closed set of element kinds (see
ElementKind); unknown start tags are rejected with ErrUnknownElement.

Character tokens are collapsed into text nodes. Whitespace that would
start a new text node is dropped, so text nodes never consist of
whitespace only.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webling.html'.
func tracer() tracing.Trace {
	return tracing.Select("webling.html")
}
