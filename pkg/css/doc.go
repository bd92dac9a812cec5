/*
Package css tokenizes and parses stylesheets.

Only qualified rules are understood. A rule has exactly one simple
selector (type, class or id) and a block of declarations whose values
are single keywords or unsigned numbers:

	#leaf1 {
	    background-color: blue;
	    width: 40;
	    height: 10;
	}
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webling.css'.
func tracer() tracing.Trace {
	return tracing.Select("webling.css")
}
