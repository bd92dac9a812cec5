/*
Package js runs the small scripts found in a document's <script> element.

The built-in Interpreter understands a narrow expression language:
statements are a literal, optionally combined with a second literal by
'+' or '-'. Numbers are unsigned 64-bit integers, strings are double
quoted without escapes.

	1 + 2;        // 3
	"1" + "2";    // "12"
	1 + "2";      // "12"

GojaEngine runs the same scripts on a full ECMAScript runtime and exposes
a read-only document object.
*/
package js

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webling.js'.
func tracer() tracing.Trace {
	return tracing.Select("webling.js")
}
