/*
Package render folds a stylesheet into a render tree and paints it.

Build mirrors a DOM into a tree of render nodes, each carrying a resolved
Style. Rules are applied in source order, a later matching rule overriding
an earlier one. Paint walks the render tree and draws one rectangle per
<div> onto a PaintSink; Canvas is a raster PaintSink.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webling.render'.
func tracer() tracing.Trace {
	return tracing.Select("webling.render")
}
