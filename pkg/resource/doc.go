// Package resource loads documents and drives them through the rendering
// pipeline: HTML, stylesheet, script, render tree, paint.
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webling.resource'.
func tracer() tracing.Trace {
	return tracing.Select("webling.resource")
}
