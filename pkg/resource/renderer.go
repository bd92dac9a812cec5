package resource

import (
	"fmt"

	"webling/pkg/css"
	"webling/pkg/html"
	"webling/pkg/js"
	"webling/pkg/render"
)

// Result holds the intermediate products of a render.
type Result struct {
	Document     *html.Node
	StyleSheet   *css.StyleSheet
	ScriptValues []js.Value
	RenderTree   *render.Node
}

// Renderer runs documents through the pipeline.
type Renderer struct {
	engine js.Engine // nil = skip scripts
	opts   render.BuildOptions
}

// NewRenderer creates a renderer with the built-in script interpreter and
// strict property checking.
func NewRenderer() *Renderer {
	return &Renderer{engine: js.NewInterpreter()}
}

// SetScriptEngine selects the engine for the first <script> element. A nil
// engine skips scripts.
func (r *Renderer) SetScriptEngine(engine js.Engine) {
	r.engine = engine
}

// SetConsole redirects script output, for engines that print.
func (r *Renderer) SetConsole(c *js.Console) {
	if e, ok := r.engine.(interface{ SetConsole(*js.Console) }); ok {
		e.SetConsole(c)
	}
}

// SetStrictProperties selects whether unknown CSS properties are fatal.
func (r *Renderer) SetStrictProperties(strict bool) {
	r.opts.IgnoreUnknownProperties = !strict
}

// Render parses htmlContent, applies the first <style> element, runs the
// first <script> element, builds the render tree and paints it onto sink.
// Nothing is painted if an earlier stage fails.
func (r *Renderer) Render(htmlContent string, sink render.PaintSink) (*Result, error) {
	res, err := r.Build(htmlContent)
	if err != nil {
		return nil, err
	}
	if err := render.Paint(res.RenderTree, sink); err != nil {
		return nil, fmt.Errorf("painting: %w", err)
	}
	return res, nil
}

// Build runs every stage except painting.
func (r *Renderer) Build(htmlContent string) (*Result, error) {
	doc, err := html.Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	res := &Result{Document: doc}

	if text, ok := firstText(doc, html.Style); ok {
		if res.StyleSheet, err = css.ParseStyleSheet(text); err != nil {
			return nil, fmt.Errorf("parsing stylesheet: %w", err)
		}
		tracer().Debugf("stylesheet with %d rules", len(res.StyleSheet.Rules))
	}

	if text, ok := firstText(doc, html.Script); ok && r.engine != nil {
		if e, ok := r.engine.(interface{ SetDocument(*html.Node) }); ok {
			e.SetDocument(doc)
		}
		if res.ScriptValues, err = r.engine.Run(text); err != nil {
			return nil, fmt.Errorf("running script: %w", err)
		}
	}

	if res.RenderTree, err = render.Build(doc, res.StyleSheet, r.opts); err != nil {
		return nil, fmt.Errorf("building render tree: %w", err)
	}
	return res, nil
}

// firstText returns the text child of the first element of the given kind.
func firstText(doc *html.Node, kind html.ElementKind) (string, bool) {
	el := doc.Find(kind)
	if el == nil {
		return "", false
	}
	tracer().Debugf("found %s element", kind)
	if el.FirstChild == nil || el.FirstChild.Type != html.TextNode {
		return "", false
	}
	return el.FirstChild.Text(), true
}
