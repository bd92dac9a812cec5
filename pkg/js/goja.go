package js

import (
	"fmt"
	"io"
	"math"

	"webling/pkg/html"

	"github.com/dop251/goja"
)

// GojaEngine runs scripts on the goja ECMAScript runtime. It reports the
// completion value of the script as its only value.
type GojaEngine struct {
	vm      *goja.Runtime
	console *Console
}

var _ Engine = (*GojaEngine)(nil)

// NewGojaEngine creates an engine with a fresh runtime and a console on
// stdout.
func NewGojaEngine() *GojaEngine {
	e := &GojaEngine{vm: goja.New()}
	e.SetConsole(NewConsole())
	return e
}

// SetConsole binds the script's console object to c. A nil console
// silences completion values; console.log then writes nowhere.
func (e *GojaEngine) SetConsole(c *Console) {
	e.console = c
	if c == nil {
		c = &Console{Out: io.Discard, Err: io.Discard}
	}
	c.register(e.vm)
}

// SetDocument exposes doc to scripts as the global 'document'.
func (e *GojaEngine) SetDocument(doc *html.Node) {
	registerDocument(e.vm, doc)
}

// Run executes src. Undefined or null completion values yield no value.
func (e *GojaEngine) Run(src string) ([]Value, error) {
	result, err := e.vm.RunString(src)
	if err != nil {
		tracer().Errorf("goja: %v", err)
		return nil, fmt.Errorf("goja: %w", err)
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return nil, nil
	}
	v, err := fromGoja(result)
	if err != nil {
		return nil, err
	}
	if e.console != nil {
		e.console.Log(v)
	}
	return []Value{v}, nil
}

// fromGoja converts a completion value into a script value.
func fromGoja(result goja.Value) (Value, error) {
	switch x := result.Export().(type) {
	case string:
		return Str(x), nil
	case int64:
		if x < 0 {
			return Value{}, fmt.Errorf("goja: %w: %d", ErrNumberRange, x)
		}
		return Num(uint64(x)), nil
	case float64:
		if x < 0 || x != math.Trunc(x) || x >= math.MaxUint64 {
			return Value{}, fmt.Errorf("goja: %w: %v", ErrNumberRange, x)
		}
		return Num(uint64(x)), nil
	}
	return Value{}, fmt.Errorf("goja: %w: completion value %s", ErrTypeMismatch, result.String())
}
