package js

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dop251/goja"
)

// Console receives script output. Statement values and console.log go to
// Out, console.warn and console.error go to Err.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// NewConsole creates a console writing to stdout and stderr.
func NewConsole() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr}
}

// Log prints values separated by blanks, followed by a newline.
func (c *Console) Log(values ...Value) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	fmt.Fprintln(c.Out, strings.Join(parts, " "))
}

// register binds console.log, console.warn and console.error on a goja runtime.
func (c *Console) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.log)
	console.Set("warn", c.warn)
	console.Set("error", c.errorFn)
	vm.Set("console", console)
}

func (c *Console) log(call goja.FunctionCall) goja.Value {
	fmt.Fprintln(c.Out, formatArgs(call.Arguments))
	return goja.Undefined()
}

func (c *Console) warn(call goja.FunctionCall) goja.Value {
	fmt.Fprintln(c.Err, "WARN:", formatArgs(call.Arguments))
	return goja.Undefined()
}

func (c *Console) errorFn(call goja.FunctionCall) goja.Value {
	fmt.Fprintln(c.Err, "ERROR:", formatArgs(call.Arguments))
	return goja.Undefined()
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
