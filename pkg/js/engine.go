package js

// Engine runs a script and returns the values it produced.
type Engine interface {
	Run(src string) ([]Value, error)
}

// Interpreter is the built-in Engine. Every statement value is collected
// and printed to the console.
type Interpreter struct {
	console *Console
}

var _ Engine = (*Interpreter)(nil)

// NewInterpreter creates an interpreter printing to stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{console: NewConsole()}
}

// SetConsole redirects statement output. A nil console silences it.
func (in *Interpreter) SetConsole(c *Console) {
	in.console = c
}

// Run lexes, parses and evaluates src.
func (in *Interpreter) Run(src string) ([]Value, error) {
	prog, err := Parse(src)
	if err != nil {
		tracer().Errorf("script: %v", err)
		return nil, err
	}
	tracer().Debugf("script: %s", prog)
	values, err := Eval(prog)
	if in.console != nil {
		for _, v := range values {
			in.console.Log(v)
		}
	}
	if err != nil {
		tracer().Errorf("script: %v", err)
		return nil, err
	}
	return values, nil
}
