package js

import (
	"bytes"
	"errors"
	"testing"
)

func TestInterpreter_PrintsStatementValues(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter()
	in.SetConsole(&Console{Out: &out})
	values, err := in.Run(`1+2; "a"+1`)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %v", values)
	}
	if out.String() != "3\na1\n" {
		t.Errorf("unexpected console output %q", out.String())
	}
}

func TestInterpreter_Errors(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter()
	in.SetConsole(&Console{Out: &out})
	values, err := in.Run(`1; 1-"a"`)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if values != nil {
		t.Errorf("expected no values on error, got %v", values)
	}
	if out.String() != "1\n" {
		t.Errorf("expected output of the first statement, got %q", out.String())
	}
	if _, err := in.Run("x"); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("expected ErrUnexpectedToken, got %v", err)
	}
}

func TestInterpreter_AgreesWithGoja(t *testing.T) {
	for _, src := range []string{
		"1+2",
		`"1"+"2"`,
		`1+"2"`,
		`"a"+1`,
		"7-3",
		"40",
		`"x"`,
		`1; 2+3`,
		`"" + 0`,
	} {
		in := NewInterpreter()
		in.SetConsole(nil)
		own, err := in.Run(src)
		if err != nil {
			t.Errorf("src %q: interpreter failed: %v", src, err)
			continue
		}
		g := NewGojaEngine()
		g.SetConsole(nil)
		ref, err := g.Run(src)
		if err != nil {
			t.Errorf("src %q: goja failed: %v", src, err)
			continue
		}
		if len(ref) != 1 || len(own) == 0 {
			t.Errorf("src %q: goja %v, interpreter %v", src, ref, own)
			continue
		}
		if last := own[len(own)-1]; last != ref[0] {
			t.Errorf("src %q: goja %#v, interpreter %#v", src, ref[0], last)
		}
	}
}

func TestGojaEngine_CompletionValues(t *testing.T) {
	g := NewGojaEngine()
	g.SetConsole(nil)
	if values, err := g.Run("var x = 1;"); err != nil || len(values) != 0 {
		t.Errorf("expected no value for a declaration, got %v, %v", values, err)
	}
	if _, err := g.Run("1-2"); !errors.Is(err, ErrNumberRange) {
		t.Errorf("expected ErrNumberRange for a negative result, got %v", err)
	}
	if _, err := g.Run("1.5"); !errors.Is(err, ErrNumberRange) {
		t.Errorf("expected ErrNumberRange for a fraction, got %v", err)
	}
	if _, err := g.Run("true"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch for a boolean, got %v", err)
	}
	if _, err := g.Run("1 +"); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestGojaEngine_Console(t *testing.T) {
	var out, errOut bytes.Buffer
	g := NewGojaEngine()
	g.SetConsole(&Console{Out: &out, Err: &errOut})
	values, err := g.Run(`console.log("hi", 1); console.warn("careful"); console.error("bad")`)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 0 {
		t.Errorf("expected no completion value, got %v", values)
	}
	if out.String() != "hi 1\n" {
		t.Errorf("unexpected log output %q", out.String())
	}
	if errOut.String() != "WARN: careful\nERROR: bad\n" {
		t.Errorf("unexpected error output %q", errOut.String())
	}
	if _, err := g.Run(`"done"`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hi 1\ndone\n" {
		t.Errorf("expected completion value on the console, got %q", out.String())
	}
}
