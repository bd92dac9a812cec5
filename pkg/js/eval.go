package js

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrTypeMismatch is returned for operands an operator cannot combine.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNumberRange is returned for numbers outside the unsigned 64-bit range.
	ErrNumberRange = errors.New("number out of range")
)

type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
)

// Value is the result of evaluating an expression.
type Value struct {
	Kind   ValueKind
	Number uint64
	Str    string
}

// Num creates a number value.
func Num(n uint64) Value {
	return Value{Kind: NumberValue, Number: n}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{Kind: StringValue, Str: s}
}

// String returns the textual form used for concatenation and console output.
func (v Value) String() string {
	if v.Kind == NumberValue {
		return strconv.FormatUint(v.Number, 10)
	}
	return v.Str
}

// GoString quotes strings, for test messages.
func (v Value) GoString() string {
	if v.Kind == StringValue {
		return strconv.Quote(v.Str)
	}
	return v.String()
}

// Eval evaluates every statement of prog in order and collects the
// statement values. Evaluation stops at the first error.
func Eval(prog *Program) ([]Value, error) {
	var values []Value
	for _, stmt := range prog.Body {
		v, err := evalNode(stmt)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

func evalNode(n Node) (Value, error) {
	switch n := n.(type) {
	case *ExpressionStatement:
		return evalNode(n.Expression)
	case *NumericLiteral:
		return Num(n.Value), nil
	case *StringLiteral:
		return Str(n.Value), nil
	case *BinaryExpression:
		left, err := evalNode(n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := evalNode(n.Right)
		if err != nil {
			return Value{}, err
		}
		return binary(n.Operator, left, right)
	}
	return Value{}, fmt.Errorf("script evaluator: %w: node %T", ErrUnexpectedToken, n)
}

func binary(op string, left, right Value) (Value, error) {
	switch op {
	case "+":
		if left.Kind == StringValue || right.Kind == StringValue {
			return Str(left.String() + right.String()), nil
		}
		if left.Number > math.MaxUint64-right.Number {
			return Value{}, fmt.Errorf("script evaluator: %w: %d + %d", ErrNumberRange, left.Number, right.Number)
		}
		return Num(left.Number + right.Number), nil
	case "-":
		if left.Kind != NumberValue || right.Kind != NumberValue {
			return Value{}, fmt.Errorf("script evaluator: %w: %#v - %#v", ErrTypeMismatch, left, right)
		}
		if right.Number > left.Number {
			return Value{}, fmt.Errorf("script evaluator: %w: %d - %d", ErrNumberRange, left.Number, right.Number)
		}
		return Num(left.Number - right.Number), nil
	}
	return Value{}, fmt.Errorf("script evaluator: %w: operator %q", ErrUnexpectedToken, op)
}
