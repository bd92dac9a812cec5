package css

import (
	"fmt"
	"strconv"
	"strings"
)

// SelectorType distinguishes the three supported simple selectors.
type SelectorType int

const (
	TypeSelector  SelectorType = iota // div, ul, li
	ClassSelector                     // .classname
	IDSelector                        // #idname
)

// Selector is a single simple selector. Selector lists and combinators
// are not supported.
type Selector struct {
	Type SelectorType
	Name string // element name, class name, or id, without '.' or '#'
}

func (s Selector) String() string {
	switch s.Type {
	case ClassSelector:
		return "." + s.Name
	case IDSelector:
		return "#" + s.Name
	}
	return s.Name
}

type ValueType int

const (
	KeywordValue ValueType = iota
	NumberValue
)

// ComponentValue is the value of a declaration: a keyword or an unsigned
// number.
type ComponentValue struct {
	Type    ValueType
	Keyword string
	Number  uint64
}

// Keyword creates a keyword component value.
func Keyword(s string) ComponentValue {
	return ComponentValue{Type: KeywordValue, Keyword: s}
}

// Number creates a numeric component value.
func Number(n uint64) ComponentValue {
	return ComponentValue{Type: NumberValue, Number: n}
}

func (v ComponentValue) String() string {
	if v.Type == NumberValue {
		return strconv.FormatUint(v.Number, 10)
	}
	return v.Keyword
}

// Declaration is a property/value pair.
type Declaration struct {
	Property string
	Value    ComponentValue
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value.String()
}

// QualifiedRule is a selector with its declarations, in source order.
// Duplicate properties are kept.
type QualifiedRule struct {
	Selector     Selector
	Declarations []Declaration
}

func (r QualifiedRule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Selector.String())
	sb.WriteString(" { ")
	for _, d := range r.Declarations {
		sb.WriteString(d.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}

// StyleSheet represents a parsed CSS stylesheet
type StyleSheet struct {
	Rules []QualifiedRule
}

func (s *StyleSheet) String() string {
	lines := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		lines[i] = r.String()
	}
	return fmt.Sprintf("StyleSheet[%s]", strings.Join(lines, " "))
}
