package js

import (
	"strconv"
	"strings"
)

// Node is a node of the script syntax tree.
type Node interface {
	String() string
	node()
}

// Program is the list of statements of a script.
type Program struct {
	Body []Node
}

func (p *Program) String() string {
	parts := make([]string, len(p.Body))
	for i, s := range p.Body {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

type ExpressionStatement struct {
	Expression Node
}

// BinaryExpression combines two literals with '+' or '-'.
type BinaryExpression struct {
	Operator string
	Left     Node
	Right    Node
}

type NumericLiteral struct {
	Value uint64
}

type StringLiteral struct {
	Value string
}

func (*ExpressionStatement) node() {}
func (*BinaryExpression) node()    {}
func (*NumericLiteral) node()      {}
func (*StringLiteral) node()       {}

func (s *ExpressionStatement) String() string {
	return s.Expression.String() + ";"
}

func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

func (n *NumericLiteral) String() string {
	return strconv.FormatUint(n.Value, 10)
}

func (s *StringLiteral) String() string {
	return `"` + s.Value + `"`
}
