package html

import (
	"errors"
	"fmt"

	"golang.org/x/net/html/atom"
)

// ErrUnknownElement is returned when a start tag names an element outside
// the set of supported element kinds.
var ErrUnknownElement = errors.New("unknown element")

// ElementKind is the closed set of elements the engine understands.
type ElementKind int

const (
	NoKind ElementKind = iota
	Html
	Head
	Link
	Style
	Script
	Body
	Ul
	Li
	Div
)

var kindAtoms = map[atom.Atom]ElementKind{
	atom.Html:   Html,
	atom.Head:   Head,
	atom.Link:   Link,
	atom.Style:  Style,
	atom.Script: Script,
	atom.Body:   Body,
	atom.Ul:     Ul,
	atom.Li:     Li,
	atom.Div:    Div,
}

var kindNames = map[ElementKind]atom.Atom{}

func init() {
	for a, k := range kindAtoms {
		kindNames[k] = a
	}
}

// KindForTag maps a lowercase tag name to its element kind.
func KindForTag(name string) (ElementKind, error) {
	if k, ok := kindAtoms[atom.Lookup([]byte(name))]; ok {
		return k, nil
	}
	return NoKind, fmt.Errorf("%w: <%s>", ErrUnknownElement, name)
}

// String returns the lowercase tag name of the kind.
func (k ElementKind) String() string {
	if a, ok := kindNames[k]; ok {
		return a.String()
	}
	return "#none"
}

// IsBlock reports whether elements of this kind are laid out as blocks by
// default.
func (k ElementKind) IsBlock() bool {
	switch k {
	case Div, Ul, Li:
		return true
	}
	return false
}
