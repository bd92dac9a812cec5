package render

import (
	"fmt"

	"webling/pkg/html"
)

// Color is a 24-bit RGB color, 0xRRGGBB.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
)

// RGB splits c into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// colorKeywords are the named colors understood by color properties.
var colorKeywords = map[string]Color{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
}

type Display int

const (
	Inline Display = iota
	Block
)

func (d Display) String() string {
	if d == Block {
		return "block"
	}
	return "inline"
}

// Edges holds the four sides of a margin, padding or border. No property
// sets them yet.
type Edges struct {
	Top, Right, Bottom, Left uint64
}

// Style is the resolved style of a render node.
type Style struct {
	BackgroundColor Color
	Color           Color
	Display         Display
	Width           uint64
	Height          uint64
	Margin          Edges
	Padding         Edges
	Border          Edges
}

// DefaultStyle returns the style of an element of the given kind before
// any rule is applied.
func DefaultStyle(kind html.ElementKind) Style {
	s := Style{BackgroundColor: White, Color: Black, Display: Inline}
	if kind.IsBlock() {
		s.Display = Block
	}
	return s
}

func (s Style) String() string {
	return fmt.Sprintf("%s bg=%s color=%s %dx%d", s.Display, s.BackgroundColor, s.Color, s.Width, s.Height)
}
