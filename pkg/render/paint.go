package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"webling/pkg/html"
)

// ErrOutOfRange is returned for rectangles a sink cannot draw.
var ErrOutOfRange = errors.New("rectangle out of range")

// PaintSink receives draw calls. Coordinates are relative to the content
// origin of the sink.
type PaintSink interface {
	DrawRect(c Color, x, y, w, h int64) error
	Flush()
}

// A sink with fixed bounds reports them, so that Paint can reject a display
// list before the first draw call.
type boundedSink interface {
	Bounds() image.Rectangle
}

// Rect is a single rectangle of a display list.
type Rect struct {
	Color      Color
	X, Y, W, H int64
}

func (r Rect) String() string {
	return fmt.Sprintf("rect %s (%d,%d) %dx%d", r.Color, r.X, r.Y, r.W, r.H)
}

// DisplayList computes the rectangles Paint draws, in drawing order. Each
// <div> is placed at a cursor starting at the origin; the cursor moves down
// by the height of every placed div.
func DisplayList(root *Node) ([]Rect, error) {
	var list []Rect
	var y int64
	err := root.Walk(func(n *Node) error {
		if !n.IsElement(html.Div) {
			return nil
		}
		if n.Style.Width > math.MaxInt64 || n.Style.Height > math.MaxInt64-uint64(y) {
			return fmt.Errorf("paint: %w: %dx%d at y=%d", ErrOutOfRange, n.Style.Width, n.Style.Height, y)
		}
		r := Rect{Color: n.Style.BackgroundColor, Y: y, W: int64(n.Style.Width), H: int64(n.Style.Height)}
		list = append(list, r)
		y += r.H
		return nil
	})
	return list, err
}

// inside reports whether the rectangle at (x,y) of size w x h lies within b.
func inside(b image.Rectangle, x, y, w, h int64) bool {
	minX, minY := int64(b.Min.X), int64(b.Min.Y)
	maxX, maxY := int64(b.Max.X), int64(b.Max.Y)
	return x >= minX && y >= minY && w >= 0 && h >= 0 &&
		x <= maxX && y <= maxY && w <= maxX-x && h <= maxY-y
}

// Paint draws the display list of root onto sink, flushing after each
// rectangle. If sink reports its bounds, every rectangle is checked against
// them first and nothing is drawn when one does not fit. Otherwise painting
// stops at the first rectangle the sink rejects.
func Paint(root *Node, sink PaintSink) error {
	list, err := DisplayList(root)
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	if bs, ok := sink.(boundedSink); ok {
		b := bs.Bounds()
		for _, r := range list {
			if !inside(b, r.X, r.Y, r.W, r.H) {
				err := fmt.Errorf("paint: %w: %s outside %v", ErrOutOfRange, r, b)
				tracer().Errorf("%v", err)
				return err
			}
		}
	}
	for _, r := range list {
		if err := sink.DrawRect(r.Color, r.X, r.Y, r.W, r.H); err != nil {
			tracer().Errorf("paint: %s: %v", r, err)
			return err
		}
		sink.Flush()
	}
	return nil
}

// Recorder is a PaintSink that records draw calls.
type Recorder struct {
	Rects   []Rect
	Flushes int
}

func (r *Recorder) DrawRect(c Color, x, y, w, h int64) error {
	r.Rects = append(r.Rects, Rect{Color: c, X: x, Y: y, W: w, H: h})
	return nil
}

func (r *Recorder) Flush() {
	r.Flushes++
}
