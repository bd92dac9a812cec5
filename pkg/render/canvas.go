package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// Canvas is a raster PaintSink. Rectangles are drawn into a back buffer;
// Flush copies the back buffer to the frame returned by Image.
type Canvas struct {
	context *gg.Context
	frame   *image.RGBA
}

var (
	_ PaintSink   = (*Canvas)(nil)
	_ boundedSink = (*Canvas)(nil)
)

// NewCanvas creates a white canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		context: gg.NewContext(width, height),
		frame:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	c.context.SetRGB(1, 1, 1)
	c.context.Clear()
	return c
}

// DrawRect fills a rectangle. Rectangles not fully inside the canvas are
// rejected with ErrOutOfRange.
func (c *Canvas) DrawRect(col Color, x, y, w, h int64) error {
	if !inside(c.Bounds(), x, y, w, h) {
		return fmt.Errorf("canvas %dx%d: %w: (%d,%d) %dx%d",
			c.context.Width(), c.context.Height(), ErrOutOfRange, x, y, w, h)
	}
	if w == 0 || h == 0 {
		return nil
	}
	r, g, b := col.RGB()
	c.context.SetRGB255(int(r), int(g), int(b))
	c.context.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.context.Fill()
	return nil
}

// Flush commits the back buffer to the frame.
func (c *Canvas) Flush() {
	draw.Draw(c.frame, c.frame.Bounds(), c.context.Image(), image.Point{}, draw.Src)
}

// Bounds returns the drawable area.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.context.Width(), c.context.Height())
}

// Image returns the last flushed frame.
func (c *Canvas) Image() *image.RGBA {
	return c.frame
}

// SavePNG writes the last flushed frame to filename.
func (c *Canvas) SavePNG(filename string) error {
	return gg.SavePNG(filename, c.frame)
}
