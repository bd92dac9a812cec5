package visualtest

import (
	"image"
	"image/color"
	"image/draw"
)

// Box is a filled rectangle of a reference image.
type Box struct {
	Rect  image.Rectangle
	Color color.Color
}

// Reference rasterizes boxes, in order, over a background. It is an
// independent rendition of what a rectangle painter should produce.
func Reference(width, height int, background color.Color, boxes ...Box) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	for _, b := range boxes {
		draw.Draw(img, b.Rect.Intersect(img.Bounds()), image.NewUniform(b.Color), image.Point{}, draw.Src)
	}
	return img
}
