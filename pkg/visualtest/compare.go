package visualtest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Max color channel difference found
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance: maximum allowed difference per color channel (0-255)
	Tolerance int

	// MaxDifferentPercent: if > 0, pass if the percentage of different
	// pixels is <= this value
	MaxDifferentPercent float64

	// DiffImagePath: if set, a diff image is written there when the
	// images do not match. Differing pixels are red, others gray.
	DiffImagePath string
}

// Exact requires every channel of every pixel to be equal.
func Exact() CompareOptions {
	return CompareOptions{}
}

// Compare compares two images pixel by pixel.
func Compare(actual, expected image.Image, opts CompareOptions) (*CompareResult, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &CompareResult{}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}
	result := &CompareResult{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}
	var diffImg *image.RGBA
	if opts.DiffImagePath != "" {
		diffImg = image.NewRGBA(bounds)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := toNRGBA(actual.At(x, y))
			diff := channelDifference(a, toNRGBA(expected.At(x, y)))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}
			if diff > opts.Tolerance {
				result.Match = false
				result.DifferentPixels++
				if diffImg != nil {
					diffImg.Set(x, y, color.RGBA{255, 0, 0, 255})
				}
			} else if diffImg != nil {
				diffImg.Set(x, y, color.RGBA{a.R, a.R, a.R, 255})
			}
		}
	}
	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}
	if diffImg != nil && !result.Match {
		if err := gg.SavePNG(opts.DiffImagePath, diffImg); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}
	return result, nil
}

// CompareFiles compares two PNG files.
func CompareFiles(actualPath, expectedPath string, opts CompareOptions) (*CompareResult, error) {
	actual, err := gg.LoadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expected, err := gg.LoadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return Compare(actual, expected, opts)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func channelDifference(a, b color.NRGBA) int {
	return maxInt(
		absInt(int(a.R)-int(b.R)),
		absInt(int(a.G)-int(b.G)),
		absInt(int(a.B)-int(b.B)),
		absInt(int(a.A)-int(b.A)),
	)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(vals ...int) int {
	max := 0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}
