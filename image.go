package grayview

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Image is a single-frame grayscale image: raw stored samples plus the
// metadata needed to window them for display.
//
// An Image exclusively owns its LUT cache entry; grayview mutates the image
// only through that entry and the informational Stats.
type Image struct {
	// ID identifies the image across renders. Two images with different
	// IDs never share cached state, regardless of content.
	ID string

	// Width and Height are the pixel dimensions.
	Width  int
	Height int

	// StoredPixels holds the raw samples in row-major order.
	StoredPixels []int16

	// MinPixelValue and MaxPixelValue bound the stored sample range and
	// size the display lookup table.
	MinPixelValue int
	MaxPixelValue int

	// Slope and Intercept define the linear rescale from stored samples
	// to modality units, used when no modality LUT is supplied.
	Slope     float64
	Intercept float64

	// Stats carries informational render statistics. Best-effort: never
	// consulted for correctness.
	Stats RenderStats

	// cachedLUT is the image's LUT cache entry, nil until first render.
	cachedLUT *CachedLUT
}

// RenderStats are informational timings and counters updated during
// rendering.
type RenderStats struct {
	// LastLUTLookup is the duration of the most recent LUT cache access,
	// including regeneration when one occurred.
	LastLUTLookup time.Duration

	// LastConvert is the duration of the most recent full-frame pixel
	// conversion into the raster surface.
	LastConvert time.Duration

	// Renders counts completed render calls that drew this image.
	Renders uint64

	// LUTGenerations counts how many times the display table was rebuilt.
	LUTGenerations uint64
}

// NewImage creates an image from raw stored samples in row-major order.
// The sample range is scanned once to establish the LUT domain; the modality
// rescale defaults to identity (slope 1, intercept 0).
func NewImage(id string, width, height int, pixels []int16) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grayview: invalid image dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("grayview: pixel buffer has %d samples, want %d (%dx%d)",
			len(pixels), width*height, width, height)
	}

	minVal, maxVal := int(pixels[0]), int(pixels[0])
	for _, p := range pixels {
		v := int(p)
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	return &Image{
		ID:            id,
		Width:         width,
		Height:        height,
		StoredPixels:  pixels,
		MinPixelValue: minVal,
		MaxPixelValue: maxVal,
		Slope:         1,
	}, nil
}

// CachedLUT returns the image's LUT cache entry, or nil before the first
// render. Exposed for inspection; callers must not mutate the entry.
func (img *Image) CachedLUT() *CachedLUT {
	return img.cachedLUT
}

// DefaultViewport derives an initial viewport for displaying the image on a
// canvas of the given size: the image fitted to the canvas, and a window
// estimated from the sample distribution. The window spans four standard
// deviations around the mean in modality units, clipped to the full sample
// range; a flat image falls back to the full range.
func (img *Image) DefaultViewport(canvasWidth, canvasHeight int) Viewport {
	samples := make([]float64, len(img.StoredPixels))
	for i, p := range img.StoredPixels {
		samples[i] = float64(p)*img.Slope + img.Intercept
	}
	mean := stat.Mean(samples, nil)
	sd := stat.StdDev(samples, nil)

	lo := float64(img.MinPixelValue)*img.Slope + img.Intercept
	hi := float64(img.MaxPixelValue)*img.Slope + img.Intercept
	width := 4 * sd
	if width <= 0 || width > hi-lo {
		width = hi - lo
	}
	if width < 1 {
		width = 1
	}

	scale := 1.0
	if canvasWidth > 0 && canvasHeight > 0 {
		sx := float64(canvasWidth) / float64(img.Width)
		sy := float64(canvasHeight) / float64(img.Height)
		scale = sx
		if sy < sx {
			scale = sy
		}
	}

	return Viewport{
		Scale:        scale,
		WindowWidth:  width,
		WindowCenter: mean,
	}
}
