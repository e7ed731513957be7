package grayview

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Canvas is the destination drawing surface abstraction.
//
// A Canvas represents the visible 2D target grayview renders into.
// Implementations may be CPU-backed or wrap a windowing system surface.
//
// Canvases are NOT thread-safe. Each canvas should be used from a single
// goroutine, or external synchronization must be used.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// SetTransform replaces the current transformation matrix.
	SetTransform(m Matrix)

	// ResetTransform restores the identity transformation.
	ResetTransform()

	// Clear fills the entire canvas with the given color, ignoring the
	// current transform.
	Clear(c color.Color)

	// SetSmoothing toggles interpolation for subsequent DrawImage calls:
	// bilinear sampling when enabled, nearest-neighbor when disabled.
	SetSmoothing(enabled bool)

	// DrawImage draws src under the current transform, scaled to
	// width x height destination pixels before the transform applies.
	DrawImage(src *image.RGBA, width, height int)

	// Snapshot returns the current canvas contents as an RGBA image.
	// The returned image is a copy.
	Snapshot() *image.RGBA
}

// ImageCanvas is a CPU-based canvas backed by an *image.RGBA. It is the
// default Canvas implementation for software rendering and for tests.
type ImageCanvas struct {
	width  int
	height int
	img    *image.RGBA

	matrix    Matrix
	smoothing bool
}

// NewImageCanvas creates a CPU-based canvas with the given dimensions.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageCanvas{
		width:     width,
		height:    height,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		matrix:    Identity(),
		smoothing: true,
	}
}

// Width returns the canvas width.
func (c *ImageCanvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *ImageCanvas) Height() int { return c.height }

// SetTransform replaces the current transformation matrix.
func (c *ImageCanvas) SetTransform(m Matrix) { c.matrix = m }

// ResetTransform restores the identity transformation.
func (c *ImageCanvas) ResetTransform() { c.matrix = Identity() }

// Clear fills the entire canvas with the given color.
func (c *ImageCanvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SetSmoothing toggles interpolation for subsequent DrawImage calls.
func (c *ImageCanvas) SetSmoothing(enabled bool) { c.smoothing = enabled }

// DrawImage draws src under the current transform. The source is scaled to
// width x height destination pixels first, so callers can blit an off-screen
// surface at the image's native dimensions regardless of the surface size.
func (c *ImageCanvas) DrawImage(src *image.RGBA, width, height int) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}

	m := c.matrix
	if width != sb.Dx() || height != sb.Dy() {
		m = m.Multiply(Scale(float64(width)/float64(sb.Dx()), float64(height)/float64(sb.Dy())))
	}

	var interp xdraw.Transformer = xdraw.BiLinear
	if !c.smoothing {
		interp = xdraw.NearestNeighbor
	}
	interp.Transform(c.img, m.Aff3(), src, sb, xdraw.Over, nil)
}

// Snapshot returns a copy of the current canvas contents.
func (c *ImageCanvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// RGBA exposes the backing image for direct pixel access in tests and
// encoders. The returned image is live, not a copy.
func (c *ImageCanvas) RGBA() *image.RGBA { return c.img }
