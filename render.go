package grayview

import (
	"errors"
	"image/color"
	"time"
)

// Fatal precondition errors. Everything else the pipeline encounters is a
// cache-miss branch, not an error.
var (
	// ErrNoCanvas is returned when the display context or its canvas is
	// absent: there is nothing to draw on.
	ErrNoCanvas = errors.New("grayview: display context has no canvas")

	// ErrNoImage is returned when no image is loaded into the display
	// context: there is nothing to draw.
	ErrNoImage = errors.New("grayview: no image loaded")
)

// DisplayContext ties one displayed image to one canvas, and owns all the
// mutable render state in between: the live viewport, the raster cache and
// the render history. A display context must not be shared across goroutines;
// each render call runs to completion before the next may start.
type DisplayContext struct {
	// Canvas is the destination surface.
	Canvas Canvas

	// Image is the currently loaded image, nil until SetImage.
	Image *Image

	// Viewport is the live view state. Callers mutate it freely between
	// renders; Render snapshots it.
	Viewport Viewport

	renderer     RendererKind
	gpu          GPURenderer
	generate     LUTGenerator
	convert      PixelConverter
	setTransform TransformSetter

	state renderState
}

// NewDisplayContext creates a display context for the given canvas.
// The software pipeline and the default collaborators are used unless
// overridden by options.
func NewDisplayContext(canvas Canvas, opts ...DisplayOption) *DisplayContext {
	dc := &DisplayContext{
		Canvas:       canvas,
		renderer:     RendererSoftware,
		generate:     GenerateLUT,
		convert:      StoredPixelsToCanvasData,
		setTransform: SetToPixelCoordinateSystem,
	}
	for _, opt := range opts {
		opt(dc)
	}
	return dc
}

// SetImage loads an image into the context and resets the viewport to the
// image's default (fit to canvas, auto window). The caches notice the
// identity change on the next render by themselves; SetImage does not touch
// them.
func (dc *DisplayContext) SetImage(img *Image) {
	dc.Image = img
	if img != nil && dc.Canvas != nil {
		dc.Viewport = img.DefaultViewport(dc.Canvas.Width(), dc.Canvas.Height())
	}
}

// RendererKind returns the pipeline this context was configured with.
func (dc *DisplayContext) RendererKind() RendererKind {
	return dc.renderer
}

// gpuFor returns the GPU renderer this context should use: the injected one
// if present, otherwise the process-wide registered one.
func (dc *DisplayContext) gpuFor() GPURenderer {
	if dc.gpu != nil {
		return dc.gpu
	}
	return registeredGPURenderer()
}

// Render draws the context's image onto its canvas under the current
// viewport. Pass invalidated=true to force LUT regeneration and a full
// redraw regardless of what changed.
//
// Each call is a complete, independently re-entrant transaction: the canvas
// is cleared and redrawn on every call, but the expensive LUT generation and
// full-frame pixel conversion run only when the view actually changed.
func Render(dc *DisplayContext, invalidated bool) error {
	if dc == nil || dc.Canvas == nil {
		return ErrNoCanvas
	}
	if dc.Image == nil {
		return ErrNoImage
	}

	canvas := dc.Canvas
	img := dc.Image
	vp := &dc.Viewport

	canvas.ResetTransform()
	canvas.Clear(color.Black)
	canvas.SetSmoothing(!vp.PixelReplication)
	dc.setTransform(dc, canvas)

	if dc.renderer == RendererGPU {
		if gpu := dc.gpuFor(); gpu != nil {
			surf, err := gpu.Render(dc)
			switch {
			case err == nil:
				canvas.DrawImage(surf, img.Width, img.Height)
				img.Stats.Renders++
				dc.state.record(img, vp)
				return nil
			case errors.Is(err, ErrFallbackToSoftware):
				Logger().Warn("grayview: GPU renderer fell back to software",
					"name", gpu.Name(), "image", img.ID)
			default:
				return err
			}
		}
	}

	// A nil surface must redraw even when the view is unchanged: the last
	// recorded render may have gone through the GPU path, which keeps no
	// software raster.
	if invalidated || dc.state.surface == nil || dc.state.needsRender(img, vp) {
		dc.state.ensureSurface(img)

		start := time.Now()
		table := lutForImage(img, vp, invalidated, dc.generate)
		img.Stats.LastLUTLookup = time.Since(start)

		start = time.Now()
		dc.convert(img, table, dc.state.surface.Pix)
		img.Stats.LastConvert = time.Since(start)
	} else {
		Logger().Debug("grayview: raster fast path", "image", img.ID)
	}

	canvas.DrawImage(dc.state.surface, img.Width, img.Height)
	img.Stats.Renders++
	dc.state.record(img, vp)
	return nil
}
