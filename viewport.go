package grayview

// Viewport holds the view parameters for a single render: windowing,
// inversion, optional LUT stages, geometry and the interpolation mode.
//
// A Viewport is treated as an immutable value snapshot at each render call.
// Scalars compare by value; ModalityLUT and VOILUT compare by identity (see
// [LUT]).
type Viewport struct {
	// Scale is the magnification factor applied around the canvas center.
	Scale float64

	// Translation pans the image, in image pixels, before rotation.
	Translation Point

	// WindowWidth and WindowCenter define the linear contrast/brightness
	// mapping applied when no VOI LUT is present.
	WindowWidth  float64
	WindowCenter float64

	// Invert flips the output intensity range.
	Invert bool

	// ModalityLUT, when present, replaces the linear slope/intercept
	// rescale from stored samples to modality units.
	ModalityLUT *LUT

	// VOILUT, when present, replaces the linear window stage.
	VOILUT *LUT

	// Rotation is the display rotation in degrees, clockwise.
	Rotation float64

	// HFlip and VFlip mirror the image about the vertical and horizontal
	// axes of the canvas.
	HFlip bool
	VFlip bool

	// PixelReplication selects nearest-neighbor magnification instead of
	// smoothed interpolation, for diagnostic pixel inspection.
	PixelReplication bool
}

// snapshot returns a plain value copy of the viewport for the render
// history. Mutating the live viewport afterwards must not alter the recorded
// copy; the LUT references keep their identity, which is exactly the
// property the caches compare.
func (v *Viewport) snapshot() Viewport {
	return *v
}
