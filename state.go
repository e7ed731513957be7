package grayview

import (
	"image"
	"image/color"
	"image/draw"
)

// renderState is the per-context render history and raster cache: the
// persistent off-screen surface plus the identity and view parameters of the
// last completed render. Owned exclusively by the display context; every
// field is written only by Render.
type renderState struct {
	// surface is the off-screen raster the converted frame accumulates
	// in. Its Pix slice is the writable pixel buffer handed to the
	// converter. Stale whenever its dimensions differ from the image's.
	surface *image.RGBA

	// lastImageID and lastViewport record what was actually drawn last.
	// lastViewport is a value snapshot, not a reference to the live
	// viewport.
	lastImageID  string
	lastViewport Viewport

	// rendered is false until the first completed render.
	rendered bool
}

// needsRender reports whether the current image and viewport differ from the
// last completed render in any way that changes the raster output: image
// identity, windowing, inversion, either LUT stage, rotation or flips.
// Window changes also invalidate the LUT cache; the two predicates are
// evaluated independently.
func (s *renderState) needsRender(img *Image, vp *Viewport) bool {
	if !s.rendered || s.lastImageID != img.ID {
		return true
	}
	last := &s.lastViewport
	return last.WindowWidth != vp.WindowWidth ||
		last.WindowCenter != vp.WindowCenter ||
		last.Invert != vp.Invert ||
		last.Rotation != vp.Rotation ||
		last.HFlip != vp.HFlip ||
		last.VFlip != vp.VFlip ||
		!lutsMatch(last.ModalityLUT, vp.ModalityLUT) ||
		!lutsMatch(last.VOILUT, vp.VOILUT)
}

// ensureSurface makes the raster surface usable for the image: if none
// exists or its dimensions differ from the image's, a fresh surface is
// allocated at the image's exact pixel size and filled with opaque white.
// The white fill matters: the converter encodes luminance in the alpha
// channel over a full-brightness base, so a darker base would shift the
// apparent gray of partially transparent pixels. Reinitialization discards
// prior content; a dimension change always implies a different image that
// needs a full redraw anyway.
func (s *renderState) ensureSurface(img *Image) {
	if s.surface != nil {
		b := s.surface.Bounds()
		if b.Dx() == img.Width && b.Dy() == img.Height {
			return
		}
	}
	s.surface = image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	draw.Draw(s.surface, s.surface.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	Logger().Debug("grayview: raster surface reinitialized",
		"image", img.ID, "width", img.Width, "height", img.Height)
}

// record snapshots the render history after a completed render.
func (s *renderState) record(img *Image, vp *Viewport) {
	s.lastImageID = img.ID
	s.lastViewport = vp.snapshot()
	s.rendered = true
}
