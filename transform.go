package grayview

import "math"

// TransformSetter establishes the destination coordinate system (pan, zoom,
// rotation, flips) on the canvas before the image is drawn.
type TransformSetter func(dc *DisplayContext, canvas Canvas)

// SetToPixelCoordinateSystem is the default transform setter: after it runs,
// drawing at image pixel coordinates lands at the right place on the canvas
// for the context's viewport.
func SetToPixelCoordinateSystem(dc *DisplayContext, canvas Canvas) {
	canvas.SetTransform(displayTransform(dc))
}

// displayTransform builds the image-to-canvas transform. Order matters:
// move to the canvas center, zoom, pan, rotate, flip, then shift so the
// image center sits at the origin. Pan is applied before rotation so that
// dragging always moves the image along the screen axes.
func displayTransform(dc *DisplayContext) Matrix {
	vp := &dc.Viewport
	img := dc.Image

	m := Translate(float64(dc.Canvas.Width())/2, float64(dc.Canvas.Height())/2)

	scale := vp.Scale
	if scale == 0 {
		scale = 1
	}
	m = m.Multiply(Scale(scale, scale))
	m = m.Multiply(Translate(vp.Translation.X, vp.Translation.Y))
	m = m.Multiply(Rotate(vp.Rotation * math.Pi / 180))

	sx, sy := 1.0, 1.0
	if vp.HFlip {
		sx = -1
	}
	if vp.VFlip {
		sy = -1
	}
	m = m.Multiply(Scale(sx, sy))

	return m.Multiply(Translate(-float64(img.Width)/2, -float64(img.Height)/2))
}
