package grayview

import "testing"

func transformContext(t *testing.T, canvasW, canvasH, imgW, imgH int) *DisplayContext {
	t.Helper()
	dc := NewDisplayContext(NewImageCanvas(canvasW, canvasH))
	dc.Image = testImage(t, "img", imgW, imgH)
	dc.Viewport = Viewport{Scale: 1, WindowWidth: 400, WindowCenter: 40}
	return dc
}

func TestDisplayTransformCentersImage(t *testing.T) {
	dc := transformContext(t, 100, 100, 50, 50)

	m := displayTransform(dc)
	got := m.TransformPoint(Point{X: 25, Y: 25})
	if !pointsClose(got, Point{X: 50, Y: 50}) {
		t.Errorf("image center maps to %v, want canvas center (50, 50)", got)
	}
	got = m.TransformPoint(Point{X: 0, Y: 0})
	if !pointsClose(got, Point{X: 25, Y: 25}) {
		t.Errorf("image origin maps to %v, want (25, 25)", got)
	}
}

func TestDisplayTransformScaleAndPan(t *testing.T) {
	dc := transformContext(t, 100, 100, 50, 50)
	dc.Viewport.Scale = 2
	dc.Viewport.Translation = Point{X: 5, Y: -5}

	m := displayTransform(dc)
	// Image center lands at canvas center shifted by the scaled pan.
	got := m.TransformPoint(Point{X: 25, Y: 25})
	if !pointsClose(got, Point{X: 60, Y: 40}) {
		t.Errorf("image center maps to %v, want (60, 40)", got)
	}
}

func TestDisplayTransformHFlip(t *testing.T) {
	dc := transformContext(t, 100, 100, 50, 50)
	dc.Viewport.HFlip = true

	m := displayTransform(dc)
	// The left edge midpoint mirrors to the right of the canvas center.
	got := m.TransformPoint(Point{X: 0, Y: 25})
	if !pointsClose(got, Point{X: 75, Y: 50}) {
		t.Errorf("flipped left edge maps to %v, want (75, 50)", got)
	}
}

func TestDisplayTransformVFlip(t *testing.T) {
	dc := transformContext(t, 100, 100, 50, 50)
	dc.Viewport.VFlip = true

	m := displayTransform(dc)
	got := m.TransformPoint(Point{X: 25, Y: 0})
	if !pointsClose(got, Point{X: 50, Y: 75}) {
		t.Errorf("flipped top edge maps to %v, want (50, 75)", got)
	}
}

func TestDisplayTransformRotation(t *testing.T) {
	dc := transformContext(t, 100, 100, 50, 50)
	dc.Viewport.Rotation = 90

	m := displayTransform(dc)
	// A quarter turn clockwise sends the top edge midpoint to the right
	// edge midpoint.
	got := m.TransformPoint(Point{X: 25, Y: 0})
	if !pointsClose(got, Point{X: 75, Y: 50}) {
		t.Errorf("rotated top edge maps to %v, want (75, 50)", got)
	}
}

func TestDisplayTransformZeroScaleDefaultsToOne(t *testing.T) {
	dc := transformContext(t, 100, 100, 50, 50)
	dc.Viewport.Scale = 0

	m := displayTransform(dc)
	got := m.TransformPoint(Point{X: 0, Y: 0})
	if !pointsClose(got, Point{X: 25, Y: 25}) {
		t.Errorf("origin maps to %v, want (25, 25)", got)
	}
}
