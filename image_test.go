package grayview

import (
	"testing"
	"time"
)

func TestNewImageValidation(t *testing.T) {
	if _, err := NewImage("x", 0, 4, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewImage("x", 4, -1, nil); err == nil {
		t.Error("negative height accepted")
	}
	if _, err := NewImage("x", 4, 4, make([]int16, 15)); err == nil {
		t.Error("short pixel buffer accepted")
	}
}

func TestNewImageScansSampleRange(t *testing.T) {
	img, err := NewImage("x", 2, 2, []int16{-40, 100, 7, 3000})
	if err != nil {
		t.Fatal(err)
	}
	if img.MinPixelValue != -40 {
		t.Errorf("MinPixelValue = %d, want -40", img.MinPixelValue)
	}
	if img.MaxPixelValue != 3000 {
		t.Errorf("MaxPixelValue = %d, want 3000", img.MaxPixelValue)
	}
	if img.Slope != 1 || img.Intercept != 0 {
		t.Errorf("rescale defaults = %v/%v, want 1/0", img.Slope, img.Intercept)
	}
	if img.CachedLUT() != nil {
		t.Error("fresh image has a cache entry")
	}
}

func TestDefaultViewportWindow(t *testing.T) {
	pixels := make([]int16, 64*64)
	for i := range pixels {
		pixels[i] = int16(i % 1024)
	}
	img, err := NewImage("x", 64, 64, pixels)
	if err != nil {
		t.Fatal(err)
	}

	vp := img.DefaultViewport(64, 64)
	if vp.WindowWidth <= 0 {
		t.Errorf("auto window width = %v, want > 0", vp.WindowWidth)
	}
	if vp.WindowWidth > float64(img.MaxPixelValue-img.MinPixelValue)+1 {
		t.Errorf("auto window width %v exceeds sample range", vp.WindowWidth)
	}
	// Center sits inside the sample range.
	if vp.WindowCenter < float64(img.MinPixelValue) || vp.WindowCenter > float64(img.MaxPixelValue) {
		t.Errorf("auto window center %v outside sample range", vp.WindowCenter)
	}
	if vp.Scale != 1 {
		t.Errorf("scale = %v, want 1 for matching canvas", vp.Scale)
	}
}

func TestDefaultViewportFlatImage(t *testing.T) {
	img, err := NewImage("flat", 4, 4, make([]int16, 16))
	if err != nil {
		t.Fatal(err)
	}
	vp := img.DefaultViewport(4, 4)
	if vp.WindowWidth < 1 {
		t.Errorf("flat image window width = %v, want >= 1", vp.WindowWidth)
	}
}

func TestDefaultViewportFitsCanvas(t *testing.T) {
	img := testImage(t, "x", 100, 50)

	vp := img.DefaultViewport(200, 200)
	if vp.Scale != 2 {
		t.Errorf("scale = %v, want 2 (limited by width)", vp.Scale)
	}

	vp = img.DefaultViewport(400, 25)
	if vp.Scale != 0.5 {
		t.Errorf("scale = %v, want 0.5 (limited by height)", vp.Scale)
	}
}

func TestRenderStatsPopulated(t *testing.T) {
	dc := NewDisplayContext(NewImageCanvas(16, 16))
	dc.Image = testImage(t, "img1", 16, 16)
	dc.Viewport = Viewport{WindowWidth: 256, WindowCenter: 128}

	if err := Render(dc, false); err != nil {
		t.Fatal(err)
	}
	stats := dc.Image.Stats
	if stats.Renders != 1 || stats.LUTGenerations != 1 {
		t.Errorf("stats = %+v, want 1 render and 1 generation", stats)
	}
	if stats.LastLUTLookup < 0 || stats.LastConvert < 0 {
		t.Errorf("negative durations: %v / %v", stats.LastLUTLookup, stats.LastConvert)
	}
	if stats.LastLUTLookup > time.Minute || stats.LastConvert > time.Minute {
		t.Errorf("implausible durations: %v / %v", stats.LastLUTLookup, stats.LastConvert)
	}
}
