package grayview

import "testing"

func TestGenerateLUTWindowing(t *testing.T) {
	img := &Image{MinPixelValue: 0, MaxPixelValue: 255, Slope: 1}

	table := GenerateLUT(img, 256, 128, false, nil, nil)
	if len(table) != 256 {
		t.Fatalf("table length = %d, want 256", len(table))
	}
	if table[0] != 0 {
		t.Errorf("table[0] = %d, want 0", table[0])
	}
	if table[255] != 255 {
		t.Errorf("table[255] = %d, want 255", table[255])
	}
	// Monotonic for a linear window.
	for i := 1; i < len(table); i++ {
		if table[i] < table[i-1] {
			t.Fatalf("table not monotonic at %d: %d < %d", i, table[i], table[i-1])
		}
	}
}

func TestGenerateLUTClamps(t *testing.T) {
	img := &Image{MinPixelValue: 0, MaxPixelValue: 999, Slope: 1}

	// A narrow window leaves most of the range saturated at the ends.
	table := GenerateLUT(img, 10, 500, false, nil, nil)
	if table[0] != 0 {
		t.Errorf("value far below window = %d, want 0", table[0])
	}
	if table[999] != 255 {
		t.Errorf("value far above window = %d, want 255", table[999])
	}
}

func TestGenerateLUTInvert(t *testing.T) {
	img := &Image{MinPixelValue: 0, MaxPixelValue: 255, Slope: 1}

	normal := GenerateLUT(img, 256, 128, false, nil, nil)
	inverted := GenerateLUT(img, 256, 128, true, nil, nil)
	for i := range normal {
		if inverted[i] != 255-normal[i] {
			t.Fatalf("inverted[%d] = %d, want %d", i, inverted[i], 255-normal[i])
		}
	}
}

func TestGenerateLUTNegativeRange(t *testing.T) {
	// Signed storage: the table is indexed from MinPixelValue.
	img := &Image{MinPixelValue: -100, MaxPixelValue: 100, Slope: 1}

	table := GenerateLUT(img, 201, 0, false, nil, nil)
	if len(table) != 201 {
		t.Fatalf("table length = %d, want 201", len(table))
	}
	if table[0] >= table[200] {
		t.Errorf("window not increasing across signed range: %d >= %d", table[0], table[200])
	}
}

func TestGenerateLUTModalityStage(t *testing.T) {
	img := &Image{MinPixelValue: 0, MaxPixelValue: 9, Slope: 1}

	// Slope/intercept rescale shifts everything above the window center.
	img.Slope = 2
	img.Intercept = 1000
	bright := GenerateLUT(img, 100, 50, false, nil, nil)
	for i, v := range bright {
		if v != 255 {
			t.Fatalf("rescaled value %d mapped to %d, want saturated 255", i, v)
		}
	}

	// An explicit modality LUT overrides the rescale entirely.
	mlut := NewLUT(0, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	dark := GenerateLUT(img, 100, 5000, false, mlut, nil)
	for i, v := range dark {
		if v != 0 {
			t.Fatalf("modality LUT value %d mapped to %d, want 0", i, v)
		}
	}
}

func TestGenerateLUTVOIStage(t *testing.T) {
	img := &Image{MinPixelValue: 0, MaxPixelValue: 3, Slope: 1}

	// The VOI LUT replaces the linear window: outputs come straight from
	// the table, clamped to the display range.
	vlut := NewLUT(0, []float64{10, 20, 300, -5})
	table := GenerateLUT(img, 1, 1, false, nil, vlut)

	want := []uint8{10, 20, 255, 0}
	for i := range want {
		if table[i] != want[i] {
			t.Errorf("table[%d] = %d, want %d", i, table[i], want[i])
		}
	}
}

func TestGenerateLUTDegenerateWidth(t *testing.T) {
	img := &Image{MinPixelValue: 0, MaxPixelValue: 100, Slope: 1}

	// Width <= 1 degenerates to a threshold at the center rather than a
	// division by zero.
	table := GenerateLUT(img, 1, 50, false, nil, nil)
	if table[0] != 0 {
		t.Errorf("below threshold = %d, want 0", table[0])
	}
	if table[100] != 255 {
		t.Errorf("above threshold = %d, want 255", table[100])
	}
}
