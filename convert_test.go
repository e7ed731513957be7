package grayview

import "testing"

func TestStoredPixelsToCanvasData(t *testing.T) {
	img, err := NewImage("x", 2, 2, []int16{-10, 0, 5, 10})
	if err != nil {
		t.Fatal(err)
	}

	// Identity-ish table: map offset index straight through.
	table := make([]uint8, img.MaxPixelValue-img.MinPixelValue+1)
	for i := range table {
		table[i] = uint8(i * 10)
	}

	dst := make([]uint8, len(img.StoredPixels)*4)
	StoredPixelsToCanvasData(img, table, dst)

	wants := []uint8{0, 100, 150, 200} // (sp - min) * 10
	for i, want := range wants {
		// Luminance rides the alpha channel; the color channels carry
		// the premultiplied white base.
		for ch := 0; ch < 4; ch++ {
			if got := dst[i*4+ch]; got != want {
				t.Errorf("pixel %d channel %d = %d, want %d", i, ch, got, want)
			}
		}
	}
}

func TestViewportSnapshotIsIndependent(t *testing.T) {
	mlut := NewLUT(0, []float64{0})
	live := Viewport{WindowWidth: 400, WindowCenter: 40, ModalityLUT: mlut}
	snap := live.snapshot()

	live.WindowCenter = 80
	live.ModalityLUT = nil
	if snap.WindowCenter != 40 {
		t.Errorf("snapshot windowCenter = %v, want 40", snap.WindowCenter)
	}
	// The snapshot keeps the original reference identity.
	if !lutsMatch(snap.ModalityLUT, mlut) {
		t.Error("snapshot lost the LUT reference")
	}
}
