package grayview

// LUTGenerator builds a display lookup table for an image. The returned
// table maps every stored sample value in [image.MinPixelValue,
// image.MaxPixelValue], offset by -MinPixelValue, to an 8-bit display
// intensity. Generators are pure functions of their inputs.
type LUTGenerator func(img *Image, windowWidth, windowCenter float64, invert bool, modalityLUT, voiLUT *LUT) []uint8

// GenerateLUT is the default LUT generator. Each stored value passes through
// three stages:
//
//  1. modality stage: the modality LUT if present, otherwise the image's
//     linear slope/intercept rescale;
//  2. VOI stage: the VOI LUT if present, otherwise the linear window
//     function of windowWidth/windowCenter scaled to [0, 255];
//  3. optional inversion.
//
// The output is clamped to [0, 255]. Window widths at or below 1 degenerate
// to a sharp threshold at the window center.
func GenerateLUT(img *Image, windowWidth, windowCenter float64, invert bool, modalityLUT, voiLUT *LUT) []uint8 {
	// A width of 1 would make the window slope infinite; clamp the divisor
	// so the mapping degenerates to a sharp threshold instead.
	divisor := windowWidth - 1
	if divisor < 1e-9 {
		divisor = 1e-9
	}

	table := make([]uint8, img.MaxPixelValue-img.MinPixelValue+1)
	for i := range table {
		stored := img.MinPixelValue + i

		var mod float64
		if modalityLUT != nil {
			mod = modalityLUT.Lookup(stored)
		} else {
			mod = float64(stored)*img.Slope + img.Intercept
		}

		var out float64
		if voiLUT != nil {
			out = voiLUT.Lookup(int(mod + 0.5))
		} else {
			out = (((mod-windowCenter)+0.5)/divisor + 0.5) * 255
		}

		switch {
		case out < 0:
			out = 0
		case out > 255:
			out = 255
		}
		if invert {
			out = 255 - out
		}
		table[i] = uint8(out + 0.5)
	}
	return table
}
