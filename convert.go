package grayview

// PixelConverter writes a full-frame transformation of an image's stored
// samples through a display table into an RGBA pixel buffer, in place. The
// buffer is laid out row-major, 4 bytes per pixel, and must hold at least
// len(img.StoredPixels) pixels.
type PixelConverter func(img *Image, table []uint8, dst []uint8)

// StoredPixelsToCanvasData is the default pixel converter. The windowed
// luminance of every stored sample is encoded in the alpha channel; the
// color channels carry the same value as the premultiplied white base, so
// the frame composes as gray over any backdrop. The raster surface is
// pre-filled with opaque white for exactly this reason: a darker base would
// shift the apparent gray of partially transparent pixels.
func StoredPixelsToCanvasData(img *Image, table []uint8, dst []uint8) {
	minVal := img.MinPixelValue
	di := 0
	for _, sp := range img.StoredPixels {
		v := table[int(sp)-minVal]
		dst[di+0] = v
		dst[di+1] = v
		dst[di+2] = v
		dst[di+3] = v
		di += 4
	}
}
