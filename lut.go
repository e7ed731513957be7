package grayview

import "sync/atomic"

// LUT is an optional transform stage composed into the final display lookup
// table. A modality LUT maps stored sample values to modality units (device
// calibration); a VOI LUT maps modality units to display-intent values.
//
// LUTs are compared by identity, not by content: each LUT carries a
// process-unique ID assigned at construction, and two references match only
// when their IDs are equal. Two structurally identical tables built
// separately are distinct for cache purposes.
type LUT struct {
	// ID is the process-unique identity of this LUT.
	ID uint64

	// FirstValueMapped is the input value mapped by Table[0].
	FirstValueMapped int

	// Table holds the mapped output values.
	Table []float64
}

var nextLUTID atomic.Uint64

// NewLUT creates a LUT with a fresh process-unique ID.
func NewLUT(firstValueMapped int, table []float64) *LUT {
	return &LUT{
		ID:               nextLUTID.Add(1),
		FirstValueMapped: firstValueMapped,
		Table:            table,
	}
}

// Lookup maps an input value through the table, clamping to the first and
// last entries outside the mapped range.
func (l *LUT) Lookup(v int) float64 {
	i := v - l.FirstValueMapped
	switch {
	case i < 0:
		i = 0
	case i >= len(l.Table):
		i = len(l.Table) - 1
	}
	return l.Table[i]
}

// lutsMatch reports whether two LUT references are equivalent for cache
// validation: both absent, or both present with the same identity.
// Presence/absence asymmetry is a mismatch.
func lutsMatch(a, b *LUT) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// CachedLUT is the per-image LUT cache entry: the most recently generated
// display table together with the exact parameters that produced it.
//
// Invariant: Table was produced by precisely the parameters stored alongside
// it. The entry is created on the first render of an image and thereafter
// overwritten in place whenever the parameters drift; it is never shared
// between images and lives as long as the image does.
type CachedLUT struct {
	// ID is unique per generation; it changes every time Table is rebuilt.
	ID uint64

	// Table maps stored sample values (offset by the image's minimum pixel
	// value) to 8-bit display intensities.
	Table []uint8

	WindowWidth  float64
	WindowCenter float64
	Invert       bool
	ModalityLUT  *LUT
	VOILUT       *LUT
}

var nextCachedLUTID atomic.Uint64

// valid reports whether the cached table can be reused for the given
// viewport. A nil entry, a forced invalidation, or any parameter mismatch
// means the table must be regenerated. Scalars compare by exact value, LUT
// references by identity.
func (c *CachedLUT) valid(vp *Viewport, force bool) bool {
	if c == nil || force {
		return false
	}
	return c.WindowWidth == vp.WindowWidth &&
		c.WindowCenter == vp.WindowCenter &&
		c.Invert == vp.Invert &&
		lutsMatch(c.ModalityLUT, vp.ModalityLUT) &&
		lutsMatch(c.VOILUT, vp.VOILUT)
}

// regenerate rebuilds the entry in place from the generator's output and the
// parameters that drove it.
func (c *CachedLUT) regenerate(table []uint8, vp *Viewport) {
	c.ID = nextCachedLUTID.Add(1)
	c.Table = table
	c.WindowWidth = vp.WindowWidth
	c.WindowCenter = vp.WindowCenter
	c.Invert = vp.Invert
	c.ModalityLUT = vp.ModalityLUT
	c.VOILUT = vp.VOILUT
}

// lutForImage returns the display table for the image under the given
// viewport, reusing the image's cached entry when it is still valid and
// regenerating it otherwise. Regeneration recomputes the whole table even
// when a single parameter changed, and mutates the image's cache entry.
func lutForImage(img *Image, vp *Viewport, force bool, generate LUTGenerator) []uint8 {
	if img.cachedLUT.valid(vp, force) {
		Logger().Debug("grayview: LUT cache hit", "image", img.ID)
		return img.cachedLUT.Table
	}

	table := generate(img, vp.WindowWidth, vp.WindowCenter, vp.Invert, vp.ModalityLUT, vp.VOILUT)
	if img.cachedLUT == nil {
		img.cachedLUT = &CachedLUT{}
	}
	img.cachedLUT.regenerate(table, vp)
	img.Stats.LUTGenerations++
	Logger().Debug("grayview: LUT regenerated",
		"image", img.ID,
		"windowWidth", vp.WindowWidth,
		"windowCenter", vp.WindowCenter,
		"invert", vp.Invert)
	return table
}
