// Package grayview renders grayscale medical images onto a 2D canvas with
// window/level, inversion, modality/VOI lookup tables, flips, rotation and
// pixel replication, while caching as much work as possible between frames.
//
// # Overview
//
// grayview sits between an image source (raw stored samples, typically
// 16-bit) and a drawing surface. Every call to [Render] decides whether the
// previously generated lookup table and the previously rasterized off-screen
// surface are still valid for the current [Viewport], and regenerates only
// what actually changed. A repeated render with unchanged parameters reduces
// to a single blit.
//
// # Quick Start
//
//	img, _ := grayview.NewImage("ct-001", 512, 512, samples)
//
//	canvas := grayview.NewImageCanvas(512, 512)
//	dc := grayview.NewDisplayContext(canvas)
//	dc.SetImage(img)
//
//	if err := grayview.Render(dc, false); err != nil {
//	    log.Fatal(err)
//	}
//	png.Encode(out, canvas.Snapshot())
//
// # Caching
//
// Two caches cooperate. The LUT cache lives on the [Image] and holds the
// last generated table together with the exact parameters that produced it.
// The raster cache lives on the [DisplayContext] and holds an off-screen
// RGBA surface sized to the image, reused until the image dimensions change.
// The two are invalidated independently: a rotation change redraws without
// touching the LUT, a window change regenerates both.
//
// # Renderers
//
// The software pipeline is the default. A GPU renderer can be injected per
// context with [WithGPURenderer] or registered process-wide with
// [RegisterGPURenderer]; a GPU renderer may return [ErrFallbackToSoftware]
// to hand an unsupported frame back to the software path.
package grayview
