package grayview

// DisplayOption configures a DisplayContext during creation.
// Use functional options to customize context behavior.
//
// Example:
//
//	// Default software rendering
//	dc := grayview.NewDisplayContext(canvas)
//
//	// Custom GPU renderer (dependency injection)
//	dc := grayview.NewDisplayContext(canvas, grayview.WithGPURenderer(r))
type DisplayOption func(*DisplayContext)

// WithGPURenderer injects a GPU renderer for this context and selects the
// GPU pipeline. The injected renderer takes precedence over any renderer
// registered with RegisterGPURenderer.
func WithGPURenderer(r GPURenderer) DisplayOption {
	return func(dc *DisplayContext) {
		dc.gpu = r
		dc.renderer = RendererGPU
	}
}

// WithRendererKind selects the rendering pipeline without injecting a
// renderer. RendererGPU uses the process-wide registered renderer and falls
// back to the software pipeline when none is registered.
func WithRendererKind(k RendererKind) DisplayOption {
	return func(dc *DisplayContext) {
		dc.renderer = k
	}
}

// WithLUTGenerator replaces the default display-table generator.
// Use this for dependency injection in tests or for custom LUT pipelines.
func WithLUTGenerator(g LUTGenerator) DisplayOption {
	return func(dc *DisplayContext) {
		if g != nil {
			dc.generate = g
		}
	}
}

// WithPixelConverter replaces the default stored-sample converter.
func WithPixelConverter(c PixelConverter) DisplayOption {
	return func(dc *DisplayContext) {
		if c != nil {
			dc.convert = c
		}
	}
}

// WithTransformSetter replaces the default coordinate-system setter.
func WithTransformSetter(t TransformSetter) DisplayOption {
	return func(dc *DisplayContext) {
		if t != nil {
			dc.setTransform = t
		}
	}
}
