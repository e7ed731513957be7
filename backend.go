package grayview

import (
	"errors"
	"image"
	"sync"
)

// ErrFallbackToSoftware indicates the GPU renderer cannot handle this frame.
// The caller transparently falls back to the software pipeline.
var ErrFallbackToSoftware = errors.New("grayview: falling back to software rendering")

// RendererKind selects the rendering pipeline for a display context. It is
// resolved once when the context is configured, never compared per frame
// from configuration strings.
type RendererKind uint8

const (
	// RendererSoftware renders through the cached software pipeline.
	RendererSoftware RendererKind = iota

	// RendererGPU delegates whole frames to a GPURenderer.
	RendererGPU
)

// String returns the renderer kind name.
func (k RendererKind) String() string {
	switch k {
	case RendererSoftware:
		return "software"
	case RendererGPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// GPURenderer is an alternate full-pipeline renderer. When a display context
// is configured with RendererGPU, Render hands the entire frame to the
// GPURenderer and skips the software caches; the renderer's internal caching
// is its own business.
//
// A GPURenderer may return ErrFallbackToSoftware to hand an unsupported
// frame back to the software path. Any other error propagates to the caller
// unchanged.
type GPURenderer interface {
	// Name returns the renderer name (e.g. "wgpu", "vulkan").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// Render draws the context's image under its viewport and returns the
	// drawable result at the image's native dimensions.
	Render(dc *DisplayContext) (*image.RGBA, error)
}

var (
	gpuMu       sync.RWMutex
	gpuRenderer GPURenderer
)

// RegisterGPURenderer registers a process-wide GPU renderer used by display
// contexts configured with RendererGPU that have no per-context renderer
// injected.
//
// Only one renderer can be registered; subsequent calls replace the previous
// one and Close it. The renderer's Init method is called during
// registration; if Init fails, the renderer is not registered and the error
// is returned.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    grayview.RegisterGPURenderer(NewWGPURenderer())
//	}
func RegisterGPURenderer(r GPURenderer) error {
	if r == nil {
		return errors.New("grayview: GPU renderer must not be nil")
	}
	if err := r.Init(); err != nil {
		return err
	}

	gpuMu.Lock()
	old := gpuRenderer
	gpuRenderer = r
	gpuMu.Unlock()

	if old != nil {
		old.Close()
	}
	propagateLogger(r, Logger())
	Logger().Info("grayview: GPU renderer registered", "name", r.Name())
	return nil
}

// UnregisterGPURenderer removes and closes the process-wide GPU renderer,
// if any. Contexts configured with RendererGPU fall back to the software
// pipeline until a new renderer is registered.
func UnregisterGPURenderer() {
	gpuMu.Lock()
	old := gpuRenderer
	gpuRenderer = nil
	gpuMu.Unlock()

	if old != nil {
		old.Close()
	}
}

// registeredGPURenderer returns the process-wide GPU renderer, or nil.
func registeredGPURenderer() GPURenderer {
	gpuMu.RLock()
	defer gpuMu.RUnlock()
	return gpuRenderer
}
