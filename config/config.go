// Package config provides configuration loading for grayview tools.
// It handles loading render settings from YAML files and provides defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorad/grayview"
)

// WindowPreset is a named window width/center pair, typically one per tissue
// type (e.g. lung, bone, soft tissue).
type WindowPreset struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Center float64 `yaml:"center"`
}

// Config represents render settings loaded from YAML.
type Config struct {
	// Render parameters applied to the display context
	Render struct {
		// Renderer selects the pipeline: "software" or "gpu"
		Renderer string `yaml:"renderer"`

		// WindowWidth and WindowCenter override the auto-derived window
		// when non-zero
		WindowWidth  float64 `yaml:"windowWidth"`
		WindowCenter float64 `yaml:"windowCenter"`

		// Invert flips the output intensity range
		Invert bool `yaml:"invert"`

		// Rotation is the display rotation in degrees
		Rotation float64 `yaml:"rotation"`

		// HFlip and VFlip mirror the image
		HFlip bool `yaml:"hflip"`
		VFlip bool `yaml:"vflip"`

		// PixelReplication disables smoothing for diagnostic inspection
		PixelReplication bool `yaml:"pixelReplication"`
	} `yaml:"render"`

	// Presets are named windowing presets selectable by name
	Presets []WindowPreset `yaml:"presets"`

	// Output parameters
	Output struct {
		// Verbose enables debug logging
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// Default returns a configuration with sensible defaults: the software
// renderer, smoothing on, and the window left to auto-derivation.
func Default() *Config {
	cfg := &Config{}
	cfg.Render.Renderer = "software"
	return cfg
}

// Load reads configuration from a YAML file, applying defaults for any
// missing fields.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if _, err := c.RendererKind(); err != nil {
		return err
	}
	if c.Render.WindowWidth < 0 {
		return fmt.Errorf("windowWidth must not be negative, got %v", c.Render.WindowWidth)
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset with width %v has no name", p.Width)
		}
		if p.Width <= 0 {
			return fmt.Errorf("preset %q: width must be positive, got %v", p.Name, p.Width)
		}
	}
	return nil
}

// RendererKind maps the configured renderer name to a grayview renderer
// kind.
func (c *Config) RendererKind() (grayview.RendererKind, error) {
	switch c.Render.Renderer {
	case "", "software":
		return grayview.RendererSoftware, nil
	case "gpu":
		return grayview.RendererGPU, nil
	default:
		return grayview.RendererSoftware, fmt.Errorf("unknown renderer %q (want software or gpu)", c.Render.Renderer)
	}
}

// Preset returns the named window preset, if present.
func (c *Config) Preset(name string) (WindowPreset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return WindowPreset{}, false
}

// Apply copies the configured view parameters onto a viewport. Zero window
// width leaves the viewport's auto-derived window untouched.
func (c *Config) Apply(vp *grayview.Viewport) {
	if c.Render.WindowWidth > 0 {
		vp.WindowWidth = c.Render.WindowWidth
		vp.WindowCenter = c.Render.WindowCenter
	}
	vp.Invert = c.Render.Invert
	vp.Rotation = c.Render.Rotation
	vp.HFlip = c.Render.HFlip
	vp.VFlip = c.Render.VFlip
	vp.PixelReplication = c.Render.PixelReplication
}
