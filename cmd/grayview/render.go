package main

import (
	"encoding/binary"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorad/grayview"
	"github.com/gorad/grayview/config"
)

var (
	inputPath  string
	outputPath string
	configPath string

	imgWidth  int
	imgHeight int

	canvasWidth  int
	canvasHeight int

	windowWidth  float64
	windowCenter float64
	presetName   string
	invert       bool
	rotation     float64
	hflip        bool
	vflip        bool
	replicate    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a raw grayscale image to PNG",
	Long: `Render reads raw 16-bit little-endian stored samples, applies the
configured window/level and geometry, and writes the result as PNG.

The window defaults to an automatic estimate from the sample statistics;
override it with --window-width/--window-center, a configured preset, or a
YAML settings file.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Raw input file (16-bit little-endian samples)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "out.png", "Output PNG file")
	renderCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML render settings file")
	renderCmd.Flags().IntVar(&imgWidth, "width", 0, "Image width in pixels")
	renderCmd.Flags().IntVar(&imgHeight, "height", 0, "Image height in pixels")
	renderCmd.Flags().IntVar(&canvasWidth, "canvas-width", 0, "Canvas width (default: image width)")
	renderCmd.Flags().IntVar(&canvasHeight, "canvas-height", 0, "Canvas height (default: image height)")
	renderCmd.Flags().Float64Var(&windowWidth, "window-width", 0, "Window width (0 = auto)")
	renderCmd.Flags().Float64Var(&windowCenter, "window-center", 0, "Window center")
	renderCmd.Flags().StringVar(&presetName, "preset", "", "Window preset name from the settings file")
	renderCmd.Flags().BoolVar(&invert, "invert", false, "Invert output intensities")
	renderCmd.Flags().Float64Var(&rotation, "rotation", 0, "Rotation in degrees")
	renderCmd.Flags().BoolVar(&hflip, "hflip", false, "Flip horizontally")
	renderCmd.Flags().BoolVar(&vflip, "vflip", false, "Flip vertically")
	renderCmd.Flags().BoolVar(&replicate, "pixel-replication", false, "Nearest-neighbor magnification")

	_ = renderCmd.MarkFlagRequired("input")
	_ = renderCmd.MarkFlagRequired("width")
	_ = renderCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	img, err := loadRawImage(inputPath, imgWidth, imgHeight)
	if err != nil {
		return err
	}

	cw, ch := canvasWidth, canvasHeight
	if cw <= 0 {
		cw = img.Width
	}
	if ch <= 0 {
		ch = img.Height
	}
	canvas := grayview.NewImageCanvas(cw, ch)

	kind, err := cfg.RendererKind()
	if err != nil {
		return err
	}
	dc := grayview.NewDisplayContext(canvas, grayview.WithRendererKind(kind))
	dc.SetImage(img)

	cfg.Apply(&dc.Viewport)
	if presetName != "" {
		p, ok := cfg.Preset(presetName)
		if !ok {
			return fmt.Errorf("unknown preset %q", presetName)
		}
		dc.Viewport.WindowWidth = p.Width
		dc.Viewport.WindowCenter = p.Center
	}
	applyFlagOverrides(cmd, &dc.Viewport)

	if err := grayview.Render(dc, false); err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, canvas.Snapshot()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("Rendered %s (%dx%d) to %s (window %.0f/%.0f, lut %v, convert %v)\n",
		inputPath, img.Width, img.Height, outputPath,
		dc.Viewport.WindowWidth, dc.Viewport.WindowCenter,
		img.Stats.LastLUTLookup, img.Stats.LastConvert)
	return nil
}

// applyFlagOverrides copies only the flags the user actually set onto the
// viewport, so config-file and auto-derived values survive unset flags.
func applyFlagOverrides(cmd *cobra.Command, vp *grayview.Viewport) {
	if cmd.Flags().Changed("window-width") {
		vp.WindowWidth = windowWidth
	}
	if cmd.Flags().Changed("window-center") {
		vp.WindowCenter = windowCenter
	}
	if cmd.Flags().Changed("invert") {
		vp.Invert = invert
	}
	if cmd.Flags().Changed("rotation") {
		vp.Rotation = rotation
	}
	if cmd.Flags().Changed("hflip") {
		vp.HFlip = hflip
	}
	if cmd.Flags().Changed("vflip") {
		vp.VFlip = vflip
	}
	if cmd.Flags().Changed("pixel-replication") {
		vp.PixelReplication = replicate
	}
}

// loadRawImage reads 16-bit little-endian stored samples from a raw file.
func loadRawImage(path string, width, height int) (*grayview.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	want := width * height * 2
	if len(data) < want {
		return nil, fmt.Errorf("input file holds %d bytes, want %d for %dx%d 16-bit samples",
			len(data), want, width, height)
	}

	pixels := make([]int16, width*height)
	for i := range pixels {
		pixels[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return grayview.NewImage(path, width, height, pixels)
}
