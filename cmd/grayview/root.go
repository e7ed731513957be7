package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorad/grayview"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "grayview",
	Short: "Cached grayscale image rendering",
	Long: `grayview renders raw grayscale images (16-bit stored samples) to PNG
with window/level, inversion, rotation, flips and pixel replication,
reusing cached lookup tables and raster surfaces between renders.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		grayview.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
