package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"velplot/app"
	"velplot/figure"
	"velplot/internal/buildinfo"
	"velplot/table"
)

func main() {
	var cfg app.Config
	var verbose, version bool
	rc := figure.DefaultRC()
	flag.StringVar(&cfg.Input, "in", table.DefaultPath, "Comma-separated table to plot, one line per row.")
	flag.StringVar(&cfg.Output, "o", "", "Also write the figure to this file (.svg, .pdf, .eps, .png, .jpg, .tiff).")
	flag.StringVar(&cfg.Title, "title", "", "Optional plot title.")
	flag.BoolVar(&cfg.Headless.Enabled, "headless", false, "Run without a window.")
	flag.Uint64Var(&cfg.Headless.Ticks, "ticks", 1, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.Float64Var(&rc.FontSize, "font-size", rc.FontSize, "Base font size in points.")
	flag.BoolVar(&rc.EmbedFonts, "embed-fonts", rc.EmbedFonts, "Embed fonts in SVG/PDF output instead of keeping editable text.")
	flag.IntVar(&rc.Width, "width", rc.Width, "Figure width in pixels.")
	flag.IntVar(&rc.Height, "height", rc.Height, "Figure height in pixels.")
	flag.BoolVar(&verbose, "v", false, "Debug logging.")
	flag.BoolVar(&version, "version", false, "Print the build identifier and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = app.NewTextLogger(os.Stderr, level)
	cfg.RC = rc

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		if err == context.Canceled {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
