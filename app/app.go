// Package app wires the table loader, the figure and the host viewer into the
// load, render, display sequence.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"velplot/figure"
	"velplot/hal"
	"velplot/internal/buildinfo"
	"velplot/table"
)

// State is the runner lifecycle. It only moves forward.
type State int

const (
	// Loading is the initial state; the table has not been read yet.
	Loading State = iota
	// Rendering means the table is loaded and the figure is being (or has been) built.
	Rendering
	// Displayed means the viewer was started. It is terminal.
	Displayed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Rendering:
		return "rendering"
	case Displayed:
		return "displayed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config selects the input, optional export and the viewer mode.
type Config struct {
	// Input is the table file. Empty means table.DefaultPath.
	Input string
	// Output, if set, also writes the figure to this file (format by extension).
	Output string
	Title  string
	// Style overrides figure.DefaultStyle when set.
	Style    *figure.Style
	RC       figure.RC
	Headless hal.HeadlessConfig
	// Logger defaults to NoopLogger.
	Logger *Logger
}

// Runner drives one load, render, display sequence.
type Runner struct {
	cfg   Config
	log   *Logger
	state State

	table *table.Table
	fig   *figure.Figure
	frame *figure.Frame
}

// New returns a Runner in the Loading state.
func New(cfg Config) *Runner {
	if cfg.Input == "" {
		cfg.Input = table.DefaultPath
	}
	log := cfg.Logger
	if log == nil {
		log = NoopLogger()
	}
	return &Runner{cfg: cfg, log: log, state: Loading}
}

// State reports the current lifecycle state.
func (r *Runner) State() State           { return r.state }
func (r *Runner) Table() *table.Table    { return r.table }
func (r *Runner) Figure() *figure.Figure { return r.fig }
func (r *Runner) Frame() *figure.Frame   { return r.frame }

// Prepare loads the table and renders the figure. On error no figure is
// produced and the runner stays in the state where it failed.
func (r *Runner) Prepare() error {
	if r.state != Loading {
		return fmt.Errorf("app: prepare in state %s", r.state)
	}

	t, err := table.Load(r.cfg.Input)
	if err != nil {
		return err
	}
	rows, cols := t.Dims()
	r.log.Debug("table loaded", "path", r.cfg.Input, "rows", rows, "cols", cols)
	r.table = t
	r.state = Rendering

	opts := []figure.Option{figure.WithRC(r.cfg.RC)}
	if r.cfg.Style != nil {
		opts = append(opts, figure.WithStyle(*r.cfg.Style))
	}
	if r.cfg.Title != "" {
		opts = append(opts, figure.WithTitle(r.cfg.Title))
	}
	fig, err := figure.New(t, opts...)
	if err != nil {
		return err
	}
	frame, err := fig.Render()
	if err != nil {
		return err
	}

	if r.cfg.Output != "" {
		if err := fig.Export(r.cfg.Output); err != nil {
			return err
		}
		r.log.Info("figure written", "path", r.cfg.Output)
	}

	r.fig = fig
	r.frame = frame
	r.log.Debug("figure rendered", "lines", len(fig.Lines),
		"width", frame.Image.Bounds().Dx(), "height", frame.Image.Bounds().Dy())
	return nil
}

// Show presents the rendered figure and blocks until the viewer is closed.
func (r *Runner) Show(ctx context.Context) error {
	if r.state != Rendering || r.frame == nil {
		return fmt.Errorf("app: show in state %s", r.state)
	}
	r.state = Displayed

	name := filepath.Base(r.cfg.Input)
	b := r.frame.Image.Bounds()
	hcfg := hal.Config{
		Title:  fmt.Sprintf("%s - velplot (%s)", name, buildinfo.Short()),
		Width:  b.Dx(),
		Height: b.Dy() + statusHeight,
	}
	rows, cols := r.table.Dims()
	newApp := func(h hal.HAL) func() error {
		return newViewer(h, r.frame, name, rows, cols, r.saveSnapshot, r.log).step
	}

	if r.cfg.Headless.Enabled {
		r.log.Debug("running headless", "ticks", r.cfg.Headless.Ticks)
		return hal.RunHeadless(ctx, hcfg, newApp, r.cfg.Headless)
	}
	return hal.RunWindow(ctx, hcfg, newApp)
}

// saveSnapshot writes the figure as PNG next to the input file.
func (r *Runner) saveSnapshot() (string, error) {
	path := strings.TrimSuffix(r.cfg.Input, filepath.Ext(r.cfg.Input)) + ".png"
	if err := r.fig.Export(path); err != nil {
		return "", err
	}
	return path, nil
}

// Run prepares and shows the figure described by cfg.
func Run(ctx context.Context, cfg Config) error {
	r := New(cfg)
	if err := r.Prepare(); err != nil {
		return err
	}
	return r.Show(ctx)
}
