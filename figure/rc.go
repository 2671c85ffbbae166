package figure

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RC is the global cosmetic configuration applied before drawing.
type RC struct {
	FontSize   float64 // points
	EmbedFonts bool    // false keeps text editable in SVG/PDF output
	DPI        int
	Width      int // pixels
	Height     int // pixels
}

// DefaultRC returns the configuration used when none is given.
func DefaultRC() RC {
	return RC{
		FontSize: 14,
		DPI:      100,
		Width:    640,
		Height:   480,
	}
}

func (rc RC) withDefaults() RC {
	def := DefaultRC()
	if rc.FontSize <= 0 {
		rc.FontSize = def.FontSize
	}
	if rc.DPI <= 0 {
		rc.DPI = def.DPI
	}
	if rc.Width <= 0 {
		rc.Width = def.Width
	}
	if rc.Height <= 0 {
		rc.Height = def.Height
	}
	return rc
}

// size converts the pixel dimensions to canvas lengths at rc.DPI.
func (rc RC) size() (w, h vg.Length) {
	dpi := vg.Length(rc.DPI)
	return vg.Length(rc.Width) / dpi * vg.Inch, vg.Length(rc.Height) / dpi * vg.Inch
}

// Style is the stroke used for every row line.
type Style struct {
	Color color.Color
	Width vg.Length
}

// DefaultStyle is a 1pt grey stroke at 70% opacity.
func DefaultStyle() Style {
	return Style{
		Color: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 179},
		Width: vg.Points(1),
	}
}

func (s Style) lineStyle() draw.LineStyle {
	ls := plotter.DefaultLineStyle
	ls.Color = s.Color
	ls.Width = s.Width
	return ls
}

// Spines selects which borders of the axes are drawn.
type Spines struct {
	Left, Bottom, Top, Right bool
}

// DefaultSpines hides the top and right borders.
func DefaultSpines() Spines {
	return Spines{Left: true, Bottom: true}
}
