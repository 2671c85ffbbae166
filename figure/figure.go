// Package figure turns a table into an overlay line plot, one line per row.
package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"velplot/table"
)

// Axis labels. YLabel is LaTeX math text; the separator is a thin space
// because the math renderer has no rule for a bare comma.
const (
	XLabel = "Spatial position"
	YLabel = `$u(x\, t)$`
)

// Figure holds the line artifacts and axes settings of one plot.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []*plotter.Line
	Style  Style
	Spines Spines
	RC     RC
}

// Option customizes a Figure built by New.
type Option func(*Figure)

// WithStyle sets the stroke of every row line.
func WithStyle(s Style) Option { return func(f *Figure) { f.Style = s } }

// WithRC sets the cosmetic configuration. Zero fields take DefaultRC values.
func WithRC(rc RC) Option { return func(f *Figure) { f.RC = rc } }

// WithSpines selects which axes borders are drawn.
func WithSpines(s Spines) Option { return func(f *Figure) { f.Spines = s } }

// WithTitle sets the plot title. Empty means none.
func WithTitle(title string) Option { return func(f *Figure) { f.Title = title } }

// New builds one line per table row. Row i becomes the points (j, t[i][j]).
func New(t *table.Table, opts ...Option) (*Figure, error) {
	f := &Figure{
		XLabel: XLabel,
		YLabel: YLabel,
		Style:  DefaultStyle(),
		Spines: DefaultSpines(),
		RC:     DefaultRC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.RC = f.RC.withDefaults()

	if t.Empty() {
		return f, nil
	}
	r, c := t.Dims()
	f.Lines = make([]*plotter.Line, 0, r)
	for i := 0; i < r; i++ {
		xys := make(plotter.XYs, c)
		for j := range xys {
			xys[j].X = float64(j)
			xys[j].Y = t.At(i, j)
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("figure: row %d: %w", i, err)
		}
		l.LineStyle = f.Style.lineStyle()
		f.Lines = append(f.Lines, l)
	}
	return f, nil
}

// Plot assembles a gonum plot from the figure. Lines are added in row order,
// so later rows are drawn over earlier ones.
func (f *Figure) Plot() *plot.Plot {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Y.Label.TextStyle.Handler = text.Latex{Fonts: font.DefaultCache, DPI: float64(f.RC.DPI)}

	size := vg.Points(f.RC.FontSize)
	for _, sty := range []*text.Style{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.X.Tick.Label,
		&p.Y.Tick.Label,
		&p.Legend.TextStyle,
	} {
		sty.Font.Size = size
	}

	if !f.Spines.Bottom {
		hideAxisLine(&p.X.LineStyle)
	}
	if !f.Spines.Left {
		hideAxisLine(&p.Y.LineStyle)
	}

	for _, l := range f.Lines {
		p.Add(l)
	}
	if f.Spines.Top || f.Spines.Right {
		p.Add(borders{top: f.Spines.Top, right: f.Spines.Right, style: p.X.LineStyle})
	}
	return p
}

func hideAxisLine(ls *draw.LineStyle) {
	ls.Width = 0
	ls.Color = color.Transparent
}

// borders draws the top and right edges of the data area; gonum only draws
// the left and bottom axes itself.
type borders struct {
	top, right bool
	style      draw.LineStyle
}

func (b borders) Plot(c draw.Canvas, _ *plot.Plot) {
	if b.top {
		c.StrokeLine2(b.style, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	}
	if b.right {
		c.StrokeLine2(b.style, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}
}
