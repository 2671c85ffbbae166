package figure

import (
	"image"
	stddraw "image/draw"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Range is a closed interval of data coordinates.
type Range struct {
	Min, Max float64
}

// Frame is a rasterized figure.
type Frame struct {
	Image *image.RGBA
	Data  image.Rectangle // data area in image pixels
	X, Y  Range
}

// Render rasterizes the figure at RC.Width x RC.Height pixels.
func (f *Figure) Render() (*Frame, error) {
	p := f.Plot()
	w, h := f.RC.size()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.RC.DPI))
	dc := draw.New(c)
	p.Draw(dc)

	da := p.DataCanvas(dc)
	dpi := float64(f.RC.DPI)
	px := func(l vg.Length) int { return int(math.Round(l.Dots(dpi))) }
	height := c.Image().Bounds().Dy()
	data := image.Rect(px(da.Min.X), height-px(da.Max.Y), px(da.Max.X), height-px(da.Min.Y))

	return &Frame{
		Image: toRGBA(c.Image()),
		Data:  data,
		X:     axisRange(p.X),
		Y:     axisRange(p.Y),
	}, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	stddraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, stddraw.Src)
	return rgba
}

// axisRange mirrors the clamping gonum applies to an axis with no data.
func axisRange(a plot.Axis) Range {
	r := Range{Min: a.Min, Max: a.Max}
	if math.IsInf(r.Min, 0) {
		r.Min = 0
	}
	if math.IsInf(r.Max, 0) {
		r.Max = 0
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Min == r.Max {
		r.Min--
		r.Max++
	}
	return r
}

// At maps an image pixel to data coordinates. ok is false outside the data area.
func (fr *Frame) At(pt image.Point) (x, y float64, ok bool) {
	if fr == nil || !pt.In(fr.Data) || fr.Data.Dx() <= 1 || fr.Data.Dy() <= 1 {
		return 0, 0, false
	}
	fx := float64(pt.X-fr.Data.Min.X) / float64(fr.Data.Dx()-1)
	fy := float64(fr.Data.Max.Y-1-pt.Y) / float64(fr.Data.Dy()-1)
	x = fr.X.Min + fx*(fr.X.Max-fr.X.Min)
	y = fr.Y.Min + fy*(fr.Y.Max-fr.Y.Min)
	return x, y, true
}
