package app

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"velplot/hal"
)

var (
	colorStatusBG = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	colorStatusFG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorRule     = color.RGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}
)

var statusFont = &freemono.Regular9pt7b

const (
	statusHeight   = 22
	statusBaseline = 15
	statusPad      = 6
)

var _ drivers.Displayer = fbDisplay{}

// fbDisplay adapts a framebuffer to the tinyfont drawing target.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	img := d.fb.Image()
	if !(image.Point{X: int(x), Y: int(y)}).In(img.Bounds()) {
		return
	}
	img.SetRGBA(int(x), int(y), c)
}

func (d fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d fbDisplay) fillRect(r image.Rectangle, c color.RGBA) {
	img := d.fb.Image()
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawStatus clears the status strip at the bottom of the framebuffer and
// writes left- and right-aligned text into it.
func (d fbDisplay) drawStatus(left, right string) {
	w, h := d.fb.Width(), d.fb.Height()
	strip := image.Rect(0, h-statusHeight, w, h)
	d.fillRect(strip, colorStatusBG)
	d.fillRect(image.Rect(0, strip.Min.Y, w, strip.Min.Y+1), colorRule)

	y := int16(strip.Min.Y + statusBaseline)
	rightX := w - statusPad
	if right != "" {
		_, rw := tinyfont.LineWidth(statusFont, right)
		rightX = w - statusPad - int(rw)
		tinyfont.WriteLine(d, statusFont, int16(rightX), y, right, colorStatusFG)
	}
	left = clipText(left, rightX-2*statusPad)
	tinyfont.WriteLine(d, statusFont, statusPad, y, left, colorStatusFG)
}

// clipText drops trailing runes until s fits in width pixels.
func clipText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	for len(r) > 0 {
		if _, w := tinyfont.LineWidth(statusFont, string(r)); int(w) <= width {
			break
		}
		r = r[:len(r)-1]
	}
	return string(r)
}
