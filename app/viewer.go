package app

import (
	"fmt"
	"image"
	"image/draw"

	"velplot/figure"
	"velplot/hal"
)

// viewer paints a rendered frame into the host framebuffer and keeps the
// status strip below it current.
type viewer struct {
	fb    hal.Framebuffer
	kbd   hal.Keyboard
	ptr   hal.Pointer
	d     fbDisplay
	frame *figure.Frame
	save  func() (string, error)
	log   *Logger

	name       string
	rows, cols int
	message    string
	lastStatus string
	painted    bool
}

func newViewer(h hal.HAL, frame *figure.Frame, name string, rows, cols int, save func() (string, error), log *Logger) *viewer {
	v := &viewer{
		frame: frame,
		save:  save,
		log:   log,
		name:  name,
		rows:  rows,
		cols:  cols,
	}
	if disp := h.Display(); disp != nil {
		v.fb = disp.Framebuffer()
		v.d = fbDisplay{fb: v.fb}
	}
	if in := h.Input(); in != nil {
		v.kbd = in.Keyboard()
		v.ptr = in.Pointer()
	}
	return v
}

// step handles pending input and repaints what changed. It returns
// hal.ErrClosed when the user asks to quit.
func (v *viewer) step() error {
	if err := v.drainKeys(); err != nil {
		return err
	}
	if v.fb == nil {
		return nil
	}

	if !v.painted {
		img := v.fb.Image()
		draw.Draw(img, v.frame.Image.Bounds(), v.frame.Image, image.Point{}, draw.Src)
		v.painted = true
		v.lastStatus = ""
	}

	var (
		pt image.Point
		ok bool
	)
	if v.ptr != nil {
		pt, ok = v.ptr.Position()
	}
	left, right := v.status(pt, ok)
	if s := left + "\x00" + right; s != v.lastStatus {
		v.lastStatus = s
		v.d.drawStatus(left, right)
		return v.fb.Present()
	}
	return nil
}

func (v *viewer) drainKeys() error {
	if v.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-v.kbd.Events():
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch {
	case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
		return hal.ErrClosed
	case ev.Code == hal.KeyHome:
		v.painted = false
		v.message = ""
	case ev.Rune == 's', ev.Rune == 'S':
		if v.save == nil {
			return nil
		}
		path, err := v.save()
		if err != nil {
			v.log.Error("save figure", "err", err)
			v.message = "save failed"
			return nil
		}
		v.log.Info("saved figure", "path", path)
		v.message = "saved " + path
	}
	return nil
}

func (v *viewer) status(pt image.Point, ok bool) (left, right string) {
	left = fmt.Sprintf("%s  %dx%d", v.name, v.rows, v.cols)
	if v.message != "" {
		left += "  " + v.message
	}
	if !ok {
		return left, ""
	}
	x, y, in := v.frame.At(pt)
	if !in {
		return left, ""
	}
	return left, fmt.Sprintf("x=%.4g  u=%.4g", x, y)
}
