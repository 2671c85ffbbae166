package app

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velplot/figure"
	"velplot/hal"
)

type fakeFB struct {
	img      *image.RGBA
	presents int
}

func (f *fakeFB) Width() int         { return f.img.Bounds().Dx() }
func (f *fakeFB) Height() int        { return f.img.Bounds().Dy() }
func (f *fakeFB) Image() *image.RGBA { return f.img }
func (f *fakeFB) Present() error     { f.presents++; return nil }

type fakeKeyboard chan hal.KeyEvent

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k }

type fakePointer struct {
	pt image.Point
	ok bool
}

func (p *fakePointer) Position() (image.Point, bool) { return p.pt, p.ok }

type fakeHAL struct {
	fb  *fakeFB
	kbd fakeKeyboard
	ptr *fakePointer
}

func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }
func (h *fakeHAL) Pointer() hal.Pointer         { return h.ptr }

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:  &fakeFB{img: image.NewRGBA(image.Rect(0, 0, w, h))},
		kbd: make(fakeKeyboard, 8),
		ptr: &fakePointer{},
	}
}

func testFrame(w, h int) *figure.Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return &figure.Frame{
		Image: img,
		Data:  image.Rect(10, 10, w-9, h-9),
		X:     figure.Range{Min: 0, Max: 63},
		Y:     figure.Range{Min: 0, Max: 1},
	}
}

func TestViewerPaintsFrameAndStatus(t *testing.T) {
	h := newFakeHAL(300, 200+statusHeight)
	v := newViewer(h, testFrame(300, 200), "velocity.csv", 10, 64, nil, NoopLogger())

	require.NoError(t, v.step())
	assert.Equal(t, 1, h.fb.presents)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, h.fb.img.RGBAAt(0, 0))
	assert.Equal(t, colorRule, h.fb.img.RGBAAt(0, 200))

	require.NoError(t, v.step())
	assert.Equal(t, 1, h.fb.presents, "unchanged status must not present again")

	h.ptr.pt, h.ptr.ok = image.Pt(150, 100), true
	require.NoError(t, v.step())
	assert.Equal(t, 2, h.fb.presents)
}

func TestViewerStatusText(t *testing.T) {
	v := newViewer(newFakeHAL(100, 100), testFrame(100, 78), "velocity.csv", 3, 64, nil, NoopLogger())

	left, right := v.status(image.Point{}, false)
	assert.Equal(t, "velocity.csv  3x64", left)
	assert.Empty(t, right)

	_, right = v.status(image.Pt(10, 68), true)
	assert.Equal(t, "x=0  u=0", right)

	_, right = v.status(image.Pt(0, 0), true)
	assert.Empty(t, right, "outside the data area")
}

func TestViewerQuitKeys(t *testing.T) {
	for _, ev := range []hal.KeyEvent{
		{Code: hal.KeyEscape, Press: true},
		{Press: true, Rune: 'q'},
		{Press: true, Rune: 'Q'},
	} {
		h := newFakeHAL(50, 50)
		v := newViewer(h, testFrame(50, 28), "velocity.csv", 1, 1, nil, NoopLogger())
		h.kbd <- ev
		assert.ErrorIs(t, v.step(), hal.ErrClosed, "event %+v", ev)
	}

	h := newFakeHAL(50, 50)
	v := newViewer(h, testFrame(50, 28), "velocity.csv", 1, 1, nil, NoopLogger())
	h.kbd <- hal.KeyEvent{Code: hal.KeyEscape, Press: false}
	assert.NoError(t, v.step(), "release is ignored")
}

func TestViewerSaveKey(t *testing.T) {
	h := newFakeHAL(400, 100)
	calls := 0
	save := func() (string, error) {
		calls++
		if calls == 2 {
			return "", errors.New("disk full")
		}
		return "velocity.png", nil
	}
	v := newViewer(h, testFrame(400, 78), "velocity.csv", 1, 2, save, NoopLogger())

	h.kbd <- hal.KeyEvent{Press: true, Rune: 's'}
	require.NoError(t, v.step())
	left, _ := v.status(image.Point{}, false)
	assert.Equal(t, "velocity.csv  1x2  saved velocity.png", left)

	h.kbd <- hal.KeyEvent{Press: true, Rune: 's'}
	require.NoError(t, v.step())
	left, _ = v.status(image.Point{}, false)
	assert.Equal(t, "velocity.csv  1x2  save failed", left)

	h.kbd <- hal.KeyEvent{Code: hal.KeyHome, Press: true}
	require.NoError(t, v.step())
	left, _ = v.status(image.Point{}, false)
	assert.Equal(t, "velocity.csv  1x2", left)
}

func TestClipText(t *testing.T) {
	assert.Equal(t, "", clipText("abc", 0))
	assert.Equal(t, "abc", clipText("abc", 1000))
	clipped := clipText("a rather long status line", 40)
	assert.NotEmpty(t, clipped)
	assert.Less(t, len(clipped), len("a rather long status line"))
}
