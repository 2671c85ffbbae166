package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu      sync.Mutex
	img     *image.RGBA
	front   []byte
	version uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &hostFramebuffer{
		img:   img,
		front: make([]byte, len(img.Pix)),
	}
}

func (f *hostFramebuffer) Width() int         { return f.img.Bounds().Dx() }
func (f *hostFramebuffer) Height() int        { return f.img.Bounds().Dy() }
func (f *hostFramebuffer) Image() *image.RGBA { return f.img }

// Present publishes the back buffer to the window.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.img.Pix)
	f.version++
	return nil
}

// snapshot copies the last presented frame into dst if it changed since
// version seen. It returns the current version.
func (f *hostFramebuffer) snapshot(dst []byte, seen uint64) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.version == seen {
		return seen, false
	}
	copy(dst, f.front)
	return f.version, true
}
