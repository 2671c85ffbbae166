package hal

import (
	"context"
	"image"
	"sync"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
}

// New returns a host HAL with a framebuffer of cfg.Width x cfg.Height.
func New(cfg Config) HAL {
	return newHost(cfg)
}

func newHost(cfg Config) *hostHAL {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return &hostHAL{
		fb:  newHostFramebuffer(w, h),
		kbd: newHostKeyboard(),
		ptr: &hostPointer{},
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostPointer struct {
	mu sync.Mutex
	pt image.Point
	ok bool
}

func (p *hostPointer) Position() (image.Point, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pt, p.ok
}

func (p *hostPointer) set(pt image.Point, ok bool) {
	p.mu.Lock()
	p.pt, p.ok = pt, ok
	p.mu.Unlock()
}

// windowStep runs one window tick. A done ctx reports ErrClosed so the window
// shuts down the same way as a user close.
func windowStep(ctx context.Context, step func() error) error {
	if ctx.Err() != nil {
		return ErrClosed
	}
	if step == nil {
		return nil
	}
	return step()
}
