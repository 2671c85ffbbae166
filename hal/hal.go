package hal

import (
	"errors"
	"image"
)

// ErrClosed is returned by a step function to close the viewer. The host
// runners treat it as a normal exit.
var ErrClosed = errors.New("viewer closed")

// Framebuffer is an RGBA pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	// Image returns the backing buffer. Callers draw into it and call Present.
	Image() *image.RGBA
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
	KeyHome
)

// KeyEvent is a keyboard event. Printable input arrives with Code == KeyUnknown
// and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Pointer reports the cursor position in framebuffer pixels.
type Pointer interface {
	Position() (pt image.Point, ok bool)
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL is the viewer's only contact point with the host.
type HAL interface {
	Display() Display
	Input() Input
}

// Config sizes the host framebuffer.
type Config struct {
	Title  string
	Width  int
	Height int
}
