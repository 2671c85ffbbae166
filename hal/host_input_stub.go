//go:build !cgo

package hal

import "image"

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}

func (p *hostPointer) poll(image.Rectangle) {}
