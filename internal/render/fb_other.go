//go:build !linux

package render

import (
	"fmt"
	"image"
)

// BlitToFramebuffer is only available on Linux.
func BlitToFramebuffer(device string, _ image.Image) error {
	return fmt.Errorf("framebuffer %s: only supported on linux", device)
}
