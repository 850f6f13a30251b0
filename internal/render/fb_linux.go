//go:build linux

package render

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// BlitToFramebuffer shows img stretched over the whole framebuffer device,
// e.g. "/dev/fb0".
func BlitToFramebuffer(device string, img image.Image) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	defer dev.Close()
	blit(dev, img)
	return nil
}
