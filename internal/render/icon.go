package render

import (
	"fmt"
	"image"

	"github.com/cordshot/icongen/internal/render/layout"
)

// IconRenderer composes the icon at any positive size.
type IconRenderer struct {
	Passes []Pass
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer() *IconRenderer { return &IconRenderer{Passes: ForegroundPasses} }

// Icon renders the icon at size x size with the default passes.
func Icon(size int) (*image.RGBA, error) {
	return NewIconRenderer().Render(size)
}

// Render draws the gradient, clips it to the rounded square and then runs
// the foreground passes over the result. The output only depends on size.
func (r *IconRenderer) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive (got %d)", size)
	}
	m := layout.Measure(size)

	background := Gradient(m)
	img := ApplyMask(background, RoundedMask(m))

	canvas := NewCanvas(img)
	for _, pass := range r.Passes {
		pass.Draw(canvas, m)
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "rendered %dpx (scale=%.4f, frame=%dpx, line=%dpx)", size, m.Scale, m.FrameWidth, m.LineWidth)
	}
	return img, nil
}
