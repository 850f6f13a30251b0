package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/cordshot/icongen/internal/render/layout"
	"golang.org/x/image/vector"
)

// Gradient paints the background pass: every row of the padded span is
// filled with the colour interpolated for that row. Columns outside the span
// stay transparent.
func Gradient(m layout.Metrics) *image.RGBA {
	img := image.NewRGBA(m.Bounds())
	span := m.Box()
	for y := 0; y < m.Size; y++ {
		row := image.Rect(span.Min.X, y, span.Max.X, y+1).Intersect(img.Bounds())
		draw.Draw(img, row, &image.Uniform{C: GradientColor(y, m.Size)}, image.Point{}, draw.Src)
	}
	return img
}

// GradientColor interpolates between GradientTop and GradientBottom by y/size.
func GradientColor(y, size int) color.RGBA {
	ratio := float64(y) / float64(size)
	mix := func(top, bottom uint8) uint8 {
		return uint8(float64(top)*(1-ratio) + float64(bottom)*ratio)
	}
	return color.RGBA{
		R: mix(GradientTop.R, GradientBottom.R),
		G: mix(GradientTop.G, GradientBottom.G),
		B: mix(GradientTop.B, GradientBottom.B),
		A: 0xFF,
	}
}

// RoundedMask renders the padded rounded square into its own opacity mask.
func RoundedMask(m layout.Metrics) *image.Alpha {
	mask := image.NewAlpha(m.Bounds())
	z := vector.NewRasterizer(m.Size, m.Size)
	z.DrawOp = draw.Src
	addRoundedRect(z, m.Box(), m.CornerRadius)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// ApplyMask returns a copy of src whose alpha channel is taken from mask.
// Pixels where mask is zero end up fully transparent whatever src holds.
func ApplyMask(src *image.RGBA, mask *image.Alpha) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, mask.Bounds().Min, draw.Src)
	return dst
}
