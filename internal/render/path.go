package render

import (
	"image"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// pathSink receives outlines. *vector.Rasterizer satisfies it directly; the
// freetype rasterizer is adapted by fixedSink.
type pathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubeTo(x1, y1, x2, y2, x3, y3 float32)
	ClosePath()
}

// addRoundedRect outlines rect with corner arcs of the given radius. The
// radius is clamped to half the shorter side.
func addRoundedRect(p pathSink, rect image.Rectangle, radius int) {
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	r := float32(radius)
	if half := (x1 - x0) / 2; r > half {
		r = half
	}
	if half := (y1 - y0) / 2; r > half {
		r = half
	}
	if r <= 0 {
		p.MoveTo(x0, y0)
		p.LineTo(x1, y0)
		p.LineTo(x1, y1)
		p.LineTo(x0, y1)
		p.ClosePath()
		return
	}
	k := r * kappa
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	p.LineTo(x1, y1-r)
	p.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	p.LineTo(x0+r, y1)
	p.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	p.LineTo(x0, y0+r)
	p.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	p.ClosePath()
}

// addEllipse outlines the ellipse inscribed in rect.
func addEllipse(p pathSink, rect image.Rectangle) {
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	cx, cy := (x0+x1)/2, (y0+y1)/2
	kx, ky := (x1-x0)/2*kappa, (y1-y0)/2*kappa
	p.MoveTo(cx, y0)
	p.CubeTo(cx+kx, y0, x1, cy-ky, x1, cy)
	p.CubeTo(x1, cy+ky, cx+kx, y1, cx, y1)
	p.CubeTo(cx-kx, y1, x0, cy+ky, x0, cy)
	p.CubeTo(x0, cy-ky, cx-kx, y0, cx, y0)
	p.ClosePath()
}

// fixedSink feeds float outlines into a freetype raster.Adder.
type fixedSink struct {
	a     raster.Adder
	start fixed.Point26_6
}

func (s *fixedSink) MoveTo(x, y float32) {
	s.start = fix(x, y)
	s.a.Start(s.start)
}

func (s *fixedSink) LineTo(x, y float32) { s.a.Add1(fix(x, y)) }

func (s *fixedSink) CubeTo(x1, y1, x2, y2, x3, y3 float32) {
	s.a.Add3(fix(x1, y1), fix(x2, y2), fix(x3, y3))
}

func (s *fixedSink) ClosePath() { s.a.Add1(s.start) }

func fix(x, y float32) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
