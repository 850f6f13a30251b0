package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/cordshot/icongen/internal/render/layout"
	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Canvas draws antialiased shapes onto an *image.RGBA with the freetype
// rasterizer, compositing each shape over what is already there.
type Canvas struct {
	img     *image.RGBA
	ras     *raster.Rasterizer
	painter *raster.RGBAPainter
}

// NewCanvas wraps img. img must have its origin at (0, 0).
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	painter := raster.NewRGBAPainter(img)
	painter.Op = draw.Over
	return &Canvas{img: img, ras: raster.NewRasterizer(b.Dx(), b.Dy()), painter: painter}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius int, col color.Color) {
	c.fill(col, true, func(p pathSink) {
		addRoundedRect(p, rect, radius)
	})
}

func (c *Canvas) StrokeRoundedRect(rect image.Rectangle, radius, width int, col color.Color) {
	inner := layout.Inset(rect, width)
	if inner.Empty() || width*2 >= rect.Dx() || width*2 >= rect.Dy() {
		c.FillRoundedRect(rect, radius, col)
		return
	}
	innerRadius := radius - width
	if innerRadius < 0 {
		innerRadius = 0
	}
	// Even-odd filling of both outlines leaves only the ring.
	c.fill(col, false, func(p pathSink) {
		addRoundedRect(p, rect, radius)
		addRoundedRect(p, inner, innerRadius)
	})
}

func (c *Canvas) StrokeEllipse(rect image.Rectangle, width int, col color.Color) {
	inner := layout.Inset(rect, width)
	if inner.Empty() || width*2 >= rect.Dx() || width*2 >= rect.Dy() {
		c.fill(col, true, func(p pathSink) { addEllipse(p, rect) })
		return
	}
	c.fill(col, false, func(p pathSink) {
		addEllipse(p, rect)
		addEllipse(p, inner)
	})
}

func (c *Canvas) Line(from, to image.Point, width int, col color.Color) {
	if width <= 0 {
		return
	}
	var path raster.Path
	path.Start(fix(float32(from.X)+0.5, float32(from.Y)+0.5))
	path.Add1(fix(float32(to.X)+0.5, float32(to.Y)+0.5))

	c.ras.Clear()
	c.ras.UseNonZeroWinding = true
	c.ras.AddStroke(path, fixed.I(width), raster.ButtCapper, raster.BevelJoiner)
	c.painter.SetColor(col)
	c.ras.Rasterize(c.painter)
}

func (c *Canvas) fill(col color.Color, nonZero bool, outline func(p pathSink)) {
	c.ras.Clear()
	c.ras.UseNonZeroWinding = nonZero
	outline(&fixedSink{a: c.ras})
	c.painter.SetColor(col)
	c.ras.Rasterize(c.painter)
}
