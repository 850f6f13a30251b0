package layout

import "image"

// ReferenceSize is the edge length the reference measurements are drawn at.
const ReferenceSize = 256

// Measurements in pixels at ReferenceSize.
const (
	refPadding      = 20
	refCornerRadius = 50
	refFrameMargin  = 55
	refFrameRadius  = 15
	refFrameWidth   = 8
	refMarkLength   = 30
	refMarkWidth    = 10
	refMarkOffset   = 25
	refHandleRadius = 18
	refHandleOffset = 22
	refLineWidth    = 6
	refBladeLength  = 35
	refBladeInset   = 5
	refBladeRise    = 25
)

// Metrics holds every measurement of the icon scaled to one canvas size.
// Values are truncated the same way at every size; stroke widths never drop
// below one pixel.
type Metrics struct {
	Size  int
	Scale float64

	Padding      int
	CornerRadius int

	FrameMargin int
	FrameRadius int
	FrameWidth  int

	MarkLength int
	MarkWidth  int
	MarkOffset int

	HandleRadius int
	HandleOffset int
	LineWidth    int
	BladeLength  int
	BladeInset   int
	BladeRise    int
}

// Measure scales the reference measurements to a size x size canvas.
func Measure(size int) Metrics {
	scale := float64(size) / ReferenceSize
	px := func(v int) int { return int(float64(v) * scale) }
	return Metrics{
		Size:  size,
		Scale: scale,

		Padding:      px(refPadding),
		CornerRadius: px(refCornerRadius),

		FrameMargin: px(refFrameMargin),
		FrameRadius: px(refFrameRadius),
		FrameWidth:  atLeastOne(px(refFrameWidth)),

		MarkLength: px(refMarkLength),
		MarkWidth:  atLeastOne(px(refMarkWidth)),
		MarkOffset: px(refMarkOffset),

		HandleRadius: px(refHandleRadius),
		HandleOffset: px(refHandleOffset),
		LineWidth:    atLeastOne(px(refLineWidth)),
		BladeLength:  px(refBladeLength),
		BladeInset:   px(refBladeInset),
		BladeRise:    px(refBladeRise),
	}
}

func atLeastOne(px int) int {
	if px < 1 {
		return 1
	}
	return px
}

// Bounds is the full canvas.
func (m Metrics) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Size, m.Size)
}

// Box is the padded rounded square the background is confined to.
func (m Metrics) Box() image.Rectangle {
	return Inclusive(m.Padding, m.Padding, m.Size-m.Padding, m.Size-m.Padding)
}

// FrameBox is the outer edge of the screenshot frame.
func (m Metrics) FrameBox() image.Rectangle {
	return Inclusive(m.FrameMargin, m.FrameMargin, m.Size-m.FrameMargin, m.Size-m.FrameMargin)
}

// Center is the glyph origin.
func (m Metrics) Center() image.Point {
	return image.Pt(m.Size/2, m.Size/2)
}

// Handles returns the boxes of the left and right scissor handles.
func (m Metrics) Handles() (left, right image.Rectangle) {
	c := m.Center()
	left = CircleBox(image.Pt(c.X-m.HandleOffset, c.Y), m.HandleRadius)
	right = CircleBox(image.Pt(c.X+m.HandleOffset, c.Y), m.HandleRadius)
	return left, right
}

// Blade is a straight glyph stroke between two pixel centres.
type Blade struct {
	From, To image.Point
}

// Blades returns the two crossing blades. Each starts just inside one
// handle's inner edge and ends past the opposite handle, above the handle row.
func (m Metrics) Blades() [2]Blade {
	c := m.Center()
	return [2]Blade{
		{
			From: image.Pt(c.X-m.HandleOffset+m.HandleRadius-m.BladeInset, c.Y),
			To:   image.Pt(c.X+m.BladeLength, c.Y-m.BladeRise),
		},
		{
			From: image.Pt(c.X+m.HandleOffset-m.HandleRadius+m.BladeInset, c.Y),
			To:   image.Pt(c.X-m.BladeLength, c.Y-m.BladeRise),
		},
	}
}
