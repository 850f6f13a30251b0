package render

import (
	"image"
	"image/color"

	"github.com/cordshot/icongen/internal/render/layout"
)

// Drawer is an abstraction the renderer provides to passes to draw primitives
// without exposing the rasterizer. Boxes are half-open pixel rectangles.
type Drawer interface {
	// Size returns the canvas size (in pixels) that passes draw into.
	Size() (width int, height int)

	FillRoundedRect(rect image.Rectangle, radius int, c color.Color)

	// StrokeRoundedRect and StrokeEllipse grow the stroke inward from rect.
	StrokeRoundedRect(rect image.Rectangle, radius, width int, c color.Color)
	StrokeEllipse(rect image.Rectangle, width int, c color.Color)

	// Line strokes between two pixel centres with flat ends.
	Line(from, to image.Point, width int, c color.Color)
}

// Pass draws one foreground layer of the icon.
type Pass struct {
	Name string
	Draw func(d Drawer, m layout.Metrics)
}

// ForegroundPasses are drawn in order over the masked background.
var ForegroundPasses = []Pass{
	{Name: "frame", Draw: DrawFrame},
	{Name: "crop marks", Draw: DrawCropMarks},
	{Name: "glyph", Draw: DrawScissors},
}

// DrawFrame outlines the screenshot viewport.
func DrawFrame(d Drawer, m layout.Metrics) {
	d.StrokeRoundedRect(m.FrameBox(), m.FrameRadius, m.FrameWidth, FrameColor)
}

// DrawCropMarks draws an L-shaped mark inside each corner of the frame.
func DrawCropMarks(d Drawer, m layout.Metrics) {
	for _, corner := range layout.Corners(m.FrameBox(), m.MarkOffset) {
		horizontal, vertical := layout.Arms(corner, m.MarkLength, m.MarkWidth)
		d.FillRoundedRect(horizontal, m.MarkWidth/2, MarkColor)
		d.FillRoundedRect(vertical, m.MarkWidth/2, MarkColor)
	}
}

// DrawScissors draws two ring handles and the two crossing blades.
func DrawScissors(d Drawer, m layout.Metrics) {
	left, right := m.Handles()
	d.StrokeEllipse(left, m.LineWidth, GlyphColor)
	d.StrokeEllipse(right, m.LineWidth, GlyphColor)
	for _, blade := range m.Blades() {
		d.Line(blade.From, blade.To, m.LineWidth, GlyphColor)
	}
}
