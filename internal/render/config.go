package render

import "image/color"

// Global render configuration for the icon palette.
var (
	// Background gradient endpoints, top row to bottom row.
	GradientTop    = color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF} // #667eea
	GradientBottom = color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 0xFF} // #764ba2

	// Foreground strokes. The frame is slightly translucent.
	FrameColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xF0}
	MarkColor  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GlyphColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
