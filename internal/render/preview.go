package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/cordshot/icongen/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Preview sheet geometry.
const (
	sheetCell    = 272
	sheetGap     = 8
	sheetLabel   = 24
	checkerPx    = 8
	previewLabel = "%dpx"
)

var (
	checkerLight = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	checkerDark  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	labelColor   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// PreviewSheet lays the icons out left to right on a checkerboard, each one
// upscaled with nearest neighbour sampling into an equal cell and labelled
// with its pixel size underneath.
func PreviewSheet(icons []*image.RGBA) *image.RGBA {
	n := len(icons)
	if n == 0 {
		n = 1
	}
	sheet := image.NewRGBA(image.Rect(0, 0, sheetCell*n, sheetCell+sheetLabel))
	fillChecker(sheet, checkerPx)

	face := basicfont.Face7x13
	baseline := sheetCell + face.Metrics().Ascent.Ceil()
	cells := layout.Grid(image.Rect(0, 0, sheetCell*n, sheetCell), n, sheetGap)
	for i, icon := range icons {
		DrawImageInRect(sheet, cells[i], icon)
		center := cells[i].Min.X + cells[i].Dx()/2
		drawLabelCentered(sheet, fmt.Sprintf(previewLabel, icon.Bounds().Dx()), center, baseline, face)
	}
	return sheet
}

// DrawImageInRect scales src into rect with nearest neighbour sampling and
// composites it over dst so hard pixel edges stay visible.
func DrawImageInRect(dst draw.Image, rect image.Rectangle, src image.Image) {
	xdraw.NearestNeighbor.Scale(dst, rect, src, src.Bounds(), xdraw.Over, nil)
}

func fillChecker(img *image.RGBA, squarePx int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += squarePx {
		for x := b.Min.X; x < b.Max.X; x += squarePx {
			c := checkerLight
			if ((x-b.Min.X)/squarePx+(y-b.Min.Y)/squarePx)%2 == 1 {
				c = checkerDark
			}
			square := image.Rect(x, y, x+squarePx, y+squarePx).Intersect(b)
			draw.Draw(img, square, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
}

func drawLabelCentered(img *image.RGBA, text string, centerX, baselineY int, face font.Face) {
	drawer := &font.Drawer{Dst: img, Src: &image.Uniform{C: labelColor}, Face: face}
	textWidth := drawer.MeasureString(text).Ceil()
	drawer.Dot = fixed.P(centerX-textWidth/2, baselineY)
	drawer.DrawString(text)
}

// pixelSetter is the part of a framebuffer device blit writes to.
type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit stretches src over the whole of dst with nearest neighbour sampling.
// Framebuffers have no alpha, so every written pixel is opaque.
func blit(dst pixelSetter, src image.Image) {
	bounds := dst.Bounds()
	srcBounds := src.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	if dstWidth == 0 || dstHeight == 0 || srcBounds.Empty() {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcBounds.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcBounds.Dx())/dstWidth
			r, g, b, _ := src.At(sx, sy).RGBA()
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
