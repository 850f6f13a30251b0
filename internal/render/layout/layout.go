package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inclusive converts a box given by its first and last pixel on each axis
// into the half-open image.Rectangle covering the same pixels.
func Inclusive(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rect(x0, y0, x1+1, y1+1))
}

// Corner is an anchor point with the direction its crop mark arms extend in.
type Corner struct {
	Point  image.Point
	DX, DY int
}

// Corners returns the four anchors offsetPx inside rect, in the order
// top-left, top-right, bottom-left, bottom-right.
func Corners(rect image.Rectangle, offsetPx int) [4]Corner {
	rect = Normalize(rect)
	left := rect.Min.X + offsetPx
	top := rect.Min.Y + offsetPx
	right := rect.Max.X - 1 - offsetPx
	bottom := rect.Max.Y - 1 - offsetPx
	return [4]Corner{
		{Point: image.Pt(left, top), DX: 1, DY: 1},
		{Point: image.Pt(right, top), DX: -1, DY: 1},
		{Point: image.Pt(left, bottom), DX: 1, DY: -1},
		{Point: image.Pt(right, bottom), DX: -1, DY: -1},
	}
}

// Arms returns the horizontal and vertical capsule boxes of an L-shaped mark
// at c. Each arm is lengthPx long and widthPx thick and starts centred on
// the anchor point.
func Arms(c Corner, lengthPx, widthPx int) (horizontal, vertical image.Rectangle) {
	half := widthPx / 2
	x, y := c.Point.X, c.Point.Y

	hx0, hx1 := x-half, x+lengthPx-half
	if c.DX < 0 {
		hx0, hx1 = x-lengthPx+half, x+half
	}
	vy0, vy1 := y-half, y+lengthPx-half
	if c.DY < 0 {
		vy0, vy1 = y-lengthPx+half, y+half
	}
	horizontal = Inclusive(hx0, y-half, hx1, y+half)
	vertical = Inclusive(x-half, vy0, x+half, vy1)
	return horizontal, vertical
}

// CircleBox returns the box of a circle of radiusPx around center.
func CircleBox(center image.Point, radiusPx int) image.Rectangle {
	return Inclusive(center.X-radiusPx, center.Y-radiusPx, center.X+radiusPx, center.Y+radiusPx)
}

// Grid returns n equal square cells laid out left to right in rect, each
// inset by gapPx. Cells are as large as the shorter of rect's height and
// its width divided by n.
func Grid(rect image.Rectangle, n, gapPx int) []image.Rectangle {
	rect = Normalize(rect)
	if n <= 0 {
		return nil
	}
	side := rect.Dx() / n
	if rect.Dy() < side {
		side = rect.Dy()
	}
	cells := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		x := rect.Min.X + i*side
		cells = append(cells, Inset(image.Rect(x, rect.Min.Y, x+side, rect.Min.Y+side), gapPx))
	}
	return cells
}
