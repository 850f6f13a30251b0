package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/cordshot/icongen/internal/render/layout"
)

var iconSizes = []int{16, 24, 32, 48, 64, 128, 256}

// TestIconSizes checks dimensions, the transparent outside and the opaque inside at every size.
func TestIconSizes(t *testing.T) {
	for _, size := range iconSizes {
		img, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
			t.Fatalf("Icon(%d) bounds = %v", size, got)
		}
		if a := img.RGBAAt(0, 0).A; a != 0 {
			t.Errorf("Icon(%d) corner alpha = %d, want 0", size, a)
		}
		if a := img.RGBAAt(size/2, size/2).A; a < 0xF0 {
			t.Errorf("Icon(%d) centre alpha = %d, want opaque", size, a)
		}
	}
}

// TestIconDeterministic checks two renders of the same size are byte-identical.
func TestIconDeterministic(t *testing.T) {
	for _, size := range iconSizes {
		first, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		second, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		if !bytes.Equal(first.Pix, second.Pix) {
			t.Errorf("Icon(%d) differs between renders", size)
		}
	}
}

// TestIconRejectsNonPositive checks invalid sizes error instead of panicking.
func TestIconRejectsNonPositive(t *testing.T) {
	for _, size := range []int{0, -16} {
		if _, err := Icon(size); err == nil {
			t.Errorf("Icon(%d) returned no error", size)
		}
	}
}

// TestIconUncalibratedSizes checks sizes outside the list still render.
func TestIconUncalibratedSizes(t *testing.T) {
	for _, size := range []int{1, 2, 5, 100, 300} {
		img, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Errorf("Icon(%d) bounds = %v", size, img.Bounds())
		}
	}
}

// TestIconLayers samples the frame, the bare background and the glyph at 256px.
func TestIconLayers(t *testing.T) {
	img, err := Icon(256)
	if err != nil {
		t.Fatalf("Icon(256) failed: %v", err)
	}

	frame := img.RGBAAt(58, 128)
	if frame.R < 0xE8 || frame.G < 0xE8 || frame.B < 0xE8 || frame.A != 0xFF {
		t.Errorf("frame pixel = %v, want near white", frame)
	}

	// Inside the frame, between the top crop marks and above the glyph.
	if got, want := img.RGBAAt(128, 70), GradientColor(70, 256); got != want {
		t.Errorf("background pixel = %v, want %v", got, want)
	}

	// Left handle ring: box 88..124 with a 6px stroke.
	ring := img.RGBAAt(90, 128)
	if ring.R < 0xF0 || ring.G < 0xF0 || ring.B < 0xF0 {
		t.Errorf("handle ring pixel = %v, want white", ring)
	}
	if got, want := img.RGBAAt(106, 128), GradientColor(128, 256); got != want {
		t.Errorf("handle hole pixel = %v, want background %v", got, want)
	}
}

// TestGradientEndpoints checks the background pass against both endpoint colours.
func TestGradientEndpoints(t *testing.T) {
	for _, size := range iconSizes {
		m := layout.Measure(size)
		img := Gradient(m)
		x := m.Box().Min.X

		if got := img.RGBAAt(x, 0); got != GradientTop {
			t.Errorf("size %d: row 0 = %v, want %v", size, got, GradientTop)
		}
		last := img.RGBAAt(x, size-1)
		channels := [][2]uint8{
			{last.R, GradientBottom.R},
			{last.G, GradientBottom.G},
			{last.B, GradientBottom.B},
		}
		tops := []uint8{GradientTop.R, GradientTop.G, GradientTop.B}
		for i, ch := range channels {
			tolerance := absDiff(tops[i], ch[1])/size + 1
			if absDiff(ch[0], ch[1]) > tolerance {
				t.Errorf("size %d: last row channel %d = %d, want %d +/- %d", size, i, ch[0], ch[1], tolerance)
			}
		}
		if a := last.A; a != 0xFF {
			t.Errorf("size %d: last row alpha = %d, want 255", size, a)
		}
	}
}

// TestGradientMonotonic checks each channel only moves toward the bottom colour.
func TestGradientMonotonic(t *testing.T) {
	for _, size := range iconSizes {
		m := layout.Measure(size)
		img := Gradient(m)
		x := m.Box().Min.X
		prev := img.RGBAAt(x, 0)
		for y := 1; y < size; y++ {
			cur := img.RGBAAt(x, y)
			if cur.R < prev.R || cur.G > prev.G || cur.B > prev.B {
				t.Fatalf("size %d: row %d = %v after %v is not monotonic", size, y, cur, prev)
			}
			prev = cur
		}
	}
}

// TestGradientSpan checks columns outside the padded span stay untouched.
func TestGradientSpan(t *testing.T) {
	m := layout.Measure(256)
	img := Gradient(m)
	if a := img.RGBAAt(m.Padding-1, 128).A; a != 0 {
		t.Errorf("left of span alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(m.Size-m.Padding, 128).A; a != 0xFF {
		t.Errorf("last span column alpha = %d, want 255", a)
	}
	if a := img.RGBAAt(m.Size-m.Padding+1, 128).A; a != 0 {
		t.Errorf("right of span alpha = %d, want 0", a)
	}
}

// TestRoundedMask checks the mask on its own, before it is applied.
func TestRoundedMask(t *testing.T) {
	m := layout.Measure(256)
	mask := RoundedMask(m)
	tests := []struct {
		name string
		p    image.Point
		want uint8
	}{
		{"canvas corner", image.Pt(0, 0), 0},
		{"box corner outside arc", image.Pt(m.Padding, m.Padding), 0},
		{"top edge middle", image.Pt(128, m.Padding+1), 0xFF},
		{"centre", image.Pt(128, 128), 0xFF},
		{"below box", image.Pt(128, 250), 0},
	}
	for _, tt := range tests {
		if got := mask.AlphaAt(tt.p.X, tt.p.Y).A; got != tt.want {
			t.Errorf("%s %v: alpha = %d, want %d", tt.name, tt.p, got, tt.want)
		}
	}
}

// TestApplyMask checks the mask replaces transparency whatever the source holds.
func TestApplyMask(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		src.SetRGBA(x, 0, color.RGBA{R: 0xFF, A: 0xFF})
	}
	mask := image.NewAlpha(src.Bounds())
	mask.SetAlpha(1, 0, color.Alpha{A: 0xFF})
	mask.SetAlpha(2, 0, color.Alpha{A: 0x80})

	out := ApplyMask(src, mask)
	if got := out.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("unmasked pixel = %v, want transparent", got)
	}
	if got := out.RGBAAt(1, 0); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("masked pixel = %v, want opaque red", got)
	}
	if got := out.RGBAAt(2, 0); got.A != 0x80 {
		t.Errorf("half masked alpha = %d, want 128", got.A)
	}
	if src.RGBAAt(0, 0).A != 0xFF {
		t.Error("ApplyMask modified its source")
	}
}

type drawCall struct {
	op       string
	rect     image.Rectangle
	radius   int
	width    int
	from, to image.Point
}

type recordingDrawer struct {
	calls []drawCall
}

func (r *recordingDrawer) Size() (int, int) { return 256, 256 }

func (r *recordingDrawer) FillRoundedRect(rect image.Rectangle, radius int, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "fill", rect: rect, radius: radius})
}

func (r *recordingDrawer) StrokeRoundedRect(rect image.Rectangle, radius, width int, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "stroke", rect: rect, radius: radius, width: width})
}

func (r *recordingDrawer) StrokeEllipse(rect image.Rectangle, width int, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "ellipse", rect: rect, width: width})
}

func (r *recordingDrawer) Line(from, to image.Point, width int, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "line", from: from, to: to, width: width})
}

// TestForegroundPassOrder checks the frame, marks and glyph are drawn in that order.
func TestForegroundPassOrder(t *testing.T) {
	rec := &recordingDrawer{}
	m := layout.Measure(256)
	for _, pass := range ForegroundPasses {
		pass.Draw(rec, m)
	}
	var ops []string
	for _, c := range rec.calls {
		ops = append(ops, c.op)
	}
	want := []string{"stroke", "fill", "fill", "fill", "fill", "fill", "fill", "fill", "fill", "ellipse", "ellipse", "line", "line"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}
	if frame := rec.calls[0]; frame.rect != m.FrameBox() || frame.width != 8 || frame.radius != 15 {
		t.Errorf("frame call = %+v", frame)
	}
}

// TestCropMarksPointInward checks every L opens toward the frame interior.
func TestCropMarksPointInward(t *testing.T) {
	rec := &recordingDrawer{}
	m := layout.Measure(256)
	DrawCropMarks(rec, m)
	if len(rec.calls) != 8 {
		t.Fatalf("got %d calls, want 8", len(rec.calls))
	}
	center := m.Center()
	for i := 0; i < 8; i += 2 {
		horizontal, vertical := rec.calls[i].rect, rec.calls[i+1].rect
		if horizontal.Dx() <= horizontal.Dy() || vertical.Dy() <= vertical.Dx() {
			t.Errorf("mark %d arms have wrong orientation: %v %v", i/2, horizontal, vertical)
		}
		if rec.calls[i].radius != m.MarkWidth/2 {
			t.Errorf("mark %d radius = %d, want %d", i/2, rec.calls[i].radius, m.MarkWidth/2)
		}
		// The free end of each arm is closer to the centre than its anchor end.
		hMid := (horizontal.Min.X + horizontal.Max.X) / 2
		anchorX := horizontal.Min.X
		if horizontal.Min.X > center.X {
			anchorX = horizontal.Max.X
		}
		if absInt(hMid-center.X) >= absInt(anchorX-center.X) {
			t.Errorf("mark %d horizontal arm %v points outward", i/2, horizontal)
		}
		vMid := (vertical.Min.Y + vertical.Max.Y) / 2
		anchorY := vertical.Min.Y
		if vertical.Min.Y > center.Y {
			anchorY = vertical.Max.Y
		}
		if absInt(vMid-center.Y) >= absInt(anchorY-center.Y) {
			t.Errorf("mark %d vertical arm %v points outward", i/2, vertical)
		}
	}
}

// TestPreviewSheet checks the contact sheet layout.
func TestPreviewSheet(t *testing.T) {
	var icons []*image.RGBA
	for _, size := range []int{16, 256} {
		img, err := Icon(size)
		if err != nil {
			t.Fatalf("Icon(%d) failed: %v", size, err)
		}
		icons = append(icons, img)
	}
	sheet := PreviewSheet(icons)
	if got, want := sheet.Bounds(), image.Rect(0, 0, 2*sheetCell, sheetCell+sheetLabel); got != want {
		t.Fatalf("sheet bounds = %v, want %v", got, want)
	}
	// Cell centres show the icon, which is never checker grey.
	for i := range icons {
		p := sheet.RGBAAt(i*sheetCell+sheetCell/2, sheetCell/2)
		if p == checkerLight || p == checkerDark {
			t.Errorf("cell %d centre shows the checkerboard", i)
		}
	}
	// Every cell corner shows the checkerboard through the transparent icon corner.
	if p := sheet.RGBAAt(sheetGap, sheetGap); p != checkerLight && p != checkerDark {
		t.Errorf("cell corner = %v, want checkerboard", p)
	}
}

// TestBlit checks nearest neighbour stretching and forced opacity.
func TestBlit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	src.SetRGBA(1, 0, color.RGBA{B: 0x80, A: 0x80})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 2))
	blit(dst, src)
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("left half = %v, want red", got)
	}
	if got := dst.RGBAAt(3, 0); got != (color.RGBA{B: 0x80, A: 0xFF}) {
		t.Errorf("right half = %v, want opaque blue", got)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
