package pack

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// MaxSize is the largest edge an ICO directory entry can describe.
const MaxSize = 256

// DefaultSizes are rendered in this order; the first one is the primary
// entry of the container.
var DefaultSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Raster is one rendered size.
type Raster struct {
	Size  int
	Image *image.RGBA
}

// RenderFunc draws the icon at size x size.
type RenderFunc func(size int) (*image.RGBA, error)

// Validate rejects size lists the container cannot hold.
func Validate(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("size list is empty")
	}
	seen := make(map[int]bool, len(sizes))
	for _, size := range sizes {
		if size < 1 || size > MaxSize {
			return fmt.Errorf("size %d out of range 1..%d", size, MaxSize)
		}
		if seen[size] {
			return fmt.Errorf("size %d listed twice", size)
		}
		seen[size] = true
	}
	return nil
}

// Sweep renders every size in list order.
func Sweep(sizes []int, render RenderFunc) ([]Raster, error) {
	if err := Validate(sizes); err != nil {
		return nil, err
	}
	rasters := make([]Raster, 0, len(sizes))
	for _, size := range sizes {
		r, err := RenderOne(size, render)
		if err != nil {
			return nil, err
		}
		rasters = append(rasters, r)
	}
	return rasters, nil
}

// RenderOne renders a single size and checks the result is size x size.
func RenderOne(size int, render RenderFunc) (Raster, error) {
	img, err := render(size)
	if err != nil {
		return Raster{}, fmt.Errorf("render %dpx: %w", size, err)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		return Raster{}, fmt.Errorf("render %dpx: got %dx%d canvas", size, b.Dx(), b.Dy())
	}
	return Raster{Size: size, Image: img}, nil
}

// Find returns the raster of the given size.
func Find(rasters []Raster, size int) (Raster, bool) {
	for _, r := range rasters {
		if r.Size == size {
			return r, true
		}
	}
	return Raster{}, false
}

// Images returns the rasters' images in order.
func Images(rasters []Raster) []*image.RGBA {
	images := make([]*image.RGBA, len(rasters))
	for i, r := range rasters {
		images[i] = r.Image
	}
	return images
}

// WritePNG writes img to path as a PNG, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// WriteICO writes a multi-resolution container with one entry per raster,
// in the given order.
func WriteICO(path string, rasters []Raster) error {
	if len(rasters) == 0 {
		return fmt.Errorf("write %s: no rasters", path)
	}
	images := make([]image.Image, len(rasters))
	for i, r := range rasters {
		images[i] = r.Image
	}
	return writeFile(path, func(w io.Writer) error {
		return ico.EncodeAll(w, images)
	})
}

// Entry is the size of one image embedded in a container.
type Entry struct {
	Width, Height int
}

// Inspect decodes a container and lists its entries in directory order.
func Inspect(r io.Reader) ([]Entry, error) {
	images, err := ico.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode ico: %w", err)
	}
	entries := make([]Entry, len(images))
	for i, img := range images {
		b := img.Bounds()
		entries[i] = Entry{Width: b.Dx(), Height: b.Dy()}
	}
	return entries, nil
}

// InspectFile is Inspect on a file path.
func InspectFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Inspect(f)
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
