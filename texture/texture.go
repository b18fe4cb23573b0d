// Package texture decodes and generates RGBA images for upload as 2D
// textures.
//
// Decode understands PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Every result is an *image.RGBA
// with a zero origin, the layout the GPU upload path expects.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"io/fs"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/g3d"
)

// MaxSize is the largest accepted width or height, the WebGPU default
// limit for 2D textures.
const MaxSize = 8192

var (
	// ErrDecode is wrapped by errors from image decoding.
	ErrDecode = errors.New("texture: decode failed")

	// ErrSize is returned for empty or oversized dimensions.
	ErrSize = errors.New("texture: invalid size")
)

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxSize || h > MaxSize {
		return fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	return nil
}

// Decode reads an image in any registered format and converts it to RGBA.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if err := checkSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	g3d.Logger().Debug("texture: decoded", "format", format, "width", b.Dx(), "height", b.Dy())
	return ToRGBA(img), nil
}

// Load decodes the named file from fsys.
func Load(fsys fs.FS, name string) (*image.RGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", name, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// ToRGBA returns img as an *image.RGBA with its origin at (0, 0). An RGBA
// image already in that form is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Resize scales img to w by h with Catmull-Rom filtering.
func Resize(img image.Image, w, h int) (*image.RGBA, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Empty returns a w by h texture with every texel zero.
func Empty(w, h int) (*image.RGBA, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

// Checkerboard returns a w by h texture of cell-sized squares alternating
// between a and b, starting with a in the top-left corner.
func Checkerboard(w, h, cell int, a, b color.Color) (*image.RGBA, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	if cell <= 0 {
		return nil, fmt.Errorf("%w: cell %d", ErrSize, cell)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := ca
			if (x/cell+y/cell)%2 == 1 {
				c = cb
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}
