package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCheckerboard(t *testing.T) {
	img, err := Checkerboard(8, 4, 2, white, black)
	if err != nil {
		t.Fatalf("Checkerboard() error = %v", err)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, white},
		{1, 1, white},
		{2, 0, black},
		{0, 2, black},
		{2, 2, white},
		{7, 3, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("texel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSizeErrors(t *testing.T) {
	if _, err := Empty(0, 10); !errors.Is(err, ErrSize) {
		t.Errorf("Empty(0, 10) error = %v, want ErrSize", err)
	}
	if _, err := Empty(MaxSize+1, 1); !errors.Is(err, ErrSize) {
		t.Errorf("Empty(MaxSize+1, 1) error = %v, want ErrSize", err)
	}
	if _, err := Checkerboard(4, 4, 0, white, black); !errors.Is(err, ErrSize) {
		t.Errorf("Checkerboard cell 0 error = %v, want ErrSize", err)
	}
	if _, err := Resize(image.NewRGBA(image.Rect(0, 0, 2, 2)), -1, 4); !errors.Is(err, ErrSize) {
		t.Errorf("Resize(-1, 4) error = %v, want ErrSize", err)
	}
}

func TestEmpty(t *testing.T) {
	img, err := Empty(200, 200)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("Empty texture has non-zero texels")
		}
	}
}

func TestDecodeFormats(t *testing.T) {
	src, err := Checkerboard(4, 4, 1, white, black)
	if err != nil {
		t.Fatal(err)
	}
	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{
		"png": encodePNG(t, src),
		"bmp": bmpBuf.Bytes(),
	} {
		t.Run(name, func(t *testing.T) {
			img, err := Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(img.Pix, src.Pix) {
				t.Error("decoded texels differ from the source")
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("error = %v, want image.ErrFormat", err)
	}
}

func TestLoad(t *testing.T) {
	src, _ := Checkerboard(2, 2, 1, white, black)
	fsys := fstest.MapFS{"assets/check.png": {Data: encodePNG(t, src)}}

	img, err := Load(fsys, "assets/check.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.RGBAAt(1, 0) != black {
		t.Errorf("texel (1, 0) = %v, want black", img.RGBAAt(1, 0))
	}
	if _, err := Load(fsys, "assets/missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	if ToRGBA(rgba) != rgba {
		t.Error("ToRGBA copied an RGBA image with zero origin")
	}

	gray := image.NewGray(image.Rect(5, 5, 8, 7))
	gray.Pix[0] = 200
	got := ToRGBA(gray)
	if got.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want origin-based 3x2", got.Bounds())
	}
	if c := got.RGBAAt(0, 0); c != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("texel (0, 0) = %v", c)
	}
}

func TestResizeUniform(t *testing.T) {
	want := color.RGBA{10, 20, 30, 255}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4*4; i++ {
		img.SetRGBA(i%4, i/4, want)
	}

	got, err := Resize(img, 9, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Dx() != 9 || got.Bounds().Dy() != 5 {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	c := got.RGBAAt(4, 2)
	for i, pair := range [][2]uint8{{c.R, want.R}, {c.G, want.G}, {c.B, want.B}, {c.A, want.A}} {
		if d := int(pair[0]) - int(pair[1]); d < -1 || d > 1 {
			t.Errorf("center texel channel %d = %d, want %d", i, pair[0], pair[1])
		}
	}
}
