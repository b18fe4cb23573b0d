package caption

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	if w, err := Measure("", 16); err != nil || w != 0 {
		t.Errorf("Measure(\"\") = %v, %v, want 0, nil", w, err)
	}

	w16, err := Measure("Utah teapot", 16)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if w16 <= 0 {
		t.Fatalf("Measure() = %v, want positive width", w16)
	}
	w32, err := Measure("Utah teapot", 32)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w32-2*w16) > 0.02*w32+1 {
		t.Errorf("width at 32px = %v, want about twice %v", w32, w16)
	}

	longer, err := Measure("Utah teapot, frame 120", 16)
	if err != nil {
		t.Fatal(err)
	}
	if longer <= w16 {
		t.Errorf("longer text measured %v, not wider than %v", longer, w16)
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -4} {
		if _, err := Measure("x", size); !errors.Is(err, ErrSize) {
			t.Errorf("Measure(size %v) error = %v, want ErrSize", size, err)
		}
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		if err := Draw(img, "x", size, 0, 8, color.White); !errors.Is(err, ErrSize) {
			t.Errorf("Draw(size %v) error = %v, want ErrSize", size, err)
		}
	}
}

// inked counts pixels of img whose red channel is at least threshold within r.
func inked(img *image.RGBA, r image.Rectangle, threshold uint8) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).R >= threshold {
				n++
			}
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 40))
	if err := Draw(img, "g3d", 24, 10, 30, color.White); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if inked(img, img.Bounds(), 0x80) == 0 {
		t.Fatal("Draw() left the image blank")
	}
	// Nothing is drawn left of the pen or right of the measured width.
	w, err := Measure("g3d", 24)
	if err != nil {
		t.Fatal(err)
	}
	right := image.Rect(10+int(w)+4, 0, 200, 40)
	if n := inked(img, right, 1); n != 0 {
		t.Errorf("%d pixels drawn past the measured width %v", n, w)
	}
	if n := inked(img, image.Rect(0, 0, 8, 40), 1); n != 0 {
		t.Errorf("%d pixels drawn left of the pen", n)
	}
}

func TestDrawEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	if err := Draw(img, "", 16, 0, 16, color.White); err != nil {
		t.Fatal(err)
	}
	if inked(img, img.Bounds(), 1) != 0 {
		t.Error("Draw(\"\") changed the image")
	}
}

func TestAnnotate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	if err := Annotate(img, "teapot"); err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	// The band darkens the bottom-left corner; the top stays untouched.
	if c := img.RGBAAt(1, 238); c.R > 0x80 {
		t.Errorf("bottom-left pixel = %v, want darkened", c)
	}
	if c := img.RGBAAt(1, 1); c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("top-left pixel = %v, want unchanged", c)
	}
	if c := img.RGBAAt(319, 238); c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("bottom-right pixel = %v, want unchanged", c)
	}
	if err := Annotate(img, ""); err != nil {
		t.Errorf("Annotate(\"\") = %v", err)
	}
}
