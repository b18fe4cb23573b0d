package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/g3d/obj"
	"github.com/gogpu/g3d/shapes"
)

func TestExportTeapot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets", "teapot.obj")
	if err := exportTeapot(path); err != nil {
		t.Fatalf("exportTeapot() error = %v", err)
	}
	m, err := obj.Load(os.DirFS(dir), "assets/teapot.obj")
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	want := shapes.TeapotTable()
	if m.TriangleCount() != want.TriangleCount() {
		t.Errorf("triangles = %d, want %d", m.TriangleCount(), want.TriangleCount())
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 0xff, A: 0xff})

	path := filepath.Join(t.TempDir(), "out", "frame.png")
	if err := savePNG(path, img); err != nil {
		t.Fatalf("savePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if r, _, _, _ := got.At(1, 2).RGBA(); r != 0xffff {
		t.Errorf("pixel (1, 2) red = %#x, want 0xffff", r)
	}
}

func TestLoadTexture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 5))
	for y := range 5 {
		for x := range 10 {
			src.SetRGBA(x, y, color.RGBA{G: 0xff, A: 0xff})
		}
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "green.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := loadTexture(path, 16)
	if err != nil {
		t.Fatalf("loadTexture() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Fatalf("bounds = %v, want 16x16", img.Bounds())
	}
	if c := img.RGBAAt(8, 8); c.G < 0xf0 || c.R > 0x10 {
		t.Errorf("center texel = %v, want green", c)
	}

	if _, err := loadTexture(filepath.Join(dir, "missing.png"), 16); err == nil {
		t.Error("loadTexture() of a missing file succeeded")
	}
}
