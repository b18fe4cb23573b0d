// Package caption draws short text labels onto rendered frames using
// the Go Regular font.
//
// Text is measured with HarfBuzz shaping (go-text/typesetting) and drawn
// with the x/image OpenType rasterizer.
package caption

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	gtlang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"

	"github.com/gogpu/g3d"
)

// DefaultSize is the caption size in pixels used by Annotate.
const DefaultSize = 16

// margin is the distance in pixels between an annotation and the image
// edges.
const margin = 8

var (
	// ErrSize is returned for non-positive text sizes.
	ErrSize = errors.New("caption: invalid size")

	// ErrFont is returned when the embedded font cannot be parsed.
	ErrFont = errors.New("caption: font")
)

// fonts holds the embedded font parsed for each library.
var fonts struct {
	once   sync.Once
	shaper *gtfont.Font
	raster *opentype.Font
	err    error
}

func loadFonts() error {
	fonts.once.Do(func() {
		face, err := gtfont.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			fonts.err = fmt.Errorf("%w: shaping: %w", ErrFont, err)
			return
		}
		raster, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fonts.err = fmt.Errorf("%w: raster: %w", ErrFont, err)
			return
		}
		fonts.shaper, fonts.raster = face.Font, raster
	})
	return fonts.err
}

// shapingLanguage is the language captions are shaped for.
var shapingLanguage = gtlang.NewLanguage(language.English.String())

// Measure returns the advance width in pixels of text shaped at size.
func Measure(text string, size float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrSize, size)
	}
	if text == "" {
		return 0, nil
	}
	if err := loadFonts(); err != nil {
		return 0, err
	}

	runes := []rune(text)
	var hb shaping.HarfbuzzShaper
	out := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(fonts.shaper),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  shapingLanguage,
	})

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64, nil
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) gtlang.Script {
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			return gtlang.LookupScript(r)
		}
	}
	return gtlang.Latin
}

// Draw draws text in color c with its baseline starting at (x, y).
func Draw(dst draw.Image, text string, size float64, x, y int, c color.Color) error {
	if size <= 0 {
		return fmt.Errorf("%w: %v", ErrSize, size)
	}
	if text == "" {
		return nil
	}
	if err := loadFonts(); err != nil {
		return err
	}
	face, err := opentype.NewFace(fonts.raster, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFont, err)
	}
	defer func() {
		_ = face.Close()
	}()

	d := &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// Annotate draws text in the bottom-left corner of img on a dark band so
// it stays readable over any frame. Text wider than the image is drawn
// clipped.
func Annotate(img draw.Image, text string) error {
	if text == "" {
		return nil
	}
	w, err := Measure(text, DefaultSize)
	if err != nil {
		return err
	}
	b := img.Bounds()
	band := image.Rect(b.Min.X, b.Max.Y-DefaultSize-2*margin, b.Min.X+int(w)+2*margin, b.Max.Y).Intersect(b)
	draw.Draw(img, band, image.NewUniform(color.RGBA{A: 0xc0}), image.Point{}, draw.Over)

	g3d.Logger().Debug("caption: annotate", "text", text, "width", w)
	return Draw(img, text, DefaultSize, b.Min.X+margin, b.Max.Y-margin-DefaultSize/4, color.White)
}
