package g3d

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

func trianglePass() *Pass {
	vs := []Vertex2D{{[2]float32{-0.5, -0.5}}, {[2]float32{0, 0.5}}, {[2]float32{0.5, -0.25}}}
	return &Pass{
		Label:       "triangle",
		Shader:      "@vertex fn vs_main() {}",
		Layout:      Vertex2D{}.Layout(),
		Vertices:    PackVertices(vs),
		VertexCount: 3,
		UniformSize: 64,
	}
}

func TestPassValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pass)
		wantErr bool
	}{
		{"valid", func(*Pass) {}, false},
		{"clear only", func(p *Pass) { *p = Pass{Label: "clear"} }, false},
		{"no vertices", func(p *Pass) { p.VertexCount = 0 }, true},
		{"short vertex data", func(p *Pass) { p.Vertices = p.Vertices[:8] }, true},
		{"index count without data", func(p *Pass) { p.IndexCount = 3 }, true},
		{"uint16 indices", func(p *Pass) {
			p.Indices, p.IndexFormat, p.IndexCount = make([]byte, 6), gputypes.IndexFormatUint16, 3
		}, false},
		{"undefined index format", func(p *Pass) {
			p.Indices, p.IndexFormat, p.IndexCount = make([]byte, 12), gputypes.IndexFormatUndefined, 3
		}, true},
		{"short index data", func(p *Pass) {
			p.Indices, p.IndexFormat, p.IndexCount = make([]byte, 6), gputypes.IndexFormatUint32, 3
		}, true},
		{"zero uniform", func(p *Pass) { p.UniformSize = 0 }, true},
		{"unaligned uniform", func(p *Pass) { p.UniformSize = 20 }, true},
		{"empty texture", func(p *Pass) { p.Texture = image.NewRGBA(image.Rect(0, 0, 0, 0)) }, true},
		{"texture", func(p *Pass) { p.Texture = image.NewRGBA(image.Rect(0, 0, 2, 2)) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := trianglePass()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPass) {
				t.Errorf("error %v does not wrap ErrInvalidPass", err)
			}
		})
	}
}

func TestIndexWidth(t *testing.T) {
	tests := []struct {
		format gputypes.IndexFormat
		want   uint64
	}{
		{gputypes.IndexFormatUint16, 2},
		{gputypes.IndexFormatUint32, 4},
		{gputypes.IndexFormatUndefined, 0},
	}
	for _, tt := range tests {
		if got := IndexWidth(tt.format); got != tt.want {
			t.Errorf("IndexWidth(%v) = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestPassPredicates(t *testing.T) {
	p := trianglePass()
	if p.ClearOnly() || p.Indexed() {
		t.Errorf("triangle pass: ClearOnly=%v Indexed=%v", p.ClearOnly(), p.Indexed())
	}
	if !(&Pass{}).ClearOnly() {
		t.Error("empty pass should be clear-only")
	}
}
