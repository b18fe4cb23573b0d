package g3d

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func floatAt(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func TestVertexLayouts(t *testing.T) {
	tests := []struct {
		name    string
		v       Vertex
		stride  int
		formats []gputypes.VertexFormat
	}{
		{"Vertex2D", Vertex2D{}, Vertex2DStride, []gputypes.VertexFormat{gputypes.VertexFormatFloat32x2}},
		{"ColorVertex", ColorVertex{}, ColorVertexStride, []gputypes.VertexFormat{
			gputypes.VertexFormatFloat32x2, gputypes.VertexFormatFloat32x3,
		}},
		{"TexVertex", TexVertex{}, TexVertexStride, []gputypes.VertexFormat{
			gputypes.VertexFormatFloat32x2, gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x2,
		}},
		{"MeshVertex", MeshVertex{}, MeshVertexStride, []gputypes.VertexFormat{
			gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x2,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := tt.v.Layout()
			if int(layout.ArrayStride) != tt.stride {
				t.Errorf("stride = %d, want %d", layout.ArrayStride, tt.stride)
			}
			if got := len(tt.v.AppendBytes(nil)); got != tt.stride {
				t.Errorf("encoded size = %d, want stride %d", got, tt.stride)
			}
			if len(layout.Attributes) != len(tt.formats) {
				t.Fatalf("attributes = %d, want %d", len(layout.Attributes), len(tt.formats))
			}
			for i, a := range layout.Attributes {
				if a.Format != tt.formats[i] {
					t.Errorf("attribute %d format = %v, want %v", i, a.Format, tt.formats[i])
				}
				if int(a.ShaderLocation) != i {
					t.Errorf("attribute %d location = %d", i, a.ShaderLocation)
				}
			}
		})
	}
}

func TestPackVertices(t *testing.T) {
	vs := []TexVertex{
		{Position: [2]float32{-0.5, -0.5}, Color: [3]float32{1, 0, 0}, TexCoords: [2]float32{0, 0}},
		{Position: [2]float32{0, 0.5}, Color: [3]float32{0, 1, 0}, TexCoords: [2]float32{0.5, 1}},
	}
	b := PackVertices(vs)
	if len(b) != 2*TexVertexStride {
		t.Fatalf("len = %d, want %d", len(b), 2*TexVertexStride)
	}
	// Second vertex starts at float 7.
	want := []float32{0, 0.5, 0, 1, 0, 0.5, 1}
	for i, w := range want {
		if got := floatAt(b, 7+i); got != w {
			t.Errorf("float %d = %v, want %v", 7+i, got, w)
		}
	}
	if PackVertices[Vertex2D](nil) != nil {
		t.Error("PackVertices(nil) should return nil")
	}
}
