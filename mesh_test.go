package g3d

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// quad returns a unit square in the XY plane as two triangles.
func quad() *Mesh {
	return &Mesh{
		Vertices: []MeshVertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{1, 0, 0}},
			{Position: [3]float32{1, 1, 0}},
			{Position: [3]float32{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    *Mesh
		wantErr error
	}{
		{"valid", quad(), nil},
		{"empty", &Mesh{}, ErrEmptyMesh},
		{"incomplete", &Mesh{Vertices: quad().Vertices, Indices: []uint32{0, 1}}, ErrIncompleteTriangle},
		{"out of range", &Mesh{Vertices: quad().Vertices, Indices: []uint32{0, 1, 4}}, ErrIndexOutOfRange},
		{"no indices", &Mesh{Vertices: quad().Vertices}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeshBoundsAndFit(t *testing.T) {
	m := &Mesh{Vertices: []MeshVertex{
		{Position: [3]float32{-2, 0, 1}},
		{Position: [3]float32{4, 3, -1}},
		{Position: [3]float32{0, -1, 0}},
	}}
	lo, hi := m.Bounds()
	if lo != (mgl32.Vec3{-2, -1, -1}) || hi != (mgl32.Vec3{4, 3, 1}) {
		t.Fatalf("Bounds() = %v, %v", lo, hi)
	}

	fit := m.FitMatrix(2)
	// Largest extent is 6 along X; the box maps to [-1, 1] on that axis.
	if got := ProjectPoint(fit, lo); !approx(got.X(), -1, 1e-5) {
		t.Errorf("fitted min x = %v, want -1", got.X())
	}
	if got := ProjectPoint(fit, hi); !approx(got.X(), 1, 1e-5) {
		t.Errorf("fitted max x = %v, want 1", got.X())
	}

	var empty Mesh
	if empty.FitMatrix(1) != mgl32.Ident4() {
		t.Error("FitMatrix of an empty mesh should be identity")
	}
}

func TestMeshComputeNormals(t *testing.T) {
	m := quad()
	m.Vertices = append(m.Vertices, MeshVertex{Position: [3]float32{5, 5, 5}}) // unreferenced
	m.ComputeNormals()
	for i := 0; i < 4; i++ {
		if n := mgl32.Vec3(m.Vertices[i].Normal); !n.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6) {
			t.Errorf("vertex %d normal = %v, want +Z", i, n)
		}
	}
	if n := m.Vertices[4].Normal; n != [3]float32{} {
		t.Errorf("unreferenced vertex normal = %v, want zero", n)
	}
}

func TestMeshIndexBytes(t *testing.T) {
	m := &Mesh{Vertices: quad().Vertices, Indices: []uint32{0, 1, 2}}
	if m.IndexFormat() != gputypes.IndexFormatUint16 {
		t.Fatal("small mesh should use 16-bit indices")
	}
	b := m.IndexBytes()
	if len(b) != 8 {
		t.Fatalf("len = %d, want 8 (6 bytes padded to 4)", len(b))
	}
	if got := binary.LittleEndian.Uint16(b[4:]); got != 2 {
		t.Errorf("third index = %d, want 2", got)
	}

	big := &Mesh{Vertices: make([]MeshVertex, 70000), Indices: []uint32{0, 69999, 1}}
	if big.IndexFormat() != gputypes.IndexFormatUint32 {
		t.Fatal("large mesh should use 32-bit indices")
	}
	b = big.IndexBytes()
	if len(b) != 12 || binary.LittleEndian.Uint32(b[4:]) != 69999 {
		t.Errorf("32-bit encoding wrong: len=%d", len(b))
	}
}
