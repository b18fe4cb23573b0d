package obj

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/shapes"
)

const triangleOBJ = `# a single triangle
o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 2
f 1/1/1 2/2/1 3/3/1
`

func TestDecodeTriangle(t *testing.T) {
	d := NewDecoder()
	m, err := d.Decode(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(m.Vertices) != 3 || len(m.Indices) != 3 {
		t.Fatalf("got %d vertices, %d indices, want 3, 3", len(m.Vertices), len(m.Indices))
	}
	if m.Vertices[1].Position != [3]float32{1, 0, 0} {
		t.Errorf("vertex 1 position = %v", m.Vertices[1].Position)
	}
	if m.Vertices[2].TexCoords != [2]float32{0, 1} {
		t.Errorf("vertex 2 uv = %v", m.Vertices[2].TexCoords)
	}
	// Normals are normalized on read.
	if m.Vertices[0].Normal != [3]float32{0, 0, 1} {
		t.Errorf("vertex 0 normal = %v, want (0, 0, 1)", m.Vertices[0].Normal)
	}
	if len(d.Warnings) != 1 || !strings.HasPrefix(d.Warnings[0], "o:") {
		t.Errorf("Warnings = %v, want one entry for o", d.Warnings)
	}
}

func TestDecodeQuadFanAndDedup(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
f 1 3 4
`
	m, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// The quad fans into (0 1 2) (0 2 3); the second face reuses vertices.
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 2, 3}
	if len(m.Indices) != len(want) {
		t.Fatalf("indices = %v, want %v", m.Indices, want)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", m.Indices, want)
		}
	}
	if len(m.Vertices) != 4 {
		t.Errorf("vertices = %d, want 4 after deduplication", len(m.Vertices))
	}
	// No vn statements: normals are computed from the faces.
	for i, v := range m.Vertices {
		if !mgl32.Vec3(v.Normal).ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestDecodeNegativeIndices(t *testing.T) {
	src := `
v 5 5 5
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f -3//-1 -2//-1 -1//-1
`
	m, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if m.Vertices[0].Position != [3]float32{0, 0, 0} || m.Vertices[2].Position != [3]float32{0, 1, 0} {
		t.Errorf("relative indices resolved to %v .. %v", m.Vertices[0].Position, m.Vertices[2].Position)
	}
}

func TestDecodeSameCornerDifferentNormals(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vn 0 0 -1
f 1//1 2//1 3//1
f 1//2 3//2 2//2
`
	m, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(m.Vertices) != 6 {
		t.Errorf("vertices = %d, want 6: each position/normal pair is distinct", len(m.Vertices))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantErr  error
		wantLine int
	}{
		{"short vertex", "v 1 2\n", ErrSyntax, 1},
		{"bad float", "v 1 2 x\n", ErrSyntax, 1},
		{"two corner face", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrSyntax, 3},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrSyntax, 4},
		{"forward reference", "v 0 0 0\nv 1 0 0\nf 1 2 3\nv 0 1 0\n", ErrIndexRange, 3},
		{"missing normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", ErrIndexRange, 4},
		{"too many slashes", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3\n", ErrSyntax, 4},
		{"no faces", "v 0 0 0\n", ErrNoFaces, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if tt.wantLine == 0 {
				if errors.As(err, &pe) {
					t.Errorf("unexpected ParseError at line %d", pe.Line)
				}
				return
			}
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"assets/tri.obj": {Data: []byte(triangleOBJ)}}
	m, err := Load(fsys, "assets/tri.obj")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Errorf("triangles = %d, want 1", m.TriangleCount())
	}

	_, err = Load(fsys, "assets/teapot.obj")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: error = %v, want fs.ErrNotExist", err)
	}
}

func TestEncodeTeapotRoundTrip(t *testing.T) {
	want := shapes.Teapot(2)

	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got.Vertices) != len(want.Vertices) || len(got.Indices) != len(want.Indices) {
		t.Fatalf("round trip: %d/%d vertices, %d/%d indices",
			len(got.Vertices), len(want.Vertices), len(got.Indices), len(want.Indices))
	}
	// The decoder numbers vertices in order of first use, so compare
	// triangle corners rather than raw indices.
	for i := range want.Indices {
		g := got.Vertices[got.Indices[i]]
		w := want.Vertices[want.Indices[i]]
		if !mgl32.Vec3(g.Position).ApproxEqualThreshold(w.Position, 1e-6) {
			t.Fatalf("corner %d position = %v, want %v", i, g.Position, w.Position)
		}
		if !mgl32.Vec3(g.Normal).ApproxEqualThreshold(w.Normal, 1e-5) {
			t.Fatalf("corner %d normal = %v, want %v", i, g.Normal, w.Normal)
		}
	}
}

func TestEncodeInvalidMesh(t *testing.T) {
	err := Encode(&bytes.Buffer{}, &g3d.Mesh{})
	if !errors.Is(err, g3d.ErrEmptyMesh) {
		t.Errorf("Encode(empty) error = %v, want ErrEmptyMesh", err)
	}
}
