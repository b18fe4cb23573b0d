package g3d

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []MeshVertex
	Indices  []uint32
}

// Validate checks that the mesh has vertices, that the index count is a
// multiple of three, and that every index is in range.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return ErrEmptyMesh
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(m.Indices))
	}
	n := uint32(len(m.Vertices)) //nolint:gosec // vertex counts fit uint32
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at position %d, %d vertices", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Bounds returns the axis-aligned bounding box of the vertex positions.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v.Position[k])
			hi[k] = max(hi[k], v.Position[k])
		}
	}
	return lo, hi
}

// FitMatrix returns a model matrix that centers the mesh at the origin
// and scales its largest extent to size.
func (m *Mesh) FitMatrix(size float32) mgl32.Mat4 {
	lo, hi := m.Bounds()
	ext := hi.Sub(lo)
	largest := max(ext[0], ext[1], ext[2])
	if largest == 0 {
		return mgl32.Ident4()
	}
	s := size / largest
	c := lo.Add(hi).Mul(0.5)
	return mgl32.Scale3D(s, s, s).Mul4(mgl32.Translate3D(-c[0], -c[1], -c[2]))
}

// ComputeNormals replaces every vertex normal with the area-weighted
// average of the faces sharing it. Vertices referenced by no face, or
// only by degenerate faces, get a zero normal.
func (m *Mesh) ComputeNormals() {
	acc := make([]mgl32.Vec3, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		p0 := mgl32.Vec3(m.Vertices[i0].Position)
		p1 := mgl32.Vec3(m.Vertices[i1].Position)
		p2 := mgl32.Vec3(m.Vertices[i2].Position)
		// Unnormalized cross product length is twice the face area.
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = Normalize(acc[i])
	}
}

// IndexFormat returns Uint16 when every index fits in 16 bits.
func (m *Mesh) IndexFormat() gputypes.IndexFormat {
	if len(m.Vertices) <= math.MaxUint16+1 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// IndexBytes encodes the index list in the width chosen by IndexFormat.
// The result is padded to a multiple of four bytes, as buffer writes
// require.
func (m *Mesh) IndexBytes() []byte {
	if m.IndexFormat() == gputypes.IndexFormatUint32 {
		b := make([]byte, 0, len(m.Indices)*4)
		for _, idx := range m.Indices {
			b = binary.LittleEndian.AppendUint32(b, idx)
		}
		return b
	}
	b := make([]byte, 0, len(m.Indices)*2+2)
	for _, idx := range m.Indices {
		b = binary.LittleEndian.AppendUint16(b, uint16(idx)) //nolint:gosec // checked by IndexFormat
	}
	if len(b)%4 != 0 {
		b = append(b, 0, 0)
	}
	return b
}

// VertexBytes encodes the vertices.
func (m *Mesh) VertexBytes() []byte {
	return PackVertices(m.Vertices)
}
