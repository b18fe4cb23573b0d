package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d"
)

// DefaultTeapotDetail is the number of samples per Bezier segment used
// when Teapot is called with a non-positive detail.
const DefaultTeapotDetail = 8

// TeapotHeight is the height of the teapot from its base to the lid knob,
// in the units of the tables below. The base sits at y = 0.
const TeapotHeight = 3.15

// Revolved surfaces, as (radius, height) control points traced from the
// top of each part downward. The classic Newell proportions.
var teapotProfiles = []curve{
	// lid: knob, then the shoulder down to the rim
	{
		{{0, 3.15}, {0.8, 3.15}, {0, 2.85}, {0.2, 2.7}},
		{{0.2, 2.7}, {0.4, 2.55}, {1.3, 2.55}, {1.3, 2.4}},
	},
	// rim
	{
		{{1.4, 2.4}, {1.3375, 2.53125}, {1.4375, 2.53125}, {1.5, 2.4}},
	},
	// body
	{
		{{1.5, 2.4}, {1.75, 1.875}, {2, 1.35}, {2, 0.9}},
		{{2, 0.9}, {2, 0.45}, {1.5, 0.225}, {1.5, 0.15}},
	},
	// bottom, outer edge to center
	{
		{{1.5, 0.15}, {1.5, 0.075}, {1.425, 0}, {0, 0}},
	},
}

// Swept tubes, as centerlines in the XY plane plus start and end radius.
var teapotTubes = []struct {
	center curve
	r0, r1 float32
}{
	// handle, from its upper joint around to the lower one
	{
		center: curve{
			{{-1.5, 2.1}, {-2.3, 2.15}, {-2.75, 2.05}, {-2.72, 1.6}},
			{{-2.72, 1.6}, {-2.68, 1.1}, {-2.4, 0.85}, {-1.9, 0.6}},
		},
		r0: 0.14, r1: 0.14,
	},
	// spout, tapering toward the tip
	{
		center: curve{
			{{1.75, 0.95}, {2.45, 1.05}, {2.3, 1.8}, {2.7, 2.25}},
			{{2.7, 2.25}, {2.85, 2.42}, {3, 2.45}, {3.25, 2.4}},
		},
		r0: 0.42, r1: 0.16,
	},
}

//go:generate go test -run TestTeapotTable -update

// teapotVertexFloats is the number of float32 values per row of
// teapotVertexData.
const teapotVertexFloats = 8

// TeapotTable returns the precomputed teapot: Teapot(DefaultTeapotDetail)
// stored as a static table. Every call returns a new mesh.
func TeapotTable() *g3d.Mesh {
	m := &g3d.Mesh{
		Vertices: make([]g3d.MeshVertex, len(teapotVertexData)/teapotVertexFloats),
		Indices:  make([]uint32, len(teapotIndexData)),
	}
	for i := range m.Vertices {
		row := teapotVertexData[i*teapotVertexFloats:]
		m.Vertices[i] = g3d.MeshVertex{
			Position:  [3]float32{row[0], row[1], row[2]},
			Normal:    [3]float32{row[3], row[4], row[5]},
			TexCoords: [2]float32{row[6], row[7]},
		}
	}
	for i, idx := range teapotIndexData {
		m.Indices[i] = uint32(idx)
	}
	return m
}

// Teapot tessellates the teapot tables into an indexed mesh with unit
// normals. detail is the number of samples per Bezier segment; revolved
// parts use 4*detail slices around the vertical axis and tubes 2*detail.
// The base is centered on the origin at y = 0 and the spout points
// along +X.
func Teapot(detail int) *g3d.Mesh {
	if detail <= 0 {
		detail = DefaultTeapotDetail
	}
	m := &g3d.Mesh{}
	for _, p := range teapotProfiles {
		revolve(m, p, detail, 4*detail)
	}
	for _, tube := range teapotTubes {
		sweep(m, tube.center, tube.r0, tube.r1, detail, 2*detail)
	}
	return m
}

// revolve appends the surface of revolution of profile around the Y axis.
func revolve(m *g3d.Mesh, profile curve, steps, slices int) {
	base := uint32(len(m.Vertices)) //nolint:gosec // teapot vertex counts are small
	rows := profile.samples(steps)
	for k := 0; k < rows; k++ {
		pt, d := profile.sample(k, steps)
		// The outward normal of a profile traced downward is (-dh, dr).
		n2 := mgl32.Vec2{-d[1], d[0]}
		if n2.Len() == 0 {
			n2 = mgl32.Vec2{0, 1}
		}
		n2 = n2.Normalize()
		for c := 0; c <= slices; c++ {
			sin, cos := sincos(c, slices)
			m.Vertices = append(m.Vertices, g3d.MeshVertex{
				Position:  [3]float32{pt[0] * cos, pt[1], pt[0] * sin},
				Normal:    [3]float32{n2[0] * cos, n2[1], n2[0] * sin},
				TexCoords: [2]float32{float32(c) / float32(slices), float32(k) / float32(rows-1)},
			})
		}
	}
	gridIndices(m, base, rows, slices+1)
}

// sweep appends a tube of linearly varying radius around a planar
// centerline. The ring frame is the in-plane normal and +Z.
func sweep(m *g3d.Mesh, center curve, r0, r1 float32, steps, ring int) {
	base := uint32(len(m.Vertices)) //nolint:gosec // teapot vertex counts are small
	rows := center.samples(steps)
	for k := 0; k < rows; k++ {
		pt, d := center.sample(k, steps)
		t := mgl32.Vec2{d[0], d[1]}.Normalize()
		n := mgl32.Vec3{-t[1], t[0], 0}
		b := mgl32.Vec3{0, 0, 1}
		s := float32(k) / float32(rows-1)
		r := r0 + (r1-r0)*s
		for c := 0; c <= ring; c++ {
			sin, cos := sincos(c, ring)
			dir := n.Mul(cos).Add(b.Mul(sin))
			m.Vertices = append(m.Vertices, g3d.MeshVertex{
				Position:  [3]float32{pt[0] + r*dir[0], pt[1] + r*dir[1], r * dir[2]},
				Normal:    dir,
				TexCoords: [2]float32{float32(c) / float32(ring), s},
			})
		}
	}
	gridIndices(m, base, rows, ring+1)
}

// gridIndices triangulates a rows x cols vertex grid starting at base.
func gridIndices(m *g3d.Mesh, base uint32, rows, cols int) {
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			a := base + uint32(r*cols+c) //nolint:gosec // bounded by the grid
			b := a + 1
			below := a + uint32(cols) //nolint:gosec // bounded by the grid
			m.Indices = append(m.Indices, a, below, b, b, below, below+1)
		}
	}
}

// sincos returns the sine and cosine of slice c of n around a circle.
// The seam column c == n repeats c == 0 exactly.
func sincos(c, n int) (sin, cos float32) {
	if c == n {
		c = 0
	}
	s, co := math.Sincos(2 * math.Pi * float64(c) / float64(n))
	return float32(s), float32(co)
}
