package g3d

import "github.com/gogpu/gputypes"

// Vertex is implemented by the vertex formats in this package. Each
// format knows how to serialize itself and the buffer layout the
// matching shader declares.
type Vertex interface {
	// AppendBytes appends the little-endian encoding of the vertex to b.
	AppendBytes(b []byte) []byte
	// Layout describes the vertex buffer: stride and attribute locations.
	Layout() gputypes.VertexBufferLayout
}

// Vertex2D is a bare 2D position.
//
//	@location(0) position: vec2<f32>
type Vertex2D struct {
	Position [2]float32
}

// Vertex2DStride is the size in bytes of an encoded Vertex2D.
const Vertex2DStride = 8

func (v Vertex2D) AppendBytes(b []byte) []byte {
	return AppendFloat32s(b, v.Position[:]...)
}

func (Vertex2D) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: Vertex2DStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
		},
	}
}

// ColorVertex is a 2D position with an RGB color interpolated across the
// triangle.
//
//	@location(0) position: vec2<f32>
//	@location(1) color: vec3<f32>
type ColorVertex struct {
	Position [2]float32
	Color    [3]float32
}

// ColorVertexStride is the size in bytes of an encoded ColorVertex.
const ColorVertexStride = 20

func (v ColorVertex) AppendBytes(b []byte) []byte {
	b = AppendFloat32s(b, v.Position[:]...)
	return AppendFloat32s(b, v.Color[:]...)
}

func (ColorVertex) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: ColorVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1}, // color
		},
	}
}

// TexVertex extends ColorVertex with a texture coordinate.
//
//	@location(0) position: vec2<f32>
//	@location(1) color: vec3<f32>
//	@location(2) tex_coords: vec2<f32>
type TexVertex struct {
	Position  [2]float32
	Color     [3]float32
	TexCoords [2]float32
}

// TexVertexStride is the size in bytes of an encoded TexVertex.
const TexVertexStride = 28

func (v TexVertex) AppendBytes(b []byte) []byte {
	b = AppendFloat32s(b, v.Position[:]...)
	b = AppendFloat32s(b, v.Color[:]...)
	return AppendFloat32s(b, v.TexCoords[:]...)
}

func (TexVertex) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: TexVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1},  // color
			{Format: gputypes.VertexFormatFloat32x2, Offset: 20, ShaderLocation: 2}, // tex_coords
		},
	}
}

// MeshVertex is a 3D mesh vertex.
//
//	@location(0) position: vec3<f32>
//	@location(1) normal: vec3<f32>
//	@location(2) tex_coords: vec2<f32>
type MeshVertex struct {
	Position  [3]float32
	Normal    [3]float32
	TexCoords [2]float32
}

// MeshVertexStride is the size in bytes of an encoded MeshVertex.
const MeshVertexStride = 32

func (v MeshVertex) AppendBytes(b []byte) []byte {
	b = AppendFloat32s(b, v.Position[:]...)
	b = AppendFloat32s(b, v.Normal[:]...)
	return AppendFloat32s(b, v.TexCoords[:]...)
}

func (MeshVertex) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: MeshVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2}, // tex_coords
		},
	}
}

// PackVertices encodes vs back to back.
func PackVertices[V Vertex](vs []V) []byte {
	if len(vs) == 0 {
		return nil
	}
	var zero V
	stride := int(zero.Layout().ArrayStride) //nolint:gosec // strides are small constants
	b := make([]byte, 0, len(vs)*stride)
	for _, v := range vs {
		b = v.AppendBytes(b)
	}
	return b
}
