package shapes

import "github.com/gogpu/g3d"

// trianglePositions are the corners of the tutorial triangle in NDC.
var trianglePositions = [3][2]float32{
	{-0.5, -0.5},
	{0, 0.5},
	{0.5, -0.25},
}

// triangleColors are red, green and blue, one per corner.
var triangleColors = [3][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// triangleTexCoords stretch a texture across the triangle.
var triangleTexCoords = [3][2]float32{
	{0, 0},
	{0.5, 1},
	{1, 0},
}

// Triangle returns the bare triangle.
func Triangle() []g3d.Vertex2D {
	vs := make([]g3d.Vertex2D, len(trianglePositions))
	for i, p := range trianglePositions {
		vs[i] = g3d.Vertex2D{Position: p}
	}
	return vs
}

// ColorTriangle returns the triangle with one primary color per corner.
func ColorTriangle() []g3d.ColorVertex {
	vs := make([]g3d.ColorVertex, len(trianglePositions))
	for i, p := range trianglePositions {
		vs[i] = g3d.ColorVertex{Position: p, Color: triangleColors[i]}
	}
	return vs
}

// TexTriangle returns the colored triangle with texture coordinates.
func TexTriangle() []g3d.TexVertex {
	vs := make([]g3d.TexVertex, len(trianglePositions))
	for i, p := range trianglePositions {
		vs[i] = g3d.TexVertex{Position: p, Color: triangleColors[i], TexCoords: triangleTexCoords[i]}
	}
	return vs
}
