package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/g3d"
)

// Encode writes m as OBJ text. Every vertex is written as one v, vt and vn
// triple sharing an index, so faces use the v/vt/vn form.
func Encode(w io.Writer, m *g3d.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("obj: encode: %w", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())

	var line []byte
	writeVec := func(kw string, fs ...float32) {
		line = append(line[:0], kw...)
		for _, f := range fs {
			line = append(line, ' ')
			line = strconv.AppendFloat(line, float64(f), 'g', -1, 32)
		}
		line = append(line, '\n')
		bw.Write(line) //nolint:errcheck // bufio.Writer keeps the first error for Flush
	}
	for _, v := range m.Vertices {
		writeVec("v", v.Position[:]...)
	}
	for _, v := range m.Vertices {
		writeVec("vt", v.TexCoords[:]...)
	}
	for _, v := range m.Vertices {
		writeVec("vn", v.Normal[:]...)
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		line = append(line[:0], 'f')
		for _, idx := range m.Indices[t : t+3] {
			n := uint64(idx) + 1
			line = append(line, ' ')
			line = strconv.AppendUint(line, n, 10)
			line = append(line, '/')
			line = strconv.AppendUint(line, n, 10)
			line = append(line, '/')
			line = strconv.AppendUint(line, n, 10)
		}
		line = append(line, '\n')
		bw.Write(line) //nolint:errcheck // bufio.Writer keeps the first error for Flush
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: encode: %w", err)
	}
	return nil
}
