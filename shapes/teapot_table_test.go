package shapes

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/g3d"
)

var update = flag.Bool("update", false, "rewrite teapot_table.go from Teapot")

const teapotTableFile = "teapot_table.go"

func TestTeapotTable(t *testing.T) {
	want := Teapot(DefaultTeapotDetail)
	if *update {
		src, err := teapotTableSource(want)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(teapotTableFile, src, 0o644); err != nil { //nolint:gosec // generated source
			t.Fatal(err)
		}
		// The compiled-in table is the old one until the next build.
		t.Logf("wrote %s", teapotTableFile)
		return
	}

	got := TeapotTable()
	if err := got.Validate(); err != nil {
		t.Fatalf("TeapotTable().Validate() = %v", err)
	}
	if len(got.Vertices) != len(want.Vertices) || len(got.Indices) != len(want.Indices) {
		t.Fatalf("table has %d vertices and %d indices, Teapot has %d and %d; run go generate",
			len(got.Vertices), len(got.Indices), len(want.Vertices), len(want.Indices))
	}
	for i := range got.Indices {
		if got.Indices[i] != want.Indices[i] {
			t.Fatalf("index %d = %d, want %d", i, got.Indices[i], want.Indices[i])
		}
	}
	const eps = 1e-5
	for i, v := range got.Vertices {
		w := want.Vertices[i]
		if !near(v.Position[:], w.Position[:], eps) || !near(v.Normal[:], w.Normal[:], eps) ||
			!near(v.TexCoords[:], w.TexCoords[:], eps) {
			t.Fatalf("vertex %d = %+v, want %+v", i, v, w)
		}
	}
}

func TestTeapotTableCopies(t *testing.T) {
	a := TeapotTable()
	a.Vertices[0].Position[1] = -1
	a.Indices[0] = 7
	b := TeapotTable()
	if b.Vertices[0].Position[1] != TeapotHeight || b.Indices[0] == 7 {
		t.Error("TeapotTable() shares storage between calls")
	}
}

func near(a, b []float32, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

// teapotTableSource renders m in the layout of teapot_table.go.
func teapotTableSource(m *g3d.Mesh) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by \"go test -run TestTeapotTable -update\"; DO NOT EDIT.\n\n")
	b.WriteString("package shapes\n\n")
	b.WriteString("// teapotVertexData is Teapot(DefaultTeapotDetail), one vertex per row:\n")
	b.WriteString("// position, normal, texture coordinates.\n")
	b.WriteString("var teapotVertexData = [...]float32{\n")
	for _, v := range m.Vertices {
		row := []float32{
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoords[0], v.TexCoords[1],
		}
		fields := make([]string, len(row))
		for i, x := range row {
			if x == 0 {
				x = 0 // drop the sign of negative zero
			}
			fields[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
		}
		fmt.Fprintf(&b, "%s,\n", strings.Join(fields, ", "))
	}
	b.WriteString("}\n\n")
	b.WriteString("// teapotIndexData lists the triangles of teapotVertexData.\n")
	b.WriteString("var teapotIndexData = [...]uint16{\n")
	for i := 0; i < len(m.Indices); i += 12 {
		end := min(i+12, len(m.Indices))
		fields := make([]string, 0, 12)
		for _, idx := range m.Indices[i:end] {
			if idx > math.MaxUint16 {
				return nil, fmt.Errorf("index %d does not fit uint16", idx)
			}
			fields = append(fields, strconv.FormatUint(uint64(idx), 10))
		}
		fmt.Fprintf(&b, "%s,\n", strings.Join(fields, ", "))
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}
