package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/g3d"
)

var (
	// ErrSyntax is wrapped by parse errors for malformed statements.
	ErrSyntax = errors.New("obj: syntax error")

	// ErrIndexRange is wrapped by parse errors for face indices that refer
	// to elements not yet defined.
	ErrIndexRange = errors.New("obj: index out of range")

	// ErrNoFaces is returned when the input defines no faces.
	ErrNoFaces = errors.New("obj: no faces")
)

// ParseError reports the line on which decoding failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ignoredStatements are valid OBJ keywords that carry no geometry.
var ignoredStatements = map[string]bool{
	"o": true, "g": true, "s": true, "mg": true,
	"usemtl": true, "mtllib": true,
	"l": true, "p": true,
}

// noIndex marks an absent texture or normal reference.
const noIndex = -1

// corner is a resolved face corner: zero-based indices into the parsed
// positions, texture coordinates and normals.
type corner struct {
	v, vt, vn int
}

// Decoder parses OBJ input into a g3d.Mesh. A Decoder is single use.
type Decoder struct {
	// Warnings lists statements that were skipped, one entry per keyword
	// with the number of occurrences.
	Warnings []string

	positions [][3]float32
	texCoords [][2]float32
	normals   [][3]float32

	mesh      g3d.Mesh
	hasNormal []bool
	seen      map[corner]uint32
	skipped   map[string]int
	line      int
}

// NewDecoder returns a ready Decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		seen:    make(map[corner]uint32),
		skipped: make(map[string]int),
	}
}

// Decode reads a mesh from r using a fresh Decoder.
func Decode(r io.Reader) (*g3d.Mesh, error) {
	return NewDecoder().Decode(r)
}

// Load decodes the named file from fsys.
func Load(fsys fs.FS, name string) (*g3d.Mesh, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", name, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// Decode reads statements from r until EOF and returns the mesh. Vertices
// without a normal get the area-weighted face normal.
func (d *Decoder) Decode(r io.Reader) (*g3d.Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		d.line++
		if err := d.parseLine(sc.Text()); err != nil {
			return nil, &ParseError{Line: d.line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	if len(d.mesh.Indices) == 0 {
		return nil, ErrNoFaces
	}

	for kw, n := range d.skipped {
		d.Warnings = append(d.Warnings, fmt.Sprintf("%s: %d statement(s) ignored", kw, n))
	}
	slices.Sort(d.Warnings)
	d.fillMissingNormals()

	g3d.Logger().Debug("obj: decoded mesh",
		"lines", d.line,
		"vertices", len(d.mesh.Vertices),
		"triangles", d.mesh.TriangleCount(),
		"ignored", len(d.Warnings))

	m := d.mesh
	return &m, nil
}

func (d *Decoder) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	kw, args := fields[0], fields[1:]
	switch kw {
	case "v":
		p, err := parseFloats(kw, args, 3)
		if err != nil {
			return err
		}
		d.positions = append(d.positions, [3]float32{p[0], p[1], p[2]})
	case "vn":
		n, err := parseFloats(kw, args, 3)
		if err != nil {
			return err
		}
		d.normals = append(d.normals, g3d.Normalize([3]float32{n[0], n[1], n[2]}))
	case "vt":
		t, err := parseFloats(kw, args, 1)
		if err != nil {
			return err
		}
		var uv [2]float32
		copy(uv[:], t)
		d.texCoords = append(d.texCoords, uv)
	case "f":
		return d.parseFace(args)
	default:
		d.skipped[kw]++
		if !ignoredStatements[kw] {
			g3d.Logger().Warn("obj: unknown statement", "keyword", kw, "line", d.line)
		}
	}
	return nil
}

// parseFloats parses at least want values. Extra values (w, vertex
// colors) are returned but callers ignore them.
func parseFloats(kw string, args []string, want int) ([]float32, error) {
	if len(args) < want {
		return nil, fmt.Errorf("%w: %q needs %d values, got %d", ErrSyntax, kw, want, len(args))
	}
	out := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q value %q", ErrSyntax, kw, a)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (d *Decoder) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: face with %d corners", ErrSyntax, len(args))
	}
	idx := make([]uint32, len(args))
	for i, a := range args {
		c, err := d.parseCorner(a)
		if err != nil {
			return err
		}
		idx[i] = d.vertexFor(c)
	}
	// Fan around the first corner.
	for i := 1; i+1 < len(idx); i++ {
		d.mesh.Indices = append(d.mesh.Indices, idx[0], idx[i], idx[i+1])
	}
	return nil
}

// parseCorner parses v, v/vt, v//vn or v/vt/vn.
func (d *Decoder) parseCorner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return corner{}, fmt.Errorf("%w: face corner %q", ErrSyntax, s)
	}
	c := corner{v: noIndex, vt: noIndex, vn: noIndex}
	var err error
	if c.v, err = resolve(parts[0], len(d.positions)); err != nil {
		return corner{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolve(parts[1], len(d.texCoords)); err != nil {
			return corner{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolve(parts[2], len(d.normals)); err != nil {
			return corner{}, err
		}
	}
	return c, nil
}

// resolve converts a one-based or negative (relative to the end) OBJ
// index into a zero-based index below n.
func resolve(s string, n int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrSyntax, s)
	}
	switch {
	case v > 0:
		v--
	case v < 0:
		v += n
	default:
		return 0, fmt.Errorf("%w: index 0", ErrSyntax)
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: %s with %d defined", ErrIndexRange, s, n)
	}
	return v, nil
}

// vertexFor returns the output index of c, appending a vertex the first
// time a triple is seen.
func (d *Decoder) vertexFor(c corner) uint32 {
	if i, ok := d.seen[c]; ok {
		return i
	}
	v := g3d.MeshVertex{Position: d.positions[c.v]}
	if c.vt != noIndex {
		v.TexCoords = d.texCoords[c.vt]
	}
	if c.vn != noIndex {
		v.Normal = d.normals[c.vn]
	}
	i := uint32(len(d.mesh.Vertices)) //nolint:gosec // bounded by input size
	d.mesh.Vertices = append(d.mesh.Vertices, v)
	d.hasNormal = append(d.hasNormal, c.vn != noIndex)
	d.seen[c] = i
	return i
}

func (d *Decoder) fillMissingNormals() {
	missing := 0
	for _, ok := range d.hasNormal {
		if !ok {
			missing++
		}
	}
	if missing == 0 {
		return
	}
	computed := g3d.Mesh{
		Vertices: append([]g3d.MeshVertex(nil), d.mesh.Vertices...),
		Indices:  d.mesh.Indices,
	}
	computed.ComputeNormals()
	for i, ok := range d.hasNormal {
		if !ok {
			d.mesh.Vertices[i].Normal = computed.Vertices[i].Normal
		}
	}
	g3d.Logger().Debug("obj: computed missing normals", "vertices", missing)
}
