package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/g3d"
)

const sample = `
step = "triangle"
width = 640
height = 480
frames = 30
output = "out/triangle.png"
caption = "step 1"
texture = "assets/brick.png"
texture_size = 64
memory_mb = 32

[camera]
position = [0.0, 0.0, -3.0]
direction = [0.0, 0.0, 1.0]
up = [0.0, 1.0, 0.0]
fov_degrees = 90.0
near = 0.5
far = 50.0
`

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	cam := c.Camera3D()
	want := g3d.DefaultCamera()
	if cam.Position != want.Position || cam.Direction != want.Direction || cam.Up != want.Up {
		t.Errorf("camera basis = %+v, want %+v", cam, want)
	}
	if math.Abs(float64(cam.FovY-want.FovY)) > 1e-6 {
		t.Errorf("FovY = %v, want %v", cam.FovY, want.FovY)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Step != "triangle" || c.Width != 640 || c.Height != 480 || c.Frames != 30 {
		t.Errorf("parsed %+v", c)
	}
	if c.Output != "out/triangle.png" || c.Caption != "step 1" {
		t.Errorf("output %q caption %q", c.Output, c.Caption)
	}
	if c.Texture != "assets/brick.png" || c.TextureSize != 64 || c.MemoryMB != 32 {
		t.Errorf("texture %q size %d memory %d", c.Texture, c.TextureSize, c.MemoryMB)
	}
	// Keys absent from the document keep their defaults.
	if c.ShaderDir != "shaders" || c.Model != Default().Model {
		t.Errorf("defaults lost: shader_dir %q model %q", c.ShaderDir, c.Model)
	}

	cam := c.Camera3D()
	if cam.Position != (mgl32.Vec3{0, 0, -3}) || cam.Near != 0.5 || cam.Far != 50 {
		t.Errorf("camera = %+v", cam)
	}
	if math.Abs(float64(cam.FovY)-math.Pi/2) > 1e-6 {
		t.Errorf("FovY = %v, want pi/2", cam.FovY)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if c != Default() {
		t.Errorf("Parse(nil) = %+v, want Default()", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"unknown step", `step = "sphere"`, true},
		{"zero width", `width = 0`, true},
		{"negative frames", `frames = -1`, true},
		{"empty output", `output = ""`, true},
		{"zero texture size", `texture_size = 0`, true},
		{"small budget", `memory_mb = 8`, true},
		{"flat fov", "[camera]\nfov_degrees = 180.0", true},
		{"near past far", "[camera]\nnear = 10.0\nfar = 1.0", true},
		{"parallel up", "[camera]\ndirection = [0.0, 2.0, 0.0]", true},
		{"unknown key", `colour = "red"`, true},
		{"syntax", `width = `, false},
		{"wrong type", `width = "wide"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestParseCameraError(t *testing.T) {
	_, err := Parse([]byte("[camera]\ndirection = [0.0, 0.0, 0.0]"))
	if !errors.Is(err, g3d.ErrDegenerateBasis) {
		t.Errorf("zero direction: error = %v, want ErrDegenerateBasis", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g3d.toml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Step != "triangle" {
		t.Errorf("step = %q", c.Step)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte(`width = -5`), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "bad.toml") {
		t.Errorf("invalid file: error = %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	want, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	data, err := want.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v\n%s", err, data)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
