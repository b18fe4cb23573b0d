// Package config reads the TOML settings of the g3drender command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/internal/gpu"
	"github.com/gogpu/g3d/texture"
	"github.com/gogpu/g3d/tutorial"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("config: invalid")

// maxFrames bounds the number of headless frames per run.
const maxFrames = 1 << 20

// Camera is the camera table.
type Camera struct {
	Position   [3]float32 `toml:"position"`
	Direction  [3]float32 `toml:"direction"`
	Up         [3]float32 `toml:"up"`
	FovDegrees float32    `toml:"fov_degrees"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
}

// Config is a g3drender run.
type Config struct {
	Step      string `toml:"step"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Frames    int    `toml:"frames"`
	Output    string `toml:"output"`
	Caption   string `toml:"caption"`
	ShaderDir string `toml:"shader_dir"`
	Model     string `toml:"model"`

	// Texture is an image file for the texture step. Empty selects the
	// built-in checkerboard.
	Texture string `toml:"texture"`

	// TextureSize is the square size Texture is resampled to.
	TextureSize int `toml:"texture_size"`

	// MemoryMB is the renderer's GPU memory budget.
	MemoryMB int `toml:"memory_mb"`

	Camera Camera `toml:"camera"`
}

// Default returns the settings used when no file is given: one 800x600
// frame of the teapot step seen from the default camera.
func Default() Config {
	c := g3d.DefaultCamera()
	return Config{
		Step:        tutorial.NameTeapot,
		Width:       800,
		Height:      600,
		Frames:      1,
		Output:      "teapot.png",
		ShaderDir:   "shaders",
		Model:       tutorial.DefaultModel,
		TextureSize: tutorial.TextureSize,
		MemoryMB:    gpu.DefaultMaxMemoryMB,
		Camera: Camera{
			Position:   c.Position,
			Direction:  c.Direction,
			Up:         c.Up,
			FovDegrees: mgl32.RadToDeg(c.FovY),
			Near:       c.Near,
			Far:        c.Far,
		},
	}
}

// Load reads and validates the file at path. Keys missing from the file
// keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and the camera.
func (c Config) Validate() error {
	switch {
	case !tutorial.Known(c.Step):
		return fmt.Errorf("%w: unknown step %q", ErrInvalid, c.Step)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Frames <= 0 || c.Frames > maxFrames:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.Output == "":
		return fmt.Errorf("%w: empty output", ErrInvalid)
	case c.TextureSize <= 0 || c.TextureSize > texture.MaxSize:
		return fmt.Errorf("%w: texture_size %d", ErrInvalid, c.TextureSize)
	case c.MemoryMB < gpu.MinMemoryMB:
		return fmt.Errorf("%w: memory_mb %d below %d", ErrInvalid, c.MemoryMB, gpu.MinMemoryMB)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v", ErrInvalid, c.Camera.FovDegrees)
	}
	if err := c.Camera3D().Validate(); err != nil {
		return fmt.Errorf("%w: camera: %w", ErrInvalid, err)
	}
	return nil
}

// Camera3D returns the camera table as a g3d.Camera.
func (c Config) Camera3D() g3d.Camera {
	return g3d.Camera{
		Position:  c.Camera.Position,
		Direction: c.Camera.Direction,
		Up:        c.Camera.Up,
		FovY:      mgl32.DegToRad(c.Camera.FovDegrees),
		Near:      c.Camera.Near,
		Far:       c.Camera.Far,
	}
}

// Encode returns c as a TOML document that Parse accepts.
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return data, nil
}
