package g3d

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// ErrInvalidPass is returned by Pass.Validate.
var ErrInvalidPass = errors.New("g3d: invalid pass")

// Pass describes everything needed to build one render pipeline and draw
// it once per frame, without referring to any GPU object. Renderers turn
// a Pass into device resources once; per-frame data travels separately as
// uniform bytes.
type Pass struct {
	Label string

	// Clear is the RGBA clear color of the render target.
	Clear [4]float64

	// Shader is WGSL source with vs_main and fs_main entry points.
	// An empty Shader makes the pass clear-only.
	Shader string

	Layout      gputypes.VertexBufferLayout
	Vertices    []byte
	VertexCount uint32

	// Indices is optional. When set, IndexCount indices of IndexFormat are
	// drawn instead of VertexCount vertices.
	Indices     []byte
	IndexFormat gputypes.IndexFormat
	IndexCount  uint32

	// UniformSize is the size in bytes of the uniform block at
	// @group(0) @binding(0). Must be a non-zero multiple of 16.
	UniformSize uint64

	// Texture, if set, is bound at @binding(1) with a linear sampler at
	// @binding(2).
	Texture *image.RGBA

	// DepthTest enables a depth attachment with a less-than test.
	DepthTest bool
}

// ClearOnly reports whether the pass draws nothing.
func (p *Pass) ClearOnly() bool { return p.Shader == "" }

// Indexed reports whether the pass draws with an index buffer.
func (p *Pass) Indexed() bool { return p.IndexCount > 0 }

// Validate checks the internal consistency of the pass.
func (p *Pass) Validate() error {
	if p.ClearOnly() {
		return nil
	}
	if p.VertexCount == 0 {
		return fmt.Errorf("%w: %q has no vertices", ErrInvalidPass, p.Label)
	}
	want := uint64(p.VertexCount) * uint64(p.Layout.ArrayStride)
	if uint64(len(p.Vertices)) != want {
		return fmt.Errorf("%w: %q vertex data is %d bytes, want %d", ErrInvalidPass, p.Label, len(p.Vertices), want)
	}
	if p.Indexed() {
		if err := p.validateIndices(); err != nil {
			return err
		}
	}
	if p.UniformSize == 0 || p.UniformSize%16 != 0 {
		return fmt.Errorf("%w: %q uniform size %d is not a positive multiple of 16", ErrInvalidPass, p.Label, p.UniformSize)
	}
	if p.Texture != nil && p.Texture.Bounds().Empty() {
		return fmt.Errorf("%w: %q texture is empty", ErrInvalidPass, p.Label)
	}
	return nil
}

func (p *Pass) validateIndices() error {
	if len(p.Indices) == 0 {
		return fmt.Errorf("%w: %q index count set without index data", ErrInvalidPass, p.Label)
	}
	width := IndexWidth(p.IndexFormat)
	if width == 0 {
		return fmt.Errorf("%w: %q index format %v", ErrInvalidPass, p.Label, p.IndexFormat)
	}
	if want := uint64(p.IndexCount) * width; uint64(len(p.Indices)) < want {
		return fmt.Errorf("%w: %q index data is %d bytes, %d indices need %d",
			ErrInvalidPass, p.Label, len(p.Indices), p.IndexCount, want)
	}
	return nil
}

// IndexWidth returns the size in bytes of one index of format f, or 0 for
// an undefined format.
func IndexWidth(f gputypes.IndexFormat) uint64 {
	switch f {
	case gputypes.IndexFormatUint16:
		return 2
	case gputypes.IndexFormatUint32:
		return 4
	}
	return 0
}
