package gpu

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/shader"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func builtinShader(name string) string {
	src, err := shader.Embedded().Load(name)
	if err != nil {
		panic(err)
	}
	return src.Code
}

func trianglePass() *g3d.Pass {
	vs := []g3d.Vertex2D{{Position: [2]float32{-0.5, -0.5}}, {Position: [2]float32{0, 0.5}}, {Position: [2]float32{0.5, -0.25}}}
	return &g3d.Pass{
		Label:       "triangle",
		Clear:       [4]float64{0, 0, 1, 1},
		Shader:      builtinShader(shader.Triangle),
		Layout:      g3d.Vertex2D{}.Layout(),
		Vertices:    g3d.PackVertices(vs),
		VertexCount: 3,
		UniformSize: 64,
	}
}

func meshPass() *g3d.Pass {
	m := &g3d.Mesh{
		Vertices: []g3d.MeshVertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{1, 0, 0}},
			{Position: [3]float32{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2},
	}
	return &g3d.Pass{
		Label:       "mesh",
		Shader:      builtinShader(shader.Teapot),
		Layout:      g3d.MeshVertex{}.Layout(),
		Vertices:    m.VertexBytes(),
		VertexCount: 3,
		Indices:     m.IndexBytes(),
		IndexFormat: m.IndexFormat(),
		IndexCount:  3,
		UniformSize: 208,
		DepthTest:   true,
	}
}

func newTestRenderer(t *testing.T) (*Renderer, hal.Device, func()) {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	r := NewRenderer(Wrap(device, queue), gputypes.TextureFormatBGRA8Unorm)
	return r, device, func() {
		r.Destroy()
		cleanup()
	}
}

func TestRendererLifecycle(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if r.Prepared() {
		t.Fatal("new renderer reports prepared")
	}
	if _, err := r.RenderImage(4, 4, nil); !errors.Is(err, ErrNotPrepared) {
		t.Errorf("RenderImage before Prepare = %v, want ErrNotPrepared", err)
	}

	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if r.shader == nil || r.pipelines[gputypes.TextureFormatBGRA8Unorm] == nil || r.vertBuf == nil || r.bindGroup == nil {
		t.Error("expected shader, pipeline, vertex buffer and bind group after Prepare")
	}
	if r.indexBuf != nil || r.tex != nil {
		t.Error("unexpected index buffer or texture for a plain triangle")
	}

	r.Destroy()
	// Double-destroy should be safe.
	r.Destroy()
	if r.Prepared() || r.shader != nil || len(r.pipelines) != 0 {
		t.Error("resources left after Destroy")
	}
}

func TestRendererRenderImage(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatal(err)
	}
	img, err := r.RenderImage(100, 50, g3d.MatrixBytes(g3d.ClipCorrection))
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 100, 50) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if r.offscreen.width != 100 || r.offscreen.colorTex == nil {
		t.Error("offscreen target not created")
	}
	if r.offscreen.depthTex != nil {
		t.Error("depth target created for a pass without depth test")
	}
	if r.pipelines[offscreenFormat] == nil {
		t.Error("offscreen pipeline not created")
	}
}

// stalledDevice never sees its fences signaled.
type stalledDevice struct {
	hal.Device
}

func (stalledDevice) Wait(hal.Fence, uint64, time.Duration) (bool, error) { return false, nil }

func TestRendererFenceTimeout(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()
	r := NewRenderer(Wrap(stalledDevice{device}, queue), gputypes.TextureFormatBGRA8Unorm)
	defer r.Destroy()

	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatal(err)
	}
	_, err := r.RenderImage(8, 8, g3d.MatrixBytes(g3d.ClipCorrection))
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("RenderImage() = %v, want ErrTimeout", err)
	}
	if strings.Contains(err.Error(), "%!") {
		t.Errorf("malformed error text %q", err)
	}
}

func TestRendererUniformSize(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderImage(8, 8, make([]byte, 16)); !errors.Is(err, ErrUniforms) {
		t.Errorf("RenderImage with short uniforms = %v, want ErrUniforms", err)
	}
}

func TestRendererDepthAndIndices(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.Prepare(meshPass()); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if r.indexBuf == nil {
		t.Error("expected index buffer")
	}
	if _, err := r.RenderImage(64, 64, make([]byte, 208)); err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	if r.offscreen.depthTex == nil || r.offscreen.depthView == nil {
		t.Error("expected depth target for a depth-tested pass")
	}
}

func TestRendererTexture(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	p := trianglePass()
	p.Texture = image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := r.Prepare(p); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if r.tex == nil || r.texView == nil || r.sampler == nil {
		t.Error("expected texture, view and sampler")
	}
}

func TestRendererSurface(t *testing.T) {
	r, device, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.Render(nil, 4, 4, nil); !errors.Is(err, ErrNotPrepared) {
		t.Errorf("Render before Prepare = %v, want ErrNotPrepared", err)
	}
	if err := r.Prepare(meshPass()); err != nil {
		t.Fatal(err)
	}
	if err := r.Render(nil, 4, 4, make([]byte, 208)); !errors.Is(err, ErrSurface) {
		t.Errorf("Render(nil view) = %v, want ErrSurface", err)
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "fake_surface",
		Size:          hal.Extent3D{Width: 320, Height: 240, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer device.DestroyTexture(tex)
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: "fake_surface_view"})
	if err != nil {
		t.Fatal(err)
	}
	defer device.DestroyTextureView(view)

	if err := r.Render(view, 320, 240, make([]byte, 208)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	depth := r.surface.depthTex
	if depth == nil {
		t.Fatal("expected surface depth target")
	}

	// Same size keeps the depth target; a resize replaces it.
	if err := r.Render(view, 320, 240, make([]byte, 208)); err != nil {
		t.Fatal(err)
	}
	if r.surface.depthTex != depth {
		t.Error("depth target recreated without a resize")
	}
	if err := r.Render(view, 640, 480, make([]byte, 208)); err != nil {
		t.Fatal(err)
	}
	if r.surface.width != 640 || r.surface.height != 480 {
		t.Errorf("surface target size = %dx%d, want 640x480", r.surface.width, r.surface.height)
	}

	// A minimized window has zero size and draws nothing.
	if err := r.Render(view, 0, 0, nil); err != nil {
		t.Errorf("Render at zero size = %v", err)
	}
}

func TestRendererClearOnly(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.Prepare(&g3d.Pass{Label: "clear", Clear: [4]float64{0, 0, 1, 1}}); err != nil {
		t.Fatal(err)
	}
	if r.shader != nil || r.vertBuf != nil {
		t.Error("clear-only pass created draw resources")
	}
	if _, err := r.RenderImage(16, 16, nil); err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
}

func TestRendererPrepareInvalid(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	p := trianglePass()
	p.VertexCount = 4
	if err := r.Prepare(p); !errors.Is(err, g3d.ErrInvalidPass) {
		t.Errorf("Prepare(invalid) = %v, want ErrInvalidPass", err)
	}
	if r.Prepared() {
		t.Error("renderer prepared after a failed Prepare")
	}
}

func TestRendererReprepare(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatal(err)
	}
	if err := r.Prepare(meshPass()); err != nil {
		t.Fatal(err)
	}
	if r.pass.Label != "mesh" || r.indexBuf == nil || !r.surface.depth {
		t.Error("second Prepare did not replace the pass resources")
	}
}

func TestUnpadRows(t *testing.T) {
	// Two 1-pixel rows with a pitch of 8 bytes.
	readback := []byte{
		1, 2, 3, 4, 0, 0, 0, 0,
		5, 6, 7, 8, 0, 0, 0, 0,
	}
	img := unpadRows(readback, 1, 2, 8)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}
