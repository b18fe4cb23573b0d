package gpu

import (
	"fmt"

	"github.com/gogpu/g3d"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// offscreenFormat is the color format RenderImage draws into, chosen so
// the readback needs no channel swizzle.
const offscreenFormat = gputypes.TextureFormatRGBA8Unorm

// Renderer draws one prepared g3d.Pass per frame. It is not safe for
// concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	pass *g3d.Pass

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipelines  map[gputypes.TextureFormat]hal.RenderPipeline

	vertBuf    hal.Buffer
	indexBuf   hal.Buffer
	uniformBuf hal.Buffer
	tex        hal.Texture
	texView    hal.TextureView
	sampler    hal.Sampler
	bindGroup  hal.BindGroup

	mem       *memoryLedger
	surface   targetSet
	offscreen targetSet
}

// NewRenderer returns a renderer drawing into surfaces of colorFormat.
func NewRenderer(dev *Device, colorFormat gputypes.TextureFormat) *Renderer {
	mem := newMemoryLedger(DefaultMaxMemoryMB)
	return &Renderer{
		device:    dev.device,
		queue:     dev.queue,
		format:    colorFormat,
		pipelines: make(map[gputypes.TextureFormat]hal.RenderPipeline),
		mem:       mem,
		surface:   targetSet{label: "surface", mem: mem},
		offscreen: targetSet{label: "offscreen", mem: mem, colorFormat: offscreenFormat},
	}
}

// Prepared reports whether Prepare has succeeded.
func (r *Renderer) Prepared() bool { return r.pass != nil }

// Prepare creates the device resources for p, releasing those of any
// previous pass. A clear-only pass needs none.
func (r *Renderer) Prepare(p *g3d.Pass) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.destroyPass()
	r.surface.depth = p.DepthTest
	r.offscreen.depth = p.DepthTest

	if !p.ClearOnly() {
		if err := r.createPassResources(p); err != nil {
			r.destroyPass()
			return fmt.Errorf("gpu: prepare %q: %w", p.Label, err)
		}
		if _, err := r.pipelineFor(p, r.format); err != nil {
			r.destroyPass()
			return fmt.Errorf("gpu: prepare %q: %w", p.Label, err)
		}
	}
	r.pass = p
	slogger().Info("gpu: pass prepared",
		"label", p.Label,
		"vertices", p.VertexCount,
		"indices", p.IndexCount,
		"uniform_bytes", p.UniformSize,
		"textured", p.Texture != nil,
		"depth", p.DepthTest)
	return nil
}

// createPassResources compiles the shader and uploads the static data of
// p: geometry, the uniform buffer, and the texture with its sampler.
func (r *Renderer) createPassResources(p *g3d.Pass) error {
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.Label + "_shader",
		Source: hal.ShaderSource{WGSL: p.Shader},
	})
	if err != nil {
		return fmt.Errorf("compile shader: %w", err)
	}
	r.shader = shader

	// Bind group layout:
	//   Binding 0: uniforms (uniform buffer, vertex+fragment)
	//   Binding 1: texture (texture_2d, fragment), textured passes only
	//   Binding 2: sampler (fragment), textured passes only
	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
	if p.Texture != nil {
		entries = append(entries,
			gputypes.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			gputypes.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		)
	}
	bindLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   p.Label + "_bind_layout",
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.Label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	if r.vertBuf, err = r.createAndUploadBuffer(p.Label+"_vertices", p.Vertices,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst); err != nil {
		return err
	}
	if p.Indexed() {
		if r.indexBuf, err = r.createAndUploadBuffer(p.Label+"_indices", p.Indices,
			gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst); err != nil {
			return err
		}
	}
	if err := r.mem.reserve(groupPass, "uniforms", p.UniformSize); err != nil {
		return err
	}
	uniformBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: p.Label + "_uniforms",
		Size:  p.UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create %s_uniforms: %w", p.Label, err)
	}
	r.uniformBuf = uniformBuf

	bindEntries := []gputypes.BindGroupEntry{
		{Binding: 0, Resource: gputypes.BufferBinding{
			Buffer: r.uniformBuf.NativeHandle(), Offset: 0, Size: p.UniformSize,
		}},
	}
	if p.Texture != nil {
		if err := r.uploadTexture(p); err != nil {
			return err
		}
		bindEntries = append(bindEntries,
			gputypes.BindGroupEntry{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: r.texView.NativeHandle(),
			}},
			gputypes.BindGroupEntry{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: r.sampler.NativeHandle(),
			}},
		)
	}
	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   p.Label + "_bind",
		Layout:  r.bindLayout,
		Entries: bindEntries,
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	r.bindGroup = bindGroup
	return nil
}

// uploadTexture creates the sampled texture of p, writes its texels and
// creates a linear clamp-to-edge sampler.
func (r *Renderer) uploadTexture(p *g3d.Pass) error {
	img := p.Texture
	w := uint32(img.Bounds().Dx()) //nolint:gosec // validated non-empty image
	h := uint32(img.Bounds().Dy()) //nolint:gosec // validated non-empty image
	if err := r.mem.reserve(groupPass, "texture", uint64(w)*uint64(h)*colorTexelSize); err != nil {
		return err
	}

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         p.Label + "_texture",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	r.tex = tex

	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         p.Label + "_texture_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("create texture view: %w", err)
	}
	r.texView = view

	r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  r.tex,
			MipLevel: 0,
		},
		img.Pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride), //nolint:gosec // image stride fits in uint32
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	sampler, err := r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        p.Label + "_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create sampler: %w", err)
	}
	r.sampler = sampler
	slogger().Debug("gpu: texture uploaded", "label", p.Label, "width", w, "height", h)
	return nil
}

// pipelineFor returns the render pipeline of p for a color format,
// creating it on first use.
func (r *Renderer) pipelineFor(p *g3d.Pass, format gputypes.TextureFormat) (hal.RenderPipeline, error) {
	if pl, ok := r.pipelines[format]; ok {
		return pl, nil
	}
	desc := &hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("%s_pipeline_%v", p.Label, format),
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{p.Layout},
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
	if p.DepthTest {
		desc.DepthStencil = &hal.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0x00,
			StencilWriteMask: 0x00,
		}
	}
	pl, err := r.device.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("create %s pipeline: %w", p.Label, err)
	}
	r.pipelines[format] = pl
	slogger().Debug("gpu: pipeline created", "label", p.Label, "format", format, "depth", p.DepthTest)
	return pl, nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	if err := r.mem.reserve(groupPass, label, uint64(len(data))); err != nil {
		return nil, err
	}
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	slogger().Debug("gpu: buffer uploaded", "label", label, "bytes", len(data))
	return buf, nil
}

// destroyPass releases the pass resources in reverse creation order.
func (r *Renderer) destroyPass() {
	r.pass = nil
	if r.mem != nil {
		r.mem.releaseGroup(groupPass)
	}
	if r.device == nil {
		return
	}
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.sampler != nil {
		r.device.DestroySampler(r.sampler)
		r.sampler = nil
	}
	if r.texView != nil {
		r.device.DestroyTextureView(r.texView)
		r.texView = nil
	}
	if r.tex != nil {
		r.device.DestroyTexture(r.tex)
		r.tex = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	if r.indexBuf != nil {
		r.device.DestroyBuffer(r.indexBuf)
		r.indexBuf = nil
	}
	if r.vertBuf != nil {
		r.device.DestroyBuffer(r.vertBuf)
		r.vertBuf = nil
	}
	for format, pl := range r.pipelines {
		r.device.DestroyRenderPipeline(pl)
		delete(r.pipelines, format)
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.bindLayout != nil {
		r.device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// Destroy releases every resource the renderer created. The device is
// left alone. Safe to call more than once.
func (r *Renderer) Destroy() {
	r.destroyPass()
	if r.device != nil {
		r.surface.destroyTargets(r.device)
		r.offscreen.destroyTargets(r.device)
	}
	r.device = nil
	r.queue = nil
}
