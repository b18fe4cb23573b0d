package gpu

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fenceTimeout bounds the wait for a submitted frame.
const fenceTimeout = 5 * time.Second

// copyPitchAlignment is the required BytesPerRow alignment of texture to
// buffer copies.
const copyPitchAlignment = 256

// Render draws the prepared pass into view, a w x h surface texture of the
// renderer's color format, with the given uniform bytes. It returns once
// the GPU has finished the frame. A zero size, as for a minimized window,
// draws nothing.
func (r *Renderer) Render(view hal.TextureView, w, h uint32, uniforms []byte) error {
	if r.pass == nil || r.device == nil {
		return ErrNotPrepared
	}
	if view == nil {
		return ErrSurface
	}
	if w == 0 || h == 0 {
		return nil
	}
	if err := r.surface.ensureTargets(r.device, w, h); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	if err := r.writeUniforms(uniforms); err != nil {
		return err
	}

	encoder, err := r.beginFrame(view, r.surface.depthView, r.format)
	if err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if err := r.submitAndWait(cmdBuf); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	return nil
}

// RenderImage draws the prepared pass into an offscreen RGBA texture of
// w x h and reads it back.
func (r *Renderer) RenderImage(w, h uint32, uniforms []byte) (*image.RGBA, error) {
	if r.pass == nil || r.device == nil {
		return nil, ErrNotPrepared
	}
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("gpu: invalid image size %dx%d", w, h)
	}
	if err := r.offscreen.ensureTargets(r.device, w, h); err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	if err := r.writeUniforms(uniforms); err != nil {
		return nil, err
	}

	encoder, err := r.beginFrame(r.offscreen.colorView, r.offscreen.depthView, offscreenFormat)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}

	// The color texture leaves the render pass as an attachment; the copy
	// needs it as a transfer source.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.offscreen.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingBufSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "offscreen_staging",
		Size:  stagingBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("gpu: create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.offscreen.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.offscreen.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	// Back to RenderAttachment for the next frame's render pass.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.offscreen.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if err := r.submitAndWait(cmdBuf); err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}

	readback := make([]byte, stagingBufSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("gpu: readback: %w", err)
	}
	return unpadRows(readback, w, h, alignedBytesPerRow), nil
}

// unpadRows copies tightly packed rows out of a readback buffer whose rows
// are pitch bytes apart.
func unpadRows(readback []byte, w, h, pitch uint32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	rowBytes := int(w) * 4
	for row := 0; row < int(h); row++ {
		src := row * int(pitch)
		copy(img.Pix[row*img.Stride:row*img.Stride+rowBytes], readback[src:src+rowBytes])
	}
	return img
}

// writeUniforms uploads the per-frame uniform block.
func (r *Renderer) writeUniforms(uniforms []byte) error {
	if r.pass.ClearOnly() {
		return nil
	}
	if uint64(len(uniforms)) != r.pass.UniformSize {
		return fmt.Errorf("%w: got %d bytes, %q expects %d", ErrUniforms, len(uniforms), r.pass.Label, r.pass.UniformSize)
	}
	r.queue.WriteBuffer(r.uniformBuf, 0, uniforms)
	return nil
}

// beginFrame starts a command encoder and records the render pass: clear
// colorView (and depthView when the pass tests depth), then draw.
func (r *Renderer) beginFrame(colorView, depthView hal.TextureView, format gputypes.TextureFormat) (hal.CommandEncoder, error) {
	p := r.pass
	var pipeline hal.RenderPipeline
	if !p.ClearOnly() {
		var err error
		if pipeline, err = r.pipelineFor(p, format); err != nil {
			return nil, err
		}
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: p.Label + "_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(p.Label + "_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	rpDesc := &hal.RenderPassDescriptor{
		Label: p.Label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       colorView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: p.Clear[0], G: p.Clear[1], B: p.Clear[2], A: p.Clear[3]},
		}},
	}
	if p.DepthTest {
		rpDesc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
			View:              depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		}
	}

	rp := encoder.BeginRenderPass(rpDesc)
	if pipeline != nil {
		rp.SetPipeline(pipeline)
		rp.SetBindGroup(0, r.bindGroup, nil)
		rp.SetVertexBuffer(0, r.vertBuf, 0)
		if p.Indexed() {
			rp.SetIndexBuffer(r.indexBuf, p.IndexFormat, 0)
			rp.DrawIndexed(p.IndexCount, 1, 0, 0, 0)
		} else {
			rp.Draw(p.VertexCount, 1, 0, 0)
		}
	}
	rp.End()
	return encoder, nil
}

// submitAndWait submits cmdBuf and blocks until the GPU signals the fence.
func (r *Renderer) submitAndWait(cmdBuf hal.CommandBuffer) error {
	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, fenceTimeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !fenceOK {
		return fmt.Errorf("%w after %v", ErrTimeout, fenceTimeout)
	}
	return nil
}
