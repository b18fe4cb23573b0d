package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// depthFormat is the format of every depth attachment.
const depthFormat = gputypes.TextureFormatDepth24PlusStencil8

// targetSet holds the size-dependent attachments of one render target:
//   - color: single sample, RenderAttachment | CopySrc, for readback.
//     Absent when colorFormat is zero, as for a window surface.
//   - depth: Depth24PlusStencil8, RenderAttachment. Absent unless depth
//     is set.
type targetSet struct {
	label       string
	mem         *memoryLedger
	colorFormat gputypes.TextureFormat
	depth       bool

	colorTex  hal.Texture
	colorView hal.TextureView
	depthTex  hal.Texture
	depthView hal.TextureView
	width     uint32
	height    uint32
}

// ready reports whether the attachments exist at w x h.
func (ts *targetSet) ready(w, h uint32) bool {
	if ts.width != w || ts.height != h {
		return false
	}
	if ts.colorFormat != 0 && ts.colorTex == nil {
		return false
	}
	return !ts.depth || ts.depthTex != nil
}

// ensureTargets creates or recreates the attachments if the requested
// dimensions differ from the current size. On failure every attachment is
// released.
func (ts *targetSet) ensureTargets(device hal.Device, w, h uint32) error {
	if ts.ready(w, h) {
		return nil
	}
	ts.destroyTargets(device)

	labelPrefix := ts.label
	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	texels := uint64(w) * uint64(h)

	if ts.colorFormat != 0 {
		if err := ts.mem.reserve(ts.label, "color", texels*colorTexelSize); err != nil {
			return err
		}
		colorTex, err := device.CreateTexture(&hal.TextureDescriptor{
			Label:         labelPrefix + "_color",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        ts.colorFormat,
			Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
		})
		if err != nil {
			ts.destroyTargets(device)
			return fmt.Errorf("create color texture: %w", err)
		}
		ts.colorTex = colorTex

		colorView, err := device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
			Label: labelPrefix + "_color_view",
		})
		if err != nil {
			ts.destroyTargets(device)
			return fmt.Errorf("create color view: %w", err)
		}
		ts.colorView = colorView
	}

	if ts.depth {
		if err := ts.mem.reserve(ts.label, "depth", texels*depthTexelSize); err != nil {
			ts.destroyTargets(device)
			return err
		}
		depthTex, err := device.CreateTexture(&hal.TextureDescriptor{
			Label:         labelPrefix + "_depth",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        depthFormat,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			ts.destroyTargets(device)
			return fmt.Errorf("create depth texture: %w", err)
		}
		ts.depthTex = depthTex

		depthView, err := device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
			Label: labelPrefix + "_depth_view",
		})
		if err != nil {
			ts.destroyTargets(device)
			return fmt.Errorf("create depth view: %w", err)
		}
		ts.depthView = depthView
	}

	ts.width = w
	ts.height = h
	slogger().Debug("gpu: targets created", "label", labelPrefix, "width", w, "height", h, "depth", ts.depth)
	return nil
}

// destroyTargets releases all attachments and resets dimensions.
func (ts *targetSet) destroyTargets(device hal.Device) {
	if ts.mem != nil {
		ts.mem.releaseGroup(ts.label)
	}
	if ts.depthView != nil {
		device.DestroyTextureView(ts.depthView)
		ts.depthView = nil
	}
	if ts.depthTex != nil {
		device.DestroyTexture(ts.depthTex)
		ts.depthTex = nil
	}
	if ts.colorView != nil {
		device.DestroyTextureView(ts.colorView)
		ts.colorView = nil
	}
	if ts.colorTex != nil {
		device.DestroyTexture(ts.colorTex)
		ts.colorTex = nil
	}
	ts.width = 0
	ts.height = 0
}
