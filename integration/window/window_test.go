// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/internal/gpu"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/shader"
	"github.com/gogpu/g3d/tutorial"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		step, want string
	}{
		{tutorial.NameTeapot, "g3d: Teapot"},
		{tutorial.NameClear, "g3d: Clear"},
		{"obj_teapot", "g3d: Obj Teapot"},
		{"color-triangle", "g3d: Color Triangle"},
	}
	for _, tt := range tests {
		if got := Title(tt.step); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.step, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	o := newOptions("triangle", nil)
	if o.title != "g3d: Triangle" || o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("defaults = %+v", o)
	}

	o = newOptions("triangle", []Option{WithTitle("demo"), WithSize(640, 480)})
	if o.title != "demo" || o.width != 640 || o.height != 480 {
		t.Errorf("with options = %+v", o)
	}

	o = newOptions("triangle", []Option{WithSize(0, 480)})
	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("WithSize(0, 480) changed size to %dx%d", o.width, o.height)
	}
}

// noopOpener returns an openFunc backed by the noop HAL backend and a
// surface view to draw into.
func noopOpener(t *testing.T) (openFunc, hal.TextureView) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	device := openDev.Device

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "test_surface",
		Size:          hal.Extent3D{Width: 64, Height: 48, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatal(err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: "test_surface_view"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		device.DestroyTextureView(view)
		device.DestroyTexture(tex)
		device.Destroy()
		instance.Destroy()
	})

	open := func() (*gpu.Device, gputypes.TextureFormat, error) {
		return gpu.Wrap(device, openDev.Queue), gputypes.TextureFormatBGRA8Unorm, nil
	}
	return open, view
}

func TestSessionDraw(t *testing.T) {
	open, view := noopOpener(t)
	s, err := newSession(tutorial.Triangle(shader.Embedded()), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	defer s.close()

	for i := 0; i < 3; i++ {
		if err := s.draw(view, 64, 48, 64, 48); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
	}
	if s.renderer == nil || !s.renderer.Prepared() {
		t.Fatal("renderer not prepared after the first frame")
	}
	if f := s.loop.Frame(); f.Index != 3 {
		t.Errorf("frame index = %d, want 3", f.Index)
	}

	// A new window size reaches the loop before the frame is drawn.
	if err := s.draw(view, 32, 24, 32, 24); err != nil {
		t.Fatal(err)
	}
	if f := s.loop.Frame(); f.Width != 32 || f.Height != 24 {
		t.Errorf("frame size = %dx%d, want 32x24", f.Width, f.Height)
	}
}

func TestSessionWaitsForDevice(t *testing.T) {
	calls := 0
	open := func() (*gpu.Device, gputypes.TextureFormat, error) {
		calls++
		return nil, 0, nil
	}
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.draw(nil, 64, 48, 64, 48); err != nil {
		t.Errorf("draw without device = %v, want nil", err)
	}
	if calls != 1 || s.renderer != nil || s.loop.Frame().Index != 0 {
		t.Errorf("calls = %d, frame = %d: frame drawn without a device", calls, s.loop.Frame().Index)
	}
}

func TestSessionRequestsRedraw(t *testing.T) {
	open, view := noopOpener(t)
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	defer s.close()

	if s.wantsRedraw() {
		t.Error("redraw requested before the first frame")
	}
	if err := s.draw(view, 64, 48, 64, 48); err != nil {
		t.Fatal(err)
	}
	if !s.wantsRedraw() {
		t.Error("no redraw requested after a frame")
	}
	s.togglePause()
	if s.wantsRedraw() {
		t.Error("redraw requested while paused")
	}
	s.togglePause()
	s.close()
	if s.wantsRedraw() {
		t.Error("redraw requested after close")
	}
}

func TestSessionPollsForDevice(t *testing.T) {
	open := func() (*gpu.Device, gputypes.TextureFormat, error) { return nil, 0, nil }
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.draw(nil, 64, 48, 64, 48); err != nil {
		t.Fatal(err)
	}
	if !s.wantsRedraw() {
		t.Error("no redraw requested while the device is pending")
	}
}

// wrappedView stands in for *wgpu.TextureView.
type wrappedView struct {
	view hal.TextureView
}

func (w wrappedView) HalTextureView() hal.TextureView { return w.view }

func TestSessionWrappedSurfaceView(t *testing.T) {
	open, view := noopOpener(t)
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	defer s.close()

	if err := s.draw(wrappedView{view: view}, 64, 48, 64, 48); err != nil {
		t.Fatalf("draw(wrapped view) = %v", err)
	}
	if s.target.view != view || s.loop.Frame().Index != 1 {
		t.Errorf("target view %v, frame %d", s.target.view, s.loop.Frame().Index)
	}

	// A released view has no HAL view behind it.
	if err := s.draw(wrappedView{}, 64, 48, 64, 48); !errors.Is(err, ErrSurface) {
		t.Errorf("draw(released view) = %v, want ErrSurface", err)
	}
}

func TestSessionOpenError(t *testing.T) {
	open := func() (*gpu.Device, gputypes.TextureFormat, error) {
		return nil, 0, gpu.ErrNoAdapter
	}
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.draw(nil, 64, 48, 64, 48); !errors.Is(err, gpu.ErrNoAdapter) {
		t.Errorf("draw = %v, want ErrNoAdapter", err)
	}
	if s.loop.State() != loop.Closed {
		t.Errorf("state = %v, want closed", s.loop.State())
	}
	// Later callbacks report the same error without reopening.
	if err := s.draw(nil, 64, 48, 64, 48); !errors.Is(err, gpu.ErrNoAdapter) {
		t.Errorf("second draw = %v", err)
	}
}

func TestSessionNoSurface(t *testing.T) {
	open, _ := noopOpener(t)
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	defer s.close()

	if err := s.draw(nil, 64, 48, 64, 48); !errors.Is(err, ErrSurface) {
		t.Errorf("draw(nil view) = %v, want ErrSurface", err)
	}
	if s.loop.State() != loop.Closed {
		t.Errorf("state = %v, want closed", s.loop.State())
	}
}

func TestSessionPause(t *testing.T) {
	open, view := noopOpener(t)
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	defer s.close()

	if err := s.draw(view, 64, 48, 64, 48); err != nil {
		t.Fatal(err)
	}
	if !s.togglePause() {
		t.Fatal("togglePause() = false, want paused")
	}
	before := s.loop.Frame().T
	if err := s.draw(view, 64, 48, 64, 48); err != nil {
		t.Fatal(err)
	}
	if got := s.loop.Frame().T; got != before {
		t.Errorf("time advanced while paused: %v -> %v", before, got)
	}
	if s.togglePause() {
		t.Error("togglePause() = true, want resumed")
	}
}

func TestSessionClose(t *testing.T) {
	open, view := noopOpener(t)
	s, err := newSession(tutorial.Clear(), 64, 48, open)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.draw(view, 64, 48, 64, 48); err != nil {
		t.Fatal(err)
	}
	s.close()
	s.close()
	if s.renderer != nil || s.loop.State() != loop.Closed {
		t.Error("close did not release the renderer and close the loop")
	}
	if err := s.draw(view, 64, 48, 64, 48); err != nil {
		t.Errorf("draw after close = %v, want nil", err)
	}
}

func TestSessionBadStep(t *testing.T) {
	_, err := newSession(tutorial.Teapot(shader.Embedded(), g3d.Camera{}, 1), 64, 48, nil)
	if !errors.Is(err, g3d.ErrDegenerateBasis) {
		t.Errorf("newSession = %v, want ErrDegenerateBasis", err)
	}
}
