// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/internal/gpu"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/tutorial"
)

// openFunc returns the device to draw with and its surface format. A nil
// device with a nil error means the device is not ready yet.
type openFunc func() (*gpu.Device, gputypes.TextureFormat, error)

// target is the surface view of the frame being drawn.
type target struct {
	view hal.TextureView
	w, h uint32
}

// session connects a step to a window's draw callbacks. The renderer is
// created on the first frame that has a device.
type session struct {
	step     tutorial.Step
	pass     *g3d.Pass
	loop     *loop.Loop
	open     openFunc
	dev      *gpu.Device
	renderer *gpu.Renderer
	target   target
	err      error
}

func newSession(step tutorial.Step, width, height int, open openFunc) (*session, error) {
	pass, err := step.Pass()
	if err != nil {
		return nil, fmt.Errorf("window: %s: %w", step.Name(), err)
	}
	s := &session{step: step, pass: pass, open: open}
	s.loop = loop.New(s.render, loop.WithSize(width, height))
	return s, nil
}

func (s *session) render(f loop.Frame) error {
	return s.renderer.Render(s.target.view, s.target.w, s.target.h, s.step.Uniforms(f))
}

// draw handles one draw callback. view is the surface view reported by
// the window; width and height are the window size.
func (s *session) draw(view any, width, height int, sw, sh uint32) error {
	if s.loop.State() == loop.Closed {
		return s.err
	}
	if s.renderer == nil {
		ready, err := s.prepare()
		if err != nil {
			return s.fail(err)
		}
		if !ready {
			// Ask for another frame so the device is polled again.
			return s.loop.AboutToWait()
		}
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	if f := s.loop.Frame(); f.Width != width || f.Height != height {
		if err := s.loop.Resize(width, height); err != nil {
			return s.fail(err)
		}
	}

	tv := surfaceView(view)
	if tv == nil {
		return s.fail(fmt.Errorf("%w: no surface view", ErrSurface))
	}
	s.target = target{view: tv, w: sw, h: sh}
	if err := s.loop.Redraw(); err != nil {
		return s.fail(err)
	}
	// The frame is submitted and the window goes back to waiting.
	return s.loop.AboutToWait()
}

// halViewer is implemented by *wgpu.TextureView, the view gogpu hands to
// draw callbacks.
type halViewer interface {
	HalTextureView() hal.TextureView
}

// surfaceView returns the HAL view behind view, or nil.
func surfaceView(view any) hal.TextureView {
	switch v := view.(type) {
	case halViewer:
		return v.HalTextureView()
	case hal.TextureView:
		return v
	}
	return nil
}

// wantsRedraw reports whether the window should schedule another frame:
// the loop asked for one and the animation is running.
func (s *session) wantsRedraw() bool {
	return s.err == nil && s.loop.State() != loop.Closed && !s.loop.Paused() && s.loop.RedrawRequested()
}

func (s *session) prepare() (bool, error) {
	dev, format, err := s.open()
	if err != nil {
		return false, err
	}
	if dev == nil {
		return false, nil
	}
	r := gpu.NewRenderer(dev, format)
	if err := r.Prepare(s.pass); err != nil {
		r.Destroy()
		dev.Close()
		return false, fmt.Errorf("window: prepare %s: %w", s.step.Name(), err)
	}
	s.dev, s.renderer = dev, r
	g3d.Logger().Info("window: step prepared", "step", s.step.Name(), "device", dev.Name())
	return true, nil
}

func (s *session) fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	s.loop.Close()
	return s.err
}

// togglePause pauses or resumes the animation and reports whether it is
// now paused.
func (s *session) togglePause() bool {
	if s.loop.Paused() {
		s.loop.Resume()
	} else {
		s.loop.Pause()
	}
	g3d.Logger().Debug("window: pause toggled", "paused", s.loop.Paused())
	return s.loop.Paused()
}

// close closes the loop and releases the step's GPU resources. The
// borrowed device stays with the window.
func (s *session) close() {
	s.loop.Close()
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.dev != nil {
		s.dev.Close()
		s.dev = nil
	}
}
