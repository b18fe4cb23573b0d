// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"strings"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/internal/gpu"
	"github.com/gogpu/g3d/tutorial"
)

// Default window size.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// ErrSurface is returned when the window has no surface to draw into.
var ErrSurface = gpu.ErrSurface

// defaultSurfaceFormat is used when the device provider does not report
// the swapchain format.
const defaultSurfaceFormat = gputypes.TextureFormatBGRA8Unorm

type options struct {
	title         string
	width, height int
}

// Option configures Run.
type Option func(*options)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the initial window size. Non-positive sizes are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// Title returns the default window title for a step name.
func Title(step string) string {
	name := strings.NewReplacer("_", " ", "-", " ").Replace(step)
	return "g3d: " + cases.Title(language.English).String(name)
}

func newOptions(step string, opts []Option) options {
	o := options{title: Title(step), width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run opens a window, animates step until the window is closed and
// returns the first rendering error, if any. It blocks on the gogpu main
// loop.
func Run(step tutorial.Step, opts ...Option) error {
	o := newOptions(step.Name(), opts)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(o.title).
		WithSize(o.width, o.height).
		WithContinuousRender(false))

	s, err := newSession(step, o.width, o.height, providerDevice(app))
	if err != nil {
		return err
	}

	app.OnDraw(func(dc *gogpu.Context) {
		// A nil *wgpu.TextureView must reach draw as a nil interface.
		var view any
		if sv := dc.SurfaceView(); sv != nil {
			view = sv
		}
		sw, sh := dc.SurfaceSize()
		if err := s.draw(view, dc.Width(), dc.Height(), sw, sh); err != nil {
			app.Quit()
			return
		}
		if s.wantsRedraw() {
			app.RequestRedraw()
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		if !s.togglePause() {
			app.RequestRedraw()
		}
	})

	app.OnClose(func() {
		s.close()
	})

	if err := app.Run(); err != nil {
		s.close()
		return fmt.Errorf("window: %w", err)
	}
	s.close()
	return s.err
}

// surfaceFormatter is implemented by device providers that know the
// format of their swapchain.
type surfaceFormatter interface {
	SurfaceFormat() gputypes.TextureFormat
}

// providerDevice borrows the window's device. It returns a nil device
// until the window has created one.
func providerDevice(app *gogpu.App) openFunc {
	return func() (*gpu.Device, gputypes.TextureFormat, error) {
		provider := app.GPUContextProvider()
		if provider == nil {
			return nil, 0, nil
		}
		dev, err := gpu.FromProvider(provider)
		if err != nil {
			return nil, 0, err
		}
		format := defaultSurfaceFormat
		if sf, ok := any(provider).(surfaceFormatter); ok && sf.SurfaceFormat() != gputypes.TextureFormatUndefined {
			format = sf.SurfaceFormat()
		}
		g3d.Logger().Info("window: device acquired", "format", format)
		return dev, format, nil
	}
}
