// Package loop is the per-frame state machine shared by the windowed
// examples and the headless renderer.
//
// A Loop is driven by events: Redraw advances the frame state and calls
// the render function, Resize records the surface size, Close ends the
// loop. The frame state is an explicit value threaded through Advance,
// never hidden in closures.
package loop

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/g3d"
)

// DefaultStep is the animation time added per rendered frame.
const DefaultStep float32 = 0.02

var (
	// ErrClosed is returned for events delivered after Close.
	ErrClosed = errors.New("loop: closed")

	// ErrReentrant is returned for a redraw requested from inside the
	// render function.
	ErrReentrant = errors.New("loop: redraw while rendering")
)

// State is the lifecycle state of a Loop.
type State int

const (
	Idle State = iota
	Rendering
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Rendering:
		return "Rendering"
	case Closed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Frame is the state handed to the render function.
type Frame struct {
	// Index counts rendered frames, starting at 1 for the first.
	Index uint64

	// T is the animation time.
	T float32

	// Width and Height are the last reported surface size.
	Width, Height int
}

// Advance returns the next frame: Index+1 and T+step.
func Advance(f Frame, step float32) Frame {
	f.Index++
	f.T += step
	return f
}

// RenderFunc draws one frame.
type RenderFunc func(Frame) error

// Loop owns the frame state. It is not safe for concurrent use; events
// come from a single goroutine, as window callbacks do.
type Loop struct {
	render RenderFunc
	step   float32
	state  State
	frame  Frame
	paused bool
	redraw bool
	err    error
}

// Option configures a Loop.
type Option func(*Loop)

// WithStep sets the time added per frame.
func WithStep(step float32) Option {
	return func(l *Loop) { l.step = step }
}

// WithSize sets the initial surface size.
func WithSize(w, h int) Option {
	return func(l *Loop) { l.frame.Width, l.frame.Height = w, h }
}

// New returns an Idle loop calling render on every redraw.
func New(render RenderFunc, opts ...Option) *Loop {
	l := &Loop{render: render, step: DefaultStep}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Frame returns the state of the last rendered frame.
func (l *Loop) Frame() Frame { return l.frame }

// Err returns the error that closed the loop, if any.
func (l *Loop) Err() error { return l.err }

// Pause stops the animation clock. Redraws still render, with T frozen.
func (l *Loop) Pause() { l.paused = true }

// Resume restarts the animation clock.
func (l *Loop) Resume() { l.paused = false }

// Paused reports whether the clock is stopped.
func (l *Loop) Paused() bool { return l.paused }

// RedrawRequested reports whether AboutToWait asked for a redraw since
// the last one.
func (l *Loop) RedrawRequested() bool { return l.redraw }

// Redraw advances the frame and renders it. A render error closes the
// loop and is returned.
func (l *Loop) Redraw() error {
	switch l.state {
	case Closed:
		return ErrClosed
	case Rendering:
		return ErrReentrant
	}

	step := l.step
	if l.paused {
		step = 0
	}
	l.frame = Advance(l.frame, step)
	l.redraw = false
	l.state = Rendering

	err := l.render(l.frame)
	if err != nil {
		l.state = Closed
		l.err = fmt.Errorf("loop: frame %d: %w", l.frame.Index, err)
		g3d.Logger().Error("loop: render failed", "frame", l.frame.Index, "err", err)
		return l.err
	}
	if l.state == Closed {
		// Closed from inside the render function.
		return nil
	}
	l.state = Idle
	return nil
}

// Resize records a new surface size for the following frames.
func (l *Loop) Resize(w, h int) error {
	if l.state == Closed {
		return ErrClosed
	}
	l.frame.Width, l.frame.Height = w, h
	g3d.Logger().Debug("loop: resize", "width", w, "height", h)
	return nil
}

// AboutToWait marks a redraw as requested.
func (l *Loop) AboutToWait() error {
	if l.state == Closed {
		return ErrClosed
	}
	l.redraw = true
	return nil
}

// Close moves the loop to Closed. Closing twice is a no-op.
func (l *Loop) Close() {
	if l.state != Closed {
		g3d.Logger().Debug("loop: closed", "frames", l.frame.Index)
	}
	l.state = Closed
}

// Handle dispatches one event.
func (l *Loop) Handle(ev Event) error {
	switch ev.Kind {
	case EventRedraw:
		return l.Redraw()
	case EventResize:
		return l.Resize(ev.Width, ev.Height)
	case EventAboutToWait:
		return l.AboutToWait()
	case EventClose:
		if l.state == Closed {
			return ErrClosed
		}
		l.Close()
		return nil
	default:
		return fmt.Errorf("loop: unknown event %v", ev.Kind)
	}
}

// Run handles events from ch until Close, until ch is closed or until
// ctx is done. It returns nil after a Close event or a closed channel,
// the render error that closed the loop, or ctx.Err().
func (l *Loop) Run(ctx context.Context, ch <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				l.Close()
				return nil
			}
			if err := l.Handle(ev); err != nil {
				return err
			}
			if l.state == Closed {
				return l.err
			}
		}
	}
}
