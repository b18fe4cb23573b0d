package loop

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestAdvance(t *testing.T) {
	f := Frame{Index: 3, T: 1, Width: 10, Height: 20}
	got := Advance(f, 0.5)
	want := Frame{Index: 4, T: 1.5, Width: 10, Height: 20}
	if got != want {
		t.Errorf("Advance() = %+v, want %+v", got, want)
	}
	if f.Index != 3 {
		t.Error("Advance modified its argument")
	}
}

func TestRedrawAdvancesTime(t *testing.T) {
	var frames []Frame
	l := New(func(f Frame) error {
		frames = append(frames, f)
		return nil
	}, WithSize(1024, 768))

	for i := 0; i < 3; i++ {
		if err := l.Redraw(); err != nil {
			t.Fatalf("Redraw() error = %v", err)
		}
	}
	if len(frames) != 3 {
		t.Fatalf("rendered %d frames, want 3", len(frames))
	}
	// Time is advanced before the first frame is rendered.
	if frames[0].Index != 1 || math.Abs(float64(frames[0].T-DefaultStep)) > 1e-7 {
		t.Errorf("first frame = %+v, want index 1, t %v", frames[0], DefaultStep)
	}
	if math.Abs(float64(frames[2].T-3*DefaultStep)) > 1e-6 {
		t.Errorf("third frame t = %v, want %v", frames[2].T, 3*DefaultStep)
	}
	if frames[2].Width != 1024 || frames[2].Height != 768 {
		t.Errorf("frame size = %dx%d", frames[2].Width, frames[2].Height)
	}
	if l.State() != Idle {
		t.Errorf("state = %v, want Idle", l.State())
	}
}

func TestResize(t *testing.T) {
	var last Frame
	l := New(func(f Frame) error { last = f; return nil })
	if err := l.Handle(Resize(640, 480)); err != nil {
		t.Fatal(err)
	}
	if l.State() != Idle {
		t.Errorf("state after resize = %v, want Idle", l.State())
	}
	if err := l.Handle(Redraw); err != nil {
		t.Fatal(err)
	}
	if last.Width != 640 || last.Height != 480 {
		t.Errorf("frame size = %dx%d, want 640x480", last.Width, last.Height)
	}
}

func TestCloseIsTerminal(t *testing.T) {
	calls := 0
	l := New(func(Frame) error { calls++; return nil })
	if err := l.Handle(Close); err != nil {
		t.Fatal(err)
	}
	for _, ev := range []Event{Redraw, Resize(1, 1), AboutToWait, Close} {
		if err := l.Handle(ev); !errors.Is(err, ErrClosed) {
			t.Errorf("Handle(%v) after close = %v, want ErrClosed", ev.Kind, err)
		}
	}
	if calls != 0 {
		t.Errorf("render called %d times after close", calls)
	}
	l.Close()
	if l.State() != Closed {
		t.Errorf("state = %v, want Closed", l.State())
	}
}

func TestRenderErrorCloses(t *testing.T) {
	boom := errors.New("device lost")
	l := New(func(Frame) error { return boom })
	err := l.Redraw()
	if !errors.Is(err, boom) {
		t.Fatalf("Redraw() = %v, want %v", err, boom)
	}
	if l.State() != Closed || !errors.Is(l.Err(), boom) {
		t.Errorf("state = %v, err = %v", l.State(), l.Err())
	}
}

func TestReentrantRedraw(t *testing.T) {
	var inner error
	var l *Loop
	l = New(func(Frame) error {
		if l.State() != Rendering {
			t.Errorf("state inside render = %v, want Rendering", l.State())
		}
		inner = l.Redraw()
		return nil
	})
	if err := l.Redraw(); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(inner, ErrReentrant) {
		t.Errorf("nested Redraw() = %v, want ErrReentrant", inner)
	}
	if l.Frame().Index != 1 {
		t.Errorf("index = %d, want 1", l.Frame().Index)
	}
}

func TestCloseFromRender(t *testing.T) {
	var l *Loop
	l = New(func(Frame) error {
		l.Close()
		return nil
	})
	if err := l.Redraw(); err != nil {
		t.Fatal(err)
	}
	if l.State() != Closed {
		t.Errorf("state = %v, want Closed", l.State())
	}
}

func TestCloseFromRenderKeepsError(t *testing.T) {
	boom := errors.New("surface lost")
	var l *Loop
	l = New(func(Frame) error {
		l.Close()
		return boom
	})
	if err := l.Redraw(); !errors.Is(err, boom) {
		t.Fatalf("Redraw() = %v, want %v", err, boom)
	}
	if l.State() != Closed || !errors.Is(l.Err(), boom) {
		t.Errorf("state = %v, err = %v", l.State(), l.Err())
	}
}

func TestPause(t *testing.T) {
	l := New(func(Frame) error { return nil }, WithStep(1))
	_ = l.Redraw()
	l.Pause()
	_ = l.Redraw()
	if !l.Paused() || l.Frame().T != 1 || l.Frame().Index != 2 {
		t.Errorf("paused frame = %+v, want index 2 at t 1", l.Frame())
	}
	l.Resume()
	_ = l.Redraw()
	if l.Frame().T != 2 {
		t.Errorf("t after resume = %v, want 2", l.Frame().T)
	}
}

func TestAboutToWait(t *testing.T) {
	l := New(func(Frame) error { return nil })
	if l.RedrawRequested() {
		t.Error("new loop requests a redraw")
	}
	_ = l.Handle(AboutToWait)
	if !l.RedrawRequested() {
		t.Error("AboutToWait did not request a redraw")
	}
	_ = l.Handle(Redraw)
	if l.RedrawRequested() {
		t.Error("redraw did not clear the request")
	}
}

func TestRun(t *testing.T) {
	frames := 0
	l := New(func(Frame) error { frames++; return nil })
	ch := make(chan Event, 8)
	ch <- Resize(800, 600)
	ch <- Redraw
	ch <- AboutToWait
	ch <- Redraw
	ch <- Close
	ch <- Redraw

	if err := l.Run(context.Background(), ch); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
	if len(ch) != 1 {
		t.Errorf("Run consumed events after Close")
	}
}

func TestRunChannelClosed(t *testing.T) {
	l := New(func(Frame) error { return nil })
	ch := make(chan Event)
	close(ch)
	if err := l.Run(context.Background(), ch); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
	if l.State() != Closed {
		t.Errorf("state = %v, want Closed", l.State())
	}
}

func TestRunRenderError(t *testing.T) {
	boom := errors.New("lost surface")
	l := New(func(Frame) error { return boom })
	ch := make(chan Event, 1)
	ch <- Redraw
	if err := l.Run(context.Background(), ch); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want %v", err, boom)
	}
}

func TestRunContextCanceled(t *testing.T) {
	l := New(func(Frame) error { return nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx, make(chan Event)); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "Idle" || Closed.String() != "Closed" || State(9).String() != "State(9)" {
		t.Error("unexpected State strings")
	}
	if EventAboutToWait.String() != "AboutToWait" {
		t.Error("unexpected EventKind string")
	}
}
