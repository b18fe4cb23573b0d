// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window runs a tutorial step in a gogpu window.
//
// The window owns the GPU device; the step's pass is prepared on the
// device borrowed from the window on the first frame and drawn directly
// into the swapchain surface. The data flow is:
//
//	loop.Loop (frame time) -> tutorial.Step (uniforms) -> gpu.Renderer -> Surface
//
// # Usage
//
//	step, err := tutorial.ByName(tutorial.NameTeapot)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := window.Run(step); err != nil {
//		log.Fatal(err)
//	}
//
// Every drawn frame ends with loop.AboutToWait. While the loop wants a
// redraw and is not paused, the next frame is scheduled with
// App.RequestRedraw. Space pauses and resumes the animation. Closing the window closes the
// loop and releases the GPU resources of the step.
//
// # Thread Safety
//
// Run must be called from the main goroutine. All callbacks run on the
// gogpu main thread.
package window
