// Package tutorial defines the six rendering steps of the tutorial as
// GPU-agnostic values.
//
// A [Step] describes its draw once, as a [g3d.Pass], and produces the
// uniform bytes for each frame of the loop. Renderers (the window
// integration, the headless CLI) own all device state; steps never touch
// the GPU.
//
//	step, err := tutorial.ByName("teapot")
//	pass, err := step.Pass()
//	...
//	uniforms := step.Uniforms(frame)
package tutorial
