// Package gpu turns g3d.Pass values into wgpu HAL resources and draws
// them, either into a window surface view or into an offscreen texture
// that is read back as an image.
//
// A Renderer is prepared once per pass and then rendered once per frame
// with fresh uniform bytes. Render targets (depth buffer, offscreen
// color) are recreated only when the frame size changes.
//
// The package uses the HAL directly: shader modules from WGSL, an explicit
// command encoder per frame, and a fence wait before returning, so a
// frame is complete when Render returns.
package gpu
