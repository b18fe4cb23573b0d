// Package shapes holds the geometry drawn by the tutorial steps: the
// animated triangle in its three vertex formats and a static teapot
// built from a compact table of Bezier profiles.
package shapes
