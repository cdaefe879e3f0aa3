// Package render draws a scene through a fixed two-stage pipeline: a vertex
// stage that projects each object's strip into window pixels, and a device
// whose fragment shader writes the interpolated vertex color.
package render

import "errors"

// ErrDeviceUnavailable is returned when there is no graphics device to draw
// on. Nothing is drawn once it is reported.
var ErrDeviceUnavailable = errors.New("render: graphics device unavailable")

// Vertex is a strip corner in window pixels with premultiplied color.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Device is the graphics collaborator the renderer drives.
type Device interface {
	// Clear fills the target with opaque black.
	Clear()
	// DrawStrip rasterizes a 4-vertex triangle strip (0,1,2)(1,2,3).
	DrawStrip(v [4]Vertex)
}

// StripIndices triangulates a 4-vertex strip for indexed draw APIs.
var StripIndices = [6]uint16{0, 1, 2, 1, 2, 3}
