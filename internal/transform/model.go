package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pulse modulates an object's scale by its rotation. The phase
// Frequency*rotation is taken in degrees, so the pulse repeats every
// 360/Frequency degrees of rotation. At the default frequency that is 7200
// degrees, a much slower breath than a radian phase, which would repeat
// every 2π/Frequency (about 126) degrees.
type Pulse struct {
	Frequency float64
	Amplitude float64
	Offset    float64
}

// Scale returns the x and y scale factors for rotation (degrees). The two
// axes are a quarter period apart, which gives the breathing shape.
func (p Pulse) Scale(rotation float64) (sx, sy float64) {
	phase := p.Frequency * rotation * math.Pi / 180
	return p.Offset + p.Amplitude*math.Sin(phase), p.Offset + p.Amplitude*math.Cos(phase)
}

// Period is the rotation, in degrees, after which Scale repeats.
func (p Pulse) Period() float64 { return 360 / p.Frequency }

// Model composes an object's transform onto the stack's current matrix:
// translate to (x, y), pulse-scale, then rotate about z. Scale comes before
// rotation, so the pulse stretches the already rotated rectangle.
func Model(s *Stack, x, y, rotation float64, p Pulse) {
	sx, sy := p.Scale(rotation)
	s.Translate(float32(x), float32(y), 0)
	s.Scale(float32(sx), float32(sy), 1)
	s.RotateZ(float32(rotation * math.Pi / 180))
}

// Perspective returns a projection with a vertical field of view in degrees.
func Perspective(fovDegrees, aspect, near, far float64) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(fovDegrees)), float32(aspect), float32(near), float32(far))
}
