// Package scene owns the per-object state of the floating rectangles: their
// fixed geometry and colors, and the kinematic state advanced every tick.
package scene

import (
	"math"
	"time"

	"github.com/iburimskiy/floating-rectangles/internal/config"
)

// RGBA is a straight (non-premultiplied) color. Components are not clamped;
// the opacity range reaches past 1.
type RGBA struct {
	R, G, B, A float64
}

// Object is one rectangle.
type Object struct {
	HalfLength float64
	HalfWidth  float64
	Depth      float64
	Colors     [4]RGBA // one per strip corner

	X, Y     float64
	Rotation float64 // degrees, unbounded

	VX, VY float64 // units per second
	Spin   float64 // quarter turns per second
}

// Bounds holds the per-axis wraparound thresholds.
type Bounds struct {
	X, Y float64
}

// NewBounds derives the thresholds so an object at its largest pulse is
// fully off screen before it wraps.
func NewBounds(c config.Config) Bounds {
	reach := c.Reach()
	return Bounds{
		X: c.MaxInit.X + reach,
		Y: c.MaxInit.Y + reach,
	}
}

// Scene is the kinematic state store for all objects.
type Scene struct {
	Objects []Object
	Bounds  Bounds
}

// New draws every object independently from src.
//
// Draws are taken in a fixed order: x for all objects, y for all, rotation
// for all, then the three speeds the same way, then per object its length,
// width and four corner colors.
func New(c config.Config, src Source) *Scene {
	objs := make([]Object, c.Objects)

	for i := range objs {
		objs[i].X = symmetric(src, c.MaxInit.X)
	}
	for i := range objs {
		objs[i].Y = symmetric(src, c.MaxInit.Y)
	}
	for i := range objs {
		objs[i].Rotation = symmetric(src, c.MaxInit.Rotation)
	}
	for i := range objs {
		objs[i].VX = symmetric(src, c.MaxSpeed.X)
	}
	for i := range objs {
		objs[i].VY = symmetric(src, c.MaxSpeed.Y)
	}
	for i := range objs {
		objs[i].Spin = symmetric(src, c.MaxSpeed.Rotation)
	}

	for i := range objs {
		o := &objs[i]
		o.HalfLength = between(src, c.Length)
		o.HalfWidth = between(src, c.Width)
		o.Depth = c.Depth
		for k := range o.Colors {
			o.Colors[k] = RGBA{
				R: src.Float64(),
				G: src.Float64(),
				B: src.Float64(),
				A: between(src, c.Opacity),
			}
		}
	}

	return &Scene{Objects: objs, Bounds: NewBounds(c)}
}

// Advance moves every object by elapsed wall time. Positions wrap to the
// opposite boundary, keeping their velocity; rotation accumulates freely.
func (s *Scene) Advance(elapsed time.Duration) {
	dt := float64(elapsed) / float64(time.Second)
	for i := range s.Objects {
		o := &s.Objects[i]
		o.X = Wrap(o.X+o.VX*dt, s.Bounds.X)
		o.Y = Wrap(o.Y+o.VY*dt, s.Bounds.Y)
		o.Rotation += 90 * o.Spin * dt
	}
}

// Wrap folds v into [-threshold, threshold]. A value threshold+d lands on
// -threshold+d; overshoots longer than one span fold as many times as needed.
// threshold must be positive; Config.Validate rejects configs whose bounds
// are not.
func Wrap(v, threshold float64) float64 {
	span := 2 * threshold
	switch {
	case v > threshold:
		v -= span * math.Ceil((v-threshold)/span)
	case v < -threshold:
		v += span * math.Ceil((-threshold-v)/span)
	}
	return v
}

// Quad returns the object's position buffer: the four corners of a
// triangle strip at the object's depth.
func Quad(o Object) [4][3]float64 {
	w, l, z := o.HalfWidth, o.HalfLength, -o.Depth
	return [4][3]float64{
		{w, l, z},
		{-w, l, z},
		{w, -l, z},
		{-w, -l, z},
	}
}
