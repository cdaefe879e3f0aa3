// Package anim drives a scene through time: a two-state driver that
// advances the scene by wall-clock time, and an explicit frame loop.
package anim

import (
	"fmt"
	"time"

	"github.com/iburimskiy/floating-rectangles/internal/scene"
)

// State of the driver. There is no way back from Running.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver advances a scene once per tick while running.
type Driver struct {
	scene *scene.Scene
	clock Clock
	state State

	started time.Time
	last    time.Time
	primed  bool
	ticks   int
}

// NewDriver returns a stopped driver for s. A nil clock uses SystemClock.
func NewDriver(s *scene.Scene, clock Clock) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{scene: s, clock: clock}
}

// Start moves the driver to Running. It reports whether this call made the
// transition.
func (d *Driver) Start() bool {
	if d.state == Running {
		return false
	}
	d.state = Running
	return true
}

func (d *Driver) State() State { return d.state }

// Ticks counts the ticks that advanced the scene.
func (d *Driver) Ticks() int { return d.ticks }

// Uptime is the clock time covered since the first running tick.
func (d *Driver) Uptime() time.Duration {
	if !d.primed {
		return 0
	}
	return d.last.Sub(d.started)
}

// Tick advances the scene by the time since the previous tick. It does
// nothing while stopped, and the first running tick only records the time.
func (d *Driver) Tick() {
	if d.state != Running {
		return
	}
	now := d.clock.Now()
	if !d.primed {
		d.primed = true
		d.started, d.last = now, now
		return
	}
	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed <= 0 {
		return
	}
	d.scene.Advance(elapsed)
	d.ticks++
}
