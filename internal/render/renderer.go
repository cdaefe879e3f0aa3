package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/floating-rectangles/internal/config"
	"github.com/iburimskiy/floating-rectangles/internal/scene"
	"github.com/iburimskiy/floating-rectangles/internal/transform"
)

// Pass selects which attributes a render pass binds.
type Pass int

const (
	// PositionPass binds positions only. Its color comes from whatever color
	// buffer the last ColorPass left bound.
	PositionPass Pass = iota
	// ColorPass clears the target and binds positions and colors.
	ColorPass
)

func (p Pass) String() string {
	switch p {
	case PositionPass:
		return "position"
	case ColorPass:
		return "color"
	default:
		return fmt.Sprintf("Pass(%d)", int(p))
	}
}

// Renderer draws a scene's objects. It owns the model-view stack shared by
// every object of a pass.
type Renderer struct {
	Stack   *transform.Stack
	Program Program
	Buffers *Buffers
	Pulse   transform.Pulse

	FieldOfView float64
	Near, Far   float64
	Duplicate   bool

	bound int // index of the bound color buffer, -1 for none
}

// NewRenderer allocates the buffers for s once.
func NewRenderer(c config.Config, s *scene.Scene) *Renderer {
	r := &Renderer{
		Stack:   transform.NewStack(),
		Buffers: NewBuffers(s),
		Pulse: transform.Pulse{
			Frequency: c.PulseFrequency,
			Amplitude: c.PulseAmplitude,
			Offset:    c.PulseOffset,
		},
		FieldOfView: c.FieldOfView,
		Near:        c.Near,
		Far:         c.Far,
		Duplicate:   c.DuplicatePass,
		bound:       -1,
	}
	r.Program.Viewport(c.WindowWidth, c.WindowHeight)
	return r
}

// Frame draws one frame: the position pass, when duplicate passes are on,
// followed by the color pass.
func (r *Renderer) Frame(dev Device, s *scene.Scene) error {
	if r.Duplicate {
		if err := r.Render(dev, s, PositionPass); err != nil {
			return err
		}
	}
	return r.Render(dev, s, ColorPass)
}

// Render runs one pass over every object of s. The stack is back at its
// baseline when Render returns.
func (r *Renderer) Render(dev Device, s *scene.Scene, pass Pass) error {
	if dev == nil {
		return ErrDeviceUnavailable
	}
	if len(s.Objects) != r.Buffers.Len() {
		return fmt.Errorf("render: scene has %d objects, buffers hold %d", len(s.Objects), r.Buffers.Len())
	}

	if pass == ColorPass {
		dev.Clear()
	}
	proj := transform.Perspective(r.FieldOfView, r.Program.Aspect(), r.Near, r.Far)
	r.Stack.Load(mgl32.Ident4())

	for i := range s.Objects {
		o := &s.Objects[i]
		r.Stack.Save(func() {
			transform.Model(r.Stack, o.X, o.Y, o.Rotation, r.Pulse)
			if pass == ColorPass {
				r.bound = i
			}
			if r.bound < 0 {
				return
			}
			r.Program.SetUniforms(r.Stack.Top(), proj)
			dev.DrawStrip(r.strip(i, r.bound))
		})
	}
	return nil
}

func (r *Renderer) strip(pos, col int) [4]Vertex {
	var v [4]Vertex
	for k := range v {
		v[k] = r.Program.Vertex(r.Buffers.Positions[pos][k], r.Buffers.Colors[col][k])
	}
	return v
}
