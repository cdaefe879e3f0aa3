package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/floating-rectangles/internal/scene"
)

// Buffers are the per-object vertex attributes, built once from a scene.
type Buffers struct {
	Positions [][4]mgl32.Vec3
	Colors    [][4]mgl32.Vec4
}

// NewBuffers uploads every object's strip corners and corner colors.
// Colors are clamped to [0, 1] the way a float color attribute reaches the
// framebuffer.
func NewBuffers(s *scene.Scene) *Buffers {
	b := &Buffers{
		Positions: make([][4]mgl32.Vec3, len(s.Objects)),
		Colors:    make([][4]mgl32.Vec4, len(s.Objects)),
	}
	for i, o := range s.Objects {
		for k, p := range scene.Quad(o) {
			b.Positions[i][k] = mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
		}
		for k, c := range o.Colors {
			b.Colors[i][k] = mgl32.Vec4{
				float32(clamp01(c.R)),
				float32(clamp01(c.G)),
				float32(clamp01(c.B)),
				float32(clamp01(c.A)),
			}
		}
	}
	return b
}

// Len is the number of objects buffered.
func (b *Buffers) Len() int { return len(b.Positions) }

// Program is the vertex stage: clip = Projection * ModelView * (pos, 1),
// then the perspective divide and the viewport transform.
type Program struct {
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4

	Width, Height float32
}

// SetUniforms uploads the matrix pair used by the next draw.
func (p *Program) SetUniforms(mv, proj mgl32.Mat4) {
	p.ModelView = mv
	p.Projection = proj
}

// Viewport sets the window size in pixels.
func (p *Program) Viewport(width, height int) {
	p.Width, p.Height = float32(width), float32(height)
}

// Aspect is the viewport width/height ratio.
func (p *Program) Aspect() float64 {
	if p.Height == 0 {
		return 1
	}
	return float64(p.Width) / float64(p.Height)
}

// Vertex runs the vertex stage for one corner, passing color through
// premultiplied.
func (p *Program) Vertex(pos mgl32.Vec3, col mgl32.Vec4) Vertex {
	clip := p.Projection.Mul4(p.ModelView).Mul4x1(pos.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	a := col.W()
	return Vertex{
		X: (ndc.X() + 1) * 0.5 * p.Width,
		Y: (1 - ndc.Y()) * 0.5 * p.Height,
		R: col.X() * a,
		G: col.Y() * a,
		B: col.Z() * a,
		A: a,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
