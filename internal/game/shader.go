package game

import (
	_ "embed"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/floating-rectangles/internal/render"
)

//go:embed shaders/fill.kage
var fillSource []byte

// CompileShader builds a Kage fragment shader. Failures come back as a
// *render.ShaderError holding the compiler diagnostic.
func CompileShader(name string, src []byte) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, &render.ShaderError{Name: name, Err: err}
	}
	return s, nil
}

// CompileFill builds the pass-through color shader every strip is drawn with.
func CompileFill() (*ebiten.Shader, error) {
	return CompileShader("fill", fillSource)
}

// screenDevice draws strips onto the frame's screen image.
type screenDevice struct {
	dst    *ebiten.Image
	shader *ebiten.Shader
	verts  [4]ebiten.Vertex
}

func (d *screenDevice) Clear() {
	d.dst.Fill(color.Black)
}

func (d *screenDevice) DrawStrip(v [4]render.Vertex) {
	for i, p := range v {
		d.verts[i] = ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			ColorR: p.R,
			ColorG: p.G,
			ColorB: p.B,
			ColorA: p.A,
		}
	}
	d.dst.DrawTrianglesShader(d.verts[:], render.StripIndices[:], d.shader, nil)
}
