// Package transform builds per-object model-view matrices on a scoped
// matrix stack.
package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnderflow is the panic value of a Pop without a matching Push.
var ErrUnderflow = errors.New("transform: pop from empty matrix stack")

// Stack is the current model-view matrix plus the snapshots saved by Push.
// It is not safe for concurrent use.
type Stack struct {
	top   mgl32.Mat4
	saved []mgl32.Mat4
}

// NewStack returns a stack whose current matrix is the identity.
func NewStack() *Stack {
	return &Stack{top: mgl32.Ident4(), saved: make([]mgl32.Mat4, 0, 4)}
}

// Top returns the current matrix.
func (s *Stack) Top() mgl32.Mat4 { return s.top }

// Depth returns the number of saved snapshots.
func (s *Stack) Depth() int { return len(s.saved) }

// Load replaces the current matrix.
func (s *Stack) Load(m mgl32.Mat4) { s.top = m }

// Mul post-multiplies the current matrix, so m applies to vertices first.
func (s *Stack) Mul(m mgl32.Mat4) { s.top = s.top.Mul4(m) }

func (s *Stack) Translate(x, y, z float32) { s.Mul(mgl32.Translate3D(x, y, z)) }

func (s *Stack) Scale(x, y, z float32) { s.Mul(mgl32.Scale3D(x, y, z)) }

// RotateZ rotates about the depth axis by radians.
func (s *Stack) RotateZ(radians float32) { s.Mul(mgl32.HomogRotate3DZ(radians)) }

// Push saves a copy of the current matrix.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.top)
}

// Pop restores the matrix saved by the matching Push. It panics with
// ErrUnderflow when nothing was pushed.
func (s *Stack) Pop() {
	n := len(s.saved)
	if n == 0 {
		panic(ErrUnderflow)
	}
	s.top = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Save runs fn between a Push and its Pop. The matrix is restored however fn
// exits, panics included.
func (s *Stack) Save(fn func()) {
	s.Push()
	defer s.Pop()
	fn()
}
