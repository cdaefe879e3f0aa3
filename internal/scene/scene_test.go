package scene

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/floating-rectangles/internal/config"
)

const eps = 1e-9

// scripted replays draws in order and then repeats fallback.
type scripted struct {
	draws    []float64
	fallback float64
}

func (s *scripted) Float64() float64 {
	if len(s.draws) == 0 {
		return s.fallback
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func TestNewBounds(t *testing.T) {
	c := config.Default()
	b := NewBounds(c)
	reach := 1 + (2.0/3.0)*math.Hypot(0.6, 0.6)
	if math.Abs(b.X-(7.11+reach)) > eps {
		t.Errorf("Bounds.X = %v, want %v", b.X, 7.11+reach)
	}
	if math.Abs(b.Y-(3.296+reach)) > eps {
		t.Errorf("Bounds.Y = %v, want %v", b.Y, 3.296+reach)
	}
}

func TestNewRanges(t *testing.T) {
	c := config.Default()
	s := New(c, NewSource(42))
	if len(s.Objects) != c.Objects {
		t.Fatalf("len(Objects) = %d, want %d", len(s.Objects), c.Objects)
	}
	for i, o := range s.Objects {
		if math.Abs(o.X) > c.MaxInit.X || math.Abs(o.Y) > c.MaxInit.Y || math.Abs(o.Rotation) > c.MaxInit.Rotation {
			t.Errorf("object %d initial state (%v, %v, %v) outside range", i, o.X, o.Y, o.Rotation)
		}
		if math.Abs(o.VX) > c.MaxSpeed.X || math.Abs(o.VY) > c.MaxSpeed.Y || math.Abs(o.Spin) > c.MaxSpeed.Rotation {
			t.Errorf("object %d velocity (%v, %v, %v) outside range", i, o.VX, o.VY, o.Spin)
		}
		if o.HalfLength < c.Length.Min || o.HalfLength > c.Length.Max {
			t.Errorf("object %d half length %v outside range", i, o.HalfLength)
		}
		if o.HalfWidth < c.Width.Min || o.HalfWidth > c.Width.Max {
			t.Errorf("object %d half width %v outside range", i, o.HalfWidth)
		}
		if o.Depth != c.Depth {
			t.Errorf("object %d depth = %v, want %v", i, o.Depth, c.Depth)
		}
		for k, col := range o.Colors {
			if col.A < c.Opacity.Min || col.A > c.Opacity.Max {
				t.Errorf("object %d corner %d alpha %v outside opacity range", i, k, col.A)
			}
		}
	}
}

func TestNewSeedIsReproducible(t *testing.T) {
	c := config.Default()
	a := New(c, NewSource(9))
	b := New(c, NewSource(9))
	for i := range a.Objects {
		if a.Objects[i] != b.Objects[i] {
			t.Fatalf("object %d differs between runs with the same seed", i)
		}
	}
}

func TestWrapExact(t *testing.T) {
	const threshold = 3.0
	for _, d := range []float64{1e-6, 0.25, 1, 2.5, 5.999, 6} {
		if got, want := Wrap(threshold+d, threshold), -threshold+d; math.Abs(got-want) > eps {
			t.Errorf("Wrap(%v) = %v, want %v", threshold+d, got, want)
		}
		if got, want := Wrap(-threshold-d, threshold), threshold-d; math.Abs(got-want) > eps {
			t.Errorf("Wrap(%v) = %v, want %v", -threshold-d, got, want)
		}
	}
}

func TestWrapInside(t *testing.T) {
	for _, v := range []float64{-3, -1.5, 0, 2.9, 3} {
		if got := Wrap(v, 3); got != v {
			t.Errorf("Wrap(%v) = %v, want unchanged", v, got)
		}
	}
}

func TestWrapLongGap(t *testing.T) {
	got := Wrap(3+6*4+0.5, 3)
	if math.Abs(got-(-2.5)) > eps {
		t.Errorf("Wrap() = %v, want -2.5", got)
	}
}

func TestAdvanceKeepsObjectsInBounds(t *testing.T) {
	c := config.Default()
	c.MaxSpeed = config.Axes{X: 40, Y: 40, Rotation: 3}
	s := New(c, NewSource(1))
	for tick := 0; tick < 500; tick++ {
		s.Advance(time.Duration(tick%37) * 9 * time.Millisecond)
		for i, o := range s.Objects {
			if math.Abs(o.X) > s.Bounds.X || math.Abs(o.Y) > s.Bounds.Y {
				t.Fatalf("tick %d object %d at (%v, %v) outside bounds %+v", tick, i, o.X, o.Y, s.Bounds)
			}
		}
	}
}

func TestAdvanceBoundedWithoutPulse(t *testing.T) {
	c, err := config.Parse("rects", []string{"-pulse-amp", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c.MaxSpeed.X = 30
	s := New(c, NewSource(9))
	if s.Bounds.X <= 0 || s.Bounds.Y <= 0 {
		t.Fatalf("Bounds = %+v, want positive", s.Bounds)
	}
	for tick := 0; tick < 100; tick++ {
		s.Advance(time.Second)
		for i, o := range s.Objects {
			if math.Abs(o.X) > s.Bounds.X || math.Abs(o.Y) > s.Bounds.Y {
				t.Fatalf("tick %d object %d at (%v, %v) outside bounds %+v", tick, i, o.X, o.Y, s.Bounds)
			}
		}
	}
}

func TestAdvancePreservesVelocityAcrossWrap(t *testing.T) {
	s := &Scene{
		Objects: []Object{{X: 2.9, VX: 1}},
		Bounds:  Bounds{X: 3, Y: 3},
	}
	s.Advance(500 * time.Millisecond)
	o := s.Objects[0]
	if math.Abs(o.X-(-2.6)) > eps {
		t.Errorf("X = %v, want -2.6", o.X)
	}
	if o.VX != 1 {
		t.Errorf("VX = %v, want 1", o.VX)
	}
}

func TestScriptedScenario(t *testing.T) {
	c := config.Default()
	c.Objects = 2
	src := &scripted{
		draws: []float64{
			0.5, 0.5, // x
			0.5, 0.5, // y
			0.5, 0.5, // rotation
			1, 0.5, // vx
			1, 0.5, // vy
			1, 0.5, // spin
		},
		fallback: 0.5,
	}
	s := New(c, src)

	first := s.Objects[0]
	if first.X != 0 || first.Y != 0 || first.Rotation != 0 {
		t.Fatalf("start = (%v, %v, %v), want origin", first.X, first.Y, first.Rotation)
	}
	if first.VX != 1 || first.VY != 1 || first.Spin != 0.5 {
		t.Fatalf("velocity = (%v, %v, %v), want (1, 1, 0.5)", first.VX, first.VY, first.Spin)
	}

	s.Advance(1000 * time.Millisecond)

	got := s.Objects[0]
	if math.Abs(got.X-1) > eps || math.Abs(got.Y-1) > eps {
		t.Errorf("position = (%v, %v), want (1, 1)", got.X, got.Y)
	}
	if math.Abs(got.Rotation-45) > eps {
		t.Errorf("rotation = %v, want 45", got.Rotation)
	}

	still := s.Objects[1]
	if still.X != 0 || still.Y != 0 || still.Rotation != 0 {
		t.Errorf("resting object moved to (%v, %v, %v)", still.X, still.Y, still.Rotation)
	}
}

func TestQuad(t *testing.T) {
	q := Quad(Object{HalfWidth: 0.2, HalfLength: 0.5, Depth: 8})
	want := [4][3]float64{
		{0.2, 0.5, -8},
		{-0.2, 0.5, -8},
		{0.2, -0.5, -8},
		{-0.2, -0.5, -8},
	}
	if q != want {
		t.Errorf("Quad() = %v, want %v", q, want)
	}
}
