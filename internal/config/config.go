package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Scene parameters
	ObjectCount = 50
	MinLength   = 0.15
	MaxLength   = 0.6
	MinWidth    = 0.15
	MaxWidth    = 0.6
	MinOpacity  = 0.9
	MaxOpacity  = 1.4
	SceneDepth  = 8.0

	// Projection
	FieldOfView = 45.0
	NearClip    = 0.1
	FarClip     = 100.0

	// Pulse, frequency in 1/degree
	PulseFrequency = 1.0 / 20.0
	PulseAmplitude = 2.0 / 3.0
	PulseOffset    = 1.0

	// Initial condition ranges (+/-)
	MaxInitX        = 7.11
	MaxInitY        = 3.296
	MaxInitRotation = 90.0

	MaxSpeedX    = 1.0
	MaxSpeedY    = 1.0
	MaxSpeedSpin = 0.5

	// Start chime
	ChimeFrequency = 660.0
	ChimeDuration  = 180 * time.Millisecond
	ChimeGain      = 0.25
	SampleRate     = 44100
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Axes groups per-axis values for x, y and rotation/spin.
type Axes struct {
	X, Y, Rotation float64
}

// Config holds every tunable of the scene, the window and the command.
type Config struct {
	Objects int
	Length  Range
	Width   Range
	Opacity Range
	Depth   float64

	FieldOfView float64 // degrees
	Near, Far   float64

	PulseFrequency float64
	PulseAmplitude float64
	PulseOffset    float64

	MaxInit  Axes
	MaxSpeed Axes

	WindowWidth, WindowHeight int

	Seed          uint64
	DuplicatePass bool
	Chime         bool
	LogLevel      slog.Level

	// Snapshot mode renders Frames frames offscreen, stepping the clock by
	// Step each reading, and writes the last one to Snapshot.
	Snapshot string
	Frames   int
	Step     time.Duration
}

// Default returns the stock scene: fifty rectangles in a 1024x512 window.
func Default() Config {
	return Config{
		Objects:        ObjectCount,
		Length:         Range{MinLength, MaxLength},
		Width:          Range{MinWidth, MaxWidth},
		Opacity:        Range{MinOpacity, MaxOpacity},
		Depth:          SceneDepth,
		FieldOfView:    FieldOfView,
		Near:           NearClip,
		Far:            FarClip,
		PulseFrequency: PulseFrequency,
		PulseAmplitude: PulseAmplitude,
		PulseOffset:    PulseOffset,
		MaxInit:        Axes{MaxInitX, MaxInitY, MaxInitRotation},
		MaxSpeed:       Axes{MaxSpeedX, MaxSpeedY, MaxSpeedSpin},
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		DuplicatePass:  true,
		Chime:          true,
		LogLevel:       slog.LevelInfo,
		Frames:         120,
		Step:           time.Second / 60,
	}
}

// Aspect is the viewport width/height ratio.
func (c Config) Aspect() float64 {
	return float64(c.WindowWidth) / float64(c.WindowHeight)
}

// Parse overlays command-line flags on Default and validates the result.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	c := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.IntVar(&c.Objects, "n", c.Objects, "number of rectangles")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.Float64Var(&c.FieldOfView, "fov", c.FieldOfView, "vertical field of view in degrees")
	fs.Float64Var(&c.PulseFrequency, "pulse-freq", c.PulseFrequency, "pulse frequency per degree of rotation")
	fs.Float64Var(&c.PulseAmplitude, "pulse-amp", c.PulseAmplitude, "pulse amplitude")
	fs.BoolVar(&c.DuplicatePass, "duplicate-pass", c.DuplicatePass, "draw the position pass before the color pass")
	fs.BoolVar(&c.Chime, "chime", c.Chime, "play a chime when the animation starts")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "render offscreen and write the last frame to this PNG")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to render in snapshot mode")
	fs.DurationVar(&c.Step, "step", c.Step, "clock step per frame in snapshot mode")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, c.Validate()
}

// Reach is how far a rectangle at its largest pulse extends from its center.
func (c Config) Reach() float64 {
	return c.PulseOffset + c.PulseAmplitude*math.Hypot(c.Length.Max, c.Width.Max)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Objects <= 0 {
		errs = append(errs, fmt.Errorf("object count must be positive, got %d", c.Objects))
	}
	for _, r := range []struct {
		name string
		r    Range
	}{{"length", c.Length}, {"width", c.Width}, {"opacity", c.Opacity}} {
		if r.r.Min < 0 || r.r.Min > r.r.Max {
			errs = append(errs, fmt.Errorf("invalid %s range [%g, %g]", r.name, r.r.Min, r.r.Max))
		}
	}
	if c.Length.Max <= 0 || c.Width.Max <= 0 {
		errs = append(errs, errors.New("rectangle size must be positive"))
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field of view must be in (0, 180), got %g", c.FieldOfView))
	}
	if c.Near <= 0 || c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("invalid clip range near=%g far=%g", c.Near, c.Far))
	}
	if c.Depth <= c.Near || c.Depth >= c.Far {
		errs = append(errs, fmt.Errorf("depth %g outside clip range", c.Depth))
	}
	if c.PulseFrequency <= 0 {
		errs = append(errs, fmt.Errorf("pulse frequency must be positive, got %g", c.PulseFrequency))
	}
	if c.PulseAmplitude < 0 || c.PulseOffset < 0 {
		errs = append(errs, fmt.Errorf("pulse amplitude and offset must not be negative, got %g and %g", c.PulseAmplitude, c.PulseOffset))
	}
	if c.MaxInit.X < 0 || c.MaxInit.Y < 0 || c.MaxInit.Rotation < 0 {
		errs = append(errs, errors.New("initial position bounds must not be negative"))
	} else if reach := c.Reach(); c.MaxInit.X+reach <= 0 || c.MaxInit.Y+reach <= 0 {
		errs = append(errs, errors.New("wrap bounds must be positive"))
	}
	if c.MaxSpeed.X < 0 || c.MaxSpeed.Y < 0 || c.MaxSpeed.Rotation < 0 {
		errs = append(errs, errors.New("max speeds must not be negative"))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.Snapshot != "" && (c.Frames <= 0 || c.Step <= 0) {
		errs = append(errs, errors.New("snapshot mode needs positive -frames and -step"))
	}
	return errors.Join(errs...)
}
