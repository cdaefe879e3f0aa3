package config

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestParseOverrides(t *testing.T) {
	c, err := Parse("rects", []string{
		"-n", "2", "-seed", "7", "-duplicate-pass=false", "-log-level", "debug",
		"-snapshot", "out.png", "-frames", "10", "-step", "20ms",
	}, io.Discard)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Objects != 2 {
		t.Errorf("Objects = %d, want 2", c.Objects)
	}
	if c.Seed != 7 {
		t.Errorf("Seed = %d, want 7", c.Seed)
	}
	if c.DuplicatePass {
		t.Error("DuplicatePass = true, want false")
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", c.LogLevel)
	}
	if c.Snapshot != "out.png" || c.Frames != 10 || c.Step != 20*time.Millisecond {
		t.Errorf("snapshot = %q/%d/%v, want out.png/10/20ms", c.Snapshot, c.Frames, c.Step)
	}
}

func TestParseRejectsPositional(t *testing.T) {
	if _, err := Parse("rects", []string{"extra"}, io.Discard); err == nil {
		t.Fatal("Parse() with positional argument returned nil error")
	}
}

func TestParseRejectsNegativePulse(t *testing.T) {
	if _, err := Parse("rects", []string{"-pulse-amp", "-20"}, io.Discard); err == nil {
		t.Fatal("Parse(-pulse-amp -20) returned nil error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero objects", func(c *Config) { c.Objects = 0 }, "object count"},
		{"inverted length", func(c *Config) { c.Length = Range{0.6, 0.1} }, "length range"},
		{"fov too wide", func(c *Config) { c.FieldOfView = 180 }, "field of view"},
		{"far before near", func(c *Config) { c.Far = 0.05 }, "clip range"},
		{"depth behind far", func(c *Config) { c.Depth = 200 }, "depth"},
		{"zero pulse", func(c *Config) { c.PulseFrequency = 0 }, "pulse frequency"},
		{"negative pulse amplitude", func(c *Config) { c.PulseAmplitude = -20 }, "pulse amplitude"},
		{"negative pulse offset", func(c *Config) { c.PulseOffset = -1 }, "pulse amplitude and offset"},
		{"zero wrap bounds", func(c *Config) { c.PulseAmplitude, c.PulseOffset, c.MaxInit.X = 0, 0, 0 }, "wrap bounds"},
		{"negative speed", func(c *Config) { c.MaxSpeed.X = -1 }, "max speeds"},
		{"empty window", func(c *Config) { c.WindowHeight = 0 }, "window size"},
		{"snapshot without frames", func(c *Config) { c.Snapshot = "x.png"; c.Frames = 0 }, "snapshot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestAspect(t *testing.T) {
	c := Default()
	if got := c.Aspect(); got != 2 {
		t.Errorf("Aspect() = %v, want 2", got)
	}
}
