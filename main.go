package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/floating-rectangles/internal/anim"
	"github.com/iburimskiy/floating-rectangles/internal/config"
	"github.com/iburimskiy/floating-rectangles/internal/cue"
	"github.com/iburimskiy/floating-rectangles/internal/game"
	"github.com/iburimskiy/floating-rectangles/internal/notice"
	"github.com/iburimskiy/floating-rectangles/internal/render"
	"github.com/iburimskiy/floating-rectangles/internal/scene"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	game.SetLogger(logger)

	src := scene.NewSource(cfg.Seed)
	s := scene.New(cfg, src)
	r := render.NewRenderer(cfg, s)
	logger.Debug("scene ready", "objects", len(s.Objects), "aspect", cfg.Aspect(), "bounds_x", s.Bounds.X, "bounds_y", s.Bounds.Y)

	if cfg.Snapshot != "" {
		if err := snapshot(cfg, s, r, logger); err != nil {
			_ = notice.Log{Logger: logger}.Alert("Snapshot failed", err.Error())
			os.Exit(1)
		}
		return
	}

	alert := notice.Fallback{notice.Dialog{}, notice.Log{Logger: logger}}

	shader, err := game.CompileFill()
	if err != nil {
		var se *render.ShaderError
		msg := err.Error()
		if errors.As(err, &se) {
			msg = se.Diagnostic()
		}
		_ = alert.Alert("Could not initialise shaders", msg)
		os.Exit(1)
	}

	g := game.New(cfg, s, r, anim.NewDriver(s, anim.SystemClock{}), shader)
	if cfg.Chime {
		rate := beep.SampleRate(config.SampleRate)
		player := cue.NewPlayer(rate)
		g.OnStart = func() error {
			return player.Play(cue.Chime(rate, config.ChimeFrequency, config.ChimeDuration, config.ChimeGain))
		}
	}

	if err := game.Run(g); err != nil {
		title := "Error"
		if errors.Is(err, render.ErrDeviceUnavailable) {
			title = "Could not initialise graphics"
		}
		_ = alert.Alert(title, err.Error())
		os.Exit(1)
	}
}

// snapshot runs the scene offscreen for cfg.Frames frames on a stepped clock
// and writes the last frame to cfg.Snapshot.
func snapshot(cfg config.Config, s *scene.Scene, r *render.Renderer, logger *slog.Logger) error {
	dev := render.NewRaster(cfg.WindowWidth, cfg.WindowHeight)
	defer dev.Close()

	d := anim.NewDriver(s, &anim.StepClock{Start: time.Now(), Step: cfg.Step})
	d.Start()

	frame := func() error {
		if err := r.Frame(dev, s); err != nil {
			return err
		}
		return dev.Err()
	}
	if err := anim.Run(context.Background(), d, anim.Immediate{}, frame, anim.After(cfg.Frames)); err != nil {
		return err
	}
	if err := dev.SavePNG(cfg.Snapshot); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	logger.Info("snapshot written", "path", cfg.Snapshot, "frames", cfg.Frames, "uptime", d.Uptime())
	return nil
}
