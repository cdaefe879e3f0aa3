package anim

import (
	"context"
	"errors"
	"fmt"
)

// Run is the frame loop. Each iteration waits for sched, renders with
// frame, then ticks d. It returns nil once stop reports true for the number
// of frames rendered so far, and the context error if ctx ends first.
func Run(ctx context.Context, d *Driver, sched Scheduler, frame func() error, stop func(frames int) bool) error {
	for frames := 0; ; frames++ {
		if stop != nil && stop(frames) {
			return nil
		}
		if err := sched.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("anim: schedule frame %d: %w", frames, err)
		}
		if err := frame(); err != nil {
			return fmt.Errorf("anim: frame %d: %w", frames, err)
		}
		d.Tick()
	}
}

// After stops a loop after n frames.
func After(n int) func(int) bool {
	return func(frames int) bool { return frames >= n }
}
