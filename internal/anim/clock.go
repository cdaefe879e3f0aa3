package anim

import (
	"context"
	"time"
)

// Clock supplies wall time to the driver.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// StepClock returns Start, then moves forward by Step on every reading.
type StepClock struct {
	Start time.Time
	Step  time.Duration

	n int64
}

func (c *StepClock) Now() time.Time {
	t := c.Start.Add(time.Duration(c.n) * c.Step)
	c.n++
	return t
}

// Scheduler blocks until the next frame is due.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Immediate never waits.
type Immediate struct{}

func (Immediate) Wait(ctx context.Context) error { return ctx.Err() }

// Ticker schedules frames at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker schedules fps frames per second. Call Stop when done.
func NewTicker(fps int) *Ticker {
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

func (t *Ticker) Stop() { t.t.Stop() }
