// Package cue plays short synthesized sounds.
package cue

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Chime returns a sine tone at freq Hz that decays linearly to silence over
// d, peaking at gain on both channels.
func Chime(rate beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := rate.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := gain * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Player owns the speaker. The speaker is initialized on first use only.
type Player struct {
	rate beep.SampleRate

	once sync.Once
	err  error
}

func NewPlayer(rate beep.SampleRate) *Player {
	return &Player{rate: rate}
}

// Play queues s on the speaker. An error means no audio device could be
// opened; later calls return the same error.
func (p *Player) Play(s beep.Streamer) error {
	p.once.Do(func() {
		p.err = speaker.Init(p.rate, p.rate.N(time.Second/20))
	})
	if p.err != nil {
		return p.err
	}
	speaker.Play(s)
	return nil
}
