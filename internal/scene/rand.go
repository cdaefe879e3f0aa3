package scene

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/floating-rectangles/internal/config"
)

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a PCG source for seed. Seed 0 picks one from the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func symmetric(src Source, limit float64) float64 {
	return src.Float64()*2*limit - limit
}

func between(src Source, r config.Range) float64 {
	return src.Float64()*(r.Max-r.Min) + r.Min
}
