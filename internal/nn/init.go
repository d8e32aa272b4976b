package nn

import (
	"math"

	"github.com/diegoroux/cann/internal/kernels"
	"github.com/diegoroux/cann/internal/rng"
)

// InitFunc fills dst with initial weight values for a layer with the given
// fan-in, reproducibly from seed.
type InitFunc func(dst []float32, fanIn int, seed uint64)

// He fills dst with draws from N(0, 2/fanIn). Suited to layers followed by
// ReLU activations; the default for Dense.
func He(dst []float32, fanIn int, seed uint64) {
	rng.FillNorm(dst, seed)
	kernels.Scale(dst, float32(math.Sqrt(2.0/float64(fanIn))), dst)
}

// Xavier fills dst with draws from N(0, 1/fanIn). Suited to layers
// followed by symmetric activations.
func Xavier(dst []float32, fanIn int, seed uint64) {
	rng.FillNorm(dst, seed)
	kernels.Scale(dst, float32(math.Sqrt(1.0/float64(fanIn))), dst)
}
