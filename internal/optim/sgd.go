package optim

import "github.com/diegoroux/cann/internal/kernels"

// SGDConfig carries the SGD hyperparameters. A zero Momentum gives plain
// gradient descent.
type SGDConfig struct {
	Momentum float32 // Velocity decay rate; 0 disables momentum.
}

// SGD implements stochastic gradient descent with optional momentum.
type SGD struct {
	momentum float32
	vel      []float32
}

// NewSGD returns an SGD optimizer with fresh velocity state.
func NewSGD(cfg SGDConfig) *SGD {
	return &SGD{momentum: cfg.Momentum}
}

// Step rewrites grad into -lr·g, or -lr times the decayed velocity when
// momentum is enabled.
func (s *SGD) Step(grad []float32, lr float32) {
	if s.momentum == 0 {
		kernels.Scale(grad, -lr, grad)
		return
	}

	if s.vel == nil {
		s.vel = make([]float32, len(grad))
	}
	for i, g := range grad {
		s.vel[i] = s.momentum*s.vel[i] + g
		grad[i] = -lr * s.vel[i]
	}
}
