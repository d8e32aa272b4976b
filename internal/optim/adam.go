package optim

import "math"

// AdamConfig carries the Adam hyperparameters. Zero values select the
// defaults: betas (0.99, 0.999) and epsilon 1e-7.
type AdamConfig struct {
	Betas [2]float32 // Exponential decay rates for the moment estimates.
	Eps   float32    // Denominator fuzz guarding against division by zero.
}

// Adam implements the Adam optimizer: per-parameter step sizes from
// bias-corrected first and second moment estimates of the gradient.
type Adam struct {
	beta1 float32
	beta2 float32
	eps   float32

	t int
	m []float32
	v []float32
}

// NewAdam returns an Adam optimizer with fresh moment state.
func NewAdam(cfg AdamConfig) *Adam {
	if cfg.Betas[0] == 0 {
		cfg.Betas[0] = 0.99
	}
	if cfg.Betas[1] == 0 {
		cfg.Betas[1] = 0.999
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-7
	}
	return &Adam{beta1: cfg.Betas[0], beta2: cfg.Betas[1], eps: cfg.Eps}
}

// Step rewrites grad into -lr*mhat/(sqrt(vhat)+eps), updating the moment
// estimates and the timestep. The gradient vector must keep the same
// length across steps.
func (a *Adam) Step(grad []float32, lr float32) {
	if a.m == nil {
		a.m = make([]float32, len(grad))
		a.v = make([]float32, len(grad))
	}

	a.t++
	bc1 := 1 - float32(math.Pow(float64(a.beta1), float64(a.t)))
	bc2 := 1 - float32(math.Pow(float64(a.beta2), float64(a.t)))

	for i, g := range grad {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mhat := a.m[i] / bc1
		vhat := a.v[i] / bc2
		grad[i] = -lr * mhat / (float32(math.Sqrt(float64(vhat))) + a.eps)
	}
}

// Timestep returns the number of steps taken so far.
func (a *Adam) Timestep() int { return a.t }
