// Copyright 2025 Diego Roux. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/diegoroux/cann/internal/optim"
)

// Optimizer rewrites a gradient vector, in place, into the update delta
// for the given learning rate.
type Optimizer = optim.Optimizer

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig carries the Adam hyperparameters. Zero values select the
// defaults: betas (0.99, 0.999) and epsilon 1e-7.
type AdamConfig = optim.AdamConfig

// NewAdam returns an Adam optimizer with fresh moment state.
func NewAdam(cfg AdamConfig) *Adam {
	return optim.NewAdam(cfg)
}

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig carries the SGD hyperparameters. A zero Momentum gives plain
// gradient descent.
type SGDConfig = optim.SGDConfig

// NewSGD returns an SGD optimizer with fresh velocity state.
func NewSGD(cfg SGDConfig) *SGD {
	return optim.NewSGD(cfg)
}
