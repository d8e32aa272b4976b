// Copyright 2025 Diego Roux. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for cann's optimizers.
//
// An optimizer transforms the averaged parameter gradient of a batch into
// the delta the model adds to its parameters:
//
//	opt := optim.NewAdam(optim.AdamConfig{}) // betas (0.99, 0.999), eps 1e-7
//	m.SetOptimizer(opt)
//
// Optimizer state is sized on the first step, so one optimizer serves
// exactly one model.
package optim
