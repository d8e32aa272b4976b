// Copyright 2025 Diego Roux. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/diegoroux/cann/internal/nn"
)

// Layer is the contract every layer variant implements.
type Layer = nn.Layer

// Loss is the contract for loss functions attached to the end of the
// chain.
type Loss = nn.Loss

// Optimizer rewrites an averaged parameter-gradient vector, in place, into
// the delta the model adds to its parameters.
type Optimizer = nn.Optimizer

// Model owns an ordered chain of layers, a loss, and an optimizer.
type Model = nn.Model

// Config carries the training hyperparameters of a model.
type Config = nn.Config

// New returns an empty model expecting inputs of inSize elements.
func New(inSize int, cfg Config) (*Model, error) {
	return nn.New(inSize, cfg)
}

// Layers

// Dense is a fully connected layer: out = W·in + b.
type Dense = nn.Dense

// NewDense returns a fully connected layer seeded for reproducible He
// initialization.
func NewDense(seed uint64) *Dense {
	return nn.NewDense(seed)
}

// NewDenseInit returns a fully connected layer using the given weight
// initializer instead of He.
func NewDenseInit(seed uint64, init InitFunc) *Dense {
	return nn.NewDenseInit(seed, init)
}

// ReLU is the rectified-linear activation layer.
type ReLU = nn.ReLU

// NewReLU returns a ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Initialization

// InitFunc fills a weight buffer for a layer with the given fan-in,
// reproducibly from seed.
type InitFunc = nn.InitFunc

// He fills weights with draws from N(0, 2/fanIn).
func He(dst []float32, fanIn int, seed uint64) {
	nn.He(dst, fanIn, seed)
}

// Xavier fills weights with draws from N(0, 1/fanIn).
func Xavier(dst []float32, fanIn int, seed uint64) {
	nn.Xavier(dst, fanIn, seed)
}

// Losses

// MSE is the mean squared error loss.
type MSE = nn.MSE

// CrossEntropy is the softmax cross-entropy loss over raw logits against a
// one-hot expected vector.
type CrossEntropy = nn.CrossEntropy
