// Copyright 2025 Diego Roux. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/diegoroux/cann/internal/tensor"
)

// Tensor is a fixed-size 1-D buffer of float32 elements.
type Tensor = tensor.Tensor

// New allocates a zeroed tensor with the given element count.
func New(size int) (*Tensor, error) {
	return tensor.New(size)
}

// FromSlice wraps data without copying. The tensor aliases the caller's
// buffer; writes through either are visible to both.
func FromSlice(data []float32) *Tensor {
	return tensor.FromSlice(data)
}

// Rand returns a tensor filled with uniform draws in [0, 1), reproducible
// from seed.
func Rand(size int, seed uint64) (*Tensor, error) {
	return tensor.Rand(size, seed)
}

// Randn returns a tensor filled with standard-normal draws, reproducible
// from seed.
func Randn(size int, seed uint64) (*Tensor, error) {
	return tensor.Randn(size, seed)
}
