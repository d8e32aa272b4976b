// Package tensor implements the buffer type shared by models, layers, and
// callers: a fixed-size 1-D vector of float32 elements.
package tensor

import (
	"fmt"

	"github.com/diegoroux/cann/internal/kernels"
	"github.com/diegoroux/cann/internal/rng"
)

// Tensor is a fixed-size 1-D buffer of float32 elements.
//
// A Tensor created with New owns its buffer. A Tensor created with
// FromSlice aliases the caller's slice and never copies it; this is how
// model inputs flow through the layer chain without allocation.
type Tensor struct {
	data []float32
}

// New allocates a zeroed tensor with the given element count.
func New(size int) (*Tensor, error) {
	if size <= 0 {
		return nil, fmt.Errorf("tensor: size must be positive, got %d", size)
	}
	return &Tensor{data: make([]float32, size)}, nil
}

// FromSlice wraps data without copying. The tensor aliases the caller's
// buffer; writes through either are visible to both.
func FromSlice(data []float32) *Tensor {
	return &Tensor{data: data}
}

// Rand returns a tensor filled with uniform draws in [0, 1), reproducible
// from seed.
func Rand(size int, seed uint64) (*Tensor, error) {
	t, err := New(size)
	if err != nil {
		return nil, err
	}
	rng.FillUniform(t.data, seed)
	return t, nil
}

// Randn returns a tensor filled with standard-normal draws, reproducible
// from seed.
func Randn(size int, seed uint64) (*Tensor, error) {
	t, err := New(size)
	if err != nil {
		return nil, err
	}
	rng.FillNorm(t.data, seed)
	return t, nil
}

// Size returns the element count.
func (t *Tensor) Size() int {
	return len(t.data)
}

// Data returns the underlying buffer. Mutations are visible through every
// view of the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Zero fills the tensor with zeros.
func (t *Tensor) Zero() {
	kernels.Zero(t.data)
}
