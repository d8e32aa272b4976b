// Copyright 2025 Diego Roux. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for cann's data buffers: fixed-size
// 1-D vectors of float32 elements.
//
// Tensors are deliberately flat. Layers interpret them as the shapes they
// need (a Dense layer reads its weight buffer as a row-major matrix), and
// training data for a batch is packed example after example into a single
// tensor.
//
// Example:
//
//	x, _ := tensor.New(4)
//	r, _ := tensor.Rand(4, 42)   // uniform [0, 1), reproducible
//	n, _ := tensor.Randn(4, 42)  // standard normal, reproducible
//	v := tensor.FromSlice([]float32{1, 2, 3, 4}) // aliases the slice
package tensor
