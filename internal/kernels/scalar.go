//go:build !simd

package kernels

import "github.com/diegoroux/cann/internal/parallel"

var matvecCfg = parallel.DefaultConfig()

// MatVec computes dst = m·x, where m is a row-major rows×cols matrix and x
// is a column vector of cols elements. dst must hold rows elements and is
// overwritten.
//
// Rows are independent, so large products are split across workers; every
// row is still the same left-to-right scalar accumulation and the result
// does not depend on scheduling.
func MatVec(m []float32, rows, cols int, x, dst []float32) {
	parallel.For(rows, func(i int) {
		row := m[i*cols : (i+1)*cols]
		var acc float32
		for j, w := range row {
			acc += w * x[j]
		}
		dst[i] = acc
	}, matvecCfg)
}

// Add writes a[i] + b[i] into dst. dst may alias a or b.
func Add(a, b, dst []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
