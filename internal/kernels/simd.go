//go:build simd

package kernels

import "github.com/ajroetker/go-highway/hwy"

// MatVec computes dst = m·x, where m is a row-major rows×cols matrix and x
// is a column vector of cols elements. dst must hold rows elements and is
// overwritten.
//
// Each row is reduced lane-wise, so the accumulation order differs from the
// scalar path; results agree within floating-point rounding.
func MatVec(m []float32, rows, cols int, x, dst []float32) {
	lanes := hwy.Zero[float32]().NumLanes()

	for i := 0; i < rows; i++ {
		row := m[i*cols : (i+1)*cols]
		sum := hwy.Zero[float32]()

		var j int
		for j = 0; j+lanes <= cols; j += lanes {
			va := hwy.Load(row[j:])
			vb := hwy.Load(x[j:])
			sum = hwy.MulAdd(va, vb, sum)
		}

		acc := hwy.ReduceSum(sum)

		// Scalar tail for the elements past the last full vector.
		for ; j < cols; j++ {
			acc += row[j] * x[j]
		}

		dst[i] = acc
	}
}

// Add writes a[i] + b[i] into dst. dst may alias a or b.
func Add(a, b, dst []float32) {
	n := len(dst)
	lanes := hwy.Zero[float32]().NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Add(hwy.Load(a[i:]), hwy.Load(b[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}
