// Package kernels implements the numeric primitives every layer is built
// from: matrix-vector products and element-wise vector arithmetic over
// float32 slices.
//
// MatVec and Add come in two flavors: a portable scalar path (the default)
// and a SIMD path built on go-highway's hwy primitives, selected with the
// "simd" build tag. The two paths produce the same results within
// floating-point rounding.
package kernels

// Zero fills dst with zeros.
func Zero(dst []float32) {
	for i := range dst {
		dst[i] = 0
	}
}

// Scale writes alpha*a[i] into dst. dst may alias a.
func Scale(a []float32, alpha float32, dst []float32) {
	for i, v := range a {
		dst[i] = alpha * v
	}
}
