// Package rng implements the pseudo-random generators behind weight
// initialization: a splitmix64 seed expander feeding a xoshiro128+ bit
// generator (Blackman & Vigna), plus a Marsaglia polar transform for
// standard-normal draws.
//
// Streams are fully reproducible: a given seed always yields the same
// sequence, bit for bit.
package rng

import (
	"math"
	"math/bits"
)

// splitmix64 advances x and returns the high and low 32 bits of the mixed
// output. It is used exactly twice per Source to expand a 64-bit seed into
// the 128-bit xoshiro state.
func splitmix64(x *uint64) (hi, lo uint32) {
	z := (*x ^ (*x >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	*x += 0x9e3779b97f4a7c15

	return uint32(z >> 32), uint32(z)
}

// Source is a xoshiro128+ generator.
type Source struct {
	s [4]uint32
}

// New returns a Source whose state is seeded from seed via two splitmix64
// expansions.
func New(seed uint64) *Source {
	src := &Source{}
	src.s[0], src.s[1] = splitmix64(&seed)
	src.s[2], src.s[3] = splitmix64(&seed)
	return src
}

// Uniform returns the next uniformly distributed float32 in [0, 1).
//
// The top 23 bits of s0+s3 become the mantissa of a float in [1, 2);
// subtracting 1.0 shifts the range to [0, 1). The state update runs after
// the result is formed from the pre-update state.
func (src *Source) Uniform() float32 {
	res := math.Float32frombits(((src.s[0]+src.s[3])>>9)|0x3f800000) - 1.0

	t := src.s[1] << 9

	src.s[2] ^= src.s[0]
	src.s[3] ^= src.s[1]
	src.s[1] ^= src.s[2]
	src.s[0] ^= src.s[3]

	src.s[2] ^= t

	src.s[3] = bits.RotateLeft32(src.s[3], 11)

	return res
}

// normPair draws two independent standard-normal values by the polar
// method.
//
// x and y are uniform in [-1, 1); their squared norm s must land in (0, 1)
// or the pair is redrawn. chi folds the shared 1/sqrt(s) factor into the
// sqrt(-2·ln(s)) variate, so x·chi and y·chi are the two normal deviates.
func (src *Source) normPair() (float32, float32) {
	var x, y, s float32

	for {
		x = src.Uniform()*2 - 1
		y = src.Uniform()*2 - 1
		s = x*x + y*y
		if s > 0 && s < 1 {
			break
		}
	}

	chi := float32(math.Sqrt(-2 * math.Log(float64(s)) / float64(s)))

	return x * chi, y * chi
}

// FillUniform fills dst with uniform draws in [0, 1) from a fresh Source
// seeded with seed.
func FillUniform(dst []float32, seed uint64) {
	src := New(seed)
	for i := range dst {
		dst[i] = src.Uniform()
	}
}

// FillNorm fills dst with standard-normal draws from a fresh Source seeded
// with seed.
//
// Draws are produced in pairs; an odd-length dst still consumes a full pair
// for its final element and discards the second value.
func FillNorm(dst []float32, seed uint64) {
	src := New(seed)

	n := len(dst)
	for i := 0; i+1 < n; i += 2 {
		dst[i], dst[i+1] = src.normPair()
	}

	if n%2 == 1 {
		dst[n-1], _ = src.normPair()
	}
}
