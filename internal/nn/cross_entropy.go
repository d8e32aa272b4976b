package nn

import "math"

// CrossEntropy is the softmax cross-entropy loss over raw logits against a
// one-hot expected vector. The softmax is folded into the loss, so the
// preceding layer emits unnormalized scores.
type CrossEntropy struct{}

// Forward computes -log softmax(output)[k] for the one-hot index k, using
// the log-sum-exp form with max subtraction so large logits do not
// overflow.
func (CrossEntropy) Forward(output, expected []float32) float32 {
	maxv := output[0]
	for _, v := range output[1:] {
		if v > maxv {
			maxv = v
		}
	}

	var sum float64
	for _, v := range output {
		sum += math.Exp(float64(v - maxv))
	}
	lse := maxv + float32(math.Log(sum))

	var loss float32
	for i, e := range expected {
		if e == 1 {
			loss += lse - output[i]
		}
	}
	return loss
}

// Backward writes softmax(output) - expected into grad.
func (CrossEntropy) Backward(output, expected, grad []float32) {
	maxv := output[0]
	for _, v := range output[1:] {
		if v > maxv {
			maxv = v
		}
	}

	var sum float64
	for _, v := range output {
		sum += math.Exp(float64(v - maxv))
	}

	for i, v := range output {
		p := float32(math.Exp(float64(v-maxv)) / sum)
		grad[i] = p - expected[i]
	}
}
