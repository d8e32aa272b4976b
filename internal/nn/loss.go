package nn

// MSE is the mean squared error loss, (1/n)·Σ(expected-output)².
type MSE struct{}

func (MSE) Forward(output, expected []float32) float32 {
	var sum float32
	for i, o := range output {
		d := expected[i] - o
		sum += d * d
	}
	return sum / float32(len(output))
}

func (MSE) Backward(output, expected, grad []float32) {
	c := -2.0 / float32(len(output))
	for i, o := range output {
		grad[i] = c * (expected[i] - o)
	}
}
