package nn

import "fmt"

// ReLU is the rectified-linear activation layer, max(0, x) applied
// element-wise. It carries no parameters and requires equal input and
// output widths.
type ReLU struct {
	size int
}

// NewReLU returns a ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

func (r *ReLU) Build(inSize, outSize int) error {
	if inSize != outSize {
		return fmt.Errorf("nn: relu requires matching sizes, got in=%d out=%d", inSize, outSize)
	}
	r.size = inSize
	return nil
}

func (r *ReLU) Forward(in, out []float32) {
	for i, v := range in {
		if v > 0 {
			out[i] = v
		} else {
			out[i] = 0
		}
	}
}

// Backward gates the incoming gradient on the sign of the forward input:
// the gradient passes where in[i] > 0 and is zeroed elsewhere.
func (r *ReLU) Backward(in, lossGrad, inGrad, _ []float32) {
	for i, v := range in {
		if v > 0 {
			inGrad[i] = lossGrad[i]
		} else {
			inGrad[i] = 0
		}
	}
}

func (r *ReLU) ParamCount() int { return 0 }

func (r *ReLU) Update(_ []float32) {}
