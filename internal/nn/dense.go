package nn

import (
	"fmt"

	"github.com/diegoroux/cann/internal/kernels"
)

// Dense is a fully connected layer: out = W·in + b, with W a row-major
// outSize×inSize weight matrix and b an outSize bias vector.
//
// Weights are initialized by the layer's InitFunc (He by default) from the
// seed given at construction; biases start at zero. Two models built with
// the same seeds and shapes are bit-identical.
type Dense struct {
	inSize  int
	outSize int
	seed    uint64
	init    InitFunc

	weights []float32
	biases  []float32
}

// NewDense returns a fully connected layer seeded for reproducible He
// initialization.
func NewDense(seed uint64) *Dense {
	return &Dense{seed: seed, init: He}
}

// NewDenseInit returns a fully connected layer using the given weight
// initializer instead of He.
func NewDenseInit(seed uint64, init InitFunc) *Dense {
	return &Dense{seed: seed, init: init}
}

func (d *Dense) Build(inSize, outSize int) error {
	if d.weights != nil {
		return fmt.Errorf("nn: dense layer already built")
	}
	d.inSize = inSize
	d.outSize = outSize
	d.weights = make([]float32, outSize*inSize)
	d.biases = make([]float32, outSize)
	d.init(d.weights, inSize, d.seed)
	return nil
}

func (d *Dense) Forward(in, out []float32) {
	kernels.MatVec(d.weights, d.outSize, d.inSize, in, out)
	kernels.Add(out, d.biases, out)
}

// Backward writes the weight and bias gradients into paramGrad (weights
// first, row-major, biases after) and the gradient with respect to the
// layer input into inGrad.
func (d *Dense) Backward(in, lossGrad, inGrad, paramGrad []float32) {
	weightGrad := paramGrad[:d.outSize*d.inSize]
	biasGrad := paramGrad[d.outSize*d.inSize:]

	kernels.Zero(inGrad)
	for i := 0; i < d.outSize; i++ {
		row := d.weights[i*d.inSize : (i+1)*d.inSize]
		g := lossGrad[i]
		for j, w := range row {
			weightGrad[i*d.inSize+j] = in[j] * g
			inGrad[j] += w * g
		}
		biasGrad[i] = g
	}
}

func (d *Dense) ParamCount() int {
	return d.outSize*d.inSize + d.outSize
}

// Update adds delta to the parameters, in the same layout Backward writes:
// weights first, then biases.
func (d *Dense) Update(delta []float32) {
	n := d.outSize * d.inSize
	kernels.Add(d.weights, delta[:n], d.weights)
	kernels.Add(d.biases, delta[n:], d.biases)
}

// Weights returns the layer's row-major weight matrix.
func (d *Dense) Weights() []float32 { return d.weights }

// Biases returns the layer's bias vector.
func (d *Dense) Biases() []float32 { return d.biases }
