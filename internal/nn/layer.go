// Package nn implements the layer chain at the heart of cann: layer
// variants (Dense, ReLU), loss functions (MSE, CrossEntropy), weight
// initialization, and the Model type that owns the chain and drives
// prediction, evaluation, and mini-batch training.
//
// A model is built incrementally:
//
//	m, _ := nn.New(2, nn.Config{Epochs: 10, BatchSize: 8, Batches: 4, LearningRate: 0.01})
//	m.Append(3, nn.NewDense(1))
//	m.Append(3, nn.NewReLU())
//	m.Append(1, nn.NewDense(2))
//	m.SetLoss(nn.MSE{})
//	m.SetOptimizer(optim.NewAdam(optim.AdamConfig{}))
//
// Construction validates sizes and wiring and returns errors; once a model
// is built, the forward and backward hot paths assume correct shapes.
package nn

// Layer is the capability contract every layer variant implements.
//
// A layer is wired into a model exactly once, through Build, which fixes
// its input and output widths. Forward and Backward then operate on buffers
// owned by the model: in aliases the previous layer's output and lossGrad
// aliases the next layer's input gradient, so gradients flow by the chain
// rule without copies.
type Layer interface {
	// Build allocates the variant's internal state for the given widths.
	// It is called once, when the layer is appended to a model.
	Build(inSize, outSize int) error

	// Forward reads in (inSize elements) and writes the layer's activation
	// to out (outSize elements).
	Forward(in, out []float32)

	// Backward reads in and lossGrad, the gradient flowing back from the
	// next layer, and writes the gradient with respect to the layer input
	// into inGrad. For trainable layers, paramGrad receives the
	// concatenated gradients of all parameters; it is nil when
	// ParamCount() == 0.
	Backward(in, lossGrad, inGrad, paramGrad []float32)

	// ParamCount reports the number of trainable parameters. A layer with
	// zero parameters is skipped by the optimizer and the update pass but
	// still propagates gradients through Backward.
	ParamCount() int

	// Update folds delta, the optimizer-transformed parameter gradient
	// (sign and learning rate already applied), into the parameters by
	// element-wise addition. Never called when ParamCount() == 0.
	Update(delta []float32)
}

// Loss is the contract for loss functions attached to the end of the
// chain.
type Loss interface {
	// Forward returns the scalar loss of output against expected.
	Forward(output, expected []float32) float32

	// Backward writes the gradient of the loss with respect to output
	// into grad.
	Backward(output, expected, grad []float32)
}

// Optimizer rewrites an averaged parameter-gradient vector, in place, into
// the delta the model adds to its parameters. Implementations live in
// internal/optim; the contract is structural so the packages stay
// decoupled.
type Optimizer interface {
	Step(grad []float32, lr float32)
}
