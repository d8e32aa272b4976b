// Package optim implements the gradient-descent optimizers driving model
// training: Adam and plain SGD with optional momentum.
//
// An optimizer rewrites an averaged parameter-gradient vector in place
// into the signed delta the model adds to its parameters. State (moment
// estimates, velocity) is sized lazily on the first step, so one optimizer
// serves exactly one model.
package optim

// Optimizer rewrites grad, in place, into the update delta for the given
// learning rate. After Step, grad holds the values to add to the
// parameters.
type Optimizer interface {
	Step(grad []float32, lr float32)
}
