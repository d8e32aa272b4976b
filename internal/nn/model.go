package nn

import (
	"fmt"

	"github.com/diegoroux/cann/internal/kernels"
	"github.com/diegoroux/cann/internal/tensor"
)

// Config carries the training hyperparameters of a model. All counts must
// be positive when Train is called.
type Config struct {
	Epochs       int     // Passes over the batch set.
	BatchSize    int     // Examples averaged per optimizer step.
	Batches      int     // Optimizer steps per epoch.
	LearningRate float32 // Step size handed to the optimizer.
}

// node wires a layer into the chain: its buffers, its gradient slots, and
// the aliasing that moves activations forward and gradients backward.
type node struct {
	op Layer

	in  []float32 // Aliases the previous node's out.
	out []float32

	inGrad    []float32 // Gradient w.r.t. in; aliased by the previous node's lossGrad.
	lossGrad  []float32 // Gradient w.r.t. out; aliases the next node's inGrad.
	paramGrad []float32 // Per-example parameter gradient; nil when params == 0.

	params int
}

// Model owns an ordered chain of layers, a loss, and an optimizer, and
// drives prediction, evaluation, and mini-batch gradient training.
type Model struct {
	inSize int
	cfg    Config

	layers   []*node
	loss     Loss
	lossGrad []float32
	opt      Optimizer

	valLoss float32
}

// New returns an empty model expecting inputs of inSize elements.
func New(inSize int, cfg Config) (*Model, error) {
	if inSize <= 0 {
		return nil, fmt.Errorf("nn: input size must be positive, got %d", inSize)
	}
	return &Model{inSize: inSize, cfg: cfg}, nil
}

// Append builds l for the widths implied by the chain so far and adds it
// as the new tail. Layers cannot be appended after the loss is set.
func (m *Model) Append(outSize int, l Layer) error {
	if m.loss != nil {
		return fmt.Errorf("nn: cannot append layers after the loss is set")
	}
	if outSize <= 0 {
		return fmt.Errorf("nn: layer output size must be positive, got %d", outSize)
	}

	inSize := m.inSize
	if len(m.layers) > 0 {
		inSize = len(m.layers[len(m.layers)-1].out)
	}
	if err := l.Build(inSize, outSize); err != nil {
		return err
	}

	n := &node{
		op:     l,
		out:    make([]float32, outSize),
		inGrad: make([]float32, inSize),
		params: l.ParamCount(),
	}
	if n.params > 0 {
		n.paramGrad = make([]float32, n.params)
	}
	if len(m.layers) > 0 {
		prev := m.layers[len(m.layers)-1]
		n.in = prev.out
		prev.lossGrad = n.inGrad
	}
	m.layers = append(m.layers, n)
	return nil
}

// SetLoss attaches l to the tail of the chain and freezes the layer
// topology.
func (m *Model) SetLoss(l Loss) error {
	if len(m.layers) == 0 {
		return fmt.Errorf("nn: cannot set a loss on an empty model")
	}
	if m.loss != nil {
		return fmt.Errorf("nn: loss already set")
	}
	last := m.layers[len(m.layers)-1]
	m.loss = l
	m.lossGrad = make([]float32, len(last.out))
	last.lossGrad = m.lossGrad
	return nil
}

// SetOptimizer attaches the optimizer used by Train.
func (m *Model) SetOptimizer(o Optimizer) error {
	if o == nil {
		return fmt.Errorf("nn: optimizer must not be nil")
	}
	m.opt = o
	return nil
}

// forward runs the chain on input and returns a view of the tail output.
func (m *Model) forward(input []float32) []float32 {
	m.layers[0].in = input
	for _, n := range m.layers {
		n.op.Forward(n.in, n.out)
	}
	return m.layers[len(m.layers)-1].out
}

// Predict runs the chain on input and returns the model output. The
// returned tensor aliases the model's output buffer and is overwritten by
// the next forward pass.
func (m *Model) Predict(input *tensor.Tensor) (*tensor.Tensor, error) {
	if len(m.layers) == 0 {
		return nil, fmt.Errorf("nn: model has no layers")
	}
	if input.Size() != m.inSize {
		return nil, fmt.Errorf("nn: input size %d, model expects %d", input.Size(), m.inSize)
	}
	return tensor.FromSlice(m.forward(input.Data())), nil
}

// Test runs the chain on input and returns the loss against expected.
func (m *Model) Test(input, expected *tensor.Tensor) (float32, error) {
	if m.loss == nil {
		return 0, fmt.Errorf("nn: model has no loss")
	}
	if input.Size() != m.inSize {
		return 0, fmt.Errorf("nn: input size %d, model expects %d", input.Size(), m.inSize)
	}
	out := m.forward(input.Data())
	if expected.Size() != len(out) {
		return 0, fmt.Errorf("nn: expected size %d, model outputs %d", expected.Size(), len(out))
	}
	return m.loss.Forward(out, expected.Data()), nil
}

// backward propagates m.lossGrad through the chain, tail to head, leaving
// each trainable node's per-example gradient in its paramGrad slot.
func (m *Model) backward() {
	for i := len(m.layers) - 1; i >= 0; i-- {
		n := m.layers[i]
		n.op.Backward(n.in, n.lossGrad, n.inGrad, n.paramGrad)
	}
}

// gradOffsets returns each node's slot offset into the flat gradient
// vector, indexed like m.layers, plus the total parameter count. Slots are
// laid out tail first.
func (m *Model) gradOffsets() ([]int, int) {
	offsets := make([]int, len(m.layers))
	total := 0
	for i := len(m.layers) - 1; i >= 0; i-- {
		offsets[i] = total
		total += m.layers[i].params
	}
	return offsets, total
}

// trainBatch accumulates gradients over the batch into avgGrad, averages
// them, applies the optimizer step, and folds the deltas into the layers.
// It returns the mean training loss over the batch.
func (m *Model) trainBatch(xTrain, yTrain, xTest, yTest []float32, outSize int, avgGrad []float32, offsets []int) float32 {
	kernels.Zero(avgGrad)

	var batchLoss float32
	for k := 0; k < m.cfg.BatchSize; k++ {
		x := xTrain[k*m.inSize : (k+1)*m.inSize]
		y := yTrain[k*outSize : (k+1)*outSize]

		m.valLoss = m.loss.Forward(m.forward(xTest), yTest)

		out := m.forward(x)
		batchLoss += m.loss.Forward(out, y)
		m.loss.Backward(out, y, m.lossGrad)
		m.backward()

		for i, n := range m.layers {
			if n.params == 0 {
				continue
			}
			slot := avgGrad[offsets[i] : offsets[i]+n.params]
			kernels.Add(slot, n.paramGrad, slot)
		}
	}

	avg := 1.0 / float32(m.cfg.BatchSize)
	batchLoss *= avg
	kernels.Scale(avgGrad, avg, avgGrad)

	m.opt.Step(avgGrad, m.cfg.LearningRate)

	for i := len(m.layers) - 1; i >= 0; i-- {
		n := m.layers[i]
		if n.params == 0 {
			continue
		}
		copy(n.paramGrad, avgGrad[offsets[i]:offsets[i]+n.params])
		n.op.Update(n.paramGrad)
	}

	return batchLoss
}

// Train runs the configured number of epochs over xTrain/yTrain, tracking
// a held-out diagnostic loss on xTest/yTest before every training example,
// and returns the mean training loss of the final epoch.
//
// Every batch sweeps the same leading BatchSize examples of the training
// tensors; callers vary the data between Train calls to stream a larger
// set.
func (m *Model) Train(xTrain, yTrain, xTest, yTest *tensor.Tensor) (float32, error) {
	if m.loss == nil {
		return 0, fmt.Errorf("nn: model has no loss")
	}
	if m.opt == nil {
		return 0, fmt.Errorf("nn: model has no optimizer")
	}
	if m.cfg.Epochs <= 0 || m.cfg.Batches <= 0 || m.cfg.BatchSize <= 0 {
		return 0, fmt.Errorf("nn: epochs, batches, and batch size must be positive, got %d/%d/%d",
			m.cfg.Epochs, m.cfg.Batches, m.cfg.BatchSize)
	}

	outSize := len(m.layers[len(m.layers)-1].out)
	if xTrain.Size() < m.cfg.BatchSize*m.inSize {
		return 0, fmt.Errorf("nn: training inputs hold %d elements, batch needs %d",
			xTrain.Size(), m.cfg.BatchSize*m.inSize)
	}
	if yTrain.Size() < m.cfg.BatchSize*outSize {
		return 0, fmt.Errorf("nn: training targets hold %d elements, batch needs %d",
			yTrain.Size(), m.cfg.BatchSize*outSize)
	}
	if xTest.Size() != m.inSize {
		return 0, fmt.Errorf("nn: test input size %d, model expects %d", xTest.Size(), m.inSize)
	}
	if yTest.Size() != outSize {
		return 0, fmt.Errorf("nn: test target size %d, model outputs %d", yTest.Size(), outSize)
	}

	offsets, total := m.gradOffsets()
	if total == 0 {
		return 0, fmt.Errorf("nn: model has no trainable parameters")
	}
	avgGrad := make([]float32, total)

	var epochLoss float32
	for e := 0; e < m.cfg.Epochs; e++ {
		epochLoss = 0
		for b := 0; b < m.cfg.Batches; b++ {
			epochLoss += m.trainBatch(xTrain.Data(), yTrain.Data(), xTest.Data(), yTest.Data(),
				outSize, avgGrad, offsets)
		}
		epochLoss /= float32(m.cfg.Batches)
	}
	return epochLoss, nil
}

// ValLoss returns the most recent held-out diagnostic loss computed during
// Train.
func (m *Model) ValLoss() float32 {
	return m.valLoss
}

// InputGrad returns the gradient of the loss with respect to the model
// input, as left by the last backward pass. It is all zeros before any
// training and nil when the model has no layers.
func (m *Model) InputGrad() []float32 {
	if len(m.layers) == 0 {
		return nil
	}
	return m.layers[0].inGrad
}
