package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoroux/cann/internal/optim"
	"github.com/diegoroux/cann/internal/tensor"
)

// toyModel builds the 2→3(ReLU)→1 network used across the training tests,
// returning the dense layers for direct parameter access.
func toyModel(t *testing.T, seed1, seed2 uint64) (*Model, *Dense, *Dense) {
	t.Helper()

	m, err := New(2, Config{Epochs: 1, BatchSize: 8, Batches: 4, LearningRate: 0.01})
	require.NoError(t, err)

	d1 := NewDense(seed1)
	d2 := NewDense(seed2)
	require.NoError(t, m.Append(3, d1))
	require.NoError(t, m.Append(3, NewReLU()))
	require.NoError(t, m.Append(1, d2))
	require.NoError(t, m.SetLoss(MSE{}))
	return m, d1, d2
}

// Eight linearly separable examples: label 1 when both coordinates are
// large.
var (
	toyX = []float32{
		0.0, 0.0,
		1.0, 1.0,
		0.2, 0.3,
		0.9, 0.8,
		0.1, 0.6,
		0.7, 0.9,
		0.4, 0.2,
		0.6, 0.8,
	}
	toyY = []float32{0, 1, 0, 1, 0, 1, 0, 1}
)

func TestNew_Validation(t *testing.T) {
	_, err := New(0, Config{})
	assert.Error(t, err)
	_, err = New(-3, Config{})
	assert.Error(t, err)
}

func TestAppend_Validation(t *testing.T) {
	m, err := New(2, Config{})
	require.NoError(t, err)

	assert.Error(t, m.Append(0, NewDense(1)))
	assert.Error(t, m.Append(-1, NewDense(1)))

	// Build failures propagate.
	assert.Error(t, m.Append(3, NewReLU()))

	require.NoError(t, m.Append(3, NewDense(1)))
	require.NoError(t, m.SetLoss(MSE{}))
	assert.Error(t, m.Append(1, NewDense(2)))
}

func TestSetLoss_Validation(t *testing.T) {
	m, err := New(2, Config{})
	require.NoError(t, err)
	assert.Error(t, m.SetLoss(MSE{}))

	require.NoError(t, m.Append(1, NewDense(1)))
	require.NoError(t, m.SetLoss(MSE{}))
	assert.Error(t, m.SetLoss(MSE{}))
}

func TestPredict(t *testing.T) {
	m, _, d2 := toyModel(t, 1, 2)

	x := tensor.FromSlice([]float32{0.5, 0.5})
	out, err := m.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Size())

	// The output tensor is a view over the model's tail buffer; the next
	// forward pass overwrites it.
	first := out.Data()[0]
	copy(d2.Biases(), []float32{100})
	_, err = m.Predict(x)
	require.NoError(t, err)
	assert.NotEqual(t, first, out.Data()[0])
}

func TestPredict_SizeMismatch(t *testing.T) {
	m, _, _ := toyModel(t, 1, 2)
	_, err := m.Predict(tensor.FromSlice([]float32{1, 2, 3}))
	assert.Error(t, err)
}

func TestTest_Loss(t *testing.T) {
	m, _, _ := toyModel(t, 1, 2)

	x := tensor.FromSlice([]float32{0.5, 0.5})
	y := tensor.FromSlice([]float32{1})
	loss, err := m.Test(x, y)
	require.NoError(t, err)

	out, err := m.Predict(x)
	require.NoError(t, err)
	d := 1 - out.Data()[0]
	assert.InDelta(t, float64(d*d), float64(loss), 1e-6)
}

func TestTrain_Validation(t *testing.T) {
	x := tensor.FromSlice(toyX)
	y := tensor.FromSlice(toyY)
	xt := tensor.FromSlice([]float32{0.8, 0.9})
	yt := tensor.FromSlice([]float32{1})

	// No optimizer.
	m, _, _ := toyModel(t, 1, 2)
	_, err := m.Train(x, y, xt, yt)
	assert.Error(t, err)

	// Bad counts.
	m2, err := New(2, Config{Epochs: 0, BatchSize: 8, Batches: 4, LearningRate: 0.01})
	require.NoError(t, err)
	require.NoError(t, m2.Append(1, NewDense(1)))
	require.NoError(t, m2.SetLoss(MSE{}))
	require.NoError(t, m2.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))
	_, err = m2.Train(x, y, xt, yt)
	assert.Error(t, err)

	// Training data shorter than one batch.
	m3, _, _ := toyModel(t, 1, 2)
	require.NoError(t, m3.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))
	_, err = m3.Train(tensor.FromSlice(toyX[:6]), y, xt, yt)
	assert.Error(t, err)

	// Test pair shaped wrong.
	m4, _, _ := toyModel(t, 1, 2)
	require.NoError(t, m4.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))
	_, err = m4.Train(x, y, tensor.FromSlice([]float32{1}), yt)
	assert.Error(t, err)
}

// TestBackward_GradientCheck compares the analytic parameter gradients of
// a small network against central finite differences of the loss.
func TestBackward_GradientCheck(t *testing.T) {
	m, d1, d2 := toyModel(t, 11, 12)

	x := []float32{0.5, -0.3}
	y := []float32{1}

	lossAt := func() float64 {
		out := m.forward(x)
		return float64(m.loss.Forward(out, y))
	}

	// Analytic gradients.
	out := m.forward(x)
	m.loss.Backward(out, y, m.lossGrad)
	m.backward()

	check := func(params []float32, grad []float32, name string) {
		const h = 0.01
		for i := range params {
			orig := params[i]
			params[i] = orig + h
			up := lossAt()
			params[i] = orig - h
			down := lossAt()
			params[i] = orig

			numeric := (up - down) / (2 * h)
			analytic := float64(grad[i])
			tol := 1e-3 * math.Max(1, math.Abs(analytic))
			assert.InDelta(t, numeric, analytic, tol, "%s[%d]", name, i)
		}
	}

	n1 := d1.outSize * d1.inSize
	check(d1.Weights(), m.layers[0].paramGrad[:n1], "d1.weights")
	check(d1.Biases(), m.layers[0].paramGrad[n1:], "d1.biases")

	n2 := d2.outSize * d2.inSize
	check(d2.Weights(), m.layers[2].paramGrad[:n2], "d2.weights")
	check(d2.Biases(), m.layers[2].paramGrad[n2:], "d2.biases")
}

func TestGradOffsets_TailFirst(t *testing.T) {
	m, d1, d2 := toyModel(t, 1, 2)

	offsets, total := m.gradOffsets()
	assert.Equal(t, d1.ParamCount()+d2.ParamCount(), total)
	// The tail layer owns the start of the flat gradient.
	assert.Equal(t, 0, offsets[2])
	assert.Equal(t, d2.ParamCount(), offsets[0])
}

func TestTrain_LossDecreases(t *testing.T) {
	m, _, _ := toyModel(t, 1, 2)
	require.NoError(t, m.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))

	x := tensor.FromSlice(toyX)
	y := tensor.FromSlice(toyY)
	xt := tensor.FromSlice([]float32{0.8, 0.9})
	yt := tensor.FromSlice([]float32{1})

	losses := make([]float32, 8)
	for i := range losses {
		loss, err := m.Train(x, y, xt, yt)
		require.NoError(t, err)
		losses[i] = loss
	}

	assert.InDelta(t, 1.5442, float64(losses[0]), 0.01)
	for i := 1; i < len(losses); i++ {
		assert.Less(t, losses[i], losses[i-1], "epoch %d", i)
	}
}

func TestTrain_ValLoss(t *testing.T) {
	m, _, _ := toyModel(t, 1, 2)
	require.NoError(t, m.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))

	x := tensor.FromSlice(toyX)
	y := tensor.FromSlice(toyY)
	xt := tensor.FromSlice([]float32{0.8, 0.9})
	yt := tensor.FromSlice([]float32{1})

	assert.Equal(t, float32(0), m.ValLoss())
	_, err := m.Train(x, y, xt, yt)
	require.NoError(t, err)

	// ValLoss holds the held-out loss from the last example of the last
	// batch, computed before that example's update.
	want, err := m.Test(xt, yt)
	require.NoError(t, err)
	assert.Greater(t, m.ValLoss(), float32(0))
	assert.InDelta(t, float64(want), float64(m.ValLoss()), 0.5)
}

func TestTrain_InputGrad(t *testing.T) {
	m, _, _ := toyModel(t, 1, 2)
	require.NoError(t, m.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))

	assert.Equal(t, []float32{0, 0}, m.InputGrad())

	x := tensor.FromSlice(toyX)
	y := tensor.FromSlice(toyY)
	_, err := m.Train(x, y, tensor.FromSlice([]float32{0.8, 0.9}), tensor.FromSlice([]float32{1}))
	require.NoError(t, err)

	g := m.InputGrad()
	require.Len(t, g, 2)
	assert.NotEqual(t, []float32{0, 0}, g)
}

func TestTrain_Deterministic(t *testing.T) {
	run := func() float32 {
		m, _, _ := toyModel(t, 1, 2)
		require.NoError(t, m.SetOptimizer(optim.NewAdam(optim.AdamConfig{})))
		loss, err := m.Train(tensor.FromSlice(toyX), tensor.FromSlice(toyY),
			tensor.FromSlice([]float32{0.8, 0.9}), tensor.FromSlice([]float32{1}))
		require.NoError(t, err)
		return loss
	}
	assert.Equal(t, run(), run())
}
