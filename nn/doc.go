// Copyright 2025 Diego Roux. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for building and training sequential
// neural networks.
//
// A model is a chain of layers ending in a loss, trained by mini-batch
// gradient descent:
//
//	m, _ := nn.New(2, nn.Config{Epochs: 10, BatchSize: 8, Batches: 4, LearningRate: 0.01})
//	m.Append(3, nn.NewDense(1))
//	m.Append(3, nn.NewReLU())
//	m.Append(1, nn.NewDense(2))
//	m.SetLoss(nn.MSE{})
//	m.SetOptimizer(optim.NewAdam(optim.AdamConfig{}))
//
//	loss, _ := m.Train(xTrain, yTrain, xTest, yTest)
//	out, _ := m.Predict(x)
//
// Construction is fully deterministic: the same layer seeds and shapes
// always produce the same initial weights.
package nn
