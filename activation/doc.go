// Copyright 2025 QMachina. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides scalar activation functions and their
// derivatives for machine learning models.
//
// # Overview
//
// This package contains:
//   - Threshold: Step
//   - Sigmoid family: Sigmoid, Tanh, Swish
//   - Rectifiers: ReLU, LeakyReLU, PReLU, ELU
//   - Vector activations: Softmax
//
// # Basic Usage
//
//	import "github.com/qmachina/qmachina/activation"
//
//	func main() {
//	    sigmoid := activation.NewSigmoid()
//
//	    y := sigmoid.Activate(0.5)
//	    dy := sigmoid.Derivative(0.5)
//	}
//
// Every scalar activation implements the Function interface, so models can
// swap activations without changing their forward pass. Softmax works on
// whole vectors and implements VectorFunction instead.
package activation
