// Copyright 2025 QMachina. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"github.com/qmachina/qmachina/internal/activation"
)

// Function is the common interface for scalar activation functions.
type Function = activation.Function

// VectorFunction is the interface for activations over whole vectors.
type VectorFunction = activation.VectorFunction

// Step is the binary threshold activation.
type Step = activation.Step

// NewStep creates a step activation.
func NewStep() *Step {
	return activation.NewStep()
}

// Sigmoid is the logistic activation.
type Sigmoid = activation.Sigmoid

// NewSigmoid creates a sigmoid activation.
//
// Example:
//
//	sigmoid := activation.NewSigmoid()
//	y := sigmoid.Activate(0.0) // 0.5
func NewSigmoid() *Sigmoid {
	return activation.NewSigmoid()
}

// Tanh is the hyperbolic tangent activation.
type Tanh = activation.Tanh

// NewTanh creates a tanh activation.
func NewTanh() *Tanh {
	return activation.NewTanh()
}

// ReLU is the rectified linear unit.
type ReLU = activation.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU {
	return activation.NewReLU()
}

// LeakyReLU is a ReLU with a small fixed slope for negative inputs.
type LeakyReLU = activation.LeakyReLU

// NewLeakyReLU creates a leaky ReLU activation.
func NewLeakyReLU() *LeakyReLU {
	return activation.NewLeakyReLU()
}

// PReLU is a ReLU with a configurable negative slope.
type PReLU = activation.PReLU

// NewPReLU creates a parametric ReLU with the given negative slope.
//
// Example:
//
//	prelu := activation.NewPReLU(0.25)
//	y := prelu.Activate(-2.0) // -0.5
func NewPReLU(alpha float64) *PReLU {
	return activation.NewPReLU(alpha)
}

// ELU is the exponential linear unit.
type ELU = activation.ELU

// NewELU creates an ELU with the given alpha.
func NewELU(alpha float64) *ELU {
	return activation.NewELU(alpha)
}

// Swish is the self-gated activation x * sigmoid(beta * x).
type Swish = activation.Swish

// NewSwish creates a swish activation with the given beta.
func NewSwish(beta float64) *Swish {
	return activation.NewSwish(beta)
}

// Softmax normalizes a vector into a probability distribution.
type Softmax = activation.Softmax

// NewSoftmax creates a softmax activation.
//
// Example:
//
//	softmax := activation.NewSoftmax()
//	probs := softmax.Activate([]float64{1, 2, 3}) // sums to 1
func NewSoftmax() *Softmax {
	return activation.NewSoftmax()
}
