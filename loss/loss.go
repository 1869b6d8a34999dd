// Copyright 2025 QMachina. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package loss

import (
	"github.com/qmachina/qmachina/internal/loss"
)

// Errors returned by loss computations.
var (
	ErrLengthMismatch = loss.ErrLengthMismatch
	ErrNotProbability = loss.ErrNotProbability
	ErrNoData         = loss.ErrNoData
)

// Loss is the common interface for loss functions.
type Loss = loss.Loss

// MSE is the mean squared error loss.
type MSE = loss.MSE

// NewMSE creates a mean squared error loss.
func NewMSE() *MSE {
	return loss.NewMSE()
}

// MAE is the mean absolute error loss.
type MAE = loss.MAE

// NewMAE creates a mean absolute error loss.
func NewMAE() *MAE {
	return loss.NewMAE()
}

// Huber is the Huber loss, quadratic near zero and linear beyond delta.
type Huber = loss.Huber

// NewHuber creates a Huber loss with the given delta.
//
// Example:
//
//	huber := loss.NewHuber(1.0)
//	value, err := huber.Compute(predictions, targets)
func NewHuber(delta float64) *Huber {
	return loss.NewHuber(delta)
}

// BCE is the binary cross-entropy loss.
type BCE = loss.BCE

// NewBCE creates a binary cross-entropy loss.
func NewBCE() *BCE {
	return loss.NewBCE()
}

// CCE is the categorical cross-entropy loss.
type CCE = loss.CCE

// NewCCE creates a categorical cross-entropy loss.
func NewCCE() *CCE {
	return loss.NewCCE()
}
