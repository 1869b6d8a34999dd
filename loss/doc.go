// Copyright 2025 QMachina. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss provides loss functions for regression and classification.
//
// # Overview
//
// This package contains:
//   - Regression: MSE, MAE, Huber
//   - Classification: BCE, CCE
//
// # Basic Usage
//
//	import "github.com/qmachina/qmachina/loss"
//
//	func main() {
//	    mse := loss.NewMSE()
//
//	    value, err := mse.Compute(predictions, targets)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Every loss implements the Loss interface. Classification losses expect
// predictions to be probabilities in [0, 1] and return ErrNotProbability
// otherwise.
package loss
