package loss

import (
	"fmt"
	"math"
)

// BCE computes Binary Cross-Entropy.
//
// Loss = -mean(t·ln(p) + (1-t)·ln(1-p))
//
// Predictions must be probabilities of the positive class and targets the
// actual binary labels. The boundary cases are handled explicitly so the
// score is never NaN: a confident correct prediction (p = 0 with t = 0, or
// p = 1 with t = 1) contributes zero loss, and a confident wrong one is an
// error because its log term is undefined.
//
// Example:
//
//	bce := loss.NewBCE()
//	v, err := bce.Compute([]float64{0.7, 0.3, 0.9}, []float64{1, 0, 1})
type BCE struct{}

// NewBCE creates a new BCE loss.
func NewBCE() *BCE {
	return &BCE{}
}

// Compute returns the mean binary cross-entropy between predictions and
// targets.
func (*BCE) Compute(predictions, targets []float64) (float64, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i, p := range predictions {
		t := targets[i]
		switch {
		case p < 0 || p > 1:
			return 0, fmt.Errorf("%w: got %v", ErrNotProbability, p)
		case p == 0:
			if t != 0 {
				return 0, fmt.Errorf("loss: undefined logarithm for p = 0 with target = 1")
			}
			// ln(1 - 0) = 0, zero contribution.
		case p == 1:
			if t != 1 {
				return 0, fmt.Errorf("loss: undefined logarithm for p = 1 with target = 0")
			}
			// ln(1) = 0, zero contribution.
		default:
			sum -= t*math.Log(p) + (1-t)*math.Log(1-p)
		}
	}
	return sum / float64(len(predictions)), nil
}

// CCE computes Categorical Cross-Entropy.
//
// Loss = -Σ t·ln(p) / n
//
// Predictions are a probability distribution over classes and targets the
// actual distribution, typically one-hot. A zero predicted probability
// contributes nothing (its log term is skipped), matching the convention
// 0·ln(0) = 0.
//
// Example:
//
//	cce := loss.NewCCE()
//	v, err := cce.Compute([]float64{0.1, 0.7, 0.2}, []float64{0, 1, 0})
type CCE struct{}

// NewCCE creates a new CCE loss.
func NewCCE() *CCE {
	return &CCE{}
}

// Compute returns the categorical cross-entropy between predictions and
// targets, averaged over the slice length.
func (*CCE) Compute(predictions, targets []float64) (float64, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i, p := range predictions {
		if p < 0 || p > 1 {
			return 0, fmt.Errorf("%w: got %v", ErrNotProbability, p)
		}
		if p == 0 {
			continue
		}
		sum -= targets[i] * math.Log(p)
	}
	return sum / float64(len(predictions)), nil
}
