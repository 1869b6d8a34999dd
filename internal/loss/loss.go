// Package loss implements loss functions scoring predictions against targets.
//
// Every loss operates on paired float64 slices and reports invalid input
// through an error instead of producing NaN.
package loss

import "errors"

// ErrLengthMismatch is returned when predictions and targets differ in length.
var ErrLengthMismatch = errors.New("loss: predictions and targets must have the same length")

// ErrNotProbability is returned by the cross-entropy losses when a prediction
// falls outside [0, 1].
var ErrNotProbability = errors.New("loss: predictions must be probabilities in [0, 1]")

// ErrNoData is returned when both slices are empty, since a mean over zero
// samples is undefined.
var ErrNoData = errors.New("loss: no data")

// Loss is the common interface for loss functions.
//
// Compute scores the discrepancy between predictions and targets; lower is
// better. Implementations validate their inputs and return an error rather
// than a NaN score.
type Loss interface {
	Compute(predictions, targets []float64) (float64, error)
}

// checkLengths validates that predictions and targets pair up and are non-empty.
func checkLengths(predictions, targets []float64) error {
	if len(predictions) != len(targets) {
		return ErrLengthMismatch
	}
	if len(predictions) == 0 {
		return ErrNoData
	}
	return nil
}
