package loss

import "math"

// MAE computes Mean Absolute Error.
//
// Loss = mean(|prediction - target|)
//
// Unlike MSE the differences are not squared, so single outliers cannot
// dominate the score.
//
// Example:
//
//	mae := loss.NewMAE()
//	v, err := mae.Compute([]float64{2.5, 0.0, 2.1}, []float64{3.0, -0.5, 2.0})
type MAE struct{}

// NewMAE creates a new MAE loss.
func NewMAE() *MAE {
	return &MAE{}
}

// Compute returns the mean absolute difference between predictions and targets.
func (*MAE) Compute(predictions, targets []float64) (float64, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i, p := range predictions {
		sum += math.Abs(p - targets[i])
	}
	return sum / float64(len(predictions)), nil
}
