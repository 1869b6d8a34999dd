package loss

// MSE computes Mean Squared Error.
//
// Loss = mean((prediction - target)²)
//
// The workhorse regression loss. Squaring makes it sensitive to outliers; see
// MAE or Huber when that is unwanted.
//
// Example:
//
//	mse := loss.NewMSE()
//	v, err := mse.Compute([]float64{2.5, 0.0, 2.1}, []float64{3.0, -0.5, 2.0})
type MSE struct{}

// NewMSE creates a new MSE loss.
func NewMSE() *MSE {
	return &MSE{}
}

// Compute returns the mean squared difference between predictions and targets.
func (*MSE) Compute(predictions, targets []float64) (float64, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i, p := range predictions {
		d := p - targets[i]
		sum += d * d
	}
	return sum / float64(len(predictions)), nil
}
