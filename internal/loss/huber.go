package loss

import "math"

// Huber computes the Huber loss.
//
// For each error e = prediction - target:
//
//	0.5·e²              for |e| ≤ delta
//	delta·(|e| - 0.5·delta)  otherwise
//
// averaged over all samples. Quadratic near zero like MSE, linear in the
// tails like MAE, which makes it robust to outliers while staying smooth
// around the optimum.
//
// Example:
//
//	huber := loss.NewHuber(1.0)
//	v, err := huber.Compute([]float64{2.3, 1.7, 3.4}, []float64{2.0, 2.0, 3.0})
type Huber struct {
	delta float64
}

// NewHuber creates a new Huber loss with the given transition threshold.
func NewHuber(delta float64) *Huber {
	return &Huber{delta: delta}
}

// Compute returns the mean Huber loss between predictions and targets.
func (h *Huber) Compute(predictions, targets []float64) (float64, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i, p := range predictions {
		e := math.Abs(p - targets[i])
		if e <= h.delta {
			sum += 0.5 * e * e
		} else {
			sum += h.delta * (e - 0.5*h.delta)
		}
	}
	return sum / float64(len(predictions)), nil
}
