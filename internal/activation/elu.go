package activation

import "math"

// ELU is the Exponential Linear Unit activation.
//
// Applies f(x) = x for x > 0 and alpha·(exp(x) - 1) otherwise. The negative
// branch is smooth and saturates at -alpha for large negative inputs, which
// softens the dying-neuron and vanishing-gradient issues of plain ReLU.
//
// Example:
//
//	elu := activation.NewELU(1.0)
//	elu.Activate(-1)   // ≈ -0.6321
//	elu.Derivative(-1) // ≈ 0.3679
type ELU struct {
	alpha float64
}

// NewELU creates a new ELU activation. alpha controls the value the function
// saturates to for large negative inputs.
func NewELU(alpha float64) *ELU {
	return &ELU{alpha: alpha}
}

// SetAlpha updates the saturation parameter.
func (e *ELU) SetAlpha(alpha float64) {
	e.alpha = alpha
}

// Activate returns x for positive inputs and alpha·(exp(x) - 1) otherwise.
func (e *ELU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return e.alpha * (math.Exp(x) - 1)
}

// Derivative returns 1 for positive inputs and alpha·exp(x) otherwise.
func (e *ELU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return e.alpha * math.Exp(x)
}
