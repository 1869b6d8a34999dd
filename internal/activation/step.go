package activation

// Step is the Heaviside step activation.
//
// Applies f(x) = 1 for x > 0 and 0 otherwise. It is the classic perceptron
// activation; its derivative is 0 almost everywhere, which makes it unusable
// with gradient-based training but still handy for binary thresholding.
//
// Example:
//
//	step := activation.NewStep()
//	step.Activate(0.5)   // 1
//	step.Derivative(0.5) // 0
type Step struct{}

// NewStep creates a new Step activation.
func NewStep() *Step {
	return &Step{}
}

// Activate returns 1 if x is positive and 0 otherwise.
func (*Step) Activate(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Derivative always returns 0. The step function is not differentiable at
// zero; the conventional simplification is a zero derivative everywhere.
func (*Step) Derivative(float64) float64 {
	return 0
}
