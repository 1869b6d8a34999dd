package activation

import "math"

// Sigmoid is the logistic sigmoid activation.
//
// Applies σ(x) = 1 / (1 + exp(-x)), squashing values into (0, 1). Its output
// reads as a probability, which is why it shows up in binary classifiers and
// in gate mechanisms. The derivative σ(x)·(1-σ(x)) peaks at 0.25 for x = 0.
//
// Example:
//
//	sigmoid := activation.NewSigmoid()
//	sigmoid.Activate(0)   // 0.5
//	sigmoid.Derivative(0) // 0.25
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Activate computes σ(x) = 1 / (1 + exp(-x)).
func (*Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative computes σ(x)·(1 - σ(x)).
func (s *Sigmoid) Derivative(x float64) float64 {
	v := s.Activate(x)
	return v * (1 - v)
}
