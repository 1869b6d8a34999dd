package activation

import "math"

// Tanh is the hyperbolic tangent activation.
//
// Applies tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x)), squashing values
// into (-1, 1). Unlike Sigmoid the output is zero-centered, which often helps
// optimization when inputs are symmetric around zero.
//
// Example:
//
//	tanh := activation.NewTanh()
//	tanh.Activate(0)   // 0
//	tanh.Derivative(0) // 1
type Tanh struct{}

// NewTanh creates a new Tanh activation.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Activate computes tanh(x).
func (*Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - tanh²(x).
func (*Tanh) Derivative(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}
