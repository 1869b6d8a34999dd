package activation

// Swish is the Swish (SiLU-family) activation.
//
// Applies f(x) = x·σ(beta·x). With beta = 1 this is SiLU. Swish is smooth and
// non-monotonic and has been found to outperform ReLU in some deep networks.
//
// Example:
//
//	swish := activation.NewSwish(1.0)
//	swish.Activate(0.5)
type Swish struct {
	beta    float64
	sigmoid Sigmoid
}

// NewSwish creates a new Swish activation with the given beta.
func NewSwish(beta float64) *Swish {
	return &Swish{beta: beta}
}

// SetBeta updates the beta parameter.
func (s *Swish) SetBeta(beta float64) {
	s.beta = beta
}

// Activate computes x·σ(beta·x).
func (s *Swish) Activate(x float64) float64 {
	return x * s.sigmoid.Activate(s.beta*x)
}

// Derivative computes σ(beta·x) + beta·x·(1 - σ(beta·x)).
func (s *Swish) Derivative(x float64) float64 {
	v := s.sigmoid.Activate(s.beta * x)
	return v + s.beta*x*(1-v)
}
