package activation

// ReLU is the Rectified Linear Unit activation.
//
// Applies f(x) = max(0, x). ReLU is the default hidden-layer activation in
// deep networks: linear for positive inputs, zero for the rest, and cheap to
// compute. The derivative at exactly zero is taken as 0.
//
// Example:
//
//	relu := activation.NewReLU()
//	relu.Activate(-0.5)  // 0
//	relu.Derivative(0.5) // 1
type ReLU struct{}

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Activate returns x for positive inputs and 0 otherwise.
func (*ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for positive inputs and 0 otherwise.
func (*ReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// leakySlope is the fixed negative-side slope of LeakyReLU.
const leakySlope = 0.01

// LeakyReLU is the Leaky Rectified Linear Unit activation.
//
// Applies f(x) = x for x > 0 and 0.01·x otherwise. The small negative slope
// keeps a gradient flowing through inactive units, which counters the dying
// neuron problem of plain ReLU. For a learnable slope use PReLU.
//
// Example:
//
//	leaky := activation.NewLeakyReLU()
//	leaky.Activate(-5)   // -0.05
//	leaky.Derivative(-5) // 0.01
type LeakyReLU struct{}

// NewLeakyReLU creates a new LeakyReLU activation.
func NewLeakyReLU() *LeakyReLU {
	return &LeakyReLU{}
}

// Activate returns x for positive inputs and 0.01·x otherwise.
func (*LeakyReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return leakySlope * x
}

// Derivative returns 1 for positive inputs and 0.01 otherwise.
func (*LeakyReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return leakySlope
}

// PReLU is the Parametric Rectified Linear Unit activation.
//
// Applies f(x) = x for x > 0 and alpha·x otherwise. Unlike LeakyReLU the
// negative-side slope alpha is a parameter, typically learned during
// training and updated through SetAlpha.
//
// Example:
//
//	prelu := activation.NewPReLU(0.25)
//	prelu.Activate(-2)   // -0.5
//	prelu.Derivative(-2) // 0.25
type PReLU struct {
	alpha float64
}

// NewPReLU creates a new PReLU activation with the given negative-side slope.
func NewPReLU(alpha float64) *PReLU {
	return &PReLU{alpha: alpha}
}

// SetAlpha updates the negative-side slope.
func (p *PReLU) SetAlpha(alpha float64) {
	p.alpha = alpha
}

// Activate returns x for positive inputs and alpha·x otherwise.
func (p *PReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return p.alpha * x
}

// Derivative returns 1 for positive inputs and alpha otherwise.
func (p *PReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return p.alpha
}
