package activation

import "math"

// Softmax is the softmax activation over a vector of logits.
//
// Activate exponentiates every element (after subtracting the maximum for
// numerical stability) and normalizes by the sum, producing a probability
// distribution: every output is in (0, 1) and the outputs sum to 1.
//
// Example:
//
//	softmax := activation.NewSoftmax()
//	probs := softmax.Activate([]float64{1, 2, 3})
//
// The full softmax Jacobian couples every output to every input; in practice
// softmax is paired with cross-entropy, where only the diagonal term matters.
// Derivative therefore returns the diagonal s_i·(1 - s_i) per element.
type Softmax struct{}

// NewSoftmax creates a new Softmax activation.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Activate maps the logits to a probability distribution. An empty input
// yields an empty output.
func (*Softmax) Activate(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}

	max := math.Inf(-1)
	for _, x := range xs {
		if x > max {
			max = x
		}
	}

	exps := make([]float64, len(xs))
	var sum float64
	for i, x := range xs {
		exps[i] = math.Exp(x - max)
		sum += exps[i]
	}

	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// Derivative returns the diagonal Jacobian terms s_i·(1 - s_i) for the
// softmax outputs of xs.
func (s *Softmax) Derivative(xs []float64) []float64 {
	probs := s.Activate(xs)
	for i, p := range probs {
		probs[i] = p * (1 - p)
	}
	return probs
}
