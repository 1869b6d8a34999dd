// Package activation implements scalar activation functions and their
// derivatives, plus the vector-valued Softmax.
//
// Every scalar function is total: it accepts any float64 and never returns an
// error. NaN and infinity propagate according to IEEE 754 semantics.
package activation

// Function is the common interface for scalar activation functions.
//
// Activate computes f(x) and Derivative computes f'(x). The derivative is what
// backpropagation consumes, so implementations keep it cheap and closed-form.
type Function interface {
	// Activate computes the activated value for the input.
	Activate(x float64) float64

	// Derivative computes the derivative of the activation at the input.
	Derivative(x float64) float64
}

// VectorFunction is the interface for activations defined over a whole vector
// rather than elementwise, such as Softmax.
type VectorFunction interface {
	// Activate maps the input vector to the activated vector.
	Activate(xs []float64) []float64

	// Derivative returns the elementwise derivative terms for the input vector.
	Derivative(xs []float64) []float64
}
