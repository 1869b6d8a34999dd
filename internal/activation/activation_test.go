package activation

import (
	"math"
	"testing"
)

const tol = 1e-9

// TestStep checks the Heaviside step on both sides of zero.
func TestStep(t *testing.T) {
	step := NewStep()

	for _, x := range []float64{0.1, 1, 5, 1000} {
		if got := step.Activate(x); got != 1 {
			t.Errorf("Step(%v) = %v, expected 1", x, got)
		}
	}
	for _, x := range []float64{0, -1, -5, -1000} {
		if got := step.Activate(x); got != 0 {
			t.Errorf("Step(%v) = %v, expected 0", x, got)
		}
	}
	if got := step.Derivative(0.5); got != 0 {
		t.Errorf("Step'(0.5) = %v, expected 0", got)
	}
}

// TestSigmoid checks the sigmoid range, midpoint, and saturation.
func TestSigmoid(t *testing.T) {
	sigmoid := NewSigmoid()

	if got := sigmoid.Activate(0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, expected 0.5", got)
	}
	if got := sigmoid.Activate(2); got <= 0.5 || got >= 1 {
		t.Errorf("Sigmoid(2) = %v, expected value in (0.5, 1)", got)
	}
	if got := sigmoid.Activate(-2); got <= 0 || got >= 0.5 {
		t.Errorf("Sigmoid(-2) = %v, expected value in (0, 0.5)", got)
	}

	// Saturation: exp(±1000) over/underflows to the asymptotes exactly.
	if got := sigmoid.Activate(1000); got != 1 {
		t.Errorf("Sigmoid(1000) = %v, expected 1", got)
	}
	if got := sigmoid.Activate(-1000); got != 0 {
		t.Errorf("Sigmoid(-1000) = %v, expected 0", got)
	}
}

// TestSigmoidDerivative checks the derivative peak and saturation.
func TestSigmoidDerivative(t *testing.T) {
	sigmoid := NewSigmoid()

	if got := sigmoid.Derivative(0); got != 0.25 {
		t.Errorf("Sigmoid'(0) = %v, expected 0.25", got)
	}
	for _, x := range []float64{1, -1} {
		if got := sigmoid.Derivative(x); got <= 0 || got >= 0.25 {
			t.Errorf("Sigmoid'(%v) = %v, expected value in (0, 0.25)", x, got)
		}
	}
	if got := sigmoid.Derivative(1000); got != 0 {
		t.Errorf("Sigmoid'(1000) = %v, expected 0", got)
	}
}

// TestTanh checks range, zero point, saturation, and the derivative identity.
func TestTanh(t *testing.T) {
	tanh := NewTanh()

	if got := tanh.Activate(0); got != 0 {
		t.Errorf("Tanh(0) = %v, expected 0", got)
	}
	if got := tanh.Activate(2); got <= 0 || got >= 1 {
		t.Errorf("Tanh(2) = %v, expected value in (0, 1)", got)
	}
	if got := tanh.Activate(-2); got >= 0 || got <= -1 {
		t.Errorf("Tanh(-2) = %v, expected value in (-1, 0)", got)
	}
	if got := tanh.Activate(1000); got != 1 {
		t.Errorf("Tanh(1000) = %v, expected 1", got)
	}
	if got := tanh.Activate(-1000); got != -1 {
		t.Errorf("Tanh(-1000) = %v, expected -1", got)
	}

	if got := tanh.Derivative(0); got != 1 {
		t.Errorf("Tanh'(0) = %v, expected 1", got)
	}
	for _, x := range []float64{1, -1} {
		want := 1 - math.Tanh(x)*math.Tanh(x)
		if got := tanh.Derivative(x); math.Abs(got-want) > tol {
			t.Errorf("Tanh'(%v) = %v, expected %v", x, got, want)
		}
	}
}

// TestReLU checks clipping and the derivative on both sides of zero.
func TestReLU(t *testing.T) {
	relu := NewReLU()

	if got := relu.Activate(2); got != 2 {
		t.Errorf("ReLU(2) = %v, expected 2", got)
	}
	if got := relu.Activate(-2); got != 0 {
		t.Errorf("ReLU(-2) = %v, expected 0", got)
	}
	if got := relu.Activate(0); got != 0 {
		t.Errorf("ReLU(0) = %v, expected 0", got)
	}
	if got := relu.Derivative(1000); got != 1 {
		t.Errorf("ReLU'(1000) = %v, expected 1", got)
	}
	// Zero is taken to have a zero derivative.
	if got := relu.Derivative(0); got != 0 {
		t.Errorf("ReLU'(0) = %v, expected 0", got)
	}
}

// TestLeakyReLU checks the fixed 0.01 negative-side slope.
func TestLeakyReLU(t *testing.T) {
	leaky := NewLeakyReLU()

	if got := leaky.Activate(2); got != 2 {
		t.Errorf("LeakyReLU(2) = %v, expected 2", got)
	}
	if got := leaky.Activate(-2); got != -0.02 {
		t.Errorf("LeakyReLU(-2) = %v, expected -0.02", got)
	}
	if got := leaky.Activate(-1000); got != -10 {
		t.Errorf("LeakyReLU(-1000) = %v, expected -10", got)
	}
	if got := leaky.Derivative(1); got != 1 {
		t.Errorf("LeakyReLU'(1) = %v, expected 1", got)
	}
	for _, x := range []float64{-1, 0, -1000} {
		if got := leaky.Derivative(x); got != 0.01 {
			t.Errorf("LeakyReLU'(%v) = %v, expected 0.01", x, got)
		}
	}
}

// TestPReLU checks the parameterized slope and SetAlpha.
func TestPReLU(t *testing.T) {
	prelu := NewPReLU(0.01)

	if got := prelu.Activate(2); got != 2 {
		t.Errorf("PReLU(2) = %v, expected 2", got)
	}
	if got := prelu.Activate(-2); got != -0.02 {
		t.Errorf("PReLU(-2) = %v, expected -0.02", got)
	}
	if got := prelu.Derivative(-1); got != 0.01 {
		t.Errorf("PReLU'(-1) = %v, expected 0.01", got)
	}

	prelu.SetAlpha(0.25)
	if got := prelu.Activate(-2); got != -0.5 {
		t.Errorf("PReLU(-2) after SetAlpha(0.25) = %v, expected -0.5", got)
	}
	if got := prelu.Derivative(-2); got != 0.25 {
		t.Errorf("PReLU'(-2) after SetAlpha(0.25) = %v, expected 0.25", got)
	}
}

// TestELU checks both branches and saturation toward -alpha.
func TestELU(t *testing.T) {
	const alpha = 0.01
	elu := NewELU(alpha)

	if got := elu.Activate(2); got != 2 {
		t.Errorf("ELU(2) = %v, expected 2", got)
	}
	if got := elu.Activate(0); got != 0 {
		t.Errorf("ELU(0) = %v, expected 0", got)
	}
	if got := elu.Activate(-2); got >= 0 || got <= -alpha {
		t.Errorf("ELU(-2) = %v, expected value in (-alpha, 0)", got)
	}
	// Saturates near -alpha for large negative inputs.
	if got := elu.Activate(-1000); got <= -1 {
		t.Errorf("ELU(-1000) = %v, expected value above -1", got)
	}

	if got := elu.Derivative(1); got != 1 {
		t.Errorf("ELU'(1) = %v, expected 1", got)
	}
	if got, want := elu.Derivative(-1), alpha*math.Exp(-1); math.Abs(got-want) > tol {
		t.Errorf("ELU'(-1) = %v, expected %v", got, want)
	}
	if got := elu.Derivative(0); got != alpha {
		t.Errorf("ELU'(0) = %v, expected %v", got, alpha)
	}
	if got := elu.Derivative(-1000); got != 0 {
		t.Errorf("ELU'(-1000) = %v, expected 0", got)
	}
}

// TestSwish checks the x·sigmoid(βx) definition and derivative landmarks.
func TestSwish(t *testing.T) {
	swish := NewSwish(1.0)
	sigmoid := NewSigmoid()

	for _, x := range []float64{2, -2} {
		want := x * sigmoid.Activate(x)
		if got := swish.Activate(x); math.Abs(got-want) > tol {
			t.Errorf("Swish(%v) = %v, expected %v", x, got, want)
		}
	}

	// At zero the derivative is exactly sigmoid(0) = 0.5.
	if got := swish.Derivative(0); got != 0.5 {
		t.Errorf("Swish'(0) = %v, expected 0.5", got)
	}
	// For large positive x the derivative approaches 1.
	if got := swish.Derivative(1000); math.Abs(got-1) > 1e-3 {
		t.Errorf("Swish'(1000) = %v, expected ≈1", got)
	}
}

// TestSwishSetBeta checks that beta scales the sigmoid argument.
func TestSwishSetBeta(t *testing.T) {
	swish := NewSwish(1.0)
	swish.SetBeta(2.0)

	sigmoid := NewSigmoid()
	want := 1.5 * sigmoid.Activate(3.0)
	if got := swish.Activate(1.5); math.Abs(got-want) > tol {
		t.Errorf("Swish(1.5) with beta=2 = %v, expected %v", got, want)
	}
}

// TestSoftmax checks that outputs form a probability distribution.
func TestSoftmax(t *testing.T) {
	softmax := NewSoftmax()

	probs := softmax.Activate([]float64{1, 2, 3})
	var sum float64
	for _, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("softmax output %v outside (0, 1)", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("softmax outputs sum to %v, expected 1", sum)
	}
	// Monotonic in the logits.
	if !(probs[0] < probs[1] && probs[1] < probs[2]) {
		t.Errorf("softmax outputs %v not ordered like the logits", probs)
	}
}

// TestSoftmaxExtreme checks the max-subtraction stability trick.
func TestSoftmaxExtreme(t *testing.T) {
	softmax := NewSoftmax()

	probs := softmax.Activate([]float64{1000, 1000})
	if math.Abs(probs[0]-0.5) > 1e-9 || math.Abs(probs[1]-0.5) > 1e-9 {
		t.Errorf("softmax([1000 1000]) = %v, expected [0.5 0.5]", probs)
	}
}

// TestSoftmaxEmpty checks the empty-input edge case.
func TestSoftmaxEmpty(t *testing.T) {
	softmax := NewSoftmax()
	if got := softmax.Activate(nil); len(got) != 0 {
		t.Errorf("softmax(nil) = %v, expected empty", got)
	}
}

// TestSoftmaxDerivative checks the diagonal Jacobian terms.
func TestSoftmaxDerivative(t *testing.T) {
	softmax := NewSoftmax()

	xs := []float64{1, 2, 3}
	probs := softmax.Activate(xs)
	derivs := softmax.Derivative(xs)
	for i := range derivs {
		want := probs[i] * (1 - probs[i])
		if math.Abs(derivs[i]-want) > tol {
			t.Errorf("softmax'[%d] = %v, expected %v", i, derivs[i], want)
		}
	}
}
