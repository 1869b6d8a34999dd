// Package ta implements technical-analysis indicators over price series.
//
// Indicators operate on float64 slices ordered oldest to newest unless a
// method documents otherwise. Invalid input (short series, NaN/Inf samples)
// is reported through an error, never through a NaN result.
package ta

import "errors"

// ErrInsufficientData is returned when the series is shorter than the
// indicator's period requires.
var ErrInsufficientData = errors.New("ta: insufficient data for period")

// ErrInvalidData is returned when the series contains NaN or infinite
// samples inside the computed window.
var ErrInvalidData = errors.New("ta: invalid data encountered during calculation")

// Indicator is the common interface for single-value indicators computed
// over a price series.
type Indicator interface {
	Compute(data []float64) (float64, error)
}

// PeriodIndicator is implemented by indicators parameterized by a look-back
// period.
//
// SetPeriod clamps a zero period to 1, mirroring the constructors: a zero
// window is never valid and silently degrading to the shortest one keeps
// the indicator usable with config-driven periods.
type PeriodIndicator interface {
	Period() int
	SetPeriod(period int)
}

// clampPeriod normalizes a period to at least 1.
func clampPeriod(period int) int {
	if period < 1 {
		return 1
	}
	return period
}
