package ta

import "math"

// SMA is the Simple Moving Average indicator.
//
// Compute averages the first `period` samples of the series, smoothing out
// noise to expose the underlying level.
//
// Example:
//
//	sma := ta.NewSMA(3)
//	v, err := sma.Compute([]float64{1, 2, 3, 4, 5}) // 2.0
type SMA struct {
	period int
}

// NewSMA creates a new SMA with the given period. A zero period is clamped
// to 1.
func NewSMA(period int) *SMA {
	return &SMA{period: clampPeriod(period)}
}

// Period returns the look-back period.
func (s *SMA) Period() int {
	return s.period
}

// SetPeriod updates the look-back period, clamping zero to 1.
func (s *SMA) SetPeriod(period int) {
	s.period = clampPeriod(period)
}

// Compute returns the average of the first `period` samples.
func (s *SMA) Compute(data []float64) (float64, error) {
	if len(data) < s.period {
		return 0, ErrInsufficientData
	}

	var sum float64
	for _, v := range data[:s.period] {
		sum += v
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, ErrInvalidData
	}
	return sum / float64(s.period), nil
}
