package ta

import "math"

// EMA is the Exponential Moving Average indicator.
//
// Compute smooths the last `period` samples with factor k = 2/(period+1),
// seeding from the oldest sample of that window. Recent samples carry more
// weight than in an SMA, so the average reacts faster to new prices.
//
// Example:
//
//	ema := ta.NewEMA(3)
//	v, err := ema.Compute([]float64{1, 2, 3, 4, 5}) // 4.25
type EMA struct {
	period    int
	smoothing float64
}

// NewEMA creates a new EMA with the given period. A zero period is clamped
// to 1.
func NewEMA(period int) *EMA {
	period = clampPeriod(period)
	return &EMA{
		period:    period,
		smoothing: 2 / (float64(period) + 1),
	}
}

// Period returns the look-back period.
func (e *EMA) Period() int {
	return e.period
}

// SetPeriod updates the look-back period and the smoothing factor, clamping
// zero to 1.
func (e *EMA) SetPeriod(period int) {
	e.period = clampPeriod(period)
	e.smoothing = 2 / (float64(e.period) + 1)
}

// Compute returns the exponential average over the last `period` samples.
func (e *EMA) Compute(data []float64) (float64, error) {
	if len(data) < e.period {
		return 0, ErrInsufficientData
	}

	window := data[len(data)-e.period:]
	ema := window[0]
	if math.IsNaN(ema) || math.IsInf(ema, 0) {
		return 0, ErrInvalidData
	}
	for _, v := range window[1:] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrInvalidData
		}
		ema += (v - ema) * e.smoothing
	}
	return ema, nil
}
