package ta

import "math"

// ATR is the Average True Range volatility indicator.
//
// The true range of a bar is the largest of high-low, |high-previous close|,
// and |low-previous close|. ATR seeds on the mean of the first `period` true
// ranges and then applies Wilder smoothing, producing an absolute-price
// measure of how much the instrument moves per bar.
//
// Example:
//
//	atr := ta.NewATR(14)
//	v, err := atr.ComputeHLC(highs, lows, closes)
type ATR struct {
	period int
}

// NewATR creates a new ATR with the given period. A zero period is clamped
// to 1.
func NewATR(period int) *ATR {
	return &ATR{period: clampPeriod(period)}
}

// Period returns the look-back period.
func (a *ATR) Period() int {
	return a.period
}

// SetPeriod updates the look-back period, clamping zero to 1.
func (a *ATR) SetPeriod(period int) {
	a.period = clampPeriod(period)
}

// ComputeHLC returns the Wilder-smoothed average true range over the
// high/low/close series. The slices must have equal length of at least
// period+1 bars, since the first true range needs a previous close.
func (a *ATR) ComputeHLC(highs, lows, closes []float64) (float64, error) {
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return 0, ErrInvalidData
	}
	if len(closes) < a.period+1 {
		return 0, ErrInsufficientData
	}

	trueRange := func(i int) (float64, error) {
		h, l, prev := highs[i], lows[i], closes[i-1]
		if math.IsNaN(h) || math.IsNaN(l) || math.IsNaN(prev) ||
			math.IsInf(h, 0) || math.IsInf(l, 0) || math.IsInf(prev, 0) {
			return 0, ErrInvalidData
		}
		tr := h - l
		if d := math.Abs(h - prev); d > tr {
			tr = d
		}
		if d := math.Abs(l - prev); d > tr {
			tr = d
		}
		return tr, nil
	}

	var atr float64
	for i := 1; i <= a.period; i++ {
		tr, err := trueRange(i)
		if err != nil {
			return 0, err
		}
		atr += tr
	}
	atr /= float64(a.period)

	for i := a.period + 1; i < len(closes); i++ {
		tr, err := trueRange(i)
		if err != nil {
			return 0, err
		}
		atr = (atr*float64(a.period-1) + tr) / float64(a.period)
	}
	return atr, nil
}
