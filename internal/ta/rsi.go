package ta

import "math"

// RSI is the Relative Strength Index momentum oscillator.
//
// Compute sums gains and losses over consecutive price changes of the whole
// series and maps their ratio to [0, 100]. Readings above 70 are commonly
// read as overbought and below 30 as oversold.
//
// An all-loss series returns 0 and an all-gain series returns 100; the
// division by zero in RS never happens.
//
// Example:
//
//	rsi := ta.NewRSI(14)
//	v, err := rsi.Compute(closes)
type RSI struct {
	period int
}

// NewRSI creates a new RSI with the given period. A zero period is clamped
// to 1.
func NewRSI(period int) *RSI {
	return &RSI{period: clampPeriod(period)}
}

// Period returns the look-back period.
func (r *RSI) Period() int {
	return r.period
}

// SetPeriod updates the look-back period, clamping zero to 1.
func (r *RSI) SetPeriod(period int) {
	r.period = clampPeriod(period)
}

// Compute returns the RSI of the series. It requires at least period+1
// samples so that `period` price changes exist.
func (r *RSI) Compute(data []float64) (float64, error) {
	if len(data) < r.period+1 {
		return 0, ErrInsufficientData
	}
	if math.IsNaN(data[0]) || math.IsInf(data[0], 0) {
		return 0, ErrInvalidData
	}

	var gains, losses float64
	for i := 1; i < len(data); i++ {
		if math.IsNaN(data[i]) || math.IsInf(data[i], 0) {
			return 0, ErrInvalidData
		}
		change := data[i] - data[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	if gains == 0 {
		return 0, nil
	}
	if losses == 0 {
		return 100, nil
	}

	rs := gains / losses
	return 100 - 100/(1+rs), nil
}

// WilderRSI is the Wilder-smoothed Relative Strength Index.
//
// Unlike RSI it seeds average gain and loss over the first `period` changes
// and then applies Wilder's recursive smoothing across the rest of the
// series, which is the form most charting platforms display.
type WilderRSI struct {
	period int
}

// NewWilderRSI creates a new WilderRSI with the given period. A zero period
// is clamped to 1.
func NewWilderRSI(period int) *WilderRSI {
	return &WilderRSI{period: clampPeriod(period)}
}

// Period returns the look-back period.
func (r *WilderRSI) Period() int {
	return r.period
}

// SetPeriod updates the look-back period, clamping zero to 1.
func (r *WilderRSI) SetPeriod(period int) {
	r.period = clampPeriod(period)
}

// Compute returns the Wilder-smoothed RSI of the series. It requires at
// least period+1 samples.
func (r *WilderRSI) Compute(data []float64) (float64, error) {
	if len(data) < r.period+1 {
		return 0, ErrInsufficientData
	}
	if math.IsNaN(data[0]) || math.IsInf(data[0], 0) {
		return 0, ErrInvalidData
	}

	var avgGain, avgLoss float64
	for i := 1; i <= r.period; i++ {
		if math.IsNaN(data[i]) || math.IsInf(data[i], 0) {
			return 0, ErrInvalidData
		}
		change := data[i] - data[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(r.period)
	avgLoss /= float64(r.period)

	for i := r.period + 1; i < len(data); i++ {
		if math.IsNaN(data[i]) || math.IsInf(data[i], 0) {
			return 0, ErrInvalidData
		}
		change := data[i] - data[i-1]
		gain, lossV := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			lossV = -change
		}
		avgGain = (avgGain*float64(r.period-1) + gain) / float64(r.period)
		avgLoss = (avgLoss*float64(r.period-1) + lossV) / float64(r.period)
	}

	if avgLoss == 0 {
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}
