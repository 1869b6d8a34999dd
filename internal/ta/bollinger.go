package ta

import "math"

// Bands holds the three Bollinger band values for a window.
type Bands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// Bollinger is the Bollinger Bands volatility envelope.
//
// The middle band is the SMA of the window, and the upper and lower bands
// sit two population standard deviations above and below it. The band width
// tracks volatility: wide bands mean a volatile market, narrow bands a
// quiet one.
//
// Example:
//
//	bb := ta.NewBollinger(20)
//	bands, err := bb.Compute(closes)
type Bollinger struct {
	period int
	sma    *SMA
}

// NewBollinger creates new Bollinger Bands with the given period. A zero
// period is clamped to 1.
func NewBollinger(period int) *Bollinger {
	period = clampPeriod(period)
	return &Bollinger{
		period: period,
		sma:    NewSMA(period),
	}
}

// Period returns the look-back period.
func (b *Bollinger) Period() int {
	return b.period
}

// SetPeriod updates the look-back period, clamping zero to 1.
func (b *Bollinger) SetPeriod(period int) {
	b.period = clampPeriod(period)
	b.sma.SetPeriod(b.period)
}

// Compute returns the upper, middle, and lower bands over the first
// `period` samples of the series.
func (b *Bollinger) Compute(data []float64) (Bands, error) {
	if len(data) < b.period {
		return Bands{}, ErrInsufficientData
	}

	middle, err := b.sma.Compute(data)
	if err != nil {
		return Bands{}, err
	}

	var variance float64
	for _, v := range data[:b.period] {
		d := v - middle
		variance += d * d
	}
	variance /= float64(b.period)
	stdDev := math.Sqrt(variance)

	return Bands{
		Upper:  middle + 2*stdDev,
		Middle: middle,
		Lower:  middle - 2*stdDev,
	}, nil
}
