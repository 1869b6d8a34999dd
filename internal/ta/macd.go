package ta

import "fmt"

// MACD is the Moving Average Convergence Divergence indicator.
//
// Compute returns the MACD line, the difference between a fast and a slow
// EMA of the series. Signal computes the signal line, an EMA of previously
// computed MACD values. The histogram, when needed, is the difference of
// the two.
//
// Example:
//
//	macd := ta.NewMACD(12, 26, 9)
//	line, err := macd.Compute(closes)
type MACD struct {
	fast   *EMA
	slow   *EMA
	signal *EMA
}

// NewMACD creates a new MACD with the given fast, slow, and signal periods.
// Zero periods are clamped to 1.
func NewMACD(fastPeriod, slowPeriod, signalPeriod int) *MACD {
	return &MACD{
		fast:   NewEMA(fastPeriod),
		slow:   NewEMA(slowPeriod),
		signal: NewEMA(signalPeriod),
	}
}

// FastPeriod returns the fast EMA period.
func (m *MACD) FastPeriod() int { return m.fast.Period() }

// SlowPeriod returns the slow EMA period.
func (m *MACD) SlowPeriod() int { return m.slow.Period() }

// SignalPeriod returns the signal EMA period.
func (m *MACD) SignalPeriod() int { return m.signal.Period() }

// Compute returns the MACD line (fast EMA minus slow EMA) for the series.
// The fast period must be strictly smaller than the slow period and the
// series at least as long as the slow period.
func (m *MACD) Compute(data []float64) (float64, error) {
	if m.fast.Period() >= m.slow.Period() {
		return 0, fmt.Errorf("ta: fast period %d must be less than slow period %d",
			m.fast.Period(), m.slow.Period())
	}
	if len(data) < m.slow.Period() {
		return 0, ErrInsufficientData
	}

	fast, err := m.fast.Compute(data)
	if err != nil {
		return 0, err
	}
	slow, err := m.slow.Compute(data)
	if err != nil {
		return 0, err
	}
	return fast - slow, nil
}

// Signal returns the signal-line value for a series of MACD values. The
// series length must equal the signal period.
func (m *MACD) Signal(macdValues []float64) (float64, error) {
	if len(macdValues) != m.signal.Period() {
		return 0, fmt.Errorf("ta: signal needs exactly %d MACD values, got %d",
			m.signal.Period(), len(macdValues))
	}
	return m.signal.Compute(macdValues)
}
