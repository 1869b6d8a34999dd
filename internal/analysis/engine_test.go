package analysis

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmachina/qmachina/internal/config"
	"github.com/qmachina/qmachina/internal/series"
)

func testCandles(symbol string, closes []float64) []series.Candle {
	candles := make([]series.Candle, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		candles[i] = series.Candle{
			Symbol:    symbol,
			Interval:  "1h",
			OpenTime:  base.Add(time.Duration(i) * time.Hour),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000,
			CloseTime: base.Add(time.Duration(i+1) * time.Hour),
		}
	}
	return candles
}

func trendingCloses(n int, start, step float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return closes
}

func TestEngine_RSIComponent(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	tests := []struct {
		name   string
		closes []float64
		check  func(t *testing.T, signal float64)
	}{
		{
			name:   "all gains is overbought",
			closes: trendingCloses(20, 100, 1),
			check: func(t *testing.T, signal float64) {
				// RSI 100 maps to the strongest sell reading.
				assert.InDelta(t, -100, signal, 1e-9)
			},
		},
		{
			name:   "all losses is oversold",
			closes: trendingCloses(20, 100, -1),
			check: func(t *testing.T, signal float64) {
				assert.InDelta(t, 100, signal, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, err := e.rsiComponent(tt.closes)
			require.NoError(t, err)
			tt.check(t, signal)
		})
	}
}

func TestEngine_ATRComponent(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	// Constant range of 2 on a price of 100 gives ATR percent 2, the
	// neutral volatility band.
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := range closes {
		highs[i], lows[i], closes[i] = 101, 99, 100
	}

	signal, err := e.atrComponent(highs, lows, closes)
	require.NoError(t, err)
	assert.Zero(t, signal)

	// Shrink the range so ATR percent drops below 0.5.
	for i := range closes {
		highs[i], lows[i] = 100.1, 99.9
	}
	signal, err = e.atrComponent(highs, lows, closes)
	require.NoError(t, err)
	assert.InDelta(t, 20, signal, 1e-9)
}

func TestEngine_BollingerComponent(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	// Flat series gives zero-width bands and a neutral signal.
	flat := trendingCloses(30, 100, 0)
	signal, err := e.bollingerComponent(flat)
	require.NoError(t, err)
	assert.Zero(t, signal)

	// A spike above the upper band is a strong sell.
	spiked := trendingCloses(30, 100, 0.1)
	spiked[len(spiked)-1] = 200
	signal, err = e.bollingerComponent(spiked)
	require.NoError(t, err)
	assert.InDelta(t, -100, signal, 1e-9)

	// A crash below the lower band is a strong buy.
	crashed := trendingCloses(30, 100, 0.1)
	crashed[len(crashed)-1] = 10
	signal, err = e.bollingerComponent(crashed)
	require.NoError(t, err)
	assert.InDelta(t, 100, signal, 1e-9)
}

func TestEngine_Recommend(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	tests := []struct {
		weighted float64
		want     Recommendation
	}{
		{75, StrongBuy},
		{60, StrongBuy},
		{45, Buy},
		{30, Buy},
		{0, Neutral},
		{-29, Neutral},
		{-30, Sell},
		{-45, Sell},
		{-60, StrongSell},
		{-80, StrongSell},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.recommend(tt.weighted), "weighted %v", tt.weighted)
	}
}

func TestEngine_Evaluate(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	candles := testCandles("BTCUSDT", trendingCloses(60, 100, 0.5))
	sig, err := e.Evaluate(candles)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", sig.Symbol)
	assert.Equal(t, candles[len(candles)-1].Close, sig.Price)
	assert.Len(t, sig.Components, 4)
	for name, value := range sig.Components {
		assert.False(t, math.IsNaN(value), "component %s is NaN", name)
		assert.GreaterOrEqual(t, value, -100.0, "component %s", name)
		assert.LessOrEqual(t, value, 100.0, "component %s", name)
	}

	// A steady uptrend keeps RSI pinned high, which argues for selling.
	assert.Negative(t, sig.Components["rsi"])
}

func TestEngine_Evaluate_InsufficientData(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	_, err := e.Evaluate(testCandles("BTCUSDT", trendingCloses(10, 100, 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least")
}

func TestEngine_EvaluateAll(t *testing.T) {
	e := NewEngine(config.Default().Analysis)

	bySymbol := map[string][]series.Candle{
		"BTCUSDT": testCandles("BTCUSDT", trendingCloses(60, 100, 0.5)),
		"ETHUSDT": testCandles("ETHUSDT", trendingCloses(60, 50, -0.2)),
		"BADUSDT": testCandles("BADUSDT", trendingCloses(5, 10, 0)),
	}

	results := e.EvaluateAll(context.Background(), bySymbol)
	assert.Len(t, results, 2)
	assert.Contains(t, results, "BTCUSDT")
	assert.Contains(t, results, "ETHUSDT")
	assert.NotContains(t, results, "BADUSDT")
}
