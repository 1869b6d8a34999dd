// Package analysis combines the technical indicators into a weighted trading
// signal with a recommendation.
//
// Each component maps its indicator reading to a signal in [-100, 100],
// where positive values argue for buying and negative for selling. The
// engine weights the components per configuration and maps the sum to a
// Recommendation through the configured thresholds.
package analysis

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/qmachina/qmachina/internal/config"
	"github.com/qmachina/qmachina/internal/series"
	"github.com/qmachina/qmachina/internal/ta"
	"github.com/qmachina/qmachina/pkg/logger"
)

// Recommendation is the trading action derived from the weighted signal.
type Recommendation string

const (
	StrongBuy  Recommendation = "STRONG BUY"
	Buy        Recommendation = "BUY"
	Neutral    Recommendation = "NEUTRAL"
	Sell       Recommendation = "SELL"
	StrongSell Recommendation = "STRONG SELL"
)

// Signal is the evaluation result for one symbol.
type Signal struct {
	Symbol         string
	Timestamp      time.Time
	Recommendation Recommendation
	Strength       float64
	Price          float64
	Components     map[string]float64
}

// Engine evaluates candle series into signals.
type Engine struct {
	cfg       config.AnalysisConfig
	rsi       *ta.WilderRSI
	macd      *ta.MACD
	bollinger *ta.Bollinger
	atr       *ta.ATR
}

// NewEngine creates an engine with indicators built from the configuration.
func NewEngine(cfg config.AnalysisConfig) *Engine {
	t := cfg.Technical
	return &Engine{
		cfg:       cfg,
		rsi:       ta.NewWilderRSI(t.RSIPeriod),
		macd:      ta.NewMACD(t.MACDFast, t.MACDSlow, t.MACDSignal),
		bollinger: ta.NewBollinger(t.BBPeriod),
		atr:       ta.NewATR(t.ATRPeriod),
	}
}

// MinCandles returns the number of candles the engine needs: enough for a
// MACD line series long enough to seed the signal line.
func (e *Engine) MinCandles() int {
	t := e.cfg.Technical
	min := t.MACDSlow + t.MACDSignal
	for _, p := range []int{t.RSIPeriod + 1, t.BBPeriod, t.ATRPeriod + 1} {
		if p > min {
			min = p
		}
	}
	return min
}

// Evaluate computes the weighted signal for one candle series, oldest first.
func (e *Engine) Evaluate(candles []series.Candle) (*Signal, error) {
	if len(candles) < e.MinCandles() {
		return nil, fmt.Errorf("analysis: need at least %d candles, got %d",
			e.MinCandles(), len(candles))
	}

	closes := series.Closes(candles)
	highs := series.Highs(candles)
	lows := series.Lows(candles)
	last := candles[len(candles)-1]

	rsiSignal, err := e.rsiComponent(closes)
	if err != nil {
		return nil, err
	}
	macdSignal, err := e.macdComponent(closes)
	if err != nil {
		return nil, err
	}
	bbSignal, err := e.bollingerComponent(closes)
	if err != nil {
		return nil, err
	}
	atrSignal, err := e.atrComponent(highs, lows, closes)
	if err != nil {
		return nil, err
	}

	t := e.cfg.Technical
	weighted := rsiSignal*t.RSIWeight +
		macdSignal*t.MACDWeight +
		bbSignal*t.BBWeight +
		atrSignal*t.ATRWeight

	logger.Debug("evaluated components",
		zap.String("symbol", last.Symbol),
		zap.Float64("rsi", rsiSignal),
		zap.Float64("macd", macdSignal),
		zap.Float64("bollinger", bbSignal),
		zap.Float64("atr", atrSignal),
		zap.Float64("weighted", weighted))

	return &Signal{
		Symbol:         last.Symbol,
		Timestamp:      time.Now(),
		Recommendation: e.recommend(weighted),
		Strength:       weighted,
		Price:          last.Close,
		Components: map[string]float64{
			"rsi":       rsiSignal,
			"macd":      macdSignal,
			"bollinger": bbSignal,
			"atr":       atrSignal,
		},
	}, nil
}

// EvaluateAll evaluates every symbol concurrently. Symbols that fail are
// logged and omitted from the result.
func (e *Engine) EvaluateAll(ctx context.Context, bySymbol map[string][]series.Candle) map[string]*Signal {
	results := make(map[string]*Signal, len(bySymbol))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for symbol, candles := range bySymbol {
		wg.Add(1)
		go func(symbol string, candles []series.Candle) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			sig, err := e.Evaluate(candles)
			if err != nil {
				logger.Warn("symbol evaluation failed",
					zap.String("symbol", symbol), zap.Error(err))
				return
			}
			mu.Lock()
			results[symbol] = sig
			mu.Unlock()
		}(symbol, candles)
	}
	wg.Wait()
	return results
}

// recommend maps the weighted signal to a recommendation via thresholds.
func (e *Engine) recommend(weighted float64) Recommendation {
	th := e.cfg.Thresholds
	switch {
	case weighted >= th.StrongBuy:
		return StrongBuy
	case weighted >= th.Buy:
		return Buy
	case weighted <= th.StrongSell:
		return StrongSell
	case weighted <= th.Sell:
		return Sell
	default:
		return Neutral
	}
}

// rsiComponent maps the RSI reading to [-100, 100]: oversold readings argue
// for buying, overbought for selling, and the neutral zone scales linearly
// around 50.
func (e *Engine) rsiComponent(closes []float64) (float64, error) {
	rsi, err := e.rsi.Compute(closes)
	if err != nil {
		return 0, err
	}

	switch {
	case rsi < 30:
		return 100 * (30 - rsi) / 30, nil
	case rsi > 70:
		return -100 * (rsi - 70) / 30, nil
	default:
		return (50 - rsi) * 2, nil
	}
}

// macdComponent normalizes the MACD histogram by its largest magnitude over
// the series, with the sign set by the MACD line's position against the
// signal line.
func (e *Engine) macdComponent(closes []float64) (float64, error) {
	slow := e.macd.SlowPeriod()
	signalPeriod := e.macd.SignalPeriod()

	// MACD line value per bar, starting at the first bar with a full slow
	// window.
	macdValues := make([]float64, 0, len(closes)-slow+1)
	for i := slow; i <= len(closes); i++ {
		v, err := e.macd.Compute(closes[:i])
		if err != nil {
			return 0, err
		}
		macdValues = append(macdValues, v)
	}
	if len(macdValues) < signalPeriod {
		return 0, ta.ErrInsufficientData
	}

	// Histogram per bar once the signal line has a full window.
	var maxHist, lastHist, lastSignal float64
	for i := signalPeriod; i <= len(macdValues); i++ {
		sig, err := e.macd.Signal(macdValues[i-signalPeriod : i])
		if err != nil {
			return 0, err
		}
		hist := macdValues[i-1] - sig
		if math.Abs(hist) > maxHist {
			maxHist = math.Abs(hist)
		}
		lastHist = hist
		lastSignal = sig
	}
	if maxHist == 0 {
		return 0, nil
	}

	strength := math.Abs(lastHist) / maxHist * 100
	if macdValues[len(macdValues)-1] < lastSignal {
		strength = -strength
	}
	return strength, nil
}

// bollingerComponent maps the closing price's position in the bands (%B)
// to a signal, scaled by the relative bandwidth so that breakouts from wide
// bands count for more.
func (e *Engine) bollingerComponent(closes []float64) (float64, error) {
	window := closes[len(closes)-e.bollinger.Period():]
	bands, err := e.bollinger.Compute(window)
	if err != nil {
		return 0, err
	}

	width := bands.Upper - bands.Lower
	if width == 0 || bands.Middle == 0 {
		return 0, nil
	}

	lastClose := closes[len(closes)-1]
	percentB := (lastClose - bands.Lower) / width
	bandwidth := width / bands.Middle

	switch {
	case percentB > 1:
		return -100, nil
	case percentB < 0:
		return 100, nil
	case percentB > 0.8:
		return -80 * bandwidth, nil
	case percentB < 0.2:
		return 80 * bandwidth, nil
	default:
		return (0.5 - percentB) * 100 * bandwidth, nil
	}
}

// atrComponent scores volatility: very quiet markets hint at an upcoming
// move, very hot ones at exhaustion. Bands follow crypto-market norms for
// ATR as a percentage of price.
func (e *Engine) atrComponent(highs, lows, closes []float64) (float64, error) {
	atr, err := e.atr.ComputeHLC(highs, lows, closes)
	if err != nil {
		return 0, err
	}

	lastClose := closes[len(closes)-1]
	if lastClose == 0 {
		return 0, nil
	}
	atrPercent := atr / lastClose * 100

	switch {
	case atrPercent > 5:
		return -20, nil
	case atrPercent > 3:
		return -10, nil
	case atrPercent < 0.5:
		return 20, nil
	case atrPercent < 1:
		return 10, nil
	default:
		return 0, nil
	}
}
