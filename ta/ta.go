// Copyright 2025 QMachina. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ta

import (
	"github.com/qmachina/qmachina/internal/ta"
)

// Errors returned by indicator computations.
var (
	ErrInsufficientData = ta.ErrInsufficientData
	ErrInvalidData      = ta.ErrInvalidData
)

// Indicator is the common interface for single-value indicators.
type Indicator = ta.Indicator

// PeriodIndicator is an indicator with a configurable lookback period.
type PeriodIndicator = ta.PeriodIndicator

// SMA is the simple moving average.
type SMA = ta.SMA

// NewSMA creates a simple moving average with the given period.
func NewSMA(period int) *SMA {
	return ta.NewSMA(period)
}

// EMA is the exponential moving average.
type EMA = ta.EMA

// NewEMA creates an exponential moving average with the given period.
func NewEMA(period int) *EMA {
	return ta.NewEMA(period)
}

// RSI is the relative strength index computed with simple averages.
type RSI = ta.RSI

// NewRSI creates an RSI with the given period.
//
// Example:
//
//	rsi := ta.NewRSI(14)
//	value, err := rsi.Compute(closes) // 0..100
func NewRSI(period int) *RSI {
	return ta.NewRSI(period)
}

// WilderRSI is the relative strength index with Wilder's smoothing.
type WilderRSI = ta.WilderRSI

// NewWilderRSI creates a Wilder-smoothed RSI with the given period.
func NewWilderRSI(period int) *WilderRSI {
	return ta.NewWilderRSI(period)
}

// MACD is the moving average convergence divergence indicator.
type MACD = ta.MACD

// NewMACD creates a MACD with the given fast, slow and signal periods.
//
// Example:
//
//	macd := ta.NewMACD(12, 26, 9)
//	value, err := macd.Compute(closes)
func NewMACD(fastPeriod, slowPeriod, signalPeriod int) *MACD {
	return ta.NewMACD(fastPeriod, slowPeriod, signalPeriod)
}

// Bands holds the three Bollinger band values.
type Bands = ta.Bands

// Bollinger computes Bollinger bands around a simple moving average.
type Bollinger = ta.Bollinger

// NewBollinger creates a Bollinger band indicator with the given period.
func NewBollinger(period int) *Bollinger {
	return ta.NewBollinger(period)
}

// ATR is the average true range volatility indicator.
type ATR = ta.ATR

// NewATR creates an ATR with the given period.
func NewATR(period int) *ATR {
	return ta.NewATR(period)
}
