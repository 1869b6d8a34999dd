// Copyright 2025 QMachina. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ta provides technical analysis indicators over price series.
//
// # Overview
//
// This package contains:
//   - Moving averages: SMA, EMA
//   - Momentum: RSI, WilderRSI, MACD
//   - Volatility: Bollinger, ATR
//
// # Basic Usage
//
//	import "github.com/qmachina/qmachina/ta"
//
//	func main() {
//	    rsi := ta.NewRSI(14)
//
//	    value, err := rsi.Compute(closes)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Indicators validate their input and return ErrInsufficientData when the
// series is shorter than the configured period and ErrInvalidData when it
// contains NaN or infinite values. Periods below 1 are clamped to 1.
package ta
