// Package config loads and validates the YAML configuration for the signal
// engine and the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AnalysisConfig configures the signal engine.
type AnalysisConfig struct {
	Technical  TechnicalConfig `yaml:"technical"`
	Thresholds Thresholds      `yaml:"signal"`
}

// TechnicalConfig holds indicator periods and component weights.
type TechnicalConfig struct {
	RSIPeriod  int `yaml:"rsi_period"`
	BBPeriod   int `yaml:"bb_period"`
	ATRPeriod  int `yaml:"atr_period"`
	MACDFast   int `yaml:"macd_fast"`
	MACDSlow   int `yaml:"macd_slow"`
	MACDSignal int `yaml:"macd_signal"`

	RSIWeight  float64 `yaml:"rsi_weight"`
	MACDWeight float64 `yaml:"macd_weight"`
	BBWeight   float64 `yaml:"bb_weight"`
	ATRWeight  float64 `yaml:"atr_weight"`
}

// Thresholds maps a weighted signal to a recommendation. Buy thresholds are
// positive, sell thresholds negative.
type Thresholds struct {
	StrongBuy  float64 `yaml:"threshold_strong_buy"`
	Buy        float64 `yaml:"threshold_buy"`
	Sell       float64 `yaml:"threshold_sell"`
	StrongSell float64 `yaml:"threshold_strong_sell"`
}

// Default returns the configuration used when no file is given: the common
// charting defaults (RSI 14, Bollinger 20, MACD 12/26/9) with technical
// components weighted toward the oscillators.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Analysis: AnalysisConfig{
			Technical: TechnicalConfig{
				RSIPeriod:  14,
				BBPeriod:   20,
				ATRPeriod:  14,
				MACDFast:   12,
				MACDSlow:   26,
				MACDSignal: 9,
				RSIWeight:  0.3,
				MACDWeight: 0.3,
				BBWeight:   0.25,
				ATRWeight:  0.15,
			},
			Thresholds: Thresholds{
				StrongBuy:  60,
				Buy:        30,
				Sell:       -30,
				StrongSell: -60,
			},
		},
	}
}

// Load reads the configuration from a YAML file, filling unset fields from
// Default and validating the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	t := c.Analysis.Technical

	for name, period := range map[string]int{
		"rsi_period":  t.RSIPeriod,
		"bb_period":   t.BBPeriod,
		"atr_period":  t.ATRPeriod,
		"macd_fast":   t.MACDFast,
		"macd_slow":   t.MACDSlow,
		"macd_signal": t.MACDSignal,
	} {
		if period <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, period)
		}
	}

	if t.MACDFast >= t.MACDSlow {
		return fmt.Errorf("macd_fast (%d) must be less than macd_slow (%d)", t.MACDFast, t.MACDSlow)
	}

	if sum := t.RSIWeight + t.MACDWeight + t.BBWeight + t.ATRWeight; sum <= 0 {
		return fmt.Errorf("component weights must sum to a positive value, got %v", sum)
	}

	th := c.Analysis.Thresholds
	if th.Buy <= 0 || th.StrongBuy < th.Buy {
		return fmt.Errorf("buy thresholds must satisfy 0 < buy <= strong_buy")
	}
	if th.Sell >= 0 || th.StrongSell > th.Sell {
		return fmt.Errorf("sell thresholds must satisfy strong_sell <= sell < 0")
	}
	return nil
}
