// Package main provides the qmachina CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/qmachina/qmachina/internal/analysis"
	"github.com/qmachina/qmachina/internal/config"
	"github.com/qmachina/qmachina/internal/series"
	"github.com/qmachina/qmachina/pkg/logger"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("qmachina %s\n", version)
	case "analyze":
		if err := runAnalyze(os.Args[2:]); err != nil {
			logger.Error("analyze failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Sync()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("qmachina - quantitative analysis toolkit")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  analyze    Evaluate candle data into trading signals")
	fmt.Println("")
	fmt.Println("Run 'qmachina analyze -h' for flags.")
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config (defaults apply if empty)")
	candlesPath := fs.String("candles", "", "path to candle CSV file (required)")
	symbol := fs.String("symbol", "UNKNOWN", "symbol label for the candle file")
	interval := fs.String("interval", "1h", "candle interval label")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *candlesPath == "" {
		fs.Usage()
		return fmt.Errorf("missing required -candles flag")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	logger.Init(cfg.Logging.Level)

	candles, err := series.LoadCSV(*candlesPath, *symbol, *interval)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}
	logger.Info("loaded candles",
		zap.String("symbol", *symbol),
		zap.Int("count", len(candles)))

	engine := analysis.NewEngine(cfg.Analysis)
	results := engine.EvaluateAll(context.Background(), map[string][]series.Candle{
		*symbol: candles,
	})
	if len(results) == 0 {
		return fmt.Errorf("no signals produced")
	}

	printSignals(results)
	return nil
}

func printSignals(results map[string]*analysis.Signal) {
	symbols := make([]string, 0, len(results))
	for s := range results {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	for _, s := range symbols {
		sig := results[s]
		fmt.Printf("%s  %s  strength=%.2f  price=%.4f\n",
			sig.Symbol, sig.Recommendation, sig.Strength, sig.Price)

		names := make([]string, 0, len(sig.Components))
		for name := range sig.Components {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%.2f", name, sig.Components[name]))
		}
		fmt.Printf("  components: %s\n", strings.Join(parts, "  "))
	}
}
