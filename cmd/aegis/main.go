package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/aegislabs/aegis/internal/app"
	"github.com/aegislabs/aegis/internal/common"
	"github.com/aegislabs/aegis/internal/models"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to aegis.toml (default: AEGIS_CONFIG, then aegis.toml beside the binary)")
		inputPath   = flag.String("input", "", "valuation series JSON file: [{\"date\":\"2024-01-02T00:00:00Z\",\"value\":1000}, ...]")
		portfolioID = flag.String("portfolio", "default", "portfolio identifier copied into the output record")
		totalValue  = flag.Float64("value", 0, "current total portfolio value (default: last series point)")
		quiet       = flag.Bool("quiet", false, "suppress the startup banner")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		common.PrintBanner(a.Config, a.Logger)
	}

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: aegis -input series.json [-portfolio id] [-value n]")
		os.Exit(2)
	}

	series, err := readSeries(*inputPath)
	if err != nil {
		a.Logger.Fatal().Err(err).Str("path", *inputPath).Msg("Failed to read valuation series")
	}

	value := *totalValue
	if value == 0 && len(series) > 0 {
		value = series[len(series)-1].Value
	}

	metrics, err := a.RiskService.ComputeRiskMetrics(context.Background(), *portfolioID, value, series)
	if err != nil {
		a.Logger.Fatal().Err(err).Msg("Failed to compute risk metrics")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(metrics); err != nil {
		a.Logger.Fatal().Err(err).Msg("Failed to encode risk metrics")
	}
}

// readSeries loads and decodes a valuation series file.
func readSeries(path string) ([]models.ValuationPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var series []models.ValuationPoint
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("invalid valuation series: %w", err)
	}
	return series, nil
}
