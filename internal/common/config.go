// Package common provides shared utilities for Aegis
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Default risk assumptions. RiskFreeRate is the annualized rate used in the
// Sharpe/Sortino numerators; TradingPeriodsPerYear scales per-period statistics
// to yearly terms. Both are config-overridable, never hard-wired into formulas.
const (
	DefaultRiskFreeRate   = 0.02
	DefaultTradingPeriods = 252
	DefaultVaRPercentile  = 5.0 // 95% confidence
	DefaultHistoryDays    = 30
)

// Config holds all configuration for Aegis
type Config struct {
	Environment string        `toml:"environment"`
	Risk        RiskConfig    `toml:"risk"`
	Logging     LoggingConfig `toml:"logging"`
}

// RiskConfig holds risk-engine assumptions.
type RiskConfig struct {
	RiskFreeRate   float64 `toml:"risk_free_rate"`  // annualized fractional rate
	TradingPeriods int     `toml:"trading_periods"` // periods per year for annualization
	VaRPercentile  float64 `toml:"var_percentile"`  // tail percentile, 5.0 = 95% VaR
	HistoryDays    int     `toml:"history_days"`    // valuation history window for AssessPortfolio
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Risk: RiskConfig{
			RiskFreeRate:   DefaultRiskFreeRate,
			TradingPeriods: DefaultTradingPeriods,
			VaRPercentile:  DefaultVaRPercentile,
			HistoryDays:    DefaultHistoryDays,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateRisk(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AEGIS_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("AEGIS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if rate := os.Getenv("AEGIS_RISK_FREE_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil {
			config.Risk.RiskFreeRate = r
		}
	}

	if periods := os.Getenv("AEGIS_TRADING_PERIODS"); periods != "" {
		if p, err := strconv.Atoi(periods); err == nil {
			config.Risk.TradingPeriods = p
		}
	}

	if days := os.Getenv("AEGIS_HISTORY_DAYS"); days != "" {
		if d, err := strconv.Atoi(days); err == nil {
			config.Risk.HistoryDays = d
		}
	}
}

// validateRisk clamps risk settings back to defaults when a file or env
// override left them unusable.
func validateRisk(config *Config) {
	if config.Risk.TradingPeriods <= 0 {
		config.Risk.TradingPeriods = DefaultTradingPeriods
	}
	if config.Risk.VaRPercentile <= 0 || config.Risk.VaRPercentile >= 50 {
		config.Risk.VaRPercentile = DefaultVaRPercentile
	}
	if config.Risk.HistoryDays <= 0 {
		config.Risk.HistoryDays = DefaultHistoryDays
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
