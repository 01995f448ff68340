package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config, logger *Logger) {
	version := GetVersion()
	build := GetBuild()

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		`      d8888 8888888888 .d8888b.  8888888 .d8888b.`,
		`     d88888 888       d88P  Y88b   888  d88P  Y88b`,
		`    d88P888 888       888    888   888  Y88b.`,
		`   d88P 888 8888888   888          888   "Y888b.`,
		`  d88P  888 888       888  88888   888      "Y88b.`,
		` d88P   888 888       888    888   888        "888`,
		`d8888888888 888       Y88b  d88P   888  Y88b  d88P`,
		`d88P    888 8888888888 "Y8888P88 8888888  "Y8888P"`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s  Portfolio Risk Analytics%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	kvPad := 16
	kvLines := [][2]string{
		{"Version", version},
		{"Build", build},
		{"Environment", config.Environment},
		{"Risk-Free Rate", fmt.Sprintf("%.2f%%", config.Risk.RiskFreeRate*100)},
		{"Periods/Year", fmt.Sprintf("%d", config.Risk.TradingPeriods)},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	logger.Info().
		Str("version", version).
		Str("build", build).
		Str("environment", config.Environment).
		Float64("risk_free_rate", config.Risk.RiskFreeRate).
		Msg("Application started")
}
