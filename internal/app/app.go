// Package app wires configuration, logging, and services into a runnable unit.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aegislabs/aegis/internal/common"
	"github.com/aegislabs/aegis/internal/interfaces"
	"github.com/aegislabs/aegis/internal/services/risk"
)

// App holds all initialized services. Valuation history and metrics
// persistence are external collaborators; an App wired without them still
// serves direct metric computation.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	RiskService interfaces.RiskService
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes the logger and risk service.
// configPath may be empty, in which case AEGIS_CONFIG, then aegis.toml next
// to the binary, then config/aegis.toml are tried in order.
func NewApp(configPath string) (*App, error) {
	return NewAppWithCollaborators(configPath, nil, nil)
}

// NewAppWithCollaborators is NewApp with an explicit valuation history
// provider and metrics store, for callers that supply their own.
func NewAppWithCollaborators(configPath string, provider interfaces.ValuationHistoryProvider, store interfaces.RiskMetricsStore) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("AEGIS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "aegis.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/aegis.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	riskService := risk.NewService(provider, store, config.Risk, logger)

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return &App{
		Config:      config,
		Logger:      logger,
		RiskService: riskService,
		StartupTime: startupStart,
	}, nil
}
