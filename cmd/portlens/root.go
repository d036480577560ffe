package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/portlens-org/portlens/config"
	"github.com/portlens-org/portlens/dataset"
)

// ============================================================================
// PORTLENS CLI — Client portfolio analytics from four CSV sources
// ============================================================================

const version = "0.1.0"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:     "portlens",
	Short:   "Client portfolio analytics over CSV lookup tables",
	Long: `Portlens loads bank client facts plus three dimension lookups,
joins them into one analytical table, and renders dashboard payloads
(KPIs, chart configs, table data) for a filtered client segment.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config (optional; env vars apply either way)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads YAML+env configuration, honoring the --log-level override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// newLogger builds a console logger at the configured level.
func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	zcfg.DisableStacktrace = true

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// sourcePaths maps config onto the loader's path set.
func sourcePaths(cfg *config.Config) dataset.Paths {
	return dataset.Paths{
		Clients:       cfg.Datasets.Clients,
		Relationships: cfg.Datasets.Relationships,
		Genders:       cfg.Datasets.Genders,
		Advisors:      cfg.Datasets.Advisors,
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
