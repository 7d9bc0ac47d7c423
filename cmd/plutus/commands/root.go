package commands

import (
	"github.com/peter-kozarec/plutus/internal/cfg"
	"github.com/peter-kozarec/plutus/internal/dbg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const Version = "v0.1.0"

var (
	// Global flags
	configFile string
	env        string
)

var rootCmd = &cobra.Command{
	Use:     "plutus",
	Short:   "Performance analytics for periodic returns",
	Version: Version,
	Long: `Plutus computes risk-adjusted performance reports from series of
periodic returns: cumulative path, annual return, Sharpe and Sortino
ratios, maximum drawdown and the longest drawdown.

Examples:
  plutus report --config plutus.yaml
  plutus dump EURUSD.csv EURUSD.bin`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "log environment (development|production), overrides log.env")
}

// setup loads the configuration and builds the logger every command shares.
func setup() (cfg.Config, *zap.Logger, error) {
	v, err := cfg.NewViper(configFile)
	if err != nil {
		return cfg.Config{}, nil, err
	}
	if env != "" {
		v.Set("log.env", env)
	}

	config, err := cfg.Load(v)
	if err != nil {
		return cfg.Config{}, nil, err
	}

	logger, err := dbg.NewLogger(config.LogEnv)
	if err != nil {
		return cfg.Config{}, nil, err
	}
	return config, logger, nil
}
