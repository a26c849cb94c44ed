package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/bulma/lib/config"
	"github.com/pthm/bulma/lib/logger"
)

type rootFlags struct {
	configPath string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bulma",
		Short:         "Bulma components for Go: showcase server and class audit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Path to a .env file with BULMA_* overrides")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVocabCmd())
	cmd.AddCommand(newAuditCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configuration named by the global flags.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath, f.envFile)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	return cfg, nil
}

func (f *rootFlags) newLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.HumanReadable})
}
