package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sushanth18052005/mt5-EA/internal/config"
	"github.com/Sushanth18052005/mt5-EA/pkg/endpoints"
	"github.com/Sushanth18052005/mt5-EA/pkg/logging"
)

type app struct {
	configPath string
	baseURL    string
	output     string

	logger   *slog.Logger
	registry *endpoints.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "endpoints",
		Short:             "inspect the trading backend endpoint registry",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRunE,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.BaseConfigFile, "configuration file")
	flags.StringVar(&a.baseURL, "base-url", "", fmt.Sprintf("backend base URL, used verbatim (overrides config and %s)", config.EnvAPIBaseURL))
	flags.StringVarP(&a.output, "output", "o", outputTable, "output format (table|json|yaml)")

	root.AddCommand(newBaseURLCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newGetCmd(a))

	return root
}

func (a *app) preRunE(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(a.output); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Finalize(); err != nil {
		return err
	}
	cfg.API.Override(a.baseURL)

	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	a.registry = cfg.Registry()

	if err := cfg.API.CheckAbsolute(); err != nil {
		a.logger.Warn("base url is not absolute, endpoints use it verbatim",
			"base_url", cfg.API.BaseURL,
			"error", err,
		)
	}

	a.logger.Debug("endpoint registry resolved",
		"base_url", a.registry.BaseURL(),
		"endpoints", len(a.registry.Entries()),
	)
	return nil
}
