package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brochurekit/schemaorg-go/internal/config"
	"github.com/brochurekit/schemaorg-go/internal/logging"
)

type app struct {
	configFile string
	envFile    string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *app {
	return &app{}
}

// log returns the configured logger, or a console logger when configuration
// never completed.
func (a *app) log() *zap.Logger {
	if a.logger != nil {
		return a.logger
	}
	l, err := logging.New("info", logging.FormatConsole)
	if err != nil {
		return zap.NewNop()
	}
	a.logger = l
	return l
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schemaorg",
		Short: "Render and check Schema.org JSON-LD",
		Long: `schemaorg turns business, organization, website, breadcrumb, FAQ and
service records into <script type="application/ld+json"> elements.

Settings come from schemaorg.yaml, a .env file and SCHEMAORG_* variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./schemaorg.yaml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file (default ./.env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(a.renderCmd(), a.checkCmd(), a.typesCmd())
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(config.Options{ConfigFile: a.configFile, EnvFile: a.envFile})
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = l
	return nil
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
