package main

import (
	"fmt"
	"os"
	"time"

	apppkg "github.com/YummyOreo/onyx/internal/app"
	"github.com/YummyOreo/onyx/internal/config"
	"github.com/YummyOreo/onyx/internal/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var version = "dev"

// runBrowser is replaced in tests.
var runBrowser = func(opts apppkg.Options) error {
	app, err := apppkg.NewApplication(opts)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	runErr := app.Run()
	// Restore the terminal before anything is printed.
	_ = app.Close()
	return runErr
}

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
		logLevel   string
		tick       time.Duration
	)

	cmd := &cobra.Command{
		Use:           "ox [directory]",
		Short:         "Terminal file browser",
		Long:          `ox lists a directory, filters it with fuzzy search and creates, renames or deletes entries without leaving the terminal.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("config")
			if !explicit {
				configPath = config.DefaultPath()
			}
			cfg, err := config.Load(configPath, explicit)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Log.File = logFile
			}
			if cmd.Flags().Changed("tick") {
				cfg.TickInterval = tick
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer closer.Close()

			start := "."
			if len(args) > 0 {
				start = args[0]
			}
			err = runBrowser(apppkg.Options{
				StartPath: start,
				Config:    cfg,
				Logger:    logger,
			})
			if err != nil {
				logger.WithError(err).Error("exiting")
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/onyx/config.yaml)")
	flags.StringVar(&logFile, "log-file", "", "log file (default $XDG_STATE_HOME/onyx/onyx.log)")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: error, warn, info, debug or trace")
	flags.DurationVar(&tick, "tick", config.DefaultTickInterval, "maximum wait between directory refreshes")
	return cmd
}
