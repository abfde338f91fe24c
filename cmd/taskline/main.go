package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/logger"
	"github.com/taskline/taskline/internal/session"
)

func main() {
	var (
		configPath string
		inputPath  string
		debugFlag  bool
	)

	rootCmd := &cobra.Command{
		Use:   "taskline",
		Short: "Line-oriented todo interpreter",
		Long: "taskline reads a command count followed by that many add/done/search\n" +
			"commands and maintains an in-memory todo list with fuzzy search.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Override debug mode if flag is set
			debugMode := cfg.Debug || debugFlag

			zapLogger, err := logger.New(cfg.LogFormat, debugMode)
			if err != nil {
				log.Fatalf("Failed to initialize logger: %v", err)
			}
			defer func() {
				if syncErr := logger.Sync(zapLogger); syncErr != nil {
					// Ignore sync errors on exit
					_ = syncErr
				}
			}()

			zapLogger.Info("starting_interpreter",
				zap.Bool("debug_mode", debugMode),
				zap.String("log_format", cfg.LogFormat),
				zap.Int("max_line_length", cfg.MaxLineLength),
			)

			var in io.Reader = cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("failed to open input file: %w", err)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil {
						zapLogger.Warn("input_close_failed", zap.Error(closeErr))
					}
				}()
				in = f
			}

			sess := session.New(zapLogger, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.MaxLineLength)
			if err := sess.Run(in); err != nil {
				return fmt.Errorf("session failed: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&inputPath, "input", "", "read commands from file instead of stdin")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
