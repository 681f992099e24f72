package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"looseeq/config"
	"looseeq/explain"
	"looseeq/trace"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// Global flags
	verbose    bool
	verify     bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// errFailed marks a command whose output already explains the failure
var errFailed = errors.New("one or more inputs failed")

var rootCmd = &cobra.Command{
	Use:   "looseeq [value]",
	Short: "List the values loosely equal (==) to a JavaScript value",
	Long: `looseeq reads a JavaScript literal and prints example values x for which
x == value holds under JavaScript loose equality.

  looseeq 0
  looseeq '"1"'
  looseeq 'Symbol("s")'

Infinite families are cut after 11 examples and end with an ellipsis.
Run without arguments to start the interactive prompt.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = zapcore.DebugLevel.String()
		}
		if cmd.Flags().Changed("verify") {
			cfg.Display.Verify = verify
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = cfg.Logging.NewLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		trace.Init(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL(cfg)
		}
		return explainOnce(cmd.OutOrStdout(), strings.Join(args, " "), cfg.Display.Verify)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&verify, "verify", false, "Check every example with loose equality")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Configuration file")

	rootCmd.AddCommand(replCmd, tuiCmd, batchCmd, conformanceCmd, serveCmd)
}

// explainOnce prints the report for one input
func explainOnce(w io.Writer, src string, verify bool) error {
	report := explain.Explain(src, explain.WithVerify(verify))
	fmt.Fprintln(w, report.String())
	if report.Failed() {
		logger.Debug("input failed", zap.String("input", src), zap.Error(report.Err))
		return errFailed
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
