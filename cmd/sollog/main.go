package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/sollog/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sollog",
		Short: "Colorize Solana runtime logs by importance",
		Long: `sollog reads Solana validator or test-runner logs on stdin and writes
them to stdout with each runtime log line colored by how much it matters:
program output and failures stand out, runtime debug and trace noise is dimmed.
Lines that are not runtime log lines are written unchanged.

Example:
  RUST_LOG=solana_runtime::message_processor=debug cargo test 2>&1 | sollog`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				fmt.Fprintf(stderr, "sollog: %v\n", err)
				return err
			}
			defer func() { _ = logger.Sync() }()

			err = app.Run(cmd.Context(), app.Options{In: stdin, Out: stdout, Logger: logger})
			switch {
			case err == nil, errors.Is(err, context.Canceled):
				return nil
			default:
				logger.Error("sollog failed", zap.Error(err))
				return err
			}
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// noArgs rejects arguments and reports the error itself, since errors from
// RunE are logged instead of printed.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		cmd.PrintErrf("sollog: %v\n", err)
		return err
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
