package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command tree and logs a failure to stderr before
// returning the exit code.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		newLogger(stderr, "info").Error("command failed", "error", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "discovery",
		Short:         "Swipe through nearby activities one card at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(
		newRunCmd(&configPath),
		newResetDeclinedCmd(&configPath),
		newRadiusCmd(&configPath),
		newLikedCmd(&configPath),
	)
	return root
}

func setupLogger(level string) *slog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
