// Package main is the command line front end of the circulation engine.
//
//	circulation [flags] <command> [command flags]
//
// Run "circulation help" for the list of commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonStoeckl/circulation-engine-go/circulation/engine"
	"github.com/AntonStoeckl/circulation-engine-go/circulation/shell/config"
)

// errUsage is returned for an unknown or missing command.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cfg, rest, err := config.Load(args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	logger := config.NewLogger(cfg, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(rest) == 0 || rest[0] == "help" {
		printUsage(stdout)
		return 0
	}

	store, closeStore, err := openEventStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("opening the event store failed", "engine", cfg.Engine, "adapter", cfg.Adapter, "error", err)
		_, _ = fmt.Fprintln(stderr, engine.MsgSomethingWentWrong)
		return 1
	}
	defer closeStore()

	e := engine.New(store, engine.WithLogger(logger))

	if cfg.Engine == config.EngineMemory && rest[0] != "seed" {
		if err := seed(ctx, e, logger); err != nil {
			logger.Error("seeding the memory engine failed", "error", err)
			_, _ = fmt.Fprintln(stderr, engine.MsgSomethingWentWrong)
			return 1
		}
	}

	if err := dispatch(ctx, e, logger, rest, stdout); err != nil {
		if errors.Is(err, errUsage) {
			_, _ = fmt.Fprintln(stderr, err)
			printUsage(stderr)
			return 2
		}

		_, _ = fmt.Fprintln(stderr, engine.UserMessage(err))
		return 1
	}

	return 0
}

func dispatch(ctx context.Context, e *engine.Engine, logger *slog.Logger, args []string, stdout io.Writer) error {
	name, cmdArgs := args[0], args[1:]

	for _, c := range commands() {
		if c.name == name {
			return c.run(ctx, e, logger, cmdArgs, stdout)
		}
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: circulation [-engine postgres|memory] [-adapter pgxpool|sqldb|sqlx] [-dsn DSN] <command> [flags]")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "commands:")

	for _, c := range commands() {
		_, _ = fmt.Fprintf(w, "  %-13s %s\n", c.name, c.summary)
	}
}
