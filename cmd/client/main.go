package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/expensekeeper/internal/client/api"
	"github.com/iudanet/expensekeeper/internal/client/cli"
	"github.com/iudanet/expensekeeper/internal/client/iocli"
	"github.com/iudanet/expensekeeper/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], iocli.NewStdio(), os.Stderr)
	stop()
	os.Exit(code)
}

// run разбирает глобальные флаги и выполняет команду, возвращает код выхода
func run(ctx context.Context, args []string, console iocli.IO, stderr io.Writer) int {
	fs := flag.NewFlagSet("expensekeeper", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { cli.PrintUsage(stderr) }

	showVersion := fs.Bool("version", false, "Show version information")
	serverURL := fs.String("server", "http://localhost:3000", "Server URL")
	dbPath := fs.String("db", "expensekeeper-client.db", "Path to local database")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		printVersion(console)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		cli.PrintUsage(stderr)
		return 1
	}

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	c := cli.New(api.NewClient(*serverURL), boltStorage, console)

	if err := c.Run(ctx, rest[0], rest[1:]); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(stderr)
		}
		return 1
	}

	return 0
}

func printVersion(console iocli.IO) {
	console.Printf("ExpenseKeeper Client\n")
	console.Printf("Version:    %s\n", Version)
	console.Printf("Build Date: %s\n", BuildDate)
	console.Printf("Git Commit: %s\n", GitCommit)
}
