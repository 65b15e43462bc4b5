// Command storeintel extracts structured business intelligence from
// e-commerce sites and prints it as JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/storeintel/storeintel/extract"
	storeintelhttp "github.com/storeintel/storeintel/http"
	storeintelslog "github.com/storeintel/storeintel/slog"
)

func main() {
	if err := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("storeintel"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'storeintel --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Fetcher = storeintelhttp.NewFetcher()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Fetcher = storeintelslog.NewFetcher(deps.Fetcher, logger)
	}
	defer deps.Fetcher.Close()

	deps.Aggregator = &extract.Aggregator{
		Fetcher: deps.Fetcher,
		Limiter: extract.NewStageLimiter(extract.DefaultStagePause),
	}
	deps.Orchestrator = &extract.Orchestrator{
		Aggregator: deps.Aggregator,
		Workers:    cli.Bulk.Workers,
	}

	return kongCtx.Run(deps)
}
