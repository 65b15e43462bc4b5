package main

import (
	"context"
	"io"

	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/extract"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Fetcher      storeintel.Fetcher
	Aggregator   *extract.Aggregator
	Orchestrator *extract.Orchestrator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Analyze AnalyzeCmd `cmd:"" help:"Extract insights from a single site"`
	Bulk    BulkCmd    `cmd:"" help:"Analyze many sites concurrently"`
	Compare CompareCmd `cmd:"" help:"Compare a site against competitors"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL string `arg:"" help:"Site URL"`
}

// BulkCmd is the "bulk" subcommand.
type BulkCmd struct {
	URLs    []string `arg:"" help:"Site URLs"`
	Workers int      `short:"w" default:"3" help:"Concurrent worker bound"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Main        string   `arg:"" help:"Main site URL"`
	Competitors []string `arg:"" help:"Competitor URLs"`
}
