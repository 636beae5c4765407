package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/satlist/satlist"
	"github.com/satlist/satlist/scan"
	satlisttoml "github.com/satlist/satlist/toml"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     satlisttoml.Config
	Logger     *slog.Logger
	Fetcher    satlist.Fetcher
	Detector   satlist.SourceDetector
	NewScanner func(src satlist.Source, concurrency int) *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to TOML config file" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	List   ListCmd   `cmd:"" help:"List satellites from a provider"`
	Grab   GrabCmd   `cmd:"" help:"Fetch transponders for matching satellites"`
	Detect DetectCmd `cmd:"" help:"Detect which provider serves a URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `arg:"" enum:"flysat,lyngsat" help:"Provider (flysat or lyngsat)"`
	JSON   bool   `help:"Emit JSON instead of a table"`
}

// GrabCmd is the "grab" subcommand.
type GrabCmd struct {
	Source      string `arg:"" enum:"flysat,lyngsat" help:"Provider (flysat or lyngsat)"`
	Filter      string `short:"f" help:"Only satellites whose name contains this substring"`
	Concurrency int    `short:"c" help:"Concurrent detail-page fetch limit (defaults from config)"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URL string `arg:"" help:"Page URL to fetch and classify"`
}
