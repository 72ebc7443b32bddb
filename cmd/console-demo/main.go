// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

// console-demo exercises every interactive operation in the console
// toolkit against a real terminal: plain and validated prompts, the
// live indicator, the progress bar, and the three menus.
//
// Each demonstration is a subcommand so a single primitive can be
// tried in isolation; running with no subcommand walks through the
// full set in order. --fail makes the demonstrated background tasks
// fail so the red final frames can be seen, and --duration stretches
// or shrinks how long they run.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/console-foundation/console"
	"github.com/console-foundation/console/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// sectionStyle renders the banner above each demonstration.
var sectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("6")).
	MarginTop(1)

// demo carries the shared state every demonstration needs.
type demo struct {
	console  *console.Console
	logger   *slog.Logger
	fail     bool
	duration time.Duration
}

// demonstrations maps subcommand names to their implementations, in
// the order the full walkthrough runs them.
var demonstrations = []struct {
	name  string
	title string
	run   func(*demo) error
}{
	{"parsed", "Parsed prompts", (*demo).parsed},
	{"validated", "Validated prompt", (*demo).validated},
	{"spin", "Live indicator", (*demo).spin},
	{"spin-dynamic", "Live indicator with changing text", (*demo).spinDynamic},
	{"progress", "Progress bar", (*demo).progress},
	{"select", "Single-choice menu", (*demo).selectMenu},
	{"multiselect", "Multi-choice menu", (*demo).multiSelect},
	{"filter", "Fuzzy-filtered menu", (*demo).filter},
}

func run() error {
	var fail bool
	var duration time.Duration

	flagSet := pflag.NewFlagSet("console-demo", pflag.ContinueOnError)
	flagSet.BoolVar(&fail, "fail", false, "make the demonstrated background tasks fail")
	flagSet.DurationVar(&duration, "duration", 2*time.Second, "how long the demonstrated background tasks run")
	flagSet.BoolP("help", "h", false, "show help")

	// --version short-circuits before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("console-demo")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	c := console.New(console.Options{})
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("restoring terminal", "error", err)
		}
	}()

	d := &demo{console: c, logger: logger, fail: fail, duration: duration}

	args := flagSet.Args()
	if len(args) == 0 {
		for _, entry := range demonstrations {
			fmt.Println(sectionStyle.Render(entry.title))
			if err := entry.run(d); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}
	for _, entry := range demonstrations {
		if entry.name == args[0] {
			return entry.run(d)
		}
	}
	return fmt.Errorf("unknown demonstration %q (see --help)", args[0])
}

func (d *demo) parsed() error {
	port, err := console.ParsedInputDefault(d.console, "Port to listen on ", console.ParseInt, 8080)
	if err != nil {
		return err
	}
	name, err := console.ParsedInput(d.console, "Deployment name", console.ParseString)
	if err != nil {
		return err
	}
	fmt.Printf("deploying %s on :%d\n", name, port)
	return nil
}

func (d *demo) validated() error {
	budget, err := console.ValidatedInput(d.console, "Retry budget", "integer between 0 and 5",
		console.ParseInt, func(n int) bool { return n >= 0 && n <= 5 })
	if err != nil {
		return err
	}
	fmt.Printf("using %d retries\n", budget)
	return nil
}

func (d *demo) spin() error {
	result, err := console.Spin(d.console, "resolving dependencies", func() (int, error) {
		time.Sleep(d.duration)
		if d.fail {
			return 0, errors.New("registry unreachable")
		}
		return 42, nil
	})
	if err != nil {
		return err
	}
	if result.Ok() {
		fmt.Printf("resolved %d packages\n", result.Value)
	}
	return nil
}

func (d *demo) spinDynamic() error {
	phases := []string{"fetching manifest", "verifying signatures", "unpacking layers", "done"}
	var phase atomic.Int32
	result, err := console.SpinFunc(d.console, func() string {
		return phases[phase.Load()]
	}, func() (struct{}, error) {
		for i := range phases[:len(phases)-1] {
			phase.Store(int32(i))
			time.Sleep(d.duration / time.Duration(len(phases)-1))
		}
		phase.Store(int32(len(phases) - 1))
		if d.fail {
			return struct{}{}, errors.New("layer checksum mismatch")
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}
	if !result.Ok() {
		d.logger.Warn("unpack failed", "error", result.Err)
	}
	return nil
}

func (d *demo) progress() error {
	const steps = 50
	var percent atomic.Int32
	result, err := console.ProgressBar(d.console, "syncing artifacts",
		func() int { return int(percent.Load()) },
		func() (int, error) {
			for i := 1; i <= steps; i++ {
				time.Sleep(d.duration / steps)
				percent.Store(int32(i * 100 / steps))
				if d.fail && i == steps*2/3 {
					return 0, errors.New("artifact store rejected chunk")
				}
			}
			return steps, nil
		})
	if err != nil {
		return err
	}
	if result.Ok() {
		fmt.Printf("synced %d chunks\n", result.Value)
	}
	return nil
}

func (d *demo) selectMenu() error {
	env, err := console.Select(d.console, []string{"staging", "production", "canary"})
	if err != nil {
		return err
	}
	fmt.Printf("targeting %s\n", env)
	return nil
}

func (d *demo) multiSelect() error {
	flags, err := console.MultiSelect(d.console, []string{
		"verbose logging",
		"trace sampling",
		"slow-query capture",
		"connection draining",
	})
	if err != nil {
		return err
	}
	fmt.Printf("enabled %d feature flags\n", len(flags))
	return nil
}

func (d *demo) filter() error {
	region, err := console.FilterSelect(d.console, []string{
		"us-east-1", "us-east-2", "us-west-1", "us-west-2",
		"eu-west-1", "eu-west-2", "eu-central-1", "eu-north-1",
		"ap-south-1", "ap-northeast-1", "ap-northeast-2", "ap-southeast-1",
		"ap-southeast-2", "sa-east-1", "ca-central-1",
	})
	if err != nil {
		return err
	}
	fmt.Printf("pinned to %s\n", region)
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Interactive tour of the console toolkit.

With no arguments, walks through every demonstration in order. Pass a
subcommand name to run a single one:

  parsed        plain prompts, with and without defaults
  validated     prompt that retries until its predicate passes
  spin          live indicator over a background task
  spin-dynamic  live indicator whose text changes per frame
  progress      two-line progress bar
  select        single-choice arrow-key menu
  multiselect   checklist menu
  filter        fuzzy-filtered menu

Usage:
  console-demo [flags] [demonstration]

Examples:
  # Full walkthrough
  console-demo

  # Watch the progress bar fail two thirds in
  console-demo --fail progress

  # A faster spinner
  console-demo --duration 500ms spin

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
