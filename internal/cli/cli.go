// Package cli implements the one-shot ringdown command. It owns flag
// parsing, event selection, and exit codes; rendering is delegated to the
// report package so the CLI and the HTTP API share one output path.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/ringdown-toolkit/internal/config"
	"github.com/couchcryptid/ringdown-toolkit/internal/domain"
	"github.com/couchcryptid/ringdown-toolkit/internal/observability"
	"github.com/couchcryptid/ringdown-toolkit/internal/report"
)

// Exit codes. Usage errors follow the argparse convention of 2 so shell
// scripts can tell misuse from internal failures.
const (
	exitOK       = 0
	exitInternal = 1
	exitUsage    = 2
)

// stringList collects repeated occurrences of a flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// tokenList collects repeated occurrences of a flag, additionally splitting
// each value on whitespace so several key=value tokens can share one flag.
type tokenList []string

func (s *tokenList) String() string { return strings.Join(*s, " ") }

func (s *tokenList) Set(value string) error {
	*s = append(*s, strings.Fields(value)...)
	return nil
}

// Run executes one CLI invocation and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var (
		events stringList
		custom tokenList
	)

	fs := flag.NewFlagSet("ringdown", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&events, "event", "evaluate a built-in catalogue event by name (repeatable)")
	fs.Var(&custom, "custom", "supply custom posterior parameters as tau_ms=<value> freq_hz=<value> (repeatable)")
	name := fs.String("name", "", "optional label for a custom event")
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Compute informational diffusivity for gravitational-wave ringdown events.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: ringdown [--event NAME]... [--custom KEY=VALUE ...] [--name LABEL] [--json]")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// flag stops at the first positional argument, so the multi-token form
	// "--custom tau_ms=4.0 freq_hz=251" leaves the trailing tokens in
	// fs.Args(). They belong to the custom event when one was requested;
	// otherwise a leftover positional is a usage error, never ignored.
	if rest := fs.Args(); len(rest) > 0 {
		if len(custom) == 0 {
			fmt.Fprintf(stderr, "ringdown: unexpected argument(s): %s\n", strings.Join(rest, " "))
			return exitUsage
		}
		custom = append(custom, rest...)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ringdown: %v\n", err)
		return exitInternal
	}
	logger := observability.NewLogger(cfg, stderr)

	catalogue := domain.LoadCatalogue()
	selected, err := domain.Select(catalogue, events)
	if err != nil {
		fmt.Fprintf(stderr, "ringdown: %v\n", err)
		return exitUsage
	}

	if len(custom) > 0 {
		customEvent, err := domain.ParseCustomParams(custom, *name)
		if err != nil {
			fmt.Fprintf(stderr, "ringdown: %v\n", err)
			return exitUsage
		}
		selected = append(selected, customEvent)
	}

	if len(selected) == 0 {
		fmt.Fprintln(stderr, "ringdown: no events specified; use --event or --custom to provide parameters")
		return exitUsage
	}

	format := report.FormatText
	if *jsonOut {
		format = report.FormatJSON
	}
	logger.Debug("selection resolved", "events", len(selected), "json", *jsonOut)

	if err := report.Render(stdout, selected, format); err != nil {
		fmt.Fprintf(stderr, "ringdown: %v\n", err)
		return exitInternal
	}
	return exitOK
}
