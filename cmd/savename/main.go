// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// savename encodes hyperparameters into experiment names, decodes them back, and lists the
// experiments saved under a directory.
//
// Usage:
//
//	savename [-v=N] encode [flags] key=value...
//	savename [-v=N] decode [flags] name...
//	savename [-v=N] runs [flags] dir
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/savename/pkg/savename"
)

type command struct {
	run   func(args []string)
	usage string
}

var commands = map[string]command{
	"encode": {runEncode, "Encode key=value arguments into a savename."},
	"decode": {runDecode, "Decode savenames (optionally with a directory and suffix) into a table."},
	"runs":   {runRuns, "List the experiments under a directory, comparing their parameters."},
}

var titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] <command> [command flags] [args]\n\nCommands:\n", os.Args[0])
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(out, "  %-8s %s\n", name, commands[name].usage)
	}
	_, _ = fmt.Fprintf(out, "\nSee '%s <command> -help' for the command flags.\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Errorf("Missing command. See 'savename -help'.")
		os.Exit(1)
	}
	cmd, found := commands[args[0]]
	if !found {
		klog.Errorf("Unknown command %q. See 'savename -help'.", args[0])
		os.Exit(1)
	}
	cmd.run(args[1:])
}

// codecFlags are the flags shared by the commands to configure the savename.Codec.
type codecFlags struct {
	connector  *string
	digits     *int
	unsorted   *bool
	kinds      *string
	timestamps *bool
}

func newCodecFlags(fs *flag.FlagSet) *codecFlags {
	return &codecFlags{
		connector: fs.String("connector", savename.DefaultConnector,
			"Single character separating the key=value entries."),
		digits: fs.Int("digits", savename.DefaultDigits,
			"Number of decimal places floats are rounded to when encoding."),
		unsorted: fs.Bool("unsorted", false,
			"Keep the parameters in the given order when encoding, instead of sorting them."),
		kinds: fs.String("kinds", savename.AllKinds.String(),
			"Comma-separated kinds of values included when encoding: int, float, string, timestamp."),
		timestamps: fs.Bool("timestamps", false,
			"Parse values that look like timestamps (e.g. \"2022-03-01 12:30:00\") as timestamps."),
	}
}

// build the savename.Codec configured by the flags.
func (f *codecFlags) build() (*savename.Codec, error) {
	codec := savename.New().Connector(*f.connector).Digits(*f.digits)
	if *f.unsorted {
		codec.Unsorted()
	}
	var kinds []savename.Kind
	for _, name := range strings.Split(*f.kinds, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kind, err := savename.ParseKind(name)
		if err != nil {
			return nil, errors.WithMessage(err, "invalid -kinds")
		}
		kinds = append(kinds, kind)
	}
	codec.AllowedKinds(kinds...)
	if *f.timestamps {
		codec.Parsers(savename.ParseInt, savename.ParseFloat, savename.ParseTimestamp)
	}
	if err := codec.Err(); err != nil {
		return nil, errors.WithMessage(err, "invalid -connector")
	}
	return codec, nil
}
