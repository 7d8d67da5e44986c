// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/gomlx/savename/pkg/experiments"
	"github.com/gomlx/savename/pkg/support/fsutil"
)

func runRuns(args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	flagAll := fs.Bool("all", false, "Show all parameters, not only those that differ between runs.")
	flagFiles := fs.Bool("files", false, "Include files whose names are savenames, not only directories.")
	flagProgress := fs.Bool("progress", false, "Display a progress spinner while scanning.")
	flagSelect := fs.String("select", "", "Only list runs with these parameters, given as a savename (e.g. \"lr=0.001_opt=ADAM\").")
	codecFlags := newCodecFlags(fs)
	must.M(fs.Parse(args))
	if fs.NArg() != 1 {
		klog.Errorf("runs takes exactly one directory to scan. See 'savename runs -help'.")
		os.Exit(1)
	}
	codec := must.M1(codecFlags.build())

	scanner := experiments.NewScanner(fs.Arg(0)).Codec(codec)
	if *flagFiles {
		scanner.IncludeFiles()
	}
	var bar *progressbar.ProgressBar
	if *flagProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionClearOnFinish())
		scanner.OnVisit(func(string) { _ = bar.Add(1) })
	}
	runs := must.M1(scanner.Scan())
	if bar != nil {
		_ = bar.Finish()
	}

	if *flagSelect != "" {
		_, selector, _ := must.M3(codec.Decode(*flagSelect))
		runs = experiments.Filter(runs, selector)
	}
	fmt.Println(runsReport(runs, *flagAll))
}

// runsReport renders a table with one row per parameter and one column per run. Parameters
// that differ between runs are highlighted. If all is false, only those are listed.
func runsReport(runs []experiments.Run, all bool) string {
	if len(runs) == 0 {
		return "No runs found."
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Runs"))
	sb.WriteString("\n")

	paths := make([]string, len(runs))
	for i, run := range runs {
		paths[i] = run.Path
	}
	names := experiments.ShortNames(paths...)

	varying := experiments.VaryingKeys(runs)
	keys := varying
	if all {
		keys = experiments.Keys(runs)
	}

	table := newTable(lipgloss.Right, lipgloss.Left)
	table.Headers(append([]string{"Parameter"}, names...)...)
	for _, key := range keys {
		row := make([]string, 0, len(runs)+1)
		row = append(row, key)
		for _, run := range runs {
			value, found := run.Params.Get(key)
			if !found {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%v", value))
		}
		table.AddRow(slices.Contains(varying, key), row...)
	}
	sb.WriteString(table.Render())
	sb.WriteString("\n")
	sb.WriteString(runsSummary(runs, len(varying)))
	return sb.String()
}

// runsSummary counts the size of nested runs only once: runs are sorted by path, so a run
// inside another comes after it.
func runsSummary(runs []experiments.Run, numVarying int) string {
	var totalSize int64
	var counted []string
	for _, run := range runs {
		if slices.ContainsFunc(counted, func(dir string) bool {
			return strings.HasPrefix(run.Path, dir+string(filepath.Separator))
		}) {
			continue
		}
		if run.IsDir {
			counted = append(counted, run.Path)
		}
		var size int64
		var err error
		if run.IsDir {
			size, err = fsutil.DirSize(run.Path)
		} else if fi, statErr := os.Stat(run.Path); statErr == nil {
			size = fi.Size()
		} else {
			err = statErr
		}
		if err != nil {
			klog.Warningf("Can't get size of %q: %v", run.Path, err)
			continue
		}
		totalSize += size
	}
	return fmt.Sprintf("%s runs, %s varying parameters, %s on disk",
		humanize.Comma(int64(len(runs))), humanize.Comma(int64(numVarying)),
		humanize.Bytes(uint64(totalSize)))
}
