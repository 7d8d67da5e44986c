// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gomlx/savename/pkg/savename"
)

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	codecFlags := newCodecFlags(fs)
	must.M(fs.Parse(args))
	if fs.NArg() == 0 {
		klog.Errorf("Missing savenames to decode. See 'savename decode -help'.")
		os.Exit(1)
	}
	codec := must.M1(codecFlags.build())
	for _, token := range fs.Args() {
		fmt.Println(must.M1(decodeReport(codec, token)))
	}
}

// decodeReport renders the decoded parts of token.
func decodeReport(codec *savename.Codec, token string) (string, error) {
	prefix, params, suffix, err := codec.Decode(token)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(token))
	sb.WriteString("\n")

	parts := newTable(lipgloss.Right, lipgloss.Left)
	parts.AddRow(false, "prefix", prefix)
	parts.AddRow(false, "suffix", suffix)
	sb.WriteString(parts.Render())
	sb.WriteString("\n")

	table := newTable()
	table.Headers("Name", "Type", "Value")
	for key, value := range params.All() {
		table.AddRow(false, key, fmt.Sprintf("%T", value), fmt.Sprintf("%v", value))
	}
	sb.WriteString(table.Render())
	return sb.String(), nil
}
