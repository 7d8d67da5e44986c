// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/savename/pkg/savename"
)

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	flagSuffix := fs.String("suffix", "", "Suffix (e.g. a file extension) appended after a \".\".")
	codecFlags := newCodecFlags(fs)
	must.M(fs.Parse(args))
	if fs.NArg() == 0 {
		klog.Errorf("Missing key=value arguments. See 'savename encode -help'.")
		os.Exit(1)
	}

	codec := must.M1(codecFlags.build())
	params := must.M1(parseAssignments(codec, fs.Args()))
	fmt.Println(must.M1(codec.Encode(params, *flagSuffix)))
}

// parseAssignments converts "key=value" arguments to parameters, with values converted by
// the codec parsers.
func parseAssignments(codec *savename.Codec, args []string) (*savename.Params, error) {
	params := savename.NewParams()
	for _, arg := range args {
		key, raw, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, errors.Errorf("can't parse %q: arguments must have the format \"<key>=<value>\"", arg)
		}
		params.Set(key, codec.ParseValue(raw))
	}
	return params, nil
}
