// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/savename/pkg/experiments"
	"github.com/gomlx/savename/pkg/savename"
)

func parseCodecFlags(t *testing.T, args ...string) (*savename.Codec, error) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := newCodecFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f.build()
}

func TestEncodeArgs(t *testing.T) {
	codec, err := parseCodecFlags(t)
	require.NoError(t, err)
	params, err := parseAssignments(codec, []string{"lr=0.0001", "features=64", "opt=ADAM", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"lr": 0.0001, "features": 64, "opt": "ADAM", "note": "a=b"}, params.Map())
	name, err := codec.Encode(params, "")
	require.NoError(t, err)
	assert.Equal(t, "features=64_lr=0.0_note=a=b_opt=ADAM", name)

	_, err = parseAssignments(codec, []string{"features"})
	require.Error(t, err)
	_, err = parseAssignments(codec, []string{"=3"})
	require.Error(t, err)

	codec, err = parseCodecFlags(t, "-digits=4", "-unsorted", "-kinds=float,string", "-connector=,")
	require.NoError(t, err)
	params, err = parseAssignments(codec, []string{"opt=ADAM", "lr=0.0001", "features=64"})
	require.NoError(t, err)
	name, err = codec.Encode(params, "h5")
	require.NoError(t, err)
	assert.Equal(t, "opt=ADAM,lr=0.0001.h5", name)

	_, err = parseCodecFlags(t, "-connector=__")
	require.ErrorIs(t, err, savename.ErrInvalidArgument)
	_, err = parseCodecFlags(t, "-kinds=int,bool")
	require.ErrorIs(t, err, savename.ErrInvalidArgument)
}

func TestDecodeReport(t *testing.T) {
	codec, err := parseCodecFlags(t, "-timestamps")
	require.NoError(t, err)
	report, err := decodeReport(codec, "runs/seq2seq_features=64_lr=0.001_start=2022-03-01 12:30:00.h5")
	require.NoError(t, err)
	for _, want := range []string{"runs/seq2seq", "h5", "features", "int", "lr", "float64", "0.001", "time.Time"} {
		assert.Contains(t, report, want)
	}

	_, err = decodeReport(codec, "no-parameters")
	require.ErrorIs(t, err, savename.ErrMalformedToken)
}

func TestRunsReport(t *testing.T) {
	base := t.TempDir()
	model := savename.NewParams().Set("architecture", "ConvLSTM")
	for _, lr := range []float64{0.001, 0.01} {
		exp := savename.NewParams().Set("lr", lr).Set("filters", 8)
		dir, err := experiments.Create(base, model, exp)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "weights.bin"), make([]byte, 1000), 0o644))
	}
	runs, err := experiments.Scan(filepath.Join(base, experiments.ModelsDir, "architecture=ConvLSTM"))
	require.NoError(t, err)
	require.Len(t, runs, 2)

	report := runsReport(runs, false)
	assert.Contains(t, report, "lr")
	assert.Contains(t, report, "0.01")
	// "filters" is the same in both runs, so it is only in the column headers.
	assert.Equal(t, 2, strings.Count(report, "filters"))
	assert.Contains(t, report, "2 runs, 1 varying parameters, 2.0 kB on disk")

	report = runsReport(runs, true)
	assert.Equal(t, 3, strings.Count(report, "filters"))

	assert.Equal(t, "No runs found.", runsReport(nil, false))
}
