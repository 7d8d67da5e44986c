// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package savename

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	p := NewParams().Set("z", 1).Set("a", "x").Set("m", 0.5)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"z", "a", "m"}, p.Keys())

	// Setting an existing key keeps its position.
	p.Set("z", 2)
	assert.Equal(t, []string{"z", "a", "m"}, p.Keys())
	v, found := p.Get("z")
	assert.True(t, found)
	assert.Equal(t, 2, v)

	p.Delete("a")
	p.Delete("missing")
	assert.Equal(t, []string{"z", "m"}, p.Keys())
	assert.False(t, p.Has("a"))

	var keys []string
	for key := range p.All() {
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"z", "m"}, keys)

	clone := p.Clone()
	clone.Set("new", 1)
	assert.False(t, p.Has("new"))
	assert.Equal(t, "m=0.5_z=2", p.String())

	fromMap := FromMap(map[string]any{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, fromMap.Keys())

	var nilParams *Params
	assert.Equal(t, 0, nilParams.Len())
	assert.False(t, nilParams.Has("a"))
	assert.Empty(t, nilParams.Map())
}

func TestGetOr(t *testing.T) {
	p := NewParams().Set("n", 16).Set("lr", 0.01).Set("opt", "adam")
	assert.Equal(t, 16, GetOr(p, "n", 1))
	assert.Equal(t, 0.01, GetOr(p, "lr", 0.1))
	assert.Equal(t, 16.0, GetOr(p, "n", 0.0))
	assert.Equal(t, "adam", GetOr(p, "opt", "sgd"))
	assert.Equal(t, 3, GetOr(p, "missing", 3))
	assert.Equal(t, 7, GetOr(p, "opt", 7))

	assert.Equal(t, 0.01, MustGet[float64](p, "lr"))
	assert.Equal(t, 16.0, MustGet[float64](p, "n"))
	assert.Panics(t, func() { _ = MustGet[int](p, "missing") })
	assert.Panics(t, func() { _ = MustGet[int](p, "opt") })
}

func TestValue(t *testing.T) {
	architecture := NewParams().Set("out", 10).Set("features", 64)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewValue(architecture, nil), "architecture", "architecture hyperparameters")

	// Default value is the encoded params.
	assert.Equal(t, "features=64_out=10", fs.Lookup("architecture").DefValue)

	require.NoError(t, fs.Parse([]string{"-architecture", "out=8_features=32_kind=convlstm"}))
	assert.Equal(t, []string{"out", "features", "kind"}, architecture.Keys())
	assert.Equal(t, 8, MustGet[int](architecture, "out"))
	assert.Equal(t, "convlstm", MustGet[string](architecture, "kind"))
	assert.Equal(t, "features=32_kind=convlstm_out=8", fs.Lookup("architecture").Value.String())

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	fs.Var(NewValue(NewParams(), nil), "dataset", "")
	require.Error(t, fs.Parse([]string{"-dataset", "nothing"}))

	// A different connector.
	optimiser := NewParams()
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewValue(optimiser, New().Connector(",")), "optimiser", "")
	require.NoError(t, fs.Parse([]string{"-optimiser", "lr=0.001,opt=adam"}))
	assert.Equal(t, 0.001, MustGet[float64](optimiser, "lr"))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
