// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package experiments

import (
	"reflect"
	"slices"
	"time"

	"github.com/gomlx/savename/pkg/savename"
)

// Keys returns the sorted union of the parameter names of the runs.
func Keys(runs []Run) []string {
	var keys []string
	for _, run := range runs {
		for key := range run.Params.All() {
			if !slices.Contains(keys, key) {
				keys = append(keys, key)
			}
		}
	}
	slices.Sort(keys)
	return keys
}

// VaryingKeys returns the sorted parameter names whose values are not the same in all runs.
// A parameter missing in some of the runs counts as varying.
func VaryingKeys(runs []Run) []string {
	var varying []string
	for _, key := range Keys(runs) {
		first, _ := runs[0].Params.Get(key)
		for _, run := range runs {
			value, found := run.Params.Get(key)
			if !found || !Equal(first, value) {
				varying = append(varying, key)
				break
			}
		}
	}
	return varying
}

// Filter returns the runs that have all the parameters in selector, with equal values.
func Filter(runs []Run, selector *savename.Params) []Run {
	var selected []Run
	for _, run := range runs {
		matches := true
		for key, want := range selector.All() {
			value, found := run.Params.Get(key)
			if !found || !Equal(want, value) {
				matches = false
				break
			}
		}
		if matches {
			selected = append(selected, run)
		}
	}
	return selected
}

// Equal compares parameter values: numbers are compared by value regardless of their type
// (so 1 == 1.0), and timestamps with time.Time.Equal.
func Equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
