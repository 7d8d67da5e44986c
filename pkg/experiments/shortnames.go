// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package experiments

import (
	"path/filepath"
	"slices"
	"strings"
)

// ShortNames returns, for each path, the minimal path components that tell it apart from the
// other paths. When more than one component differs, the first and last differing ones are
// joined with "...".
func ShortNames(paths ...string) []string {
	if len(paths) <= 1 {
		names := make([]string, len(paths))
		for i, path := range paths {
			names[i] = filepath.Base(path)
		}
		return names
	}

	parts := make([][]string, len(paths))
	for i, path := range paths {
		parts[i] = strings.Split(filepath.Clean(path), string(filepath.Separator))
	}

	names := make([]string, len(paths))
	for i, components := range parts {
		var diffIndexes []int
		for j, other := range parts {
			if i == j {
				continue
			}
			for k := range min(len(components), len(other)) {
				if components[k] != other[k] && !slices.Contains(diffIndexes, k) {
					diffIndexes = append(diffIndexes, k)
				}
			}
		}
		slices.Sort(diffIndexes)

		switch len(diffIndexes) {
		case 0:
			names[i] = components[len(components)-1]
		case 1:
			names[i] = components[diffIndexes[0]]
		default:
			names[i] = components[diffIndexes[0]] + "..." + components[diffIndexes[len(diffIndexes)-1]]
		}
	}
	return names
}
