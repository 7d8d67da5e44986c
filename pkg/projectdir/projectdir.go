// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package projectdir locates the root of a project and the standard directories under it,
// where experiments read their data and save their results.
//
// The root is given by the environment variable SAVENAME_PROJECT_DIR, or else it is the first
// directory, going up from the current working directory, that holds one of the Markers.
package projectdir

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/savename/pkg/support/fsutil"
)

// EnvVar names the environment variable that, if set, overrides the discovery of the project root.
const EnvVar = "SAVENAME_PROJECT_DIR"

var (
	// Markers are the names of files or directories whose presence marks a project root.
	Markers = []string{"go.mod", ".git"}

	// ErrNotFound is returned when no project root is found.
	ErrNotFound = errors.New("project root not found")
)

// Root returns the project root. See package documentation.
func Root() (string, error) {
	if dir := os.Getenv(EnvVar); dir != "" {
		dir, err := fsutil.ReplaceTilde(dir)
		if err != nil {
			return "", errors.WithMessagef(err, "invalid $%s", EnvVar)
		}
		dir, err = filepath.Abs(dir)
		if err != nil {
			return "", errors.Wrapf(err, "invalid $%s", EnvVar)
		}
		klog.V(1).Infof("project root %q from $%s", dir, EnvVar)
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	return Find(wd)
}

// Find returns the first directory, starting at start and going up, that holds one of the Markers.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "invalid start directory %q", start)
	}
	for {
		for _, marker := range Markers {
			found, err := fsutil.Exists(filepath.Join(dir, marker))
			if err != nil {
				return "", err
			}
			if found {
				klog.V(1).Infof("project root %q (found %q)", dir, marker)
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ErrNotFound, "no %q above %q, set $%s", Markers, start, EnvVar)
		}
		dir = parent
	}
}

// Dir returns the project root joined with paths.
func Dir(paths ...string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{root}, paths...)...), nil
}

// DataDir returns the "data" directory of the project joined with paths.
func DataDir(paths ...string) (string, error) {
	return Dir(append([]string{"data"}, paths...)...)
}

// SrcDir returns the "src" directory of the project joined with paths.
func SrcDir(paths ...string) (string, error) {
	return Dir(append([]string{"src"}, paths...)...)
}
