// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package experiments organizes experiment results in directories named after their
// hyperparameters, and finds them back.
//
// The layout is "<base>/models/<model params>/<experiment params>", where each of the last two
// levels is a savename. E.g.:
//
//	data/models/architecture=Seq2Seq_dataset=SequenceFED/batchsize=16_features=64_lr=0.001
package experiments

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/savename/pkg/savename"
	"github.com/gomlx/savename/pkg/support/fsutil"
)

// DirPermMode is the permission (before umask) of the directories created by Create.
var DirPermMode = os.FileMode(0770)

// ModelsDir is the subdirectory of the base directory holding the models.
const ModelsDir = "models"

// Dir returns the directory for an experiment: base/models/<model>/<experiment>.
func Dir(base string, model, experiment *savename.Params) string {
	return filepath.Join(base, ModelsDir, savename.Encode(model, ""), savename.Encode(experiment, ""))
}

// Create returns the directory for an experiment (see Dir), creating it if needed.
func Create(base string, model, experiment *savename.Params) (string, error) {
	base, err := fsutil.ReplaceTilde(base)
	if err != nil {
		return "", err
	}
	dir := Dir(base, model, experiment)
	if err = os.MkdirAll(dir, DirPermMode); err != nil {
		return "", errors.Wrapf(err, "failed to create experiment directory %q", dir)
	}
	return dir, nil
}

// Run is a directory (or file) found by a Scanner whose name is a savename.
type Run struct {
	// Path is the full path, including the scanned root.
	Path string

	// Prefix is the decoded prefix, relative to the scanned root.
	Prefix string

	Params *savename.Params
	Suffix string
	IsDir  bool
}

// Scanner finds runs under a root directory. Create it with NewScanner, configure it, and call Scan.
type Scanner struct {
	root    string
	codec   *savename.Codec
	files   bool
	onVisit func(path string)
}

// NewScanner creates a Scanner for directories under root, decoded with the default savename configuration.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root, codec: savename.New()}
}

// Codec sets the configuration used to decode names.
func (s *Scanner) Codec(codec *savename.Codec) *Scanner {
	s.codec = codec
	return s
}

// IncludeFiles makes the Scanner also report files, not only directories.
func (s *Scanner) IncludeFiles() *Scanner {
	s.files = true
	return s
}

// OnVisit sets a function called for every path visited, e.g. to report progress.
func (s *Scanner) OnVisit(fn func(path string)) *Scanner {
	s.onVisit = fn
	return s
}

// Scan walks the tree under the root and returns the runs found, sorted by path.
//
// Names that are not savenames are skipped, but their subdirectories are still visited.
// Hidden entries (starting with ".") are not visited.
func (s *Scanner) Scan() ([]Run, error) {
	root, err := fsutil.ReplaceTilde(s.root)
	if err != nil {
		return nil, err
	}
	isDir, err := fsutil.IsDir(root)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, errors.Errorf("experiments root %q is not a directory", root)
	}
	if err = s.codec.Err(); err != nil {
		return nil, err
	}

	var runs []Run
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to scan %q", path)
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if s.onVisit != nil {
			s.onVisit(path)
		}
		if !entry.IsDir() && !s.files {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.WithStack(err)
		}
		prefix, params, suffix, err := s.codec.Decode(rel)
		if err != nil {
			if errors.Is(err, savename.ErrMalformedToken) {
				klog.V(1).Infof("skipping %q: %v", path, err)
				return nil
			}
			return err
		}
		runs = append(runs, Run{
			Path:   path,
			Prefix: prefix,
			Params: params,
			Suffix: suffix,
			IsDir:  entry.IsDir(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(runs, func(a, b Run) int { return strings.Compare(a.Path, b.Path) })
	return runs, nil
}

// Scan returns the run directories under root, using the default configuration.
func Scan(root string) ([]Run, error) {
	return NewScanner(root).Scan()
}
