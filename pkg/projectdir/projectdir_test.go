// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package projectdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	nested := filepath.Join(root, "scripts", "training")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = Find(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	// No directory up to the filesystem root has the marker.
	saved := Markers
	defer func() { Markers = saved }()
	Markers = []string{"no-such-marker-f3c1b2"}
	_, err = Find(nested)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEnvVar(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvVar, root)

	got, err := Root()
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = DataDir("models", "architecture=FlaxSeq2Seq")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "models", "architecture=FlaxSeq2Seq"), got)

	got, err = SrcDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src"), got)

	got, err = Dir()
	require.NoError(t, err)
	assert.Equal(t, root, got)
}
