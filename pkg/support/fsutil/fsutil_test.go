// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a=1.h5")
	require.NoError(t, os.WriteFile(file, []byte("12345"), 0o644))

	found, err := Exists(file)
	require.NoError(t, err)
	assert.True(t, found)
	isDir, err := IsDir(file)
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = IsDir(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	found, err = Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, found)
	isDir, err = IsDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, isDir)
}

func TestReplaceTilde(t *testing.T) {
	got, err := ReplaceTilde("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)

	got, err = ReplaceTilde("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	home := usr.HomeDir
	got, err = ReplaceTilde("~/experiments")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "experiments"), got)
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x"), make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "y"), make([]byte, 32), 0o644))
	size, err := DirSize(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(42), size)
}
