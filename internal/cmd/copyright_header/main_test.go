// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddHeader(t *testing.T) {
	header := makeHeader("GoMLX")

	got, missing := addHeader("package foo\n", header)
	assert.True(t, missing)
	assert.Equal(t, header+"package foo\n", got)

	got, missing = addHeader("//go:build linux\n\npackage foo\n", header)
	assert.True(t, missing)
	assert.Equal(t, "//go:build linux\n\n"+header+"package foo\n", got)

	_, missing = addHeader(header+"package foo\n", header)
	assert.False(t, missing)

	generated := "// Code generated by \"enumer\"; DO NOT EDIT.\n\npackage foo\n"
	got, missing = addHeader(generated, header)
	assert.False(t, missing)
	assert.Equal(t, generated, got)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	header := makeHeader("GoMLX")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "_skipped"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen_a.go"), []byte("package a\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_skipped", "b.go"), []byte("package b\n"), 0o600))

	files, err := goFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.go")}, files)

	// Check only: file is not changed.
	missing, err := processFile(files[0], header, false)
	require.NoError(t, err)
	assert.True(t, missing)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))

	// Fix.
	missing, err = processFile(files[0], header, true)
	require.NoError(t, err)
	assert.True(t, missing)
	content, err = os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, header+"package a\n", string(content))

	missing, err = processFile(files[0], header, true)
	require.NoError(t, err)
	assert.False(t, missing)
}
