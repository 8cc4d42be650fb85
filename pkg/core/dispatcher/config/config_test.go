// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/gomlx/dispatch/pkg/core/dispatchkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)

	c, err = Parse("include=Profiler; exclude=Autograd,tracer;")
	require.NoError(t, err)
	assert.Equal(t, Singleton(Profiler), c.Include)
	assert.Equal(t, MakeSet(Autograd, Tracer), c.Exclude)
	assert.Equal(t, "include=Profiler;exclude=Autograd,Tracer", c.String())

	// Round trip through String.
	c2, err := Parse(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, c2)

	// Repeated sections accumulate.
	c, err = Parse("exclude=Autograd;EXCLUDE=Tracer")
	require.NoError(t, err)
	assert.Equal(t, MakeSet(Autograd, Tracer), c.Exclude)

	_, err = Parse("exclude")
	require.ErrorContains(t, err, "missing")
	_, err = Parse("ignore=CPU")
	require.ErrorContains(t, err, "unknown dispatcher config section")
	_, err = Parse("exclude=TPU")
	require.ErrorContains(t, err, "unknown dispatch key")
	_, err = Parse("include=CPU;exclude=CPU")
	require.ErrorContains(t, err, "both included and excluded")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(GOMLX_DISPATCH, "exclude=Tracer")
	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Singleton(Tracer), c.Exclude)

	t.Setenv(GOMLX_DISPATCH, "exclude=NotAKey")
	_, err = FromEnv()
	require.ErrorContains(t, err, GOMLX_DISPATCH)

	require.NoError(t, os.Unsetenv(GOMLX_DISPATCH))
	DefaultConfig = "include=Profiler"
	defer func() { DefaultConfig = "" }()
	c, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Singleton(Profiler), c.Include)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, contents string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
		return path
	}

	c, err := LoadFile(write("ok.yaml", "include: [Profiler]\nexclude:\n  - Autograd\n  - tracer\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{Include: Singleton(Profiler), Exclude: MakeSet(Autograd, Tracer)}, c)

	c, err = LoadFile(write("empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)

	_, err = LoadFile(write("unknown_field.yaml", "excluded: [Autograd]\n"))
	require.Error(t, err)
	_, err = LoadFile(write("bad_key.yaml", "include: [TPU]\n"))
	require.ErrorContains(t, err, "unknown dispatch key")
	_, err = LoadFile(write("conflict.yaml", "include: [CPU]\nexclude: [CPU]\n"))
	require.ErrorContains(t, err, "both included and excluded")
	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_MergeAndApply(t *testing.T) {
	a := Config{Include: Singleton(Profiler)}
	b := Config{Exclude: Singleton(Autograd)}
	merged := a.Merge(b)
	require.NoError(t, merged.Validate())
	assert.Equal(t, Config{Include: Singleton(Profiler), Exclude: Singleton(Autograd)}, merged)

	keys := merged.Apply(MakeSet(CPU, Autograd))
	assert.Equal(t, MakeSet(CPU, Profiler), keys)
	assert.Equal(t, Profiler, keys.HighestPriority())

	assert.Error(t, merged.Merge(Config{Include: Singleton(Autograd)}).Validate())
}
