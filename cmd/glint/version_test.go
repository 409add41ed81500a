package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-08-01"

	root := newRootCmd(nil)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-08-01")
}

func TestThemesCommandListsBuiltins(t *testing.T) {
	root := newRootCmd(nil)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"themes"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "default")
	require.Contains(t, output, "dark")
	require.Contains(t, output, "light")
}

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	cfg, err := loadConfig(&rootFlags{})

	require.NoError(t, err)
	require.Equal(t, "1.0.0", cfg.Version)
}
