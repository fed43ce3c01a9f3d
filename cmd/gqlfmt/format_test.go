package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommandWritesBackWhenRequested(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{a   b}"), 0o644))

	cmd := newFormatCmd()
	require.NoError(t, cmd.Flags().Set("write", "true"))
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.RunE(cmd, []string{path}))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  a\n  b\n}\n", string(out))
}

func TestFormatCommandReportsFailuresWithoutAbortingOthers(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.graphql")
	bad := filepath.Join(dir, "bad.graphql")
	require.NoError(t, os.WriteFile(good, []byte("{ a }"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("{ a"), 0o644))

	cmd := newFormatCmd()
	err := cmd.RunE(cmd, []string{good, bad})
	assert.Error(t, err)
}
