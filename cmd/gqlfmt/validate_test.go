package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandPassesOnWellFormedDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{ a }"), 0o644))

	cmd := newValidateCmd()
	assert.NoError(t, cmd.RunE(cmd, []string{path}))
}

func TestValidateCommandFailsOnSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{ a"), 0o644))

	cmd := newValidateCmd()
	assert.Error(t, cmd.RunE(cmd, []string{path}))
}

func TestValidateCommandHonorsMaxTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{ a b c }"), 0o644))

	cmd := newValidateCmd()
	require.NoError(t, cmd.Flags().Set("max-tokens", "1"))
	assert.Error(t, cmd.RunE(cmd, []string{path}))
}
