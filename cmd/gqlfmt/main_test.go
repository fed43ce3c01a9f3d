package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlfront/internal/docstore"
	"github.com/krotik/gqlfront/parser"
)

func TestMain(m *testing.M) {
	logger = zap.NewNop()
	var err error
	store, err = docstore.New(docstore.DefaultSize)
	if err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestOptsTagDistinguishesOptions(t *testing.T) {
	a := optsTag(parser.Options{MaxTokens: 10})
	b := optsTag(parser.Options{MaxTokens: 20})
	assert.NotEqual(t, a, b)
}

func TestParseFileReadsAndCachesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{ a }"), 0o644))

	doc, err := parseFile(path, parser.Options{})
	require.NoError(t, err)
	require.NotNil(t, doc)

	doc2, err := parseFile(path, parser.Options{})
	require.NoError(t, err)
	assert.Same(t, doc, doc2)
}

func TestParseFileDoesNotCollideAcrossIdenticalContentDifferentPaths(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.graphql")
	pathB := filepath.Join(dir, "b.graphql")
	require.NoError(t, os.WriteFile(pathA, []byte("{ a }"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("{ a }"), 0o644))

	docA, err := parseFile(pathA, parser.Options{})
	require.NoError(t, err)
	docB, err := parseFile(pathB, parser.Options{})
	require.NoError(t, err)

	require.NotSame(t, docA, docB)
	assert.Equal(t, pathA, docA.GetLoc().Source.Name)
	assert.Equal(t, pathB, docB.GetLoc().Source.Name)
}

func TestParseFileReturnsErrorForMissingFile(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.graphql"), parser.Options{})
	assert.Error(t, err)
}

func TestParseFileReturnsParseErrorForInvalidSyntax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{ a"), 0o644))

	_, err := parseFile(path, parser.Options{})
	assert.Error(t, err)
}
