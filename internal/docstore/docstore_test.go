package docstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/internal/docstore"
)

func TestNewDefaultsSizeWhenNonPositive(t *testing.T) {
	s, err := docstore.New(0)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestKeyIsStableAndDistinguishesOptions(t *testing.T) {
	k1 := docstore.Key("{ a }", "opts-1")
	k2 := docstore.Key("{ a }", "opts-1")
	k3 := docstore.Key("{ a }", "opts-2")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestPutAndGetRoundTrip(t *testing.T) {
	s, err := docstore.New(4)
	require.NoError(t, err)

	doc := &ast.Document{BaseNode: ast.BaseNode{NodeKind: ast.KindDocument}}
	key := docstore.Key("{ a }", "opts")

	_, ok := s.Get(key)
	assert.False(t, ok)

	s.Put(key, doc)
	got, ok := s.Get(key)
	require.True(t, ok)
	assert.Same(t, doc, got)
	assert.Equal(t, 1, s.Len())
}

func TestEvictsLeastRecentlyUsedAtCapacity(t *testing.T) {
	s, err := docstore.New(1)
	require.NoError(t, err)

	docA := &ast.Document{BaseNode: ast.BaseNode{NodeKind: ast.KindDocument}}
	docB := &ast.Document{BaseNode: ast.BaseNode{NodeKind: ast.KindDocument}}

	s.Put("a", docA)
	s.Put("b", docB)

	_, ok := s.Get("a")
	assert.False(t, ok)

	got, ok := s.Get("b")
	require.True(t, ok)
	assert.Same(t, docB, got)
}
