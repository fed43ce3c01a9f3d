package gqlerror_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlfront/gqlerror"
	"github.com/krotik/gqlfront/source"
)

func TestNewHasNoLocation(t *testing.T) {
	e := gqlerror.New("boom")
	assert.Equal(t, "boom", e.Error())
	assert.Empty(t, e.Locations)
}

func TestNewAtComputesLocation(t *testing.T) {
	src := source.New("{\n  bad\n}", "test.graphql", nil)
	e := gqlerror.NewAt("Unexpected Name \"bad\".", src, 4)

	require.Len(t, e.Locations, 1)
	assert.Equal(t, 2, e.Locations[0].Line)
	assert.Contains(t, e.Error(), "test.graphql:2:")
}

func TestErrorUnwrap(t *testing.T) {
	original := errors.New("underlying")
	e := &gqlerror.Error{Message: "wrapped", Original: original}

	assert.Same(t, original, errors.Unwrap(e))
}

func TestPrintExcerptUnderlinesColumn(t *testing.T) {
	src := source.New("{\n  bad field\n}", "", nil)
	loc := src.GetLocation(8) // points at "field"

	excerpt := gqlerror.PrintExcerpt(src, loc)
	lines := strings.Split(strings.TrimRight(excerpt, "\n"), "\n")

	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[2], "^")
}

func TestPrintExcerptEmptyForNilSource(t *testing.T) {
	assert.Equal(t, "", gqlerror.PrintExcerpt(nil, source.Location{Line: 1, Column: 1}))
}

func TestFormatIncludesExcerptWhenLocated(t *testing.T) {
	src := source.New("{ bad }", "", nil)
	e := gqlerror.NewAt("Unexpected Name.", src, 2)

	formatted := e.Format()
	assert.Contains(t, formatted, "Unexpected Name.")
	assert.Contains(t, formatted, "^")
}

func TestFormatWithoutSourceIsJustMessage(t *testing.T) {
	e := gqlerror.New("plain")
	assert.Equal(t, "plain", e.Format())
}
