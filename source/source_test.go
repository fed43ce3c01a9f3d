package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s := New("{ hello }", "", nil)

	assert.Equal(t, DefaultName, s.Name)
	assert.Equal(t, Location{Line: 1, Column: 1}, s.LocationOffset)
	assert.Equal(t, "{ hello }", s.Body)
}

func TestNewCustomNameAndOffset(t *testing.T) {
	s := New("{ hello }", "embedded.graphql", &Location{Line: 5, Column: 10})

	assert.Equal(t, "embedded.graphql", s.Name)
	assert.Equal(t, Location{Line: 5, Column: 10}, s.LocationOffset)
}

func TestNewInvalidOffsetPanics(t *testing.T) {
	assert.Panics(t, func() { New("x", "", &Location{Line: 0, Column: 1}) })
	assert.Panics(t, func() { New("x", "", &Location{Line: 1, Column: 0}) })
}

func TestGetLocationFirstLine(t *testing.T) {
	s := New("abc", "", nil)

	loc := s.GetLocation(2)
	assert.Equal(t, Location{Line: 1, Column: 3}, loc)
}

func TestGetLocationAcrossNewlines(t *testing.T) {
	s := New("line1\nline2\nline3", "", nil)

	// "line2" starts at byte offset 6.
	loc := s.GetLocation(6)
	assert.Equal(t, Location{Line: 2, Column: 1}, loc)

	// position within line3.
	loc = s.GetLocation(14)
	assert.Equal(t, 3, loc.Line)
}

func TestGetLocationHandlesCRLF(t *testing.T) {
	s := New("a\r\nb", "", nil)

	loc := s.GetLocation(3)
	require.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)
}

func TestGetLocationCountsCharactersNotBytes(t *testing.T) {
	s := New(`"café" !`, "", nil)

	// é is 2 bytes in UTF-8; the `!` is the 8th character but byte offset 8.
	loc := s.GetLocation(8)
	assert.Equal(t, Location{Line: 1, Column: 8}, loc)
}

func TestGetLocationAppliesOffset(t *testing.T) {
	s := New("abc\ndef", "nested", &Location{Line: 10, Column: 5})

	loc := s.GetLocation(0)
	assert.Equal(t, Location{Line: 10, Column: 5}, loc)

	loc = s.GetLocation(4)
	assert.Equal(t, 11, loc.Line)
	assert.Equal(t, 1, loc.Column)
}
