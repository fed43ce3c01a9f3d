package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlfront/source"
)

func advanceAll(t *testing.T, l *Lexer) []*Token {
	t.Helper()

	var toks []*Token
	for {
		tok, err := l.Advance()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func TestLexerStartsAtSOF(t *testing.T) {
	l := New(source.New("{ a }", "", nil))
	assert.Equal(t, SOF, l.Token.Kind)
}

func TestLexerPunctuators(t *testing.T) {
	l := New(source.New("! $ & ( ) ... : = @ [ ] { | }", "", nil))
	toks := advanceAll(t, l)

	want := []Kind{Bang, Dollar, Amp, ParenL, ParenR, Spread, Colon, Equals, At,
		BracketL, BracketR, BraceL, Pipe, BraceR, EOF}
	got := make([]Kind, len(toks))
	for i, tk := range toks {
		got[i] = tk.Kind
	}
	assert.Equal(t, want, got)
}

func TestLexerQuestionMarkRequiresOption(t *testing.T) {
	l := New(source.New("?", "", nil))
	_, err := l.Advance()
	assert.Error(t, err)

	l2 := NewWithOptions(source.New("?", "", nil), true)
	tok, err := l2.Advance()
	require.NoError(t, err)
	assert.Equal(t, QuestionMark, tok.Kind)
}

func TestLexerName(t *testing.T) {
	l := New(source.New("helloWorld_123", "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, Name, tok.Kind)
	assert.Equal(t, "helloWorld_123", tok.Value)
}

func TestLexerIntAndFloat(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		val  string
	}{
		{"123", Int, "123"},
		{"-123", Int, "-123"},
		{"0", Int, "0"},
		{"1.5", Float, "1.5"},
		{"1e10", Float, "1e10"},
		{"1.5E-10", Float, "1.5E-10"},
	}

	for _, c := range cases {
		l := New(source.New(c.in, "", nil))
		tok, err := l.Advance()
		require.NoError(t, err, c.in)
		assert.Equal(t, c.kind, tok.Kind, c.in)
		assert.Equal(t, c.val, tok.Value, c.in)
	}
}

func TestLexerLeadingZeroIsInvalid(t *testing.T) {
	l := New(source.New("013", "", nil))
	_, err := l.Advance()
	assert.Error(t, err)
}

func TestLexerSimpleString(t *testing.T) {
	l := New(source.New(`"hello\nworld"`, "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, String, tok.Kind)
	assert.Equal(t, "hello\nworld", tok.Value)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New(source.New(`"hello`, "", nil))
	_, err := l.Advance()
	assert.Error(t, err)
}

func TestLexerUnicodeEscape(t *testing.T) {
	l := New(source.New(`"\u0041"`, "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, "A", tok.Value)
}

func TestLexerUnicodeBraceEscape(t *testing.T) {
	l := New(source.New(`"\u{1F600}"`, "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", tok.Value)
}

func TestLexerBlockString(t *testing.T) {
	l := New(source.New("\"\"\"\n  hello\n  world\n\"\"\"", "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, BlockString, tok.Kind)
	assert.Equal(t, "hello\nworld", tok.Value)
}

func TestLexerBlockStringEscapedTripleQuote(t *testing.T) {
	l := New(source.New(`"""a \""" b"""`, "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, `a """ b`, tok.Value)
}

func TestLexerComment(t *testing.T) {
	l := New(source.New("# a comment\n{ }", "", nil))

	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, BraceL, tok.Kind)

	// the comment itself is reachable through Prev, never installed Current.
	require.NotNil(t, tok.Prev)
	assert.Equal(t, Comment, tok.Prev.Kind)
	assert.Equal(t, " a comment", tok.Prev.Value)
}

func TestLexerLookAheadIsPureAndCached(t *testing.T) {
	l := New(source.New("{ a }", "", nil))

	first, err := l.LookAhead()
	require.NoError(t, err)
	second, err := l.LookAhead()
	require.NoError(t, err)

	assert.Same(t, first, second)

	advanced, err := l.Advance()
	require.NoError(t, err)
	assert.Same(t, first, advanced)
}

func TestLexerTokenCountExcludesEOF(t *testing.T) {
	l := New(source.New("{ a }", "", nil))
	advanceAll(t, l)
	assert.Equal(t, 3, l.TokenCount())
}

func TestLexerInvalidCharacter(t *testing.T) {
	l := New(source.New("\x07", "", nil))
	_, err := l.Advance()
	assert.Error(t, err)
}

func TestLexerSkipsIgnoredTokens(t *testing.T) {
	l := New(source.New("﻿  ,\t,\n{", "", nil))
	tok, err := l.Advance()
	require.NoError(t, err)
	assert.Equal(t, BraceL, tok.Kind)
}
