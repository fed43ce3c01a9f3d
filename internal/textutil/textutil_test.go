package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krotik/gqlfront/internal/textutil"
)

func TestCharacterClassPredicates(t *testing.T) {
	assert.True(t, textutil.IsNameStart('_'))
	assert.True(t, textutil.IsNameStart('a'))
	assert.False(t, textutil.IsNameStart('1'))

	assert.True(t, textutil.IsNameContinue('9'))
	assert.False(t, textutil.IsNameContinue('-'))

	assert.True(t, textutil.IsDigit('5'))
	assert.False(t, textutil.IsDigit('x'))

	assert.True(t, textutil.IsWhiteSpace(' '))
	assert.True(t, textutil.IsWhiteSpace('\t'))
	assert.False(t, textutil.IsWhiteSpace('\n'))

	assert.True(t, textutil.IsLineTerminator('\n'))
	assert.True(t, textutil.IsLineTerminator('\r'))
}

func TestSurrogatePredicates(t *testing.T) {
	assert.True(t, textutil.IsLeadingSurrogate(0xD800))
	assert.True(t, textutil.IsTrailingSurrogate(0xDC00))
	assert.False(t, textutil.IsUnicodeScalarValue(0xD800))
	assert.True(t, textutil.IsUnicodeScalarValue('A'))
}

func TestDedentBlockStringLines(t *testing.T) {
	in := []string{"", "  hello", "    world", "  "}
	out := textutil.DedentBlockStringLines(in)
	assert.Equal(t, []string{"hello", "  world"}, out)
}

func TestDedentBlockStringLinesAllBlank(t *testing.T) {
	out := textutil.DedentBlockStringLines([]string{"", "   ", ""})
	assert.Empty(t, out)
}

func TestPrintBlockStringSingleLine(t *testing.T) {
	assert.Equal(t, `"""hello"""`, textutil.PrintBlockString("hello", false))
}

func TestPrintBlockStringMultiLine(t *testing.T) {
	got := textutil.PrintBlockString("hello\nworld", false)
	assert.Equal(t, "\"\"\"\nhello\nworld\n\"\"\"", got)
}

func TestPrintBlockStringEscapesTripleQuote(t *testing.T) {
	got := textutil.PrintBlockString(`a """ b`, false)
	assert.Contains(t, got, `\"""`)
}

func TestPrintBlockStringPreferMultipleLines(t *testing.T) {
	got := textutil.PrintBlockString("short", true)
	assert.Equal(t, "\"\"\"\nshort\n\"\"\"", got)
}

func TestEscapeString(t *testing.T) {
	assert.Equal(t, `hello`, textutil.EscapeString("hello"))
	assert.Equal(t, `a\nb`, textutil.EscapeString("a\nb"))
	assert.Equal(t, `a\"b`, textutil.EscapeString(`a"b`))
	assert.Equal(t, `a\\b`, textutil.EscapeString(`a\b`))
	assert.Equal(t, `\u0007`, textutil.EscapeString("\x07"))
}
