/*
Package lexer turns Source text into a stream of Tokens (spec §4.C). The
scanning style - a chain of small state functions, one per token shape -
follows the teacher's (krotik/common) hand-written lexer, itself modelled on
Rob Pike's "Lexical Scanning in Go" talk. The teacher pushes tokens onto a
channel consumed by its parser; that is a poor fit here because spec §4.C
requires a pull-based LookAhead that can peek one token ahead without
committing, and a persistent doubly-linked token chain (including comments)
that downstream code keeps walking long after parsing finishes. This lexer
keeps the teacher's "one function per token shape" decomposition but drives
it from Advance/LookAhead pulling bytes on demand instead of a goroutine
pushing them.
*/
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/krotik/gqlfront/gqlerror"
	"github.com/krotik/gqlfront/internal/textutil"
	"github.com/krotik/gqlfront/source"
)

// runeEOF is returned by peekRuneAt once the cursor runs off the end of body.
const runeEOF = -1

// Lexer scans a Source into Tokens on demand. A Lexer is not safe for
// concurrent use; its Token/lastToken/line/lineStart fields mutate on every
// Advance and even on LookAhead (spec §5).
type Lexer struct {
	Source *source.Source
	body   string

	pos       int // next unread byte offset
	line      int // current 1-indexed line
	lineStart int // byte offset of the start of the current line

	Token     *Token // current token, installed by Advance
	lastToken *Token // the previously current token

	clientControlledNullability bool

	tokenCount int // count of non-EOF tokens yielded by Advance, for maxTokens
}

// New constructs a Lexer positioned at <SOF>.
func New(src *source.Source) *Lexer {
	return NewWithOptions(src, false)
}

// NewWithOptions constructs a Lexer, optionally recognizing the `?`
// client-controlled-nullability punctuator.
func NewWithOptions(src *source.Source, clientControlledNullability bool) *Lexer {
	sof := &Token{Kind: SOF, Start: 0, End: 0, Line: 1, Column: 1}
	return &Lexer{
		Source:                       src,
		body:                         src.Body,
		pos:                          0,
		line:                         1,
		lineStart:                    0,
		Token:                        sof,
		lastToken:                    sof,
		clientControlledNullability:  clientControlledNullability,
	}
}

// TokenCount returns the number of non-EOF tokens yielded so far.
func (l *Lexer) TokenCount() int {
	return l.tokenCount
}

// LastToken returns the token that was current before the most recent
// Advance, giving callers the end-of-span token a Location needs (spec
// §4.E: `new Location(startToken, lexer.lastToken, source)`).
func (l *Lexer) LastToken() *Token {
	return l.lastToken
}

// Advance returns the next non-ignored, non-comment token and installs it as
// the Lexer's current Token.
func (l *Lexer) Advance() (*Token, error) {
	next, err := l.peekNonIgnored()
	if err != nil {
		return nil, err
	}

	l.lastToken = l.Token
	l.Token = next

	if next.Kind != EOF {
		l.tokenCount++
	}

	return next, nil
}

// LookAhead returns the next non-ignored, non-comment token without
// committing it as current. Calling LookAhead repeatedly without an
// intervening Advance returns the identical Token value every time.
func (l *Lexer) LookAhead() (*Token, error) {
	return l.peekNonIgnored()
}

// peekNonIgnored walks forward from the current Token along its Next chain,
// scanning fresh bytes only the first time a given link is traversed
// (Next is cached on the Token once computed), skipping over any Comment
// tokens encountered along the way.
func (l *Lexer) peekNonIgnored() (*Token, error) {
	tok := l.Token

	if tok.Kind == EOF {
		return tok, nil
	}

	for {
		if tok.Next == nil {
			nt, err := l.scanOne()
			if err != nil {
				return nil, err
			}
			tok.Next = nt
			nt.Prev = tok
		}

		if tok.Next.Kind != Comment {
			return tok.Next, nil
		}

		tok = tok.Next
	}
}

// scanOne skips any ignored run and scans exactly one token (possibly a
// Comment) starting at the lexer's current byte cursor.
func (l *Lexer) scanOne() (*Token, error) {
	l.skipIgnored()

	start := l.pos
	line := l.line
	column := start - l.lineStart + 1

	if l.pos >= len(l.body) {
		return &Token{Kind: EOF, Start: start, End: start, Line: line, Column: column}, nil
	}

	r, w := l.peekRuneAt(0)

	switch {
	case r == '#':
		return l.scanComment(start, line, column)
	case r == '"':
		return l.scanString(start, line, column)
	case r == '.':
		if r2, _ := l.peekRuneAt(1); r2 == '.' {
			if r3, _ := l.peekRuneAt(2); r3 == '.' {
				l.pos += 3
				return l.emit(Spread, "...", start, line, column), nil
			}
		}
		return l.errorAt(start, line, column, invalidCharMessage(r))
	case r == '!':
		l.pos += w
		return l.emit(Bang, "!", start, line, column), nil
	case r == '$':
		l.pos += w
		return l.emit(Dollar, "$", start, line, column), nil
	case r == '&':
		l.pos += w
		return l.emit(Amp, "&", start, line, column), nil
	case r == '(':
		l.pos += w
		return l.emit(ParenL, "(", start, line, column), nil
	case r == ')':
		l.pos += w
		return l.emit(ParenR, ")", start, line, column), nil
	case r == ':':
		l.pos += w
		return l.emit(Colon, ":", start, line, column), nil
	case r == '=':
		l.pos += w
		return l.emit(Equals, "=", start, line, column), nil
	case r == '@':
		l.pos += w
		return l.emit(At, "@", start, line, column), nil
	case r == '[':
		l.pos += w
		return l.emit(BracketL, "[", start, line, column), nil
	case r == ']':
		l.pos += w
		return l.emit(BracketR, "]", start, line, column), nil
	case r == '{':
		l.pos += w
		return l.emit(BraceL, "{", start, line, column), nil
	case r == '|':
		l.pos += w
		return l.emit(Pipe, "|", start, line, column), nil
	case r == '}':
		l.pos += w
		return l.emit(BraceR, "}", start, line, column), nil
	case r == '?' && l.clientControlledNullability:
		l.pos += w
		return l.emit(QuestionMark, "?", start, line, column), nil
	case r == '\'':
		return l.errorAt(start, line, column, "Unexpected single quote character ('), did you mean to use a double quote (\")?")
	case textutil.IsNameStart(r):
		return l.scanName(start, line, column)
	case textutil.IsDigit(r) || r == '-':
		return l.scanNumber(start, line, column)
	default:
		return l.errorAt(start, line, column, invalidCharMessage(r))
	}
}

func invalidCharMessage(r rune) string {
	if textutil.IsUnicodeScalarValue(r) {
		return fmt.Sprintf("Unexpected character: U+%04X.", r)
	}
	return fmt.Sprintf("Invalid character: U+%04X.", r)
}

func (l *Lexer) emit(kind Kind, value string, start, line, column int) *Token {
	if kind.IsPunctuator() {
		value = ""
	}
	return &Token{Kind: kind, Start: start, End: l.pos, Line: line, Column: column, Value: value}
}

func (l *Lexer) errorAt(start, line, column int, msg string) (*Token, error) {
	return nil, gqlerror.NewAt(msg, l.Source, start)
}

// skipIgnored advances past BOM, tab, space, comma and line terminators
// (spec §4.C's "Ignored" production).
func (l *Lexer) skipIgnored() {
	for l.pos < len(l.body) {
		r, w := l.peekRuneAt(0)

		switch {
		case r == '\uFEFF' || textutil.IsWhiteSpace(r) || r == ',':
			l.pos += w
		case r == '\n':
			l.pos += w
			l.line++
			l.lineStart = l.pos
		case r == '\r':
			l.pos += w
			if r2, w2 := l.peekRuneAt(0); r2 == '\n' {
				l.pos += w2
			}
			l.line++
			l.lineStart = l.pos
		default:
			return
		}
	}
}

func (l *Lexer) scanComment(start, line, column int) (*Token, error) {
	// consume '#'
	l.pos++

	contentStart := l.pos

	for l.pos < len(l.body) {
		r, w := l.peekRuneAt(0)
		if r == '\n' || r == '\r' {
			break
		}
		l.pos += w
	}

	value := l.body[contentStart:l.pos]
	return &Token{Kind: Comment, Start: start, End: l.pos, Line: line, Column: column, Value: value}, nil
}

func (l *Lexer) scanName(start, line, column int) (*Token, error) {
	for l.pos < len(l.body) {
		r, w := l.peekRuneAt(0)
		if !textutil.IsNameContinue(r) {
			break
		}
		l.pos += w
	}
	return l.emit(Name, l.body[start:l.pos], start, line, column), nil
}

// scanNumber implements the Int/Float grammar of spec §4.C, including the
// tie-breaks: a `.` or NameStart immediately after an IntegerPart is
// invalid, and a leading `0` followed by another digit is invalid.
func (l *Lexer) scanNumber(start, line, column int) (*Token, error) {
	isFloat := false

	if r, _ := l.peekRuneAt(0); r == '-' {
		l.pos++
	}

	if r, _ := l.peekRuneAt(0); r == '0' {
		l.pos++
		if r2, _ := l.peekRuneAt(0); textutil.IsDigit(r2) {
			return l.errorAt(l.pos, line, column,
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", describeRune(r2)))
		}
	} else {
		if err := l.consumeDigits(); err != nil {
			return nil, err
		}
	}

	if r, _ := l.peekRuneAt(0); r == '.' {
		isFloat = true
		l.pos++
		if err := l.consumeDigits(); err != nil {
			return nil, err
		}
	}

	if r, _ := l.peekRuneAt(0); r == 'e' || r == 'E' {
		isFloat = true
		l.pos++
		if r2, _ := l.peekRuneAt(0); r2 == '+' || r2 == '-' {
			l.pos++
		}
		if err := l.consumeDigits(); err != nil {
			return nil, err
		}
	}

	// A name-start character or another `.` immediately following the
	// number is a grammar violation (spec §4.C numeric rules).
	if r, _ := l.peekRuneAt(0); textutil.IsNameStart(r) || r == '.' {
		return l.errorAt(l.pos, line, column,
			fmt.Sprintf("Invalid number, expected digit but got: %s.", describeRune(r)))
	}

	value := l.body[start:l.pos]
	if isFloat {
		return l.emit(Float, value, start, line, column), nil
	}
	return l.emit(Int, value, start, line, column), nil
}

func (l *Lexer) consumeDigits() error {
	r, _ := l.peekRuneAt(0)
	if !textutil.IsDigit(r) {
		return gqlerror.NewAt(
			fmt.Sprintf("Invalid number, expected digit but got: %s.", describeRune(r)), l.Source, l.pos)
	}
	for {
		r, _ := l.peekRuneAt(0)
		if !textutil.IsDigit(r) {
			return nil
		}
		l.pos++
	}
}

func describeRune(r rune) string {
	if r == runeEOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q", string(r))
}

// scanString scans either a simple "..." string (escapes interpreted) or a
// block """...""" string (escapes not interpreted except \""" itself).
func (l *Lexer) scanString(start, line, column int) (*Token, error) {
	if r2, _ := l.peekRuneAt(1); r2 == '"' {
		if r3, _ := l.peekRuneAt(2); r3 == '"' {
			return l.scanBlockString(start, line, column)
		}
	}
	return l.scanSimpleString(start, line, column)
}

func (l *Lexer) scanSimpleString(start, line, column int) (*Token, error) {
	l.pos++ // opening quote

	var b strings.Builder

	for {
		if l.pos >= len(l.body) {
			return l.errorAt(l.pos, line, column, "Unterminated string.")
		}

		r, w := l.peekRuneAt(0)

		if r == '"' {
			l.pos += w
			break
		}
		if r == '\n' || r == '\r' {
			return l.errorAt(l.pos, line, column, "Unterminated string.")
		}

		if r == '\\' {
			l.pos += w
			esc, err := l.scanEscape(line, column)
			if err != nil {
				return nil, err
			}
			b.WriteString(esc)
			continue
		}

		l.pos += w
		b.WriteRune(r)
	}

	return &Token{Kind: String, Start: start, End: l.pos, Line: line, Column: column, Value: b.String()}, nil
}

func (l *Lexer) scanEscape(line, column int) (string, error) {
	r, w := l.peekRuneAt(0)

	switch r {
	case '"':
		l.pos += w
		return "\"", nil
	case '\\':
		l.pos += w
		return "\\", nil
	case '/':
		l.pos += w
		return "/", nil
	case 'b':
		l.pos += w
		return "\b", nil
	case 'f':
		l.pos += w
		return "\f", nil
	case 'n':
		l.pos += w
		return "\n", nil
	case 'r':
		l.pos += w
		return "\r", nil
	case 't':
		l.pos += w
		return "\t", nil
	case 'u':
		l.pos += w
		return l.scanUnicodeEscape(line, column)
	}

	return "", gqlerror.NewAt(
		fmt.Sprintf("Invalid character escape sequence: \\%s.", describeRune(r)), l.Source, l.pos)
}

func (l *Lexer) scanUnicodeEscape(line, column int) (string, error) {
	if r, _ := l.peekRuneAt(0); r == '{' {
		l.pos++
		start := l.pos
		for {
			r2, _ := l.peekRuneAt(0)
			if r2 == '}' {
				break
			}
			if !isHexDigit(r2) {
				return "", gqlerror.NewAt("Invalid Unicode escape sequence.", l.Source, l.pos)
			}
			l.pos++
		}
		hex := l.body[start:l.pos]
		l.pos++ // closing }

		if hex == "" {
			return "", gqlerror.NewAt("Invalid Unicode escape sequence.", l.Source, start)
		}

		code, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", gqlerror.NewAt("Invalid Unicode escape sequence.", l.Source, start)
		}

		if !textutil.IsUnicodeScalarValue(rune(code)) {
			return "", gqlerror.NewAt(
				fmt.Sprintf("Invalid Unicode escape sequence: \\u{%s}.", hex), l.Source, start)
		}

		return string(rune(code)), nil
	}

	code1, err := l.readFourHexDigits()
	if err != nil {
		return "", err
	}

	if textutil.IsLeadingSurrogate(rune(code1)) {
		save := l.pos
		if r, _ := l.peekRuneAt(0); r == '\\' {
			if r2, _ := l.peekRuneAt(1); r2 == 'u' {
				l.pos += 2
				code2, err := l.readFourHexDigits()
				if err == nil && textutil.IsTrailingSurrogate(rune(code2)) {
					combined := 0x10000 + (code1-0xD800)*0x400 + (code2 - 0xDC00)
					return string(rune(combined)), nil
				}
				l.pos = save
			}
		}
		return "", gqlerror.NewAt("Invalid Unicode escape sequence: unpaired surrogate.", l.Source, save)
	}

	if textutil.IsTrailingSurrogate(rune(code1)) {
		return "", gqlerror.NewAt("Invalid Unicode escape sequence: unpaired surrogate.", l.Source, l.pos-6)
	}

	return string(rune(code1)), nil
}

func (l *Lexer) readFourHexDigits() (int, error) {
	if l.pos+4 > len(l.body) {
		return 0, gqlerror.NewAt("Invalid Unicode escape sequence.", l.Source, l.pos)
	}
	hex := l.body[l.pos : l.pos+4]
	for _, r := range hex {
		if !isHexDigit(r) {
			return 0, gqlerror.NewAt("Invalid Unicode escape sequence: \\u"+hex+".", l.Source, l.pos)
		}
	}
	code, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, gqlerror.NewAt("Invalid Unicode escape sequence.", l.Source, l.pos)
	}
	l.pos += 4
	return int(code), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) scanBlockString(start, line, column int) (*Token, error) {
	l.pos += 3 // opening """

	contentStart := l.pos

	for {
		if l.pos >= len(l.body) {
			return l.errorAt(l.pos, line, column, "Unterminated string.")
		}

		r, w := l.peekRuneAt(0)

		if r == '"' {
			if r2, _ := l.peekRuneAt(1); r2 == '"' {
				if r3, _ := l.peekRuneAt(2); r3 == '"' {
					break
				}
			}
		}

		if r == '\\' {
			if r2, _ := l.peekRuneAt(1); r2 == '"' {
				if r3, _ := l.peekRuneAt(2); r3 == '"' {
					if r4, _ := l.peekRuneAt(3); r4 == '"' {
						l.pos += 4
						continue
					}
				}
			}
		}

		if r == '\n' {
			l.pos += w
			l.line++
			l.lineStart = l.pos
			continue
		}
		if r == '\r' {
			l.pos += w
			if r2, w2 := l.peekRuneAt(0); r2 == '\n' {
				l.pos += w2
			}
			l.line++
			l.lineStart = l.pos
			continue
		}

		l.pos += w
	}

	raw := l.body[contentStart:l.pos]
	raw = strings.ReplaceAll(raw, `\"""`, `"""`)

	l.pos += 3 // closing """

	dedented := textutil.DedentBlockStringLines(strings.Split(strings.ReplaceAll(
		strings.ReplaceAll(raw, "\r\n", "\n"), "\r", "\n"), "\n"))

	return &Token{
		Kind: BlockString, Start: start, End: l.pos, Line: line, Column: column,
		Value: strings.Join(dedented, "\n"),
	}, nil
}

// peekRuneAt decodes the rune at byte offset l.pos+offset without moving the
// cursor, mirroring the teacher's next(peek) lookahead helper.
func (l *Lexer) peekRuneAt(offset int) (rune, int) {
	at := l.pos + offset
	if at >= len(l.body) {
		return runeEOF, 0
	}
	r, w := utf8.DecodeRuneInString(l.body[at:])
	return r, w
}
