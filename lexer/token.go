package lexer

import "fmt"

// Kind identifies the lexical category of a Token (spec §3, §4.C).
type Kind int

const (
	SOF Kind = iota
	EOF

	Bang         // !
	Dollar       // $
	Amp          // &
	ParenL       // (
	ParenR       // )
	Spread       // ...
	Colon        // :
	Equals       // =
	At           // @
	BracketL     // [
	BracketR     // ]
	BraceL       // {
	Pipe         // |
	BraceR       // }
	QuestionMark // ? (client-controlled-nullability, disabled unless enabled on the Lexer)

	Name
	Int
	Float
	String
	BlockString
	Comment
)

var kindNames = map[Kind]string{
	SOF: "<SOF>", EOF: "<EOF>",
	Bang: "!", Dollar: "$", Amp: "&", ParenL: "(", ParenR: ")",
	Spread: "...", Colon: ":", Equals: "=", At: "@",
	BracketL: "[", BracketR: "]", BraceL: "{", Pipe: "|", BraceR: "}",
	QuestionMark: "?",
	Name:         "Name", Int: "Int", Float: "Float",
	String: "String", BlockString: "BlockString", Comment: "Comment",
}

// IsPunctuator reports whether k is one of the fixed punctuator kinds.
func (k Kind) IsPunctuator() bool {
	switch k {
	case Bang, Dollar, Amp, ParenL, ParenR, Spread, Colon, Equals, At,
		BracketL, BracketR, BraceL, Pipe, BraceR, QuestionMark:
		return true
	}
	return false
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "<unknown>"
}

// Token is a single lexical unit (spec §3). Punctuator/sentinel tokens carry
// no Value. Prev/Next link every token produced by the lexer - including
// Comment tokens - into a single doubly-linked chain starting at <SOF> and
// ending at <EOF>; Advance/LookAhead only ever install non-ignored,
// non-comment tokens as Current, but comments remain reachable as Prev/Next
// neighbours of the tokens around them.
type Token struct {
	Kind   Kind
	Start  int // byte offset into Source.Body, inclusive
	End    int // byte offset into Source.Body, exclusive
	Line   int // 1-indexed
	Column int // 1-indexed
	Value  string

	Prev *Token
	Next *Token
}

// Desc renders a token the way parser error messages quote it: punctuator
// kinds print their symbol in quotes, value-bearing kinds print
// `<kind> "<value>"`, sentinels print their bracketed name.
func (t *Token) Desc() string {
	if t == nil {
		return "<EOF>"
	}
	if t.Kind.IsPunctuator() {
		return fmt.Sprintf("%q", t.Kind.String())
	}
	if t.Value != "" {
		return fmt.Sprintf("%s %q", t.Kind.String(), t.Value)
	}
	return t.Kind.String()
}

func (t *Token) String() string {
	return t.Desc()
}
