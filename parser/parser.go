/*
Package parser implements the recursive-descent parser of spec §4.E: Source
plus Options in, a fully-typed AST out. The grammar functions mirror, one
production per method, the teacher's krotik/common/lang/graphql/parser
package in spirit (a dedicated parser type wrapping a token source, a single
family of syntax errors carrying line/column) but not in mechanism: the
teacher's parser is a Pratt parser driven by null-denotation functions keyed
off a fixed token->AST-node table, which cannot express the open-ended
type-system grammar this spec requires (schema/scalar/object/interface/
union/enum/input-object/directive definitions and their extensions). This
parser is a direct recursive descent over ast.Kind productions instead,
following the shape of the language grammar itself rather than a Pratt
operator table.
*/
package parser

import (
	"fmt"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/gqlerror"
	"github.com/krotik/gqlfront/lexer"
	"github.com/krotik/gqlfront/source"
)

// Options configures a Parser (spec §4.E).
type Options struct {
	// NoLocation suppresses Loc on every produced node.
	NoLocation bool

	// MaxTokens aborts parsing once more than this many non-EOF tokens have
	// been consumed. Zero means unbounded.
	MaxTokens int

	// AllowLegacyFragmentVariables permits `fragment F($x: Int) on T {...}`,
	// a deprecated extension kept behind this flag (spec §9 Open Questions).
	AllowLegacyFragmentVariables bool

	// ExperimentalFragmentArguments permits arguments at fragment spread call
	// sites: `...F(x: 1)`.
	ExperimentalFragmentArguments bool
}

type parser struct {
	lex    *lexer.Lexer
	source *source.Source
	opts   Options
}

func newParser(src *source.Source, opts Options) *parser {
	return &parser{
		lex:    lexer.New(src),
		source: src,
		opts:   opts,
	}
}

// ParseDocument parses src as a complete GraphQL document (spec §4.E). The
// leading <SOF> sentinel is consumed inside parseDocument's call to many,
// matching the other three entry points' own explicit expectToken(SOF).
func ParseDocument(src *source.Source, opts Options) (*ast.Document, error) {
	p := newParser(src, opts)
	return p.parseDocument()
}

// ParseDocumentString is a convenience wrapper promoting a raw string to a
// default-named Source, as spec §4.E allows.
func ParseDocumentString(body string, opts Options) (*ast.Document, error) {
	return ParseDocument(source.New(body, "", nil), opts)
}

// ParseValue parses src as a single value literal, possibly containing
// variables.
func ParseValue(src *source.Source, opts Options) (ast.Value, error) {
	p := newParser(src, opts)
	if _, err := p.expectToken(lexer.SOF); err != nil {
		return nil, err
	}
	v, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.EOF); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseConstValue parses src as a single value literal that must be const
// (transitively variable-free).
func ParseConstValue(src *source.Source, opts Options) (ast.Value, error) {
	p := newParser(src, opts)
	if _, err := p.expectToken(lexer.SOF); err != nil {
		return nil, err
	}
	v, err := p.parseValueLiteral(true)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.EOF); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseType parses src as a single type reference.
func ParseType(src *source.Source, opts Options) (ast.Type, error) {
	p := newParser(src, opts)
	if _, err := p.expectToken(lexer.SOF); err != nil {
		return nil, err
	}
	t, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.EOF); err != nil {
		return nil, err
	}
	return t, nil
}

// ---- token-stream helpers ----

func (p *parser) token() *lexer.Token {
	return p.lex.Token
}

func (p *parser) advance() (*lexer.Token, error) {
	tok, err := p.lex.Advance()
	if err != nil {
		return nil, err
	}
	if p.opts.MaxTokens > 0 && p.lex.TokenCount() > p.opts.MaxTokens {
		return nil, gqlerror.NewAt(
			fmt.Sprintf("Document contains more than %d tokens. Parsing aborted.", p.opts.MaxTokens),
			p.source, tok.Start)
	}
	return tok, nil
}

func (p *parser) peek(kind lexer.Kind) bool {
	return p.token().Kind == kind
}

func (p *parser) peekKeyword(value string) bool {
	t := p.token()
	return t.Kind == lexer.Name && t.Value == value
}

// expectToken consumes the current token if it has kind, otherwise fails.
func (p *parser) expectToken(kind lexer.Kind) (*lexer.Token, error) {
	tok := p.token()
	if tok.Kind != kind {
		return nil, gqlerror.NewAt(
			fmt.Sprintf("Expected %s, found %s.", kindDesc(kind), tok.Desc()), p.source, tok.Start)
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// expectOptionalToken consumes and returns the current token if it has
// kind; otherwise leaves the stream untouched and reports absence.
func (p *parser) expectOptionalToken(kind lexer.Kind) (*lexer.Token, bool, error) {
	tok := p.token()
	if tok.Kind != kind {
		return nil, false, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, false, err
	}
	return tok, true, nil
}

// expectKeyword consumes a Name token whose value is the given keyword.
func (p *parser) expectKeyword(value string) error {
	if !p.peekKeyword(value) {
		tok := p.token()
		return gqlerror.NewAt(
			fmt.Sprintf("Expected %q, found %s.", value, tok.Desc()), p.source, tok.Start)
	}
	_, err := p.advance()
	return err
}

// expectOptionalKeyword consumes a Name token whose value is the given
// keyword, if present.
func (p *parser) expectOptionalKeyword(value string) (bool, error) {
	if !p.peekKeyword(value) {
		return false, nil
	}
	_, err := p.advance()
	return true, err
}

func (p *parser) unexpected(at *lexer.Token) error {
	if at == nil {
		at = p.token()
	}
	return gqlerror.NewAt(fmt.Sprintf("Unexpected %s.", at.Desc()), p.source, at.Start)
}

func (p *parser) syntaxErrorAt(tok *lexer.Token, msg string) error {
	return gqlerror.NewAt(msg, p.source, tok.Start)
}

// kindDesc renders an expected kind the way error messages quote it:
// punctuators in quotes, everything else by name.
func kindDesc(k lexer.Kind) string {
	if k.IsPunctuator() {
		return fmt.Sprintf("%q", k.String())
	}
	return k.String()
}

// loc builds a Location spanning from startTok through the token most
// recently consumed, or returns nil under NoLocation (spec §4.E).
func (p *parser) loc(startTok *lexer.Token) *ast.Location {
	if p.opts.NoLocation {
		return nil
	}
	end := p.lex.LastToken()
	return &ast.Location{
		Start:      startTok.Start,
		End:        end.End,
		StartToken: startTok,
		EndToken:   end,
		Source:     p.source,
	}
}

func base(kind ast.Kind, loc *ast.Location) ast.BaseNode {
	return ast.BaseNode{NodeKind: kind, Loc: loc}
}

// many parses a non-empty openKind-delimited, closeKind-terminated list:
// the opener is required, at least one element is required, and the list
// ends at the first closeKind (spec §4.E tie-break 10).
func many[T any](p *parser, openKind lexer.Kind, parseFn func() (T, error), closeKind lexer.Kind) ([]T, error) {
	if _, err := p.expectToken(openKind); err != nil {
		return nil, err
	}

	first, err := parseFn()
	if err != nil {
		return nil, err
	}
	nodes := []T{first}

	for {
		_, closed, err := p.expectOptionalToken(closeKind)
		if err != nil {
			return nil, err
		}
		if closed {
			break
		}
		n, err := parseFn()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return nodes, nil
}

// optionalMany is many, but returns (nil, nil) when openKind is not present
// at all - the "absence is distinct from an empty list" rule of spec §4.E
// tie-break 10.
func optionalMany[T any](p *parser, openKind lexer.Kind, parseFn func() (T, error), closeKind lexer.Kind) ([]T, error) {
	if !p.peek(openKind) {
		return nil, nil
	}
	return many(p, openKind, parseFn, closeKind)
}

func (p *parser) parseName() (*ast.Name, error) {
	tok, err := p.expectToken(lexer.Name)
	if err != nil {
		return nil, err
	}
	return &ast.Name{BaseNode: base(ast.KindName, p.loc(tok)), Value: tok.Value}, nil
}
