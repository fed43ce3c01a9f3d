package parser

import (
	"fmt"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/gqlerror"
	"github.com/krotik/gqlfront/lexer"
)

// maxTypeDepth bounds `[` nesting in a type reference (spec §9: "a depth
// check on NonNullType/ListType unwrap defend against stack-blowup inputs"),
// independently of maxTokens - a deeply bracketed type like `[[[...Int...]]]`
// is cheap in tokens but recurses one parseTypeReference call per bracket.
const maxTypeDepth = 255

// parseTypeReference implements spec §4.E tie-break 11: recursively unwrap
// `[` type `]` and a postfix `!`, which may never follow another `!`.
func (p *parser) parseTypeReference() (ast.Type, error) {
	return p.parseTypeReferenceAt(0)
}

func (p *parser) parseTypeReferenceAt(depth int) (ast.Type, error) {
	start := p.token()

	if depth > maxTypeDepth {
		return nil, gqlerror.NewAt(
			fmt.Sprintf("Type references nested more than %d deep. Parsing aborted.", maxTypeDepth),
			p.source, start.Start)
	}

	var typ ast.Type

	_, hasBracket, err := p.expectOptionalToken(lexer.BracketL)
	if err != nil {
		return nil, err
	}

	if hasBracket {
		inner, err := p.parseTypeReferenceAt(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectToken(lexer.BracketR); err != nil {
			return nil, err
		}
		typ = &ast.ListType{BaseNode: base(ast.KindListType, p.loc(start)), Type: inner}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		typ = named
	}

	if _, has, err := p.expectOptionalToken(lexer.Bang); err != nil {
		return nil, err
	} else if has {
		typ = &ast.NonNullType{BaseNode: base(ast.KindNonNullType, p.loc(start)), Type: typ}
	}

	return typ, nil
}

func (p *parser) parseNamedType() (*ast.NamedType, error) {
	start := p.token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{BaseNode: base(ast.KindNamedType, p.loc(start)), Name: name}, nil
}
