package parser

import (
	"fmt"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/lexer"
)

// parseValueLiteral parses one value literal. With isConst set, a `$`
// lookahead is a grammar violation rather than a Variable (spec §4.E
// tie-break 9).
func (p *parser) parseValueLiteral(isConst bool) (ast.Value, error) {
	tok := p.token()

	switch tok.Kind {
	case lexer.BracketL:
		return p.parseList(isConst)
	case lexer.BraceL:
		return p.parseObject(isConst)
	case lexer.Int:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{BaseNode: base(ast.KindIntValue, p.loc(tok)), Value: tok.Value}, nil
	case lexer.Float:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{BaseNode: base(ast.KindFloatValue, p.loc(tok)), Value: tok.Value}, nil
	case lexer.String, lexer.BlockString:
		return p.parseStringLiteral()
	case lexer.Name:
		switch tok.Value {
		case "true", "false":
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.BooleanValue{BaseNode: base(ast.KindBooleanValue, p.loc(tok)), Value: tok.Value == "true"}, nil
		case "null":
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.NullValue{BaseNode: base(ast.KindNullValue, p.loc(tok))}, nil
		default:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.EnumValue{BaseNode: base(ast.KindEnumValue, p.loc(tok)), Value: tok.Value}, nil
		}
	case lexer.Dollar:
		if isConst {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			if p.peek(lexer.Name) {
				name := p.token().Value
				return nil, p.syntaxErrorAt(tok, fmt.Sprintf("Unexpected variable \"$%s\" in constant value.", name))
			}
			return nil, p.syntaxErrorAt(tok, `Unexpected "$".`)
		}
		return p.parseVariable()
	}

	return nil, p.unexpected(nil)
}

func (p *parser) parseStringLiteral() (*ast.StringValue, error) {
	tok := p.token()
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.StringValue{
		BaseNode: base(ast.KindStringValue, p.loc(tok)),
		Value:    tok.Value,
		Block:    tok.Kind == lexer.BlockString,
	}, nil
}

func (p *parser) parseList(isConst bool) (*ast.ListValue, error) {
	start := p.token()
	item := func() (ast.Value, error) { return p.parseValueLiteral(isConst) }

	values, err := optionalEmptyMany(p, lexer.BracketL, item, lexer.BracketR)
	if err != nil {
		return nil, err
	}

	return &ast.ListValue{BaseNode: base(ast.KindListValue, p.loc(start)), Values: values}, nil
}

func (p *parser) parseObject(isConst bool) (*ast.ObjectValue, error) {
	start := p.token()
	item := func() (*ast.ObjectField, error) { return p.parseObjectField(isConst) }

	fields, err := optionalEmptyMany(p, lexer.BraceL, item, lexer.BraceR)
	if err != nil {
		return nil, err
	}

	return &ast.ObjectValue{BaseNode: base(ast.KindObjectValue, p.loc(start)), Fields: fields}, nil
}

func (p *parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.Colon); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectField{BaseNode: base(ast.KindObjectField, p.loc(start)), Name: name, Value: value}, nil
}

// optionalEmptyMany is like optionalMany but - unlike the argument/variable-
// definition lists of spec §4.E tie-break 10 - list and object value
// literals are allowed to be empty (`[]`, `{}`) once the opener is present.
func optionalEmptyMany[T any](p *parser, openKind lexer.Kind, parseFn func() (T, error), closeKind lexer.Kind) ([]T, error) {
	if _, err := p.expectToken(openKind); err != nil {
		return nil, err
	}

	var nodes []T
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
