package parser

import (
	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/lexer"
)

func (p *parser) parseDirectives(isConst bool) ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.peek(lexer.At) {
		d, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func (p *parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.token()
	if _, err := p.expectToken(lexer.At); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{BaseNode: base(ast.KindDirective, p.loc(start)), Name: name, Arguments: args}, nil
}
