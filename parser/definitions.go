package parser

import (
	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/lexer"
)

func (p *parser) parseDocument() (*ast.Document, error) {
	start := p.token()

	defs, err := many(p, lexer.SOF, p.parseDefinition, lexer.EOF)
	if err != nil {
		return nil, err
	}

	return &ast.Document{BaseNode: base(ast.KindDocument, p.loc(start)), Definitions: defs}, nil
}

func (p *parser) parseDefinition() (ast.Definition, error) {
	// Descriptions (String/BlockString) only ever precede type-system
	// definitions (spec §4.E tie-break 2).
	if p.peek(lexer.String) || p.peek(lexer.BlockString) {
		return p.parseTypeSystemDefinition()
	}

	if p.peek(lexer.Name) {
		switch p.token().Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition()
		case "extend":
			return p.parseTypeSystemExtension()
		}
	}

	if p.peek(lexer.BraceL) {
		return p.parseOperationDefinition()
	}

	return nil, p.unexpected(nil)
}

func (p *parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.token()

	// Anonymous shorthand: a bare selection set (spec §4.E tie-break 1).
	if p.peek(lexer.BraceL) {
		sel, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			BaseNode:     base(ast.KindOperationDefinition, p.loc(start)),
			Operation:    ast.Query,
			SelectionSet: sel,
		}, nil
	}

	op, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}

	var name *ast.Name
	if p.peek(lexer.Name) {
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	varDefs, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	sel, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		BaseNode:            base(ast.KindOperationDefinition, p.loc(start)),
		Operation:           op,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        sel,
	}, nil
}

func (p *parser) parseOperationType() (ast.OperationType, error) {
	tok, err := p.expectToken(lexer.Name)
	if err != nil {
		return "", err
	}
	switch tok.Value {
	case "query":
		return ast.Query, nil
	case "mutation":
		return ast.Mutation, nil
	case "subscription":
		return ast.Subscription, nil
	}
	return "", p.syntaxErrorAt(tok, "Unexpected "+tok.Desc()+".")
}

func (p *parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	return optionalMany(p, lexer.ParenL, p.parseVariableDefinition, lexer.ParenR)
}

func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.token()

	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}

	var def ast.Value
	if _, has, err := p.expectOptionalToken(lexer.Equals); err != nil {
		return nil, err
	} else if has {
		def, err = p.parseValueLiteral(true)
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		BaseNode:     base(ast.KindVariableDefinition, p.loc(start)),
		Variable:     v,
		Type:         typ,
		DefaultValue: def,
		Directives:   directives,
	}, nil
}

func (p *parser) parseVariable() (*ast.Variable, error) {
	start := p.token()
	if _, err := p.expectToken(lexer.Dollar); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{BaseNode: base(ast.KindVariable, p.loc(start)), Name: name}, nil
}

func (p *parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.token()
	sels, err := many(p, lexer.BraceL, p.parseSelection, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	return &ast.SelectionSet{BaseNode: base(ast.KindSelectionSet, p.loc(start)), Selections: sels}, nil
}

func (p *parser) parseSelection() (ast.Selection, error) {
	if p.peek(lexer.Spread) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *parser) parseField() (*ast.Field, error) {
	start := p.token()

	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	if _, has, err := p.expectOptionalToken(lexer.Colon); err != nil {
		return nil, err
	} else if has {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	args, err := p.parseArguments(false)
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	var sel *ast.SelectionSet
	if p.peek(lexer.BraceL) {
		sel, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		BaseNode:     base(ast.KindField, p.loc(start)),
		Alias:        alias,
		Name:         name,
		Arguments:    args,
		Directives:   directives,
		SelectionSet: sel,
	}, nil
}

func (p *parser) parseArguments(isConst bool) ([]*ast.Argument, error) {
	parseFn := p.parseArgument
	if isConst {
		parseFn = p.parseConstArgument
	}
	return optionalMany(p, lexer.ParenL, parseFn, lexer.ParenR)
}

func (p *parser) parseArgument() (*ast.Argument, error) {
	return p.parseArgumentImpl(false)
}

func (p *parser) parseConstArgument() (*ast.Argument, error) {
	return p.parseArgumentImpl(true)
}

func (p *parser) parseArgumentImpl(isConst bool) (*ast.Argument, error) {
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
	return &ast.Argument{BaseNode: base(ast.KindArgument, p.loc(start)), Name: name, Value: value}, nil
}

// parseFragment dispatches `...Name` (fragment spread) vs `...[on
// TypeCondition]? {...}` (inline fragment).
func (p *parser) parseFragment() (ast.Selection, error) {
	start := p.token()
	if _, err := p.expectToken(lexer.Spread); err != nil {
		return nil, err
	}

	hasTypeCondition, err := p.expectOptionalKeyword("on")
	if err != nil {
		return nil, err
	}

	if !hasTypeCondition && p.peek(lexer.Name) {
		name, err := p.parseFragmentName()
		if err != nil {
			return nil, err
		}

		var args []*ast.Argument
		if p.opts.ExperimentalFragmentArguments {
			args, err = p.parseArguments(false)
			if err != nil {
				return nil, err
			}
		}

		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{
			BaseNode:   base(ast.KindFragmentSpread, p.loc(start)),
			Name:       name,
			Arguments:  args,
			Directives: directives,
		}, nil
	}

	var typeCondition *ast.NamedType
	if hasTypeCondition {
		typeCondition, err = p.parseNamedType()
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	sel, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		BaseNode:      base(ast.KindInlineFragment, p.loc(start)),
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  sel,
	}, nil
}

// parseFragmentName parses a fragment name, which must not be `on` (spec
// §4.E tie-break 3).
func (p *parser) parseFragmentName() (*ast.Name, error) {
	if p.peekKeyword("on") {
		return nil, p.unexpected(nil)
	}
	return p.parseName()
}

func (p *parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.token()
	if err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}

	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}

	var varDefs []*ast.VariableDefinition
	if p.opts.AllowLegacyFragmentVariables {
		varDefs, err = p.parseVariableDefinitions()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	sel, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		BaseNode:            base(ast.KindFragmentDefinition, p.loc(start)),
		Name:                name,
		VariableDefinitions: varDefs,
		TypeCondition:       typeCondition,
		Directives:          directives,
		SelectionSet:        sel,
	}, nil
}
