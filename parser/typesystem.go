package parser

import (
	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/lexer"
)

// parseDescription consumes an optional String/BlockString immediately
// preceding a type-system definition keyword (spec §4.E tie-break 2).
func (p *parser) parseDescription() (*ast.StringValue, error) {
	if p.peek(lexer.String) || p.peek(lexer.BlockString) {
		return p.parseStringLiteral()
	}
	return nil, nil
}

// parseTypeSystemDefinition dispatches on the keyword naming the kind of
// definition, looking past an optional leading description without
// consuming it (the chosen production re-parses the description itself so
// its Location starts at the description, not the keyword).
func (p *parser) parseTypeSystemDefinition() (ast.TypeSystemDefinition, error) {
	hasDescription := p.peek(lexer.String) || p.peek(lexer.BlockString)

	keywordTok := p.token()
	if hasDescription {
		var err error
		keywordTok, err = p.lex.LookAhead()
		if err != nil {
			return nil, err
		}
	}

	if keywordTok.Kind == lexer.Name {
		switch keywordTok.Value {
		case "schema":
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition()
		case "type":
			return p.parseObjectTypeDefinition()
		case "interface":
			return p.parseInterfaceTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		case "enum":
			return p.parseEnumTypeDefinition()
		case "input":
			return p.parseInputObjectTypeDefinition()
		case "directive":
			return p.parseDirectiveDefinition()
		}
	}

	if hasDescription {
		return nil, p.syntaxErrorAt(p.token(),
			"Unexpected description, descriptions are supported only on type definitions.")
	}
	return nil, p.unexpected(keywordTok)
}

func (p *parser) parseTypeSystemExtension() (ast.TypeSystemExtension, error) {
	keywordTok, err := p.lex.LookAhead()
	if err != nil {
		return nil, err
	}

	if keywordTok.Kind == lexer.Name {
		switch keywordTok.Value {
		case "schema":
			return p.parseSchemaExtension()
		case "scalar":
			return p.parseScalarTypeExtension()
		case "type":
			return p.parseObjectTypeExtension()
		case "interface":
			return p.parseInterfaceTypeExtension()
		case "union":
			return p.parseUnionTypeExtension()
		case "enum":
			return p.parseEnumTypeExtension()
		case "input":
			return p.parseInputObjectTypeExtension()
		}
	}

	return nil, p.unexpected(keywordTok)
}

// delimitedListWithOptionalLeading parses a sepKind-separated, non-empty
// list that may carry an optional leading separator (spec §4.E tie-breaks
// 5, 6, 7: `implements A & B`, `= A | B`, directive locations).
func delimitedListWithOptionalLeading[T any](p *parser, sepKind lexer.Kind, parseFn func() (T, error)) ([]T, error) {
	if _, _, err := p.expectOptionalToken(sepKind); err != nil {
		return nil, err
	}

	first, err := parseFn()
	if err != nil {
		return nil, err
	}
	items := []T{first}

	for {
		_, has, err := p.expectOptionalToken(sepKind)
		if err != nil {
			return nil, err
		}
		if !has {
			break
		}
		n, err := parseFn()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	return items, nil
}

func (p *parser) parseImplementsInterfaces() ([]*ast.NamedType, error) {
	ok, err := p.expectOptionalKeyword("implements")
	if err != nil || !ok {
		return nil, err
	}
	return delimitedListWithOptionalLeading(p, lexer.Amp, p.parseNamedType)
}

func (p *parser) parseUnionMemberTypes() ([]*ast.NamedType, error) {
	if _, has, err := p.expectOptionalToken(lexer.Equals); err != nil || !has {
		return nil, err
	}
	return delimitedListWithOptionalLeading(p, lexer.Pipe, p.parseNamedType)
}

func (p *parser) parseArgumentDefs() ([]*ast.InputValueDefinition, error) {
	return optionalMany(p, lexer.ParenL, p.parseInputValueDefinition, lexer.ParenR)
}

func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
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

	return &ast.InputValueDefinition{
		BaseNode: base(ast.KindInputValueDefinition, p.loc(start)), Description: description,
		Name: name, Type: typ, DefaultValue: def, Directives: directives,
	}, nil
}

func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	return optionalMany(p, lexer.BraceL, p.parseFieldDefinition, lexer.BraceR)
}

func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgumentDefs()
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
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		BaseNode: base(ast.KindFieldDefinition, p.loc(start)), Description: description,
		Name: name, Arguments: args, Type: typ, Directives: directives,
	}, nil
}

func (p *parser) parseEnumValueName() (*ast.Name, error) {
	if p.peekKeyword("true") || p.peekKeyword("false") || p.peekKeyword("null") {
		return nil, p.unexpected(nil)
	}
	return p.parseName()
}

func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseEnumValueName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.EnumValueDefinition{
		BaseNode: base(ast.KindEnumValueDefinition, p.loc(start)), Description: description,
		Name: name, Directives: directives,
	}, nil
}

func (p *parser) parseDirectiveLocation() (*ast.Name, error) {
	start := p.token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, ok := ast.ValidDirectiveLocations[name.Value]; !ok {
		return nil, p.syntaxErrorAt(start, "Unexpected "+start.Desc()+".")
	}
	return name, nil
}

func (p *parser) parseDirectiveLocations() ([]*ast.Name, error) {
	return delimitedListWithOptionalLeading(p, lexer.Pipe, p.parseDirectiveLocation)
}

// ---- definitions ----

func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	opTypes, err := many(p, lexer.BraceL, p.parseOperationTypeDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	return &ast.SchemaDefinition{
		BaseNode: base(ast.KindSchemaDefinition, p.loc(start)), Description: description,
		Directives: directives, OperationTypes: opTypes,
	}, nil
}

func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	start := p.token()
	op, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return &ast.OperationTypeDefinition{
		BaseNode: base(ast.KindOperationTypeDefinition, p.loc(start)), Operation: op, Type: typ,
	}, nil
}

func (p *parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.ScalarTypeDefinition{
		BaseNode: base(ast.KindScalarTypeDefinition, p.loc(start)), Description: description,
		Name: name, Directives: directives,
	}, nil
}

func (p *parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectTypeDefinition{
		BaseNode: base(ast.KindObjectTypeDefinition, p.loc(start)), Description: description,
		Name: name, Interfaces: interfaces, Directives: directives, Fields: fields,
	}, nil
}

func (p *parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceTypeDefinition{
		BaseNode: base(ast.KindInterfaceTypeDefinition, p.loc(start)), Description: description,
		Name: name, Interfaces: interfaces, Directives: directives, Fields: fields,
	}, nil
}

func (p *parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	return &ast.UnionTypeDefinition{
		BaseNode: base(ast.KindUnionTypeDefinition, p.loc(start)), Description: description,
		Name: name, Directives: directives, Types: types,
	}, nil
}

func (p *parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	values, err := optionalMany(p, lexer.BraceL, p.parseEnumValueDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	return &ast.EnumTypeDefinition{
		BaseNode: base(ast.KindEnumTypeDefinition, p.loc(start)), Description: description,
		Name: name, Directives: directives, Values: values,
	}, nil
}

func (p *parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := optionalMany(p, lexer.BraceL, p.parseInputValueDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	return &ast.InputObjectTypeDefinition{
		BaseNode: base(ast.KindInputObjectTypeDefinition, p.loc(start)), Description: description,
		Name: name, Directives: directives, Fields: fields,
	}, nil
}

func (p *parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	start := p.token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.At); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgumentDefs()
	if err != nil {
		return nil, err
	}
	repeatable, err := p.expectOptionalKeyword("repeatable")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	return &ast.DirectiveDefinition{
		BaseNode: base(ast.KindDirectiveDefinition, p.loc(start)), Description: description,
		Name: name, Arguments: args, Repeatable: repeatable, Locations: locations,
	}, nil
}

// ---- extensions ----

func (p *parser) parseSchemaExtension() (*ast.SchemaExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	opTypes, err := optionalMany(p, lexer.BraceL, p.parseOperationTypeDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(opTypes) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.SchemaExtension{
		BaseNode: base(ast.KindSchemaExtension, p.loc(start)), Directives: directives, OperationTypes: opTypes,
	}, nil
}

func (p *parser) parseScalarTypeExtension() (*ast.ScalarTypeExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.ScalarTypeExtension{
		BaseNode: base(ast.KindScalarTypeExtension, p.loc(start)), Name: name, Directives: directives,
	}, nil
}

func (p *parser) parseObjectTypeExtension() (*ast.ObjectTypeExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := optionalMany(p, lexer.BraceL, p.parseFieldDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.ObjectTypeExtension{
		BaseNode: base(ast.KindObjectTypeExtension, p.loc(start)), Name: name,
		Interfaces: interfaces, Directives: directives, Fields: fields,
	}, nil
}

func (p *parser) parseInterfaceTypeExtension() (*ast.InterfaceTypeExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := optionalMany(p, lexer.BraceL, p.parseFieldDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.InterfaceTypeExtension{
		BaseNode: base(ast.KindInterfaceTypeExtension, p.loc(start)), Name: name,
		Interfaces: interfaces, Directives: directives, Fields: fields,
	}, nil
}

func (p *parser) parseUnionTypeExtension() (*ast.UnionTypeExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(types) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.UnionTypeExtension{
		BaseNode: base(ast.KindUnionTypeExtension, p.loc(start)), Name: name, Directives: directives, Types: types,
	}, nil
}

func (p *parser) parseEnumTypeExtension() (*ast.EnumTypeExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	values, err := optionalMany(p, lexer.BraceL, p.parseEnumValueDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(values) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.EnumTypeExtension{
		BaseNode: base(ast.KindEnumTypeExtension, p.loc(start)), Name: name, Directives: directives, Values: values,
	}, nil
}

func (p *parser) parseInputObjectTypeExtension() (*ast.InputObjectTypeExtension, error) {
	start := p.token()
	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := optionalMany(p, lexer.BraceL, p.parseInputValueDefinition, lexer.BraceR)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.InputObjectTypeExtension{
		BaseNode: base(ast.KindInputObjectTypeExtension, p.loc(start)), Name: name, Directives: directives, Fields: fields,
	}, nil
}
