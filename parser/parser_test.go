package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/source"
)

func mustParse(t *testing.T, body string, opts Options) *ast.Document {
	t.Helper()
	doc, err := ParseDocumentString(body, opts)
	require.NoError(t, err, body)
	return doc
}

func TestParseAnonymousQueryShorthand(t *testing.T) {
	doc := mustParse(t, `{ hello }`, Options{})
	require.Len(t, doc.Definitions, 1)

	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)
	assert.Equal(t, ast.Query, op.Operation)
	assert.Nil(t, op.Name)
	require.Len(t, op.SelectionSet.Selections, 1)

	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "hello", field.Name.Value)
	assert.Nil(t, field.Alias)
}

func TestParseNamedOperationWithVariablesAndDirectives(t *testing.T) {
	doc := mustParse(t, `query Greet($name: String! = "world") @cached {
		greeting(who: $name)
	}`, Options{})

	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, "Greet", op.Name.Value)
	require.Len(t, op.VariableDefinitions, 1)

	vd := op.VariableDefinitions[0]
	assert.Equal(t, "name", vd.Variable.Name.Value)
	nonNull, ok := vd.Type.(*ast.NonNullType)
	require.True(t, ok)
	named, ok := nonNull.Type.(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "String", named.Name.Value)

	def, ok := vd.DefaultValue.(*ast.StringValue)
	require.True(t, ok)
	assert.Equal(t, "world", def.Value)

	require.Len(t, op.Directives, 1)
	assert.Equal(t, "cached", op.Directives[0].Name.Value)
}

func TestParseFieldAlias(t *testing.T) {
	doc := mustParse(t, `{ aliased: real(arg: 1) }`, Options{})
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)

	assert.Equal(t, "aliased", field.Alias.Value)
	assert.Equal(t, "real", field.Name.Value)
	require.Len(t, field.Arguments, 1)
	assert.Equal(t, "arg", field.Arguments[0].Name.Value)
}

func TestParseFragmentSpreadAndInlineFragment(t *testing.T) {
	doc := mustParse(t, `{
		...Frag
		... on Droid { primaryFunction }
		... { anonymousInline }
	}`, Options{})

	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Len(t, op.SelectionSet.Selections, 3)

	spread := op.SelectionSet.Selections[0].(*ast.FragmentSpread)
	assert.Equal(t, "Frag", spread.Name.Value)

	inline := op.SelectionSet.Selections[1].(*ast.InlineFragment)
	require.NotNil(t, inline.TypeCondition)
	assert.Equal(t, "Droid", inline.TypeCondition.Name.Value)

	bare := op.SelectionSet.Selections[2].(*ast.InlineFragment)
	assert.Nil(t, bare.TypeCondition)
}

func TestFragmentNameCannotBeOn(t *testing.T) {
	_, err := ParseDocumentString(`{ ...on }`, Options{})
	// "on" cannot name a fragment spread, so "...on" starts an inline
	// fragment whose type condition is missing: a syntax error at `}`.
	assert.Error(t, err)
}

func TestParseFragmentDefinition(t *testing.T) {
	doc := mustParse(t, `fragment Frag on Droid { primaryFunction }`, Options{})
	frag := doc.Definitions[0].(*ast.FragmentDefinition)

	assert.Equal(t, "Frag", frag.Name.Value)
	assert.Equal(t, "Droid", frag.TypeCondition.Name.Value)
	assert.Empty(t, frag.VariableDefinitions)
}

func TestLegacyFragmentVariablesRequiresOption(t *testing.T) {
	body := `fragment Frag($x: Int) on Droid { primaryFunction }`

	_, err := ParseDocumentString(body, Options{})
	assert.Error(t, err)

	doc, err := ParseDocumentString(body, Options{AllowLegacyFragmentVariables: true})
	require.NoError(t, err)

	frag := doc.Definitions[0].(*ast.FragmentDefinition)
	require.Len(t, frag.VariableDefinitions, 1)
	assert.Equal(t, "x", frag.VariableDefinitions[0].Variable.Name.Value)
}

func TestParseValueLiterals(t *testing.T) {
	doc := mustParse(t, `{
		f(i: 1, fl: 1.5, s: "str", b: true, n: null, e: ENUM_VAL, l: [1, 2], o: { a: 1 })
	}`, Options{})

	field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	args := map[string]ast.Value{}
	for _, a := range field.Arguments {
		args[a.Name.Value] = a.Value
	}

	assert.Equal(t, "1", args["i"].(*ast.IntValue).Value)
	assert.Equal(t, "1.5", args["fl"].(*ast.FloatValue).Value)
	assert.Equal(t, "str", args["s"].(*ast.StringValue).Value)
	assert.True(t, args["b"].(*ast.BooleanValue).Value)
	assert.IsType(t, &ast.NullValue{}, args["n"])
	assert.Equal(t, "ENUM_VAL", args["e"].(*ast.EnumValue).Value)
	assert.Len(t, args["l"].(*ast.ListValue).Values, 2)
	assert.Len(t, args["o"].(*ast.ObjectValue).Fields, 1)
}

func TestParseVariableInConstContextIsError(t *testing.T) {
	_, err := ParseConstValue(source.New("$x", "", nil), Options{})
	assert.Error(t, err)
}

func TestParseTypeReference(t *testing.T) {
	typ, err := ParseType(source.New("[String!]!", "", nil), Options{})
	require.NoError(t, err)

	nonNull, ok := typ.(*ast.NonNullType)
	require.True(t, ok)
	list, ok := nonNull.Type.(*ast.ListType)
	require.True(t, ok)
	innerNonNull, ok := list.Type.(*ast.NonNullType)
	require.True(t, ok)
	named, ok := innerNonNull.Type.(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "String", named.Name.Value)
}

func TestParseDoubleBangIsInvalid(t *testing.T) {
	_, err := ParseType(source.New("String!!", "", nil), Options{})
	assert.Error(t, err)
}

func TestParseTypeReferenceAbortsOnExcessiveNesting(t *testing.T) {
	body := strings.Repeat("[", maxTypeDepth+2) + "Int" + strings.Repeat("]", maxTypeDepth+2)
	_, err := ParseType(source.New(body, "", nil), Options{})
	assert.Error(t, err)
}

func TestParseScalarAndObjectTypeDefinitionsWithDescriptions(t *testing.T) {
	doc := mustParse(t, `
"A custom scalar"
scalar UUID

"""
An object with a description
"""
type Droid implements Character {
	id: ID!
	"the droid's primary function"
	primaryFunction: String
}`, Options{})

	require.Len(t, doc.Definitions, 2)

	scalar := doc.Definitions[0].(*ast.ScalarTypeDefinition)
	assert.Equal(t, "UUID", scalar.Name.Value)
	assert.Equal(t, "A custom scalar", scalar.Description.Value)

	obj := doc.Definitions[1].(*ast.ObjectTypeDefinition)
	assert.Equal(t, "Droid", obj.Name.Value)
	require.Len(t, obj.Interfaces, 1)
	assert.Equal(t, "Character", obj.Interfaces[0].Name.Value)
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, "the droid's primary function", obj.Fields[1].Description.Value)
}

func TestParseSchemaDefinitionAndExtension(t *testing.T) {
	doc := mustParse(t, `
schema {
	query: Query
	mutation: Mutation
}

extend schema @addedDirective
`, Options{})

	require.Len(t, doc.Definitions, 2)

	schema := doc.Definitions[0].(*ast.SchemaDefinition)
	require.Len(t, schema.OperationTypes, 2)
	assert.Equal(t, ast.Query, schema.OperationTypes[0].Operation)
	assert.Equal(t, "Query", schema.OperationTypes[0].Type.Name.Value)

	ext := doc.Definitions[1].(*ast.SchemaExtension)
	require.Len(t, ext.Directives, 1)
}

func TestParseInterfaceUnionEnumInputObjectAndDirectiveDefinitions(t *testing.T) {
	doc := mustParse(t, `
interface Character {
	id: ID!
}

union SearchResult = Human | Droid

enum Episode {
	NEWHOPE
	EMPIRE
	JEDI
}

input ReviewInput {
	stars: Int!
	commentary: String
}

directive @example(if: Boolean!) repeatable on FIELD | FRAGMENT_SPREAD
`, Options{})

	require.Len(t, doc.Definitions, 5)

	iface := doc.Definitions[0].(*ast.InterfaceTypeDefinition)
	assert.Equal(t, "Character", iface.Name.Value)

	union := doc.Definitions[1].(*ast.UnionTypeDefinition)
	require.Len(t, union.Types, 2)
	assert.Equal(t, "Human", union.Types[0].Name.Value)

	enum := doc.Definitions[2].(*ast.EnumTypeDefinition)
	require.Len(t, enum.Values, 3)
	assert.Equal(t, "NEWHOPE", enum.Values[0].Name.Value)

	input := doc.Definitions[3].(*ast.InputObjectTypeDefinition)
	require.Len(t, input.Fields, 2)

	directive := doc.Definitions[4].(*ast.DirectiveDefinition)
	assert.Equal(t, "example", directive.Name.Value)
	assert.True(t, directive.Repeatable)
	require.Len(t, directive.Locations, 2)
	assert.Equal(t, "FIELD", directive.Locations[0].Value)
}

func TestParseObjectTypeExtension(t *testing.T) {
	doc := mustParse(t, `extend type Droid {
		appearsIn: [Episode]
	}`, Options{})

	ext := doc.Definitions[0].(*ast.ObjectTypeExtension)
	assert.Equal(t, "Droid", ext.Name.Value)
	require.Len(t, ext.Fields, 1)
}

func TestMaxTokensAborts(t *testing.T) {
	body := `{ a b c d e f g h }`
	_, err := ParseDocumentString(body, Options{MaxTokens: 3})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "more than 3 tokens"))
}

func TestUnexpectedTokenProducesSyntaxError(t *testing.T) {
	_, err := ParseDocumentString(`{ 123abc }`, Options{})
	assert.Error(t, err)
}

func TestNoLocationOptionSuppressesLoc(t *testing.T) {
	doc := mustParse(t, `{ hello }`, Options{NoLocation: true})
	assert.Nil(t, doc.GetLoc())

	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Nil(t, op.GetLoc())
}

func TestLocationsArePopulatedByDefault(t *testing.T) {
	doc := mustParse(t, `{ hello }`, Options{})
	require.NotNil(t, doc.GetLoc())
	assert.Equal(t, 0, doc.GetLoc().Start)
}
