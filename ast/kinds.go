/*
Package ast defines the closed AST sum type produced by the parser and
consumed by the printer and visitor (spec §3, §4.D). Node variants are
represented as distinct Go structs rather than one generic node-with-a-map,
following the teacher's preference for named, typed records over open
shapes - the teacher's own ASTNode is untyped only because its parser never
built a type-system grammar; the child-edge table (QueryDocumentKeys) and the
per-kind structs here are what spec §4.D actually asks for.
*/
package ast

// Kind is the closed tag discriminating an AST node variant (spec §3).
type Kind string

const (
	KindDocument             Kind = "Document"
	KindOperationDefinition  Kind = "OperationDefinition"
	KindVariableDefinition   Kind = "VariableDefinition"
	KindVariable             Kind = "Variable"
	KindSelectionSet         Kind = "SelectionSet"
	KindField                Kind = "Field"
	KindArgument             Kind = "Argument"
	KindFragmentSpread       Kind = "FragmentSpread"
	KindInlineFragment       Kind = "InlineFragment"
	KindFragmentDefinition   Kind = "FragmentDefinition"
	KindName                 Kind = "Name"

	KindIntValue     Kind = "IntValue"
	KindFloatValue   Kind = "FloatValue"
	KindStringValue  Kind = "StringValue"
	KindBooleanValue Kind = "BooleanValue"
	KindNullValue    Kind = "NullValue"
	KindEnumValue    Kind = "EnumValue"
	KindListValue    Kind = "ListValue"
	KindObjectValue  Kind = "ObjectValue"
	KindObjectField  Kind = "ObjectField"

	KindDirective Kind = "Directive"

	KindNamedType   Kind = "NamedType"
	KindListType    Kind = "ListType"
	KindNonNullType Kind = "NonNullType"

	KindSchemaDefinition            Kind = "SchemaDefinition"
	KindOperationTypeDefinition     Kind = "OperationTypeDefinition"
	KindScalarTypeDefinition        Kind = "ScalarTypeDefinition"
	KindObjectTypeDefinition        Kind = "ObjectTypeDefinition"
	KindFieldDefinition             Kind = "FieldDefinition"
	KindInputValueDefinition        Kind = "InputValueDefinition"
	KindInterfaceTypeDefinition     Kind = "InterfaceTypeDefinition"
	KindUnionTypeDefinition         Kind = "UnionTypeDefinition"
	KindEnumTypeDefinition          Kind = "EnumTypeDefinition"
	KindEnumValueDefinition         Kind = "EnumValueDefinition"
	KindInputObjectTypeDefinition   Kind = "InputObjectTypeDefinition"
	KindDirectiveDefinition         Kind = "DirectiveDefinition"

	KindSchemaExtension            Kind = "SchemaExtension"
	KindScalarTypeExtension        Kind = "ScalarTypeExtension"
	KindObjectTypeExtension        Kind = "ObjectTypeExtension"
	KindInterfaceTypeExtension     Kind = "InterfaceTypeExtension"
	KindUnionTypeExtension         Kind = "UnionTypeExtension"
	KindEnumTypeExtension          Kind = "EnumTypeExtension"
	KindInputObjectTypeExtension   Kind = "InputObjectTypeExtension"
)

// OperationType is the operation keyword of an OperationDefinition /
// OperationTypeDefinition.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// DirectiveLocation names one of the grammar positions a directive
// definition may declare itself valid for.
type DirectiveLocation string

const (
	LocQuery                DirectiveLocation = "QUERY"
	LocMutation             DirectiveLocation = "MUTATION"
	LocSubscription         DirectiveLocation = "SUBSCRIPTION"
	LocField                DirectiveLocation = "FIELD"
	LocFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	LocFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	LocInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	LocVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"

	LocSchema               DirectiveLocation = "SCHEMA"
	LocScalar               DirectiveLocation = "SCALAR"
	LocObject               DirectiveLocation = "OBJECT"
	LocFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocInterface            DirectiveLocation = "INTERFACE"
	LocUnion                DirectiveLocation = "UNION"
	LocEnum                 DirectiveLocation = "ENUM"
	LocEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// ValidDirectiveLocations is the closed set of names parseDirectiveLocations
// accepts (spec §4.E tie-break 7).
var ValidDirectiveLocations = map[string]DirectiveLocation{
	"QUERY": LocQuery, "MUTATION": LocMutation, "SUBSCRIPTION": LocSubscription,
	"FIELD": LocField, "FRAGMENT_DEFINITION": LocFragmentDefinition,
	"FRAGMENT_SPREAD": LocFragmentSpread, "INLINE_FRAGMENT": LocInlineFragment,
	"VARIABLE_DEFINITION": LocVariableDefinition,
	"SCHEMA":              LocSchema, "SCALAR": LocScalar, "OBJECT": LocObject,
	"FIELD_DEFINITION": LocFieldDefinition, "ARGUMENT_DEFINITION": LocArgumentDefinition,
	"INTERFACE": LocInterface, "UNION": LocUnion, "ENUM": LocEnum,
	"ENUM_VALUE": LocEnumValue, "INPUT_OBJECT": LocInputObject,
	"INPUT_FIELD_DEFINITION": LocInputFieldDefinition,
}
