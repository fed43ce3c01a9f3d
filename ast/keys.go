package ast

// QueryDocumentKeys lists, for every Kind, the ordered field names of its
// child nodes (spec §4.D). Leaf kinds (Name and the scalar values) map to an
// empty list. Field names are exported Go struct field names, not GraphQL
// syntax. visitor/children.go walks the same fields in the same order with a
// per-kind type switch; it does not read this map.
var QueryDocumentKeys = map[Kind][]string{
	KindName:     {},
	KindDocument: {"Definitions"},

	KindOperationDefinition: {"Name", "VariableDefinitions", "Directives", "SelectionSet"},
	KindVariableDefinition:  {"Variable", "Type", "DefaultValue", "Directives"},
	KindVariable:            {"Name"},
	KindSelectionSet:        {"Selections"},
	KindField:               {"Alias", "Name", "Arguments", "Directives", "SelectionSet"},
	KindArgument:            {"Name", "Value"},

	KindFragmentSpread:     {"Name", "Arguments", "Directives"},
	KindInlineFragment:     {"TypeCondition", "Directives", "SelectionSet"},
	KindFragmentDefinition: {"Name", "VariableDefinitions", "TypeCondition", "Directives", "SelectionSet"},

	KindIntValue:     {},
	KindFloatValue:   {},
	KindStringValue:  {},
	KindBooleanValue: {},
	KindNullValue:    {},
	KindEnumValue:    {},
	KindListValue:    {"Values"},
	KindObjectValue:  {"Fields"},
	KindObjectField:  {"Name", "Value"},

	KindDirective: {"Name", "Arguments"},

	KindNamedType:   {"Name"},
	KindListType:    {"Type"},
	KindNonNullType: {"Type"},

	KindSchemaDefinition:        {"Description", "Directives", "OperationTypes"},
	KindOperationTypeDefinition: {"Type"},
	KindScalarTypeDefinition:    {"Description", "Name", "Directives"},
	KindObjectTypeDefinition:    {"Description", "Name", "Interfaces", "Directives", "Fields"},
	KindFieldDefinition:         {"Description", "Name", "Arguments", "Type", "Directives"},
	KindInputValueDefinition:    {"Description", "Name", "Type", "DefaultValue", "Directives"},
	KindInterfaceTypeDefinition: {"Description", "Name", "Interfaces", "Directives", "Fields"},
	KindUnionTypeDefinition:     {"Description", "Name", "Directives", "Types"},
	KindEnumTypeDefinition:      {"Description", "Name", "Directives", "Values"},
	KindEnumValueDefinition:     {"Description", "Name", "Directives"},
	KindInputObjectTypeDefinition: {"Description", "Name", "Directives", "Fields"},
	KindDirectiveDefinition:       {"Description", "Name", "Arguments", "Locations"},

	KindSchemaExtension:          {"Directives", "OperationTypes"},
	KindScalarTypeExtension:      {"Name", "Directives"},
	KindObjectTypeExtension:      {"Name", "Interfaces", "Directives", "Fields"},
	KindInterfaceTypeExtension:   {"Name", "Interfaces", "Directives", "Fields"},
	KindUnionTypeExtension:       {"Name", "Directives", "Types"},
	KindEnumTypeExtension:        {"Name", "Directives", "Values"},
	KindInputObjectTypeExtension: {"Name", "Directives", "Fields"},
}
