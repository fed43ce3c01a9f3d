package ast

import (
	"github.com/krotik/gqlfront/lexer"
	"github.com/krotik/gqlfront/source"
)

// Location is the span of source text an AST node was parsed from (spec §3).
type Location struct {
	Start      int
	End        int
	StartToken *lexer.Token
	EndToken   *lexer.Token
	Source     *source.Source
}

// Node is implemented by every AST node variant.
type Node interface {
	Kind() Kind
	GetLoc() *Location
}

// BaseNode is embedded by every concrete node to provide Kind()/GetLoc().
// NodeKind is set by the parser at construction time to that struct's own
// constant kind.
type BaseNode struct {
	NodeKind Kind
	Loc      *Location
}

func (b *BaseNode) Kind() Kind        { return b.NodeKind }
func (b *BaseNode) GetLoc() *Location { return b.Loc }

// Marker interfaces grouping nodes by grammatical category (spec §4.D).
type (
	Definition           interface {
		Node
		isDefinition()
	}
	ExecutableDefinition interface {
		Definition
		isExecutableDefinition()
	}
	Selection interface {
		Node
		isSelection()
	}
	Value interface {
		Node
		isValue()
	}
	Type interface {
		Node
		isType()
	}
	TypeSystemDefinition interface {
		Definition
		isTypeSystemDefinition()
	}
	TypeDefinition interface {
		TypeSystemDefinition
		isTypeDefinition()
	}
	TypeSystemExtension interface {
		Definition
		isTypeSystemExtension()
	}
	TypeExtension interface {
		TypeSystemExtension
		isTypeExtension()
	}
)

// ---- Document structure ----

type Document struct {
	BaseNode
	Definitions []Definition
}

type Name struct {
	BaseNode
	Value string
}

type OperationDefinition struct {
	BaseNode
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (*OperationDefinition) isDefinition()          {}
func (*OperationDefinition) isExecutableDefinition() {}

type VariableDefinition struct {
	BaseNode
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

type Variable struct {
	BaseNode
	Name *Name
}

func (*Variable) isValue() {}

type SelectionSet struct {
	BaseNode
	Selections []Selection
}

type Field struct {
	BaseNode
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (*Field) isSelection() {}

type Argument struct {
	BaseNode
	Name  *Name
	Value Value
}

type FragmentSpread struct {
	BaseNode
	Name       *Name
	Arguments  []*Argument // only non-empty with ExperimentalFragmentArguments
	Directives []*Directive
}

func (*FragmentSpread) isSelection() {}

type InlineFragment struct {
	BaseNode
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*InlineFragment) isSelection() {}

type FragmentDefinition struct {
	BaseNode
	Name                *Name
	VariableDefinitions []*VariableDefinition // only non-empty with AllowLegacyFragmentVariables
	TypeCondition       *NamedType
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (*FragmentDefinition) isDefinition()          {}
func (*FragmentDefinition) isExecutableDefinition() {}

// ---- Values ----

type IntValue struct {
	BaseNode
	Value string
}

func (*IntValue) isValue() {}

type FloatValue struct {
	BaseNode
	Value string
}

func (*FloatValue) isValue() {}

type StringValue struct {
	BaseNode
	Value string
	Block bool
}

func (*StringValue) isValue() {}

type BooleanValue struct {
	BaseNode
	Value bool
}

func (*BooleanValue) isValue() {}

type NullValue struct {
	BaseNode
}

func (*NullValue) isValue() {}

type EnumValue struct {
	BaseNode
	Value string
}

func (*EnumValue) isValue() {}

type ListValue struct {
	BaseNode
	Values []Value
}

func (*ListValue) isValue() {}

type ObjectValue struct {
	BaseNode
	Fields []*ObjectField
}

func (*ObjectValue) isValue() {}

type ObjectField struct {
	BaseNode
	Name  *Name
	Value Value
}

// ---- Directives ----

type Directive struct {
	BaseNode
	Name      *Name
	Arguments []*Argument
}

// ---- Type references ----

type NamedType struct {
	BaseNode
	Name *Name
}

func (*NamedType) isType() {}

type ListType struct {
	BaseNode
	Type Type
}

func (*ListType) isType() {}

type NonNullType struct {
	BaseNode
	Type Type // NamedType or ListType; never another NonNullType
}

func (*NonNullType) isType() {}

// ---- Type-system definitions ----

type SchemaDefinition struct {
	BaseNode
	Description    *StringValue
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (*SchemaDefinition) isDefinition()          {}
func (*SchemaDefinition) isTypeSystemDefinition() {}

type OperationTypeDefinition struct {
	BaseNode
	Operation OperationType
	Type      *NamedType
}

type ScalarTypeDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

func (*ScalarTypeDefinition) isDefinition()          {}
func (*ScalarTypeDefinition) isTypeSystemDefinition() {}
func (*ScalarTypeDefinition) isTypeDefinition()       {}

type ObjectTypeDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (*ObjectTypeDefinition) isDefinition()          {}
func (*ObjectTypeDefinition) isTypeSystemDefinition() {}
func (*ObjectTypeDefinition) isTypeDefinition()       {}

type FieldDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

type InputValueDefinition struct {
	BaseNode
	Description  *StringValue
	Name         *Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

type InterfaceTypeDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (*InterfaceTypeDefinition) isDefinition()          {}
func (*InterfaceTypeDefinition) isTypeSystemDefinition() {}
func (*InterfaceTypeDefinition) isTypeDefinition()       {}

type UnionTypeDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
}

func (*UnionTypeDefinition) isDefinition()          {}
func (*UnionTypeDefinition) isTypeSystemDefinition() {}
func (*UnionTypeDefinition) isTypeDefinition()       {}

type EnumTypeDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

func (*EnumTypeDefinition) isDefinition()          {}
func (*EnumTypeDefinition) isTypeSystemDefinition() {}
func (*EnumTypeDefinition) isTypeDefinition()       {}

type EnumValueDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

type InputObjectTypeDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

func (*InputObjectTypeDefinition) isDefinition()          {}
func (*InputObjectTypeDefinition) isTypeSystemDefinition() {}
func (*InputObjectTypeDefinition) isTypeDefinition()       {}

type DirectiveDefinition struct {
	BaseNode
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
}

func (*DirectiveDefinition) isDefinition()          {}
func (*DirectiveDefinition) isTypeSystemDefinition() {}

// ---- Type-system extensions ----

type SchemaExtension struct {
	BaseNode
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (*SchemaExtension) isDefinition()           {}
func (*SchemaExtension) isTypeSystemExtension()  {}

type ScalarTypeExtension struct {
	BaseNode
	Name       *Name
	Directives []*Directive
}

func (*ScalarTypeExtension) isDefinition()          {}
func (*ScalarTypeExtension) isTypeSystemExtension() {}
func (*ScalarTypeExtension) isTypeExtension()       {}

type ObjectTypeExtension struct {
	BaseNode
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (*ObjectTypeExtension) isDefinition()          {}
func (*ObjectTypeExtension) isTypeSystemExtension() {}
func (*ObjectTypeExtension) isTypeExtension()       {}

type InterfaceTypeExtension struct {
	BaseNode
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (*InterfaceTypeExtension) isDefinition()          {}
func (*InterfaceTypeExtension) isTypeSystemExtension() {}
func (*InterfaceTypeExtension) isTypeExtension()       {}

type UnionTypeExtension struct {
	BaseNode
	Name       *Name
	Directives []*Directive
	Types      []*NamedType
}

func (*UnionTypeExtension) isDefinition()          {}
func (*UnionTypeExtension) isTypeSystemExtension() {}
func (*UnionTypeExtension) isTypeExtension()       {}

type EnumTypeExtension struct {
	BaseNode
	Name       *Name
	Directives []*Directive
	Values     []*EnumValueDefinition
}

func (*EnumTypeExtension) isDefinition()          {}
func (*EnumTypeExtension) isTypeSystemExtension() {}
func (*EnumTypeExtension) isTypeExtension()       {}

type InputObjectTypeExtension struct {
	BaseNode
	Name       *Name
	Directives []*Directive
	Fields     []*InputValueDefinition
}

func (*InputObjectTypeExtension) isDefinition()          {}
func (*InputObjectTypeExtension) isTypeSystemExtension() {}
func (*InputObjectTypeExtension) isTypeExtension()       {}
