/*
Package printer renders an ast.Node back to GraphQL source text (spec §4.F).
Print computes each node's text purely from its own fields and its already-
printed children - the same leave-only-reducer shape the spec describes for
a JS AST, expressed as ordinary bottom-up Go recursion instead of a literal
visitor.Visit call: visitor.Visit rebuilds ast.Node-shaped trees, and Go's
static typing has no interface for a node-turned-into-a-bare-string midway
through a walk, so the printer is its own small recursive descent over the
same ast.Kind switch visitor/children.go uses to find children.
*/
package printer

import (
	"fmt"
	"strings"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/internal/textutil"
)

// Print renders node and everything beneath it as GraphQL source text.
func Print(node ast.Node) string {
	if node == nil {
		return ""
	}
	return print(node)
}

func print(node ast.Node) string {
	switch n := node.(type) {

	case *ast.Name:
		return n.Value
	case *ast.Document:
		return join(mapPrint(n.Definitions), "\n\n")

	case *ast.OperationDefinition:
		return printOperationDefinition(n)
	case *ast.VariableDefinition:
		return fmt.Sprintf("%s: %s%s%s",
			print(n.Variable), print(n.Type),
			wrap(" = ", printOptValue(n.DefaultValue), ""),
			wrap(" ", join(mapPrint(n.Directives), " "), ""))
	case *ast.Variable:
		return "$" + print(n.Name)
	case *ast.SelectionSet:
		return block(mapPrint(n.Selections))
	case *ast.Field:
		return printField(n)
	case *ast.Argument:
		return fmt.Sprintf("%s: %s", print(n.Name), print(n.Value))

	case *ast.FragmentSpread:
		return "..." + print(n.Name) +
			wrap("(", join(mapPrint(n.Arguments), ", "), ")") +
			wrap(" ", join(mapPrint(n.Directives), " "), "")
	case *ast.InlineFragment:
		typeCond := ""
		if n.TypeCondition != nil {
			typeCond = print(n.TypeCondition)
		}
		return join([]string{
			"...",
			wrap("on ", typeCond, ""),
			join(mapPrint(n.Directives), " "),
			print(n.SelectionSet),
		}, " ")
	case *ast.FragmentDefinition:
		return "fragment " + print(n.Name) +
			wrap("(", join(mapPrint(n.VariableDefinitions), ", "), ")") +
			" on " + print(n.TypeCondition) +
			wrap(" ", join(mapPrint(n.Directives), " "), "") +
			" " + print(n.SelectionSet)

	case *ast.IntValue:
		return n.Value
	case *ast.FloatValue:
		return n.Value
	case *ast.StringValue:
		return printStringValue(n, false)
	case *ast.BooleanValue:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.NullValue:
		return "null"
	case *ast.EnumValue:
		return n.Value
	case *ast.ListValue:
		return "[" + join(mapPrint(n.Values), ", ") + "]"
	case *ast.ObjectValue:
		return "{" + join(mapPrint(n.Fields), ", ") + "}"
	case *ast.ObjectField:
		return fmt.Sprintf("%s: %s", print(n.Name), print(n.Value))

	case *ast.Directive:
		return "@" + print(n.Name) + wrap("(", join(mapPrint(n.Arguments), ", "), ")")

	case *ast.NamedType:
		return print(n.Name)
	case *ast.ListType:
		return "[" + print(n.Type) + "]"
	case *ast.NonNullType:
		return print(n.Type) + "!"

	case *ast.SchemaDefinition:
		return printDescription(n.Description) +
			join([]string{"schema", join(mapPrint(n.Directives), " "), block(mapPrint(n.OperationTypes))}, " ")
	case *ast.OperationTypeDefinition:
		return fmt.Sprintf("%s: %s", n.Operation, print(n.Type))
	case *ast.ScalarTypeDefinition:
		return printDescription(n.Description) +
			join([]string{"scalar", print(n.Name), join(mapPrint(n.Directives), " ")}, " ")
	case *ast.ObjectTypeDefinition:
		return printDescription(n.Description) +
			join([]string{
				"type", print(n.Name),
				wrap("implements ", join(mapPrint(n.Interfaces), " & "), ""),
				join(mapPrint(n.Directives), " "),
				block(mapPrint(n.Fields)),
			}, " ")
	case *ast.FieldDefinition:
		return printDescription(n.Description) +
			print(n.Name) +
			wrap("(", join(mapPrint(n.Arguments), ", "), ")") +
			": " + print(n.Type) +
			wrap(" ", join(mapPrint(n.Directives), " "), "")
	case *ast.InputValueDefinition:
		return printDescription(n.Description) +
			print(n.Name) + ": " + print(n.Type) +
			wrap(" = ", printOptValue(n.DefaultValue), "") +
			wrap(" ", join(mapPrint(n.Directives), " "), "")
	case *ast.InterfaceTypeDefinition:
		return printDescription(n.Description) +
			join([]string{
				"interface", print(n.Name),
				wrap("implements ", join(mapPrint(n.Interfaces), " & "), ""),
				join(mapPrint(n.Directives), " "),
				block(mapPrint(n.Fields)),
			}, " ")
	case *ast.UnionTypeDefinition:
		return printDescription(n.Description) +
			join([]string{
				"union", print(n.Name), join(mapPrint(n.Directives), " "),
				wrap("= ", join(mapPrint(n.Types), " | "), ""),
			}, " ")
	case *ast.EnumTypeDefinition:
		return printDescription(n.Description) +
			join([]string{"enum", print(n.Name), join(mapPrint(n.Directives), " "), block(mapPrint(n.Values))}, " ")
	case *ast.EnumValueDefinition:
		return printDescription(n.Description) +
			print(n.Name) + wrap(" ", join(mapPrint(n.Directives), " "), "")
	case *ast.InputObjectTypeDefinition:
		return printDescription(n.Description) +
			join([]string{"input", print(n.Name), join(mapPrint(n.Directives), " "), block(mapPrint(n.Fields))}, " ")
	case *ast.DirectiveDefinition:
		repeatable := ""
		if n.Repeatable {
			repeatable = " repeatable"
		}
		return printDescription(n.Description) +
			"directive @" + print(n.Name) +
			wrap("(", join(mapPrint(n.Arguments), ", "), ")") +
			repeatable + " on " + join(mapPrint(n.Locations), " | ")

	case *ast.SchemaExtension:
		return join([]string{"extend schema", join(mapPrint(n.Directives), " "), block(mapPrint(n.OperationTypes))}, " ")
	case *ast.ScalarTypeExtension:
		return join([]string{"extend scalar", print(n.Name), join(mapPrint(n.Directives), " ")}, " ")
	case *ast.ObjectTypeExtension:
		return join([]string{
			"extend type", print(n.Name),
			wrap("implements ", join(mapPrint(n.Interfaces), " & "), ""),
			join(mapPrint(n.Directives), " "),
			block(mapPrint(n.Fields)),
		}, " ")
	case *ast.InterfaceTypeExtension:
		return join([]string{
			"extend interface", print(n.Name),
			wrap("implements ", join(mapPrint(n.Interfaces), " & "), ""),
			join(mapPrint(n.Directives), " "),
			block(mapPrint(n.Fields)),
		}, " ")
	case *ast.UnionTypeExtension:
		return join([]string{
			"extend union", print(n.Name), join(mapPrint(n.Directives), " "),
			wrap("= ", join(mapPrint(n.Types), " | "), ""),
		}, " ")
	case *ast.EnumTypeExtension:
		return join([]string{"extend enum", print(n.Name), join(mapPrint(n.Directives), " "), block(mapPrint(n.Values))}, " ")
	case *ast.InputObjectTypeExtension:
		return join([]string{"extend input", print(n.Name), join(mapPrint(n.Directives), " "), block(mapPrint(n.Fields))}, " ")
	}

	return ""
}

func printOperationDefinition(n *ast.OperationDefinition) string {
	op := string(n.Operation)
	name := ""
	if n.Name != nil {
		name = print(n.Name)
	}
	nameAndVars := concat(name, wrap("(", join(mapPrint(n.VariableDefinitions), ", "), ")"))
	prefix := join([]string{op, nameAndVars, join(mapPrint(n.Directives), " ")}, " ")
	selectionSet := print(n.SelectionSet)
	if prefix == "query" {
		return selectionSet
	}
	return prefix + " " + selectionSet
}

func printField(n *ast.Field) string {
	name := print(n.Name)
	if n.Alias != nil {
		name = print(n.Alias) + ": " + name
	}
	args := wrap("(", join(mapPrint(n.Arguments), ", "), ")")
	dirs := wrap(" ", join(mapPrint(n.Directives), " "), "")
	sel := ""
	if n.SelectionSet != nil {
		sel = " " + print(n.SelectionSet)
	}
	return name + args + dirs + sel
}

func printStringValue(n *ast.StringValue, preferMultipleLines bool) string {
	if n.Block {
		return textutil.PrintBlockString(n.Value, preferMultipleLines)
	}
	return `"` + textutil.EscapeString(n.Value) + `"`
}

// printDescription renders a type-system definition's description (if any)
// followed by a newline, per spec §4.F: preferMultipleLines kicks in past 70
// characters or on an embedded newline, and only applies to block strings -
// a description parsed from a non-block string round-trips as one.
func printDescription(desc *ast.StringValue) string {
	if desc == nil {
		return ""
	}
	if !desc.Block {
		return `"` + textutil.EscapeString(desc.Value) + `"` + "\n"
	}
	preferMultipleLines := len(desc.Value) > 70 || strings.Contains(desc.Value, "\n")
	return textutil.PrintBlockString(desc.Value, preferMultipleLines) + "\n"
}

func printOptValue(v ast.Value) string {
	if v == nil {
		return ""
	}
	return print(v)
}
