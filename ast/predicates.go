package ast

// IsNode reports whether n is any known AST node.
func IsNode(n Node) bool {
	_, ok := QueryDocumentKeys[n.Kind()]
	return ok
}

// IsDefinitionNode reports whether n can appear directly in a Document.
func IsDefinitionNode(n Node) bool {
	_, ok := n.(Definition)
	return ok
}

// IsExecutableDefinitionNode reports whether n is an operation or fragment
// definition, as opposed to a type-system definition or extension.
func IsExecutableDefinitionNode(n Node) bool {
	_, ok := n.(ExecutableDefinition)
	return ok
}

// IsSelectionNode reports whether n can appear inside a SelectionSet.
func IsSelectionNode(n Node) bool {
	_, ok := n.(Selection)
	return ok
}

// IsValueNode reports whether n is any value literal, including Variable.
func IsValueNode(n Node) bool {
	_, ok := n.(Value)
	return ok
}

// IsConstValueNode reports whether n is a value literal that contains no
// Variable anywhere in its subtree (spec §4.E, const-value purity).
func IsConstValueNode(n Node) bool {
	if !IsValueNode(n) {
		return false
	}
	if _, ok := n.(*Variable); ok {
		return false
	}

	switch v := n.(type) {
	case *ListValue:
		for _, item := range v.Values {
			if !IsConstValueNode(item) {
				return false
			}
		}
	case *ObjectValue:
		for _, f := range v.Fields {
			if !IsConstValueNode(f.Value) {
				return false
			}
		}
	}

	return true
}

// IsTypeNode reports whether n is a type reference (NamedType, ListType or
// NonNullType).
func IsTypeNode(n Node) bool {
	_, ok := n.(Type)
	return ok
}

// IsTypeSystemDefinitionNode reports whether n defines part of a schema:
// SchemaDefinition or any TypeDefinition/DirectiveDefinition.
func IsTypeSystemDefinitionNode(n Node) bool {
	_, ok := n.(TypeSystemDefinition)
	return ok
}

// IsTypeDefinitionNode reports whether n introduces a named type (scalar,
// object, interface, union, enum or input object).
func IsTypeDefinitionNode(n Node) bool {
	_, ok := n.(TypeDefinition)
	return ok
}

// IsTypeSystemExtensionNode reports whether n extends part of a schema.
func IsTypeSystemExtensionNode(n Node) bool {
	_, ok := n.(TypeSystemExtension)
	return ok
}

// IsTypeExtensionNode reports whether n extends a named type.
func IsTypeExtensionNode(n Node) bool {
	_, ok := n.(TypeExtension)
	return ok
}
