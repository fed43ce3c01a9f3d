package visitor

import "github.com/krotik/gqlfront/ast"

// visitChildren descends into node's children in the order
// ast.QueryDocumentKeys[node.Kind()] specifies, and returns a rebuilt copy
// of node if anything beneath it changed (node itself is returned
// unchanged, same pointer, otherwise).
func (w *walker) visitChildren(node ast.Node, path []interface{}, ancestors []ast.Node) (ast.Node, bool, error) {
	switch n := node.(type) {

	case *ast.Document:
		defs, changed, err := visitSlice(w, n.Definitions, "Definitions", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Definitions = defs
		return &cp, true, nil

	case *ast.OperationDefinition:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		vars, c2, err := visitSlice(w, n.VariableDefinitions, "VariableDefinitions", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		sel, c4, err := visitSingle(w, n.SelectionSet, "SelectionSet", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.VariableDefinitions, cp.Directives, cp.SelectionSet = name, vars, dirs, sel
		return &cp, true, nil

	case *ast.VariableDefinition:
		v, c1, err := visitSingle(w, n.Variable, "Variable", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		t, c2, err := visitSingle(w, n.Type, "Type", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dv, c3, err := visitSingle(w, n.DefaultValue, "DefaultValue", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c4, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Variable, cp.Type, cp.DefaultValue, cp.Directives = v, t, dv, dirs
		return &cp, true, nil

	case *ast.Variable:
		name, changed, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Name = name
		return &cp, true, nil

	case *ast.SelectionSet:
		sels, changed, err := visitSlice(w, n.Selections, "Selections", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Selections = sels
		return &cp, true, nil

	case *ast.Field:
		alias, c1, err := visitSingle(w, n.Alias, "Alias", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		args, c3, err := visitSlice(w, n.Arguments, "Arguments", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c4, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		sel, c5, err := visitSingle(w, n.SelectionSet, "SelectionSet", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4 || c5) {
			return node, false, nil
		}
		cp := *n
		cp.Alias, cp.Name, cp.Arguments, cp.Directives, cp.SelectionSet = alias, name, args, dirs, sel
		return &cp, true, nil

	case *ast.Argument:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		val, c2, err := visitSingle(w, n.Value, "Value", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Value = name, val
		return &cp, true, nil

	case *ast.FragmentSpread:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		args, c2, err := visitSlice(w, n.Arguments, "Arguments", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Arguments, cp.Directives = name, args, dirs
		return &cp, true, nil

	case *ast.InlineFragment:
		tc, c1, err := visitSingle(w, n.TypeCondition, "TypeCondition", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c2, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		sel, c3, err := visitSingle(w, n.SelectionSet, "SelectionSet", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.TypeCondition, cp.Directives, cp.SelectionSet = tc, dirs, sel
		return &cp, true, nil

	case *ast.FragmentDefinition:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		vars, c2, err := visitSlice(w, n.VariableDefinitions, "VariableDefinitions", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		tc, c3, err := visitSingle(w, n.TypeCondition, "TypeCondition", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c4, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		sel, c5, err := visitSingle(w, n.SelectionSet, "SelectionSet", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4 || c5) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.VariableDefinitions, cp.TypeCondition, cp.Directives, cp.SelectionSet = name, vars, tc, dirs, sel
		return &cp, true, nil

	case *ast.ListValue:
		vals, changed, err := visitSlice(w, n.Values, "Values", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Values = vals
		return &cp, true, nil

	case *ast.ObjectValue:
		fields, changed, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Fields = fields
		return &cp, true, nil

	case *ast.ObjectField:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		val, c2, err := visitSingle(w, n.Value, "Value", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Value = name, val
		return &cp, true, nil

	case *ast.Directive:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		args, c2, err := visitSlice(w, n.Arguments, "Arguments", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Arguments = name, args
		return &cp, true, nil

	case *ast.NamedType:
		name, changed, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Name = name
		return &cp, true, nil

	case *ast.ListType:
		t, changed, err := visitSingle(w, n.Type, "Type", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Type = t
		return &cp, true, nil

	case *ast.NonNullType:
		t, changed, err := visitSingle(w, n.Type, "Type", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Type = t
		return &cp, true, nil

	case *ast.SchemaDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c2, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		ops, c3, err := visitSlice(w, n.OperationTypes, "OperationTypes", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Directives, cp.OperationTypes = desc, dirs, ops
		return &cp, true, nil

	case *ast.OperationTypeDefinition:
		t, changed, err := visitSingle(w, n.Type, "Type", node, path, ancestors)
		if err != nil || !changed {
			return node, false, err
		}
		cp := *n
		cp.Type = t
		return &cp, true, nil

	case *ast.ScalarTypeDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Directives = desc, name, dirs
		return &cp, true, nil

	case *ast.ObjectTypeDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		ifaces, c3, err := visitSlice(w, n.Interfaces, "Interfaces", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c4, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		fields, c5, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4 || c5) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Interfaces, cp.Directives, cp.Fields = desc, name, ifaces, dirs, fields
		return &cp, true, nil

	case *ast.FieldDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		args, c3, err := visitSlice(w, n.Arguments, "Arguments", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		t, c4, err := visitSingle(w, n.Type, "Type", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c5, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4 || c5) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Arguments, cp.Type, cp.Directives = desc, name, args, t, dirs
		return &cp, true, nil

	case *ast.InputValueDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		t, c3, err := visitSingle(w, n.Type, "Type", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dv, c4, err := visitSingle(w, n.DefaultValue, "DefaultValue", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c5, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4 || c5) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Type, cp.DefaultValue, cp.Directives = desc, name, t, dv, dirs
		return &cp, true, nil

	case *ast.InterfaceTypeDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		ifaces, c3, err := visitSlice(w, n.Interfaces, "Interfaces", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c4, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		fields, c5, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4 || c5) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Interfaces, cp.Directives, cp.Fields = desc, name, ifaces, dirs, fields
		return &cp, true, nil

	case *ast.UnionTypeDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		types, c4, err := visitSlice(w, n.Types, "Types", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Directives, cp.Types = desc, name, dirs, types
		return &cp, true, nil

	case *ast.EnumTypeDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		vals, c4, err := visitSlice(w, n.Values, "Values", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Directives, cp.Values = desc, name, dirs, vals
		return &cp, true, nil

	case *ast.EnumValueDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Directives = desc, name, dirs
		return &cp, true, nil

	case *ast.InputObjectTypeDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		fields, c4, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Directives, cp.Fields = desc, name, dirs, fields
		return &cp, true, nil

	case *ast.DirectiveDefinition:
		desc, c1, err := visitSingle(w, n.Description, "Description", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		name, c2, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		args, c3, err := visitSlice(w, n.Arguments, "Arguments", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		locs, c4, err := visitSlice(w, n.Locations, "Locations", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Description, cp.Name, cp.Arguments, cp.Locations = desc, name, args, locs
		return &cp, true, nil

	case *ast.SchemaExtension:
		dirs, c1, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		ops, c2, err := visitSlice(w, n.OperationTypes, "OperationTypes", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2) {
			return node, false, nil
		}
		cp := *n
		cp.Directives, cp.OperationTypes = dirs, ops
		return &cp, true, nil

	case *ast.ScalarTypeExtension:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c2, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Directives = name, dirs
		return &cp, true, nil

	case *ast.ObjectTypeExtension:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		ifaces, c2, err := visitSlice(w, n.Interfaces, "Interfaces", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		fields, c4, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Interfaces, cp.Directives, cp.Fields = name, ifaces, dirs, fields
		return &cp, true, nil

	case *ast.InterfaceTypeExtension:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		ifaces, c2, err := visitSlice(w, n.Interfaces, "Interfaces", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c3, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		fields, c4, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3 || c4) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Interfaces, cp.Directives, cp.Fields = name, ifaces, dirs, fields
		return &cp, true, nil

	case *ast.UnionTypeExtension:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c2, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		types, c3, err := visitSlice(w, n.Types, "Types", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Directives, cp.Types = name, dirs, types
		return &cp, true, nil

	case *ast.EnumTypeExtension:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c2, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		vals, c3, err := visitSlice(w, n.Values, "Values", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Directives, cp.Values = name, dirs, vals
		return &cp, true, nil

	case *ast.InputObjectTypeExtension:
		name, c1, err := visitSingle(w, n.Name, "Name", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		dirs, c2, err := visitSlice(w, n.Directives, "Directives", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		fields, c3, err := visitSlice(w, n.Fields, "Fields", node, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		if !(c1 || c2 || c3) {
			return node, false, nil
		}
		cp := *n
		cp.Name, cp.Directives, cp.Fields = name, dirs, fields
		return &cp, true, nil

	default:
		// Name and the scalar value leaves (IntValue, FloatValue, StringValue,
		// BooleanValue, NullValue, EnumValue) have no children.
		return node, false, nil
	}
}
