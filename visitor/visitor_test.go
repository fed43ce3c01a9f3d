package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlfront/ast"
	"github.com/krotik/gqlfront/parser"
	"github.com/krotik/gqlfront/printer"
	"github.com/krotik/gqlfront/visitor"
)

func mustParse(t *testing.T, body string) *ast.Document {
	t.Helper()
	doc, err := parser.ParseDocumentString(body, parser.Options{})
	require.NoError(t, err, body)
	return doc
}

func TestVisitCollectsKindsInOrder(t *testing.T) {
	doc := mustParse(t, `{ a b }`)

	var kinds []ast.Kind
	v := &visitor.Visitor{
		Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
			kinds = append(kinds, node.Kind())
			return visitor.Continue(), nil
		},
	}

	_, err := visitor.Visit(doc, v)
	require.NoError(t, err)

	assert.Equal(t, []ast.Kind{
		ast.KindDocument, ast.KindOperationDefinition, ast.KindSelectionSet,
		ast.KindField, ast.KindName, ast.KindField, ast.KindName,
	}, kinds)
}

func TestVisitPerKindOverride(t *testing.T) {
	doc := mustParse(t, `{ a }`)

	var names []string
	v := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindName: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					names = append(names, node.(*ast.Name).Value)
					return visitor.Continue(), nil
				},
			},
		},
	}

	_, err := visitor.Visit(doc, v)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
}

func TestVisitSkipPreventsDescentNotSiblings(t *testing.T) {
	doc := mustParse(t, `{ a b }`)

	var entered []string
	v := &visitor.Visitor{
		Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
			if f, ok := node.(*ast.Field); ok && f.Name.Value == "a" {
				return visitor.Skip(), nil
			}
			entered = append(entered, string(node.Kind()))
			return visitor.Continue(), nil
		},
	}

	_, err := visitor.Visit(doc, v)
	require.NoError(t, err)

	// The callback returns Skip for field "a" before recording it, so neither
	// "a" nor its Name is in entered, but field "b" and its Name are still
	// visited.
	assert.Contains(t, entered, "Field")
	assert.Contains(t, entered, "Name")
}

func TestVisitDeleteRemovesNode(t *testing.T) {
	doc := mustParse(t, `{ a b c }`)

	v := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					if node.(*ast.Field).Name.Value == "b" {
						return visitor.Delete(), nil
					}
					return visitor.Continue(), nil
				},
			},
		},
	}

	edited, err := visitor.Visit(doc, v)
	require.NoError(t, err)

	editedDoc := edited.(*ast.Document)
	op := editedDoc.Definitions[0].(*ast.OperationDefinition)
	require.Len(t, op.SelectionSet.Selections, 2)
	assert.Equal(t, "a", op.SelectionSet.Selections[0].(*ast.Field).Name.Value)
	assert.Equal(t, "c", op.SelectionSet.Selections[1].(*ast.Field).Name.Value)

	// the original tree is untouched.
	origOp := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Len(t, origOp.SelectionSet.Selections, 3)
}

func TestVisitReplaceSubstitutesNode(t *testing.T) {
	doc := mustParse(t, `{ a }`)

	renamed := &ast.Name{BaseNode: ast.BaseNode{NodeKind: ast.KindName}, Value: "renamed"}

	v := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindName: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					return visitor.Replace(renamed), nil
				},
			},
		},
	}

	edited, err := visitor.Visit(doc, v)
	require.NoError(t, err)

	editedDoc := edited.(*ast.Document)
	op := editedDoc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "renamed", field.Name.Value)

	origField := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "a", origField.Name.Value)
}

func TestVisitBreakHaltsWalk(t *testing.T) {
	doc := mustParse(t, `{ a b c }`)

	var seen []string
	v := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					name := node.(*ast.Field).Name.Value
					seen = append(seen, name)
					if name == "b" {
						return visitor.Break(), nil
					}
					return visitor.Continue(), nil
				},
			},
		},
	}

	_, err := visitor.Visit(doc, v)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestVisitInParallelIndependentSkipState(t *testing.T) {
	doc := mustParse(t, `{ a b }`)

	var v1Fields, v2Fields []string

	v1 := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					f := node.(*ast.Field)
					v1Fields = append(v1Fields, f.Name.Value)
					if f.Name.Value == "a" {
						return visitor.Skip(), nil
					}
					return visitor.Continue(), nil
				},
			},
			ast.KindName: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					if node.(*ast.Name).Value == "a" {
						t.Errorf("v1 should not see Name under a skipped Field")
					}
					return visitor.Continue(), nil
				},
			},
		},
	}

	v2 := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					v2Fields = append(v2Fields, node.(*ast.Field).Name.Value)
					return visitor.Continue(), nil
				},
			},
		},
	}

	combined := visitor.VisitInParallel([]*visitor.Visitor{v1, v2})
	_, err := visitor.Visit(doc, combined)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v1Fields)
	assert.Equal(t, []string{"a", "b"}, v2Fields)
}

func TestVisitEditsRoundTripThroughPrinter(t *testing.T) {
	doc := mustParse(t, `{ a b }`)

	v := &visitor.Visitor{
		Kinds: map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {
				Enter: func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (visitor.Result, error) {
					if node.(*ast.Field).Name.Value == "b" {
						return visitor.Delete(), nil
					}
					return visitor.Continue(), nil
				},
			},
		},
	}

	edited, err := visitor.Visit(doc, v)
	require.NoError(t, err)

	assert.Equal(t, "{\n  a\n}", printer.Print(edited))
}
