/*
Package visitor implements the generic AST walk of spec §4.G: a single Visit
entry point that descends into any ast.Node following ast.QueryDocumentKeys,
invoking per-kind (or generic) enter/leave callbacks, and rebuilding an edited
copy of the tree without mutating the original. VisitInParallel composes
several Visitors into one pass, each with its own independent skip/break
state, per spec §4.G's parallel-composition rules.

The descent in children.go is a plain Go type switch over ast.Node, mirroring
the "reflect-free accessor table" ast.QueryDocumentKeys already documents:
the table is the authoritative field order, the switch is how that order is
actually walked, without resorting to the reflect package.
*/
package visitor

import "github.com/krotik/gqlfront/ast"

// ActionKind is the discriminant of a Result (spec §4.G / §9 design notes).
type ActionKind int

const (
	actionContinue ActionKind = iota
	actionSkip
	actionDelete
	actionBreak
	actionReplace
)

// Result is what an enter or leave callback returns to steer the walk.
type Result struct {
	kind ActionKind
	node ast.Node // only meaningful when kind == actionReplace
}

// Continue proceeds normally: descend into children on enter, do nothing
// special on leave.
func Continue() Result { return Result{kind: actionContinue} }

// Skip, returned from enter, visits this node's siblings but not its
// children or its own leave callback. Returned from leave it has no effect
// (graphql-js treats it as Continue, since there is nothing left to skip).
func Skip() Result { return Result{kind: actionSkip} }

// Delete removes this node from its parent. From enter, no children or
// leave callback are visited for it.
func Delete() Result { return Result{kind: actionDelete} }

// Break halts the entire walk immediately.
func Break() Result { return Result{kind: actionBreak} }

// Replace substitutes node in place of the node being visited. From enter,
// the walk continues by descending into the replacement.
func Replace(node ast.Node) Result { return Result{kind: actionReplace, node: node} }

// VisitFunc is an enter or leave callback. path is the sequence of field
// names and slice indices from the root to node; ancestors is the parallel
// sequence of nodes (and, for array entries, the owning parent node again)
// that path was read from - the node at ancestors[i] is the node path[i]
// was read off of.
type VisitFunc func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (Result, error)

// KindFuncs is the enter/leave pair registered for one ast.Kind.
type KindFuncs struct {
	Enter VisitFunc
	Leave VisitFunc
}

// Visitor is a set of callbacks: Enter/Leave apply to every kind, Kinds
// overrides them for specific kinds (spec §4.G).
type Visitor struct {
	Enter VisitFunc
	Leave VisitFunc
	Kinds map[ast.Kind]KindFuncs
}

// GetEnterLeaveForKind resolves the effective enter/leave pair for kind,
// falling back to the visitor's generic Enter/Leave when no per-kind
// override is registered for one or the other.
func GetEnterLeaveForKind(v *Visitor, kind ast.Kind) KindFuncs {
	funcs := KindFuncs{Enter: v.Enter, Leave: v.Leave}
	if v.Kinds == nil {
		return funcs
	}
	if kf, ok := v.Kinds[kind]; ok {
		if kf.Enter != nil {
			funcs.Enter = kf.Enter
		}
		if kf.Leave != nil {
			funcs.Leave = kf.Leave
		}
	}
	return funcs
}

// Visit walks root with v and returns the (possibly edited) tree. If
// nothing was edited, the returned node is root itself. Deleting the root
// is not meaningful and simply returns root unchanged.
func Visit(root ast.Node, v *Visitor) (ast.Node, error) {
	w := &walker{visitor: v}
	result, deleted, err := w.visitNode(root, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	if deleted {
		return root, nil
	}
	return result, nil
}

type walker struct {
	visitor *Visitor
	broke   bool
}

// visitNode runs enter, descends into children (unless enter said
// otherwise), then runs leave. It returns the node to use in the node's
// place (possibly a freshly-built copy, possibly a Replace target) and
// whether the node should be removed from its parent entirely.
func (w *walker) visitNode(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (ast.Node, bool, error) {
	if w.broke {
		return node, false, nil
	}

	kind := node.Kind()
	funcs := GetEnterLeaveForKind(w.visitor, kind)

	if funcs.Enter != nil {
		res, err := funcs.Enter(node, key, parent, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		switch res.kind {
		case actionBreak:
			w.broke = true
			return node, false, nil
		case actionDelete:
			return nil, true, nil
		case actionSkip:
			return node, false, nil
		case actionReplace:
			if res.node == nil {
				return nil, true, nil
			}
			node = res.node
		}
	}

	newNode, changed, err := w.visitChildren(node, path, ancestors)
	if err != nil {
		return nil, false, err
	}
	if changed {
		node = newNode
	}
	if w.broke {
		return node, false, nil
	}

	if funcs.Leave != nil {
		res, err := funcs.Leave(node, key, parent, path, ancestors)
		if err != nil {
			return nil, false, err
		}
		switch res.kind {
		case actionBreak:
			w.broke = true
			return node, false, nil
		case actionDelete:
			return nil, true, nil
		case actionReplace:
			if res.node == nil {
				return nil, true, nil
			}
			node = res.node
		}
	}

	return node, false, nil
}

func sameNode(a, b ast.Node) bool { return a == b }

// visitSlice visits each element of items under field key, returning a new
// slice (sharing no elements with a changed parent) and whether anything in
// it changed. A Replace result whose value does not satisfy T is ignored
// and the original element is kept, rather than corrupting the slice's
// static element type.
func visitSlice[T ast.Node](w *walker, items []T, key string, parent ast.Node, path []interface{}, ancestors []ast.Node) ([]T, bool, error) {
	if len(items) == 0 {
		return items, false, nil
	}

	childAncestors := append(append([]ast.Node{}, ancestors...), parent, parent)
	result := make([]T, 0, len(items))
	changed := false

	for i, item := range items {
		if w.broke {
			result = append(result, item)
			continue
		}

		childPath := append(append([]interface{}{}, path...), key, i)
		resNode, deleted, err := w.visitNode(item, i, parent, childPath, childAncestors)
		if err != nil {
			return nil, false, err
		}
		if deleted {
			changed = true
			continue
		}
		if !sameNode(resNode, item) {
			changed = true
			if typed, ok := resNode.(T); ok {
				item = typed
			}
		}
		result = append(result, item)
	}

	if !changed {
		return items, false, nil
	}
	return result, true, nil
}

// visitSingle visits the optional single-node field key, returning the
// (possibly replaced or deleted-to-zero) value and whether it changed.
func visitSingle[T ast.Node](w *walker, item T, key string, parent ast.Node, path []interface{}, ancestors []ast.Node) (T, bool, error) {
	var zero T
	if any(item) == any(zero) || w.broke {
		return item, false, nil
	}

	childPath := append(append([]interface{}{}, path...), key)
	childAncestors := append(append([]ast.Node{}, ancestors...), parent)

	resNode, deleted, err := w.visitNode(item, key, parent, childPath, childAncestors)
	if err != nil {
		return zero, false, err
	}
	if deleted {
		return zero, true, nil
	}
	if sameNode(resNode, item) {
		return item, false, nil
	}
	if typed, ok := resNode.(T); ok {
		return typed, true, nil
	}
	return item, false, nil
}
