package visitor

import "github.com/krotik/gqlfront/ast"

// VisitInParallel runs several Visitors over the same walk concurrently in
// the sense of spec §4.G: each still sees every enter/leave call (subject to
// its own suppression), but a single Visit call drives them all in lockstep.
//
// A sub-visitor that returns Skip from enter is not called again - neither
// enter nor leave - until the walk leaves the node that produced the Skip.
// A sub-visitor that returns Break is permanently suppressed for the rest
// of the walk. The first sub-visitor to return Delete or Replace wins for
// that node; later sub-visitors do not see the original node for that call.
func VisitInParallel(visitors []*Visitor) *Visitor {
	skipUntil := make([]ast.Node, len(visitors))
	broken := make([]bool, len(visitors))

	enter := func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (Result, error) {
		for i, v := range visitors {
			if broken[i] || skipUntil[i] != nil {
				continue
			}
			funcs := GetEnterLeaveForKind(v, node.Kind())
			if funcs.Enter == nil {
				continue
			}
			res, err := funcs.Enter(node, key, parent, path, ancestors)
			if err != nil {
				return Result{}, err
			}
			switch res.kind {
			case actionBreak:
				broken[i] = true
			case actionSkip:
				skipUntil[i] = node
			case actionDelete, actionReplace:
				return res, nil
			}
		}
		return Continue(), nil
	}

	leave := func(node ast.Node, key interface{}, parent ast.Node, path []interface{}, ancestors []ast.Node) (Result, error) {
		for i, v := range visitors {
			if broken[i] {
				continue
			}
			if skipUntil[i] != nil {
				if skipUntil[i] == node {
					skipUntil[i] = nil
				}
				continue
			}
			funcs := GetEnterLeaveForKind(v, node.Kind())
			if funcs.Leave == nil {
				continue
			}
			res, err := funcs.Leave(node, key, parent, path, ancestors)
			if err != nil {
				return Result{}, err
			}
			switch res.kind {
			case actionBreak:
				broken[i] = true
			case actionDelete, actionReplace:
				return res, nil
			}
		}
		return Continue(), nil
	}

	return &Visitor{Enter: enter, Leave: leave}
}
