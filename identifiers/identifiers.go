// Package identifiers walks an AST collecting every NamedAutomaton
// reference, mirroring the teacher repo's recursive tree walks (e.g.
// LAB_2/regexlib/regexp.go's alphabet-collecting walk over astNode, and
// countGroups's single-field accumulation) but generalized to a set of
// strings instead of a set of runes.
package identifiers

import "rex/ast"

// Collect returns the set of identifiers s such that NamedAutomaton(s)
// occurs anywhere in n (spec.md P7).
func Collect(n *ast.Node) map[string]struct{} {
	out := make(map[string]struct{})
	walk(n, out)
	return out
}

func walk(n *ast.Node, out map[string]struct{}) {
	if n == nil {
		return
	}
	switch n.Tag {
	case ast.NamedAutomaton:
		out[n.Ident] = struct{}{}
	case ast.Union, ast.Concat, ast.Intersection:
		walk(n.L, out)
		walk(n.R, out)
	case ast.Optional, ast.Repeat, ast.RepeatMin, ast.RepeatMinMax, ast.Complement:
		walk(n.E, out)
	}
}
