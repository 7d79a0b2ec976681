// Package lowering translates an AST into an automaton, the missing
// half of regexlib's glue.go (compileASTtoNFA) generalized from that
// package's own fixed nfa/dfa pair to the external automaton library
// contract of spec.md §4.6/§6.2.
package lowering

import (
	"rex/ast"
	"rex/automaton"
)

// IdentifierMap is the first lookup source for a NamedAutomaton
// reference — the in-memory bindings a caller (CLI, REPL, test) already
// holds, checked before falling through to a Resolver.
type IdentifierMap map[string]*automaton.Automaton

// Lower translates n into an automaton. bindings is consulted first for
// every NamedAutomaton reference; resolver is consulted only for
// identifiers bindings does not carry, and only if non-nil. Every
// resolved reference is deep-cloned before splicing in, so mutating the
// returned automaton never reaches a shared named automaton (spec.md
// P9).
//
// Union and Concat spines are flattened before their combinator runs —
// a descendant chain of same-tagged nodes becomes one call to the
// n-ary automaton.Union/automaton.Concatenate rather than a cascade of
// binary calls — and every non-leaf construction is minimized before
// being handed back up, so intermediate automata never carry epsilon
// edges or dead states into the next step.
func Lower(n *ast.Node, bindings IdentifierMap, resolver Resolver) (*automaton.Automaton, error) {
	switch n.Tag {
	case ast.Char:
		return automaton.MakeChar(n.Char), nil
	case ast.AnyChar:
		return automaton.MakeAnyChar(), nil
	case ast.CharRange:
		return automaton.MakeCharRange(n.From, n.To), nil
	case ast.Empty:
		return automaton.MakeEmpty(), nil
	case ast.AnyStr:
		return automaton.MakeAnyString(), nil
	case ast.Str:
		return automaton.MakeString(n.Str), nil
	case ast.Interval:
		return automaton.MakeInterval(n.Min, n.Max, n.Digits), nil
	case ast.NamedAutomaton:
		return resolve(n.Ident, bindings, resolver)

	case ast.Union:
		return lowerSpine(flatten(n, ast.Union), bindings, resolver, automaton.Union)
	case ast.Concat:
		return lowerSpine(flatten(n, ast.Concat), bindings, resolver, automaton.Concatenate)

	case ast.Intersection:
		l, err := Lower(n.L, bindings, resolver)
		if err != nil {
			return nil, err
		}
		r, err := Lower(n.R, bindings, resolver)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(automaton.Intersect(l, r)), nil

	case ast.Complement:
		e, err := Lower(n.E, bindings, resolver)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(automaton.Complement(e)), nil

	case ast.Optional:
		e, err := Lower(n.E, bindings, resolver)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(automaton.Optional(e)), nil

	case ast.Repeat:
		e, err := Lower(n.E, bindings, resolver)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(automaton.Repeat(e)), nil

	case ast.RepeatMin:
		e, err := Lower(n.E, bindings, resolver)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(automaton.RepeatMin(e, n.Min)), nil

	case ast.RepeatMinMax:
		e, err := Lower(n.E, bindings, resolver)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(automaton.RepeatMinMax(e, n.Min, n.Max)), nil
	}
	panic("lowering: unhandled ast tag")
}

func lowerSpine(leaves []*ast.Node, bindings IdentifierMap, resolver Resolver, combine func([]*automaton.Automaton) *automaton.Automaton) (*automaton.Automaton, error) {
	list := make([]*automaton.Automaton, 0, len(leaves))
	for _, leaf := range leaves {
		a, err := Lower(leaf, bindings, resolver)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return automaton.Minimize(combine(list)), nil
}

// flatten returns the operands of n's same-tag spine: it descends through
// every node tagged tag and collects, in left-to-right order, the first
// node along each branch that is not.
func flatten(n *ast.Node, tag ast.Tag) []*ast.Node {
	if n.Tag != tag {
		return []*ast.Node{n}
	}
	return append(flatten(n.L, tag), flatten(n.R, tag)...)
}

func resolve(ident string, bindings IdentifierMap, resolver Resolver) (*automaton.Automaton, error) {
	if a, ok := bindings[ident]; ok {
		return automaton.Clone(a), nil
	}
	if resolver != nil {
		a, err := resolver.Get(ident)
		if err != nil {
			return nil, &ResolverError{Identifier: ident, Err: err}
		}
		if a != nil {
			return automaton.Clone(a), nil
		}
	}
	return nil, &UnresolvedIdentifierError{Identifier: ident}
}
