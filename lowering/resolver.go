package lowering

import "rex/automaton"

// Resolver is the second lookup source for a NamedAutomaton reference,
// consulted only when the identifier is absent from the identifier map
// passed to Lower (spec.md §4.7's two-source contract).
type Resolver interface {
	Get(identifier string) (*automaton.Automaton, error)
}

// ResolverError wraps whatever error a Resolver's backing I/O raises
// (file read, network call, …) so callers can tell a lookup failure
// apart from an identifier that plainly does not exist anywhere.
type ResolverError struct {
	Identifier string
	Err        error
}

func (e *ResolverError) Error() string {
	return "resolving <" + e.Identifier + ">: " + e.Err.Error()
}

func (e *ResolverError) Unwrap() error { return e.Err }

// UnresolvedIdentifierError reports an identifier found in neither the
// identifier map nor the resolver (spec.md §4.7: argument error "<id>
// not found").
type UnresolvedIdentifierError struct {
	Identifier string
}

func (e *UnresolvedIdentifierError) Error() string {
	return "<" + e.Identifier + "> not found"
}

// MapResolver is a Resolver backed by a plain map, for callers (such as
// tests) that have every named automaton in memory up front and never
// need the error-wrapping path.
type MapResolver map[string]*automaton.Automaton

func (m MapResolver) Get(identifier string) (*automaton.Automaton, error) {
	a, ok := m[identifier]
	if !ok {
		return nil, nil
	}
	return a, nil
}
