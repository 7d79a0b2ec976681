// Package bindings compiles a set of named-automaton declarations (an
// identifier plus its surface-syntax pattern) into a lowering.IdentifierMap,
// the in-memory form spec.md §4.7 calls the first resolver source. It is
// the shared compile step behind both cmd/rexc's YAML bindings file and
// internal/bindingsdsl's "let ... ;" format, neither of which spec.md's
// distilled core knows about (§4 of SPEC_FULL.md).
package bindings

import (
	"errors"
	"fmt"

	"rex/flags"
	"rex/lowering"
	"rex/parser"
)

// Entry is one identifier/pattern declaration, prior to compilation.
type Entry struct {
	Name    string
	Pattern string
}

// Compile lowers entries into an IdentifierMap under f. Entries are tried
// in the given order; one that references another entry not yet compiled
// (via "<id>") is deferred and retried once the rest of the pass has run,
// so a YAML map's arbitrary iteration order and a bindings-file's
// guaranteed declaration order both work the same way. Compilation fails
// once a full pass makes no further progress, reporting the last
// unresolved-reference error observed.
func Compile(entries []Entry, f flags.Syntax) (lowering.IdentifierMap, error) {
	result := make(lowering.IdentifierMap, len(entries))
	pending := append([]Entry(nil), entries...)

	for len(pending) > 0 {
		var next []Entry
		var lastErr error
		progressed := false

		for _, e := range pending {
			node, err := parser.Parse(e.Pattern, f)
			if err != nil {
				return nil, fmt.Errorf("binding %q: %w", e.Name, err)
			}
			a, err := lowering.Lower(node, result, nil)
			if err != nil {
				var unresolved *lowering.UnresolvedIdentifierError
				if errors.As(err, &unresolved) {
					next = append(next, e)
					lastErr = err
					continue
				}
				return nil, fmt.Errorf("binding %q: %w", e.Name, err)
			}
			result[e.Name] = a
			progressed = true
		}

		if !progressed {
			return nil, fmt.Errorf("bindings: unresolved reference in %d binding(s), last error: %w", len(next), lastErr)
		}
		pending = next
	}
	return result, nil
}
