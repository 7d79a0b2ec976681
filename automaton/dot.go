package automaton

import (
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz DOT rendering of a to w, mirroring
// regexlib/dot.go's ExportDOT but over the single generalized Automaton
// type instead of a DFA/nfaState pair, with range edges labeled as
// "lo-hi" (or just the rune when lo == hi) instead of one edge per rune.
func ExportDOT(w io.Writer, a *Automaton) {
	fmt.Fprintln(w, "digraph automaton {")
	fmt.Fprintln(w, "    rankdir=LR;")
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", a.start.id)
	for _, s := range a.States() {
		shape := "circle"
		if s.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s.id, shape)
		for _, e := range s.trans {
			fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", s.id, e.to.id, rangeLabel(e.lo, e.hi))
		}
		for _, eps := range s.eps {
			fmt.Fprintf(w, "    q%d -> q%d [label=\"ε\"];\n", s.id, eps.id)
		}
	}
	fmt.Fprintln(w, "}")
}

func rangeLabel(lo, hi rune) string {
	if lo == hi {
		return string(lo)
	}
	return fmt.Sprintf("%c-%c", lo, hi)
}
