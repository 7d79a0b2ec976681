package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// determinize runs subset construction over a's elementary-interval
// alphabet, generalizing regexlib/dfa.go's nfaToDFAcore (epsilonClosure
// + moveNFA over single runes) to range-labeled edges. The result is
// always epsilon-free and reachable-only, but not necessarily minimal —
// callers that need minimality call minimizePartition afterwards.
func determinize(a *Automaton) *Automaton {
	boundary := boundaryOf(a)

	index := map[*State]int{}
	keyOf := func(set map[*State]bool) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			i, ok := index[s]
			if !ok {
				i = len(index)
				index[s] = i
			}
			ids = append(ids, i)
		}
		sort.Ints(ids)
		var b strings.Builder
		for _, id := range ids {
			fmt.Fprintf(&b, "%d,", id)
		}
		return b.String()
	}

	initial := epsilonClosure(map[*State]bool{a.start: true})
	dfaOf := map[string]*State{}
	dStart := newState()
	dStart.accept = hasAccept(initial)
	dfaOf[keyOf(initial)] = dStart

	type queued struct {
		set map[*State]bool
		d   *State
	}
	queue := []queued{{initial, dStart}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		var edges []edge
		for i := 0; i+1 < len(boundary); i++ {
			lo, hi := boundary[i], boundary[i+1]-1
			if lo > hi {
				continue
			}
			moveSet := map[*State]bool{}
			for s := range cur.set {
				for _, e := range s.trans {
					if e.lo <= lo && hi <= e.hi {
						moveSet[e.to] = true
					}
				}
			}
			if len(moveSet) == 0 {
				continue
			}
			closed := epsilonClosure(moveSet)
			k := keyOf(closed)
			d, ok := dfaOf[k]
			if !ok {
				d = newState()
				d.accept = hasAccept(closed)
				dfaOf[k] = d
				queue = append(queue, queued{closed, d})
			}
			edges = append(edges, edge{lo: lo, hi: hi, to: d})
		}
		cur.d.trans = mergeAdjacent(edges)
	}
	return &Automaton{start: dStart}
}
