package automaton

import "sort"

// sortedUniqueRunes sorts rs and removes duplicates in place, returning
// the shortened slice. Used to build the elementary-interval boundary
// set shared by determinize, minimizePartition and product: every edge
// contributes its lo and hi+1 as a cut point, so that within any one
// resulting interval every state's outgoing edges either fully contain
// it or miss it entirely (the dk.brics.automaton boundary-point trick,
// generalized here from regexlib's per-rune alphabet).
func sortedUniqueRunes(rs []rune) []rune {
	if len(rs) == 0 {
		return rs
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	out := rs[:1]
	for _, r := range rs[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}

func sortEdges(es []edge) []edge {
	sort.Slice(es, func(i, j int) bool { return es[i].lo < es[j].lo })
	return es
}

// mergeAdjacent coalesces consecutive edges (already sorted by lo) that
// share a target and abut, into a single wider edge.
func mergeAdjacent(es []edge) []edge {
	if len(es) == 0 {
		return es
	}
	sortEdges(es)
	out := es[:1]
	for _, e := range es[1:] {
		last := &out[len(out)-1]
		if last.to == e.to && last.hi+1 == e.lo {
			last.hi = e.hi
			continue
		}
		out = append(out, e)
	}
	return out
}

// transAt returns the state reached from s on the elementary interval
// [lo,hi], which by construction is either fully covered by one of s's
// edges or by none of them.
func transAt(s *State, lo, hi rune) *State {
	for _, e := range s.trans {
		if e.lo <= lo && hi <= e.hi {
			return e.to
		}
	}
	return nil
}

// boundaryOf collects the elementary-interval cut points contributed by
// every edge reachable from the given automata.
func boundaryOf(automata ...*Automaton) []rune {
	var pts []rune
	for _, a := range automata {
		for _, s := range a.States() {
			for _, e := range s.trans {
				pts = append(pts, e.lo, e.hi+1)
			}
		}
	}
	return sortedUniqueRunes(pts)
}
