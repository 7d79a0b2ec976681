package automaton

import "strconv"

// MakeChar builds the one-state-transition automaton accepting the
// single rune c, mirroring regexlib/nfa.go's literal-rune case of
// buildNFA but as a standalone leaf constructor (spec.md §6.2).
func MakeChar(c rune) *Automaton {
	return MakeCharRange(c, c)
}

// MakeCharRange builds the automaton accepting any single rune in
// [from,to]. This is the one place the per-rune NFA edges of regexlib's
// buildNFA generalize directly to an interval edge.
func MakeCharRange(from, to rune) *Automaton {
	s1, s2 := newState(), newState()
	s2.accept = true
	s1.trans = []edge{{lo: from, hi: to, to: s2}}
	return &Automaton{start: s1}
}

// MakeAnyChar builds the automaton accepting any single code point.
func MakeAnyChar() *Automaton {
	return MakeCharRange(0, maxCodePoint)
}

// MakeEmpty builds the automaton accepting no string at all (the empty
// *language*, distinct from MakeString("")).
func MakeEmpty() *Automaton {
	return &Automaton{start: newState()}
}

// MakeString builds the automaton accepting exactly s, one state per
// rune boundary, directly mirroring regexlib's buildNFA concatenation
// chain for a literal run.
func MakeString(s string) *Automaton {
	start := newState()
	cur := start
	for _, r := range s {
		next := newState()
		cur.trans = []edge{{lo: r, hi: r, to: next}}
		cur = next
	}
	cur.accept = true
	return &Automaton{start: start}
}

// MakeAnyString builds the automaton accepting every string, including
// the empty one: a single accepting state with a self-loop over every
// code point.
func MakeAnyString() *Automaton {
	s := newState()
	s.accept = true
	s.trans = []edge{{lo: 0, hi: maxCodePoint, to: s}}
	return &Automaton{start: s}
}

// MakeInterval builds the automaton accepting the decimal string form of
// every integer in [min,max]. When digits > 0 every accepted string is
// zero-padded to exactly that width; when digits == 0 each integer's
// plain strconv.Itoa form is accepted instead. Both are built by union
// over the (small, by construction — parser/angle.go only reaches this
// for literal <m-n> bounds) enumerated literal strings, the same
// naive-expansion trade-off regexlib/nfa.go takes for bounded repeat
// counts rather than a dedicated digit-DFA.
func MakeInterval(min, max, digits int) *Automaton {
	list := make([]*Automaton, 0, max-min+1)
	for v := min; v <= max; v++ {
		s := strconv.Itoa(v)
		if digits > 0 {
			for len(s) < digits {
				s = "0" + s
			}
		}
		list = append(list, MakeString(s))
	}
	return Union(list)
}
