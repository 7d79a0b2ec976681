package ast

// MakeChar builds a literal-character leaf.
func MakeChar(c rune) *Node { return &Node{Tag: Char, Char: c} }

// MakeAnyChar builds the "." leaf.
func MakeAnyChar() *Node { return &Node{Tag: AnyChar} }

// MakeEmpty builds the "#" (empty language) leaf.
func MakeEmpty() *Node { return &Node{Tag: Empty} }

// MakeAnyString builds the "@" (Σ*) leaf.
func MakeAnyString() *Node { return &Node{Tag: AnyStr} }

// MakeNamed builds a "<s>" named-automaton reference.
func MakeNamed(s string) *Node { return &Node{Tag: NamedAutomaton, Ident: s} }

// MakeString wraps a literal string.
func MakeString(s string) *Node { return &Node{Tag: Str, Str: s} }

// MakeCharRange builds an inclusive [from-to] leaf. It fails with
// *RangeError if from > to — the one hard validation a builder performs
// (spec.md §3.2, §7 RangeError).
func MakeCharRange(from, to rune) (*Node, error) {
	if from > to {
		return nil, &RangeError{From: from, To: to}
	}
	return &Node{Tag: CharRange, From: from, To: to}, nil
}

// MakeOptional wraps E in "E?". No normalization is applied.
func MakeOptional(e *Node) *Node { return &Node{Tag: Optional, E: e} }

// MakeRepeat wraps E in "E*" (unbounded Kleene star).
func MakeRepeat(e *Node) *Node { return &Node{Tag: Repeat, E: e} }

// MakeRepeatMin wraps E in "E{min,}".
func MakeRepeatMin(e *Node, min int) *Node { return &Node{Tag: RepeatMin, E: e, Min: min} }

// MakeRepeatMinMax wraps E in "E{min,max}". Unlike MakeCharRange, this
// constructor does not validate max >= min — spec.md §3.2 leaves that
// unchecked at construction time (see spec.md §9 Open Question 1); the
// automaton library's repeat(n, m) decides what a max < min means.
func MakeRepeatMinMax(e *Node, min, max int) *Node {
	return &Node{Tag: RepeatMinMax, E: e, Min: min, Max: max}
}

// MakeComplement wraps E in "~E".
func MakeComplement(e *Node) *Node { return &Node{Tag: Complement, E: e} }

// MakeUnion wraps L and R in "L|R". No normalization is applied (unlike
// MakeConcat, union does not need literal fusion to stay canonical).
func MakeUnion(l, r *Node) *Node { return &Node{Tag: Union, L: l, R: r} }

// MakeIntersection wraps L and R in "L&R".
func MakeIntersection(l, r *Node) *Node { return &Node{Tag: Intersection, L: l, R: r} }

// MakeInterval wraps an already-normalized (min <= max, caller-ordered)
// numeric interval.
func MakeInterval(min, max, digits int) *Node {
	return &Node{Tag: Interval, Min: min, Max: max, Digits: digits}
}

// MakeConcat wraps L and R in "LR", merging adjacent literal runs so
// that the printer emits "abc" rather than \a\b\c and lowering allocates
// fewer intermediate automata (spec.md §4.2). This is the only builder
// that performs non-trivial normalization.
func MakeConcat(l, r *Node) *Node {
	if isLiteral(l) && isLiteral(r) {
		return MakeString(literalText(l) + literalText(r))
	}
	if l.Tag == Concat && isLiteral(l.R) && isLiteral(r) {
		return &Node{Tag: Concat, L: l.L, R: MakeString(literalText(l.R) + literalText(r))}
	}
	if r.Tag == Concat && isLiteral(r.L) && isLiteral(l) {
		return &Node{Tag: Concat, L: MakeString(literalText(l) + literalText(r.L)), R: r.R}
	}
	return &Node{Tag: Concat, L: l, R: r}
}

func isLiteral(n *Node) bool {
	return n.Tag == Char || n.Tag == Str
}

func literalText(n *Node) string {
	if n.Tag == Char {
		return string(n.Char)
	}
	return n.Str
}
