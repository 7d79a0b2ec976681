// Package ast defines the sixteen-variant syntax tree produced by the
// parser and consumed by the printer, the identifier collector and the
// lowering engine. Nodes are built exclusively through the constructor
// functions in builder.go: they are the only legitimate way
// to create a Node, and they apply the local normalization (mostly
// literal-run fusion in Concat) that keeps the tree shallow and the
// printer's output canonical.
//
// This mirrors LAB_2/regexlib/ast.go's tagged astNode, widened from that
// file's eleven match-engine variants to the sixteen the compiler's
// surface grammar needs (Intersection, Complement, Empty, AnyString,
// NamedAutomaton, Interval replace regexlib's nBackRef/nGroup, which have
// no place in a backreference- and capture-free grammar).
package ast

import "fmt"

// Tag identifies which of the sixteen variants a Node is.
type Tag int

const (
	Union Tag = iota
	Concat
	Intersection
	Optional
	Repeat
	RepeatMin
	RepeatMinMax
	Complement
	Char
	CharRange
	AnyChar
	Empty
	Str
	AnyStr
	NamedAutomaton
	Interval
)

func (t Tag) String() string {
	switch t {
	case Union:
		return "Union"
	case Concat:
		return "Concat"
	case Intersection:
		return "Intersection"
	case Optional:
		return "Optional"
	case Repeat:
		return "Repeat"
	case RepeatMin:
		return "RepeatMin"
	case RepeatMinMax:
		return "RepeatMinMax"
	case Complement:
		return "Complement"
	case Char:
		return "Char"
	case CharRange:
		return "CharRange"
	case AnyChar:
		return "AnyChar"
	case Empty:
		return "Empty"
	case Str:
		return "Str"
	case AnyStr:
		return "AnyStr"
	case NamedAutomaton:
		return "NamedAutomaton"
	case Interval:
		return "Interval"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Node is the tagged AST value. Each variant uses only the fields
// documented in spec.md §3.2; the rest are zero and unused. Nodes form a
// tree (never a DAG) and are immutable once built.
type Node struct {
	Tag Tag

	L *Node // Union, Concat, Intersection (left)
	R *Node // Union, Concat, Intersection (right)
	E *Node // Optional, Repeat, RepeatMin, RepeatMinMax, Complement

	Min, Max int // RepeatMinMax.{min,max}; RepeatMin.min; Interval.{min,max}
	Digits   int // Interval.digits

	Char      rune // Char
	From, To  rune // CharRange
	Str       string
	Ident     string // NamedAutomaton
}

// RangeError is returned by MakeCharRange when from > to (spec.md §7).
type RangeError struct {
	From, To rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: from (%d) cannot be > to (%d)", e.From, e.To)
}
