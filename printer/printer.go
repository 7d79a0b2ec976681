// Package printer renders an AST back to the canonical surface syntax of
// spec.md §4.4. Reparsing the output under ALL flags yields an AST that
// lowers to an equivalent automaton, though not necessarily a
// structurally identical tree (spec.md P3).
package printer

import (
	"strconv"
	"strings"

	"rex/ast"
)

// Print renders n in canonical form.
func Print(n *ast.Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n *ast.Node) {
	switch n.Tag {
	case ast.Union:
		b.WriteByte('(')
		write(b, n.L)
		b.WriteByte('|')
		write(b, n.R)
		b.WriteByte(')')
	case ast.Intersection:
		b.WriteByte('(')
		write(b, n.L)
		b.WriteByte('&')
		write(b, n.R)
		b.WriteByte(')')
	case ast.Concat:
		write(b, n.L)
		write(b, n.R)
	case ast.Optional:
		b.WriteByte('(')
		write(b, n.E)
		b.WriteString(")?")
	case ast.Repeat:
		b.WriteByte('(')
		write(b, n.E)
		b.WriteString(")*")
	case ast.RepeatMin:
		b.WriteByte('(')
		write(b, n.E)
		b.WriteString("){")
		b.WriteString(strconv.Itoa(n.Min))
		b.WriteString(",}")
	case ast.RepeatMinMax:
		b.WriteByte('(')
		write(b, n.E)
		b.WriteString("){")
		b.WriteString(strconv.Itoa(n.Min))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(n.Max))
		b.WriteByte('}')
	case ast.Complement:
		b.WriteString("(~")
		write(b, n.E)
		b.WriteByte(')')
	case ast.Char:
		b.WriteByte('\\')
		b.WriteRune(n.Char)
	case ast.CharRange:
		b.WriteString("[\\")
		b.WriteRune(n.From)
		b.WriteByte('-')
		b.WriteByte('\\')
		b.WriteRune(n.To)
		b.WriteByte(']')
	case ast.AnyChar:
		b.WriteByte('.')
	case ast.Empty:
		b.WriteByte('#')
	case ast.Str:
		b.WriteByte('"')
		b.WriteString(n.Str)
		b.WriteByte('"')
	case ast.AnyStr:
		b.WriteByte('@')
	case ast.NamedAutomaton:
		b.WriteByte('<')
		b.WriteString(n.Ident)
		b.WriteByte('>')
	case ast.Interval:
		b.WriteByte('<')
		b.WriteString(pad(n.Min, n.Digits))
		b.WriteByte('-')
		b.WriteString(pad(n.Max, n.Digits))
		b.WriteByte('>')
	}
}

func pad(v, digits int) string {
	s := strconv.Itoa(v)
	if digits > 0 {
		for len(s) < digits {
			s = "0" + s
		}
	}
	return s
}
