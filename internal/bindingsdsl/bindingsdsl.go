// Package bindingsdsl implements an alternate, line-oriented named-
// automaton bindings format:
//
//	let digit = "[0-9]";
//	let word  = "<digit>+";
//
// This mirrors internal/interpreter/parser.go's own struct-tag grammar
// (the teacher repo's participle-based robot-script parser) for a
// genuinely different, much simpler grammar: a flat sequence of
// "let <id> = <quoted pattern>;" declarations rather than an operator-
// precedence language, exactly the kind of grammar the teacher reaches
// for participle on elsewhere rather than hand-rolling (spec.md's own
// seven-level expression grammar stays hand-rolled in package parser —
// see DESIGN.md).
package bindingsdsl

import "github.com/alecthomas/participle/v2"

// File is the root of a bindings document: an ordered sequence of
// declarations, in source order, so that a later entry may reference an
// earlier one via "<id>" (spec.md §4.7 resolves named automata in
// whatever order the caller's IdentifierMap already has them in; this
// format's contribution is guaranteeing that order is the declaration
// order on disk).
type File struct {
	Bindings []*Binding `parser:"@@*"`
}

// Binding is one "let <id> = \"<pattern>\";" declaration.
type Binding struct {
	Name    string `parser:"'let' @Ident '='"`
	Pattern string `parser:"@String ';'"`
}

var dslParser = participle.MustBuild[File](participle.Unquote("String"))

// Parse parses the full text of a bindings file.
func Parse(source string) (*File, error) {
	return dslParser.ParseString("bindings", source)
}
