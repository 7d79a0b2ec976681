// The REPL's command lexer: a small lexmachine.Lexer that recognizes the
// leading ":word" command on an input line, grounded in
// LAB_3_Drone/lexer/lexer.go's Add(pattern, action)/Scanner.Next() shape
// — generalized from that file's full token language (operators,
// keywords, integers) down to just the fixed command-word alphabet this
// REPL needs, since everything after the command word is either a
// pattern, an identifier or a filename and is intentionally left
// untokenized (spec.md's own grammar, not a shell language, owns pattern
// syntax).
package main

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// cmdToken is the single token kind this lexer ever produces: one of the
// recognized leading command words, carrying its own literal text so the
// caller can slice the remainder of the line off without needing the
// scanner's internal cursor.
type cmdToken struct {
	Literal string
}

var commandWords = []string{
	":flags", ":bind", ":compile", ":print", ":ids", ":dot", ":test", ":help", ":quit",
}

func newCommandLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	for _, w := range commandWords {
		word := w
		lex.Add([]byte(word), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
			return cmdToken{Literal: word}, nil
		})
	}
	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}

// leadingCommand scans a trimmed input line for its leading command word.
// ok is false if the line does not begin with one of commandWords, in
// which case the caller should treat the whole line as a bare pattern
// (the REPL's ":compile"-less shorthand).
func leadingCommand(lex *lexmachine.Lexer, line string) (cmd, rest string, ok bool) {
	scanner, err := lex.Scanner([]byte(line))
	if err != nil {
		return "", line, false
	}
	tok, err, eof := scanner.Next()
	if eof || err != nil {
		return "", line, false
	}
	ct, isCmd := tok.(cmdToken)
	if !isCmd {
		return "", line, false
	}
	return ct.Literal, strings.TrimSpace(line[len(ct.Literal):]), true
}
