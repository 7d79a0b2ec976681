// Command rexrepl is an interactive session over the compiler, grounded
// in LAB_2/cmd/demo/main.go's bufio.NewReader(os.Stdin) read loop but
// replacing demo's ad hoc newline-splitting with a real tokenized
// command language (lexer.go), and replacing demo's fixed match-engine
// pattern with this module's own flag-gated surface syntax. Commands:
// :flags, :bind <id> <pattern>, :compile <pattern>, :print, :ids,
// :dot <file>, :test <string>, :help, :quit. A bare line with no leading
// command is shorthand for ":compile <line>".
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"rex/ast"
	"rex/automaton"
	"rex/flags"
	"rex/identifiers"
	"rex/lowering"
	"rex/parser"
	"rex/printer"
)

type session struct {
	syntax flags.Syntax
	idMap  lowering.IdentifierMap

	lastNode *ast.Node
	lastAuto *automaton.Automaton
}

func main() {
	lex, err := newCommandLexer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rexrepl: building command lexer:", err)
		os.Exit(1)
	}

	s := &session{syntax: flags.ALL, idMap: lowering.IdentifierMap{}}
	rdr := bufio.NewReader(os.Stdin)

	fmt.Println("rexrepl — :help for commands, :quit to exit")
	for {
		fmt.Print("rex> ")
		line, err := rdr.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			cmd, rest, ok := leadingCommand(lex, line)
			if !ok {
				cmd, rest = ":compile", line
			}
			s.dispatch(cmd, rest)
		}
		if err != nil {
			return
		}
	}
}

func (s *session) dispatch(cmd, rest string) {
	switch cmd {
	case ":flags":
		s.cmdFlags(rest)
	case ":bind":
		s.cmdBind(rest)
	case ":compile":
		s.cmdCompile(rest)
	case ":print":
		s.cmdPrint()
	case ":ids":
		s.cmdIDs()
	case ":dot":
		s.cmdDot(rest)
	case ":test":
		s.cmdTest(rest)
	case ":help":
		printHelp()
	case ":quit":
		os.Exit(0)
	}
}

func (s *session) cmdFlags(rest string) {
	if rest == "" {
		fmt.Println(s.syntax)
		return
	}
	var next flags.Syntax
	for _, name := range strings.Split(rest, ",") {
		f, ok := flags.Named(strings.ToUpper(strings.TrimSpace(name)))
		if !ok {
			fmt.Printf("unknown flag %q\n", name)
			return
		}
		next = next.With(f)
	}
	s.syntax = next
	fmt.Println("flags set to", s.syntax)
}

func (s *session) cmdBind(rest string) {
	parts := strings.SplitN(rest, " ", 2)
	if len(parts) != 2 {
		fmt.Println("usage: :bind <id> <pattern>")
		return
	}
	id, pattern := parts[0], strings.TrimSpace(parts[1])
	node, err := parser.Parse(pattern, s.syntax)
	if err != nil {
		fmt.Println("syntax error:", err)
		return
	}
	a, err := lowering.Lower(node, s.idMap, nil)
	if err != nil {
		fmt.Println("lowering error:", err)
		return
	}
	s.idMap[id] = a
	fmt.Printf("bound <%s>\n", id)
}

func (s *session) cmdCompile(rest string) {
	if rest == "" {
		fmt.Println("usage: :compile <pattern>")
		return
	}
	node, err := parser.Parse(rest, s.syntax)
	if err != nil {
		fmt.Println("syntax error:", err)
		return
	}
	a, err := lowering.Lower(node, s.idMap, nil)
	if err != nil {
		fmt.Println("lowering error:", err)
		return
	}
	s.lastNode, s.lastAuto = node, a
	fmt.Println("ok")
}

func (s *session) cmdPrint() {
	if s.lastNode == nil {
		fmt.Println("nothing compiled yet")
		return
	}
	fmt.Println(printer.Print(s.lastNode))
}

func (s *session) cmdIDs() {
	if s.lastNode == nil {
		fmt.Println("nothing compiled yet")
		return
	}
	ids := identifiers.Collect(s.lastNode)
	names := make([]string, 0, len(ids))
	for id := range ids {
		names = append(names, id)
	}
	sort.Strings(names)
	fmt.Println(strings.Join(names, ","))
}

func (s *session) cmdDot(rest string) {
	if s.lastAuto == nil {
		fmt.Println("nothing compiled yet")
		return
	}
	if rest == "" {
		automaton.ExportDOT(os.Stdout, s.lastAuto)
		return
	}
	f, err := os.Create(rest)
	if err != nil {
		fmt.Println("cannot create", rest, ":", err)
		return
	}
	defer f.Close()
	automaton.ExportDOT(f, s.lastAuto)
	fmt.Println("DOT written to", rest)
}

// cmdTest is a membership check against the last compiled automaton —
// spec.md is explicit that search/matching APIs are out of scope
// (§1 Non-goals), so this is deliberately accept/reject only, with no
// leftmost-match or capture semantics.
func (s *session) cmdTest(rest string) {
	if s.lastAuto == nil {
		fmt.Println("nothing compiled yet")
		return
	}
	if automaton.Run(s.lastAuto, rest) {
		fmt.Println("accept")
	} else {
		fmt.Println("reject")
	}
}

func printHelp() {
	fmt.Println(`commands:
  :flags [names]       show or set syntax flags (comma list, or ALL/NONE)
  :bind <id> <pattern>  compile <pattern> and bind it to <identifier>
  :compile <pattern>    parse and lower <pattern> (bare lines are shorthand)
  :print                print the canonical surface form of the last pattern
  :ids                  list every <identifier> referenced by the last pattern
  :dot [file]           export the last automaton as Graphviz DOT
  :test <string>        report whether the last automaton accepts <string>
  :quit                 exit`)
}
