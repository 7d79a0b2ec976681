// Command rexc batch-compiles one extended-regular-expression pattern
// to an automaton, grounded in LAB_2/cmd/regexviz/main.go's flag.String/
// flag.Bool CLI shape and its DOT-export flow (os.Create + ExportDOT).
// Unlike regexviz, rexc's source language is the compiler this module
// builds rather than regexlib's match-engine syntax, and it additionally
// accepts a named-automaton bindings file (spec.md §4 of SPEC_FULL.md —
// the distilled core has no CLI at all).
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"rex/automaton"
	"rex/flags"
	"rex/identifiers"
	"rex/internal/bindings"
	"rex/internal/bindingsdsl"
	"rex/lowering"
	"rex/parser"
	"rex/printer"
)

func main() {
	pattern := flag.String("re", "", "pattern to compile (required)")
	flagNames := flag.String("flags", "all", `syntax flags: comma list of INTERSECTION,COMPLEMENT,EMPTY,ANYSTRING,AUTOMATON,INTERVAL, or "all"/"none"`)
	bindingsFile := flag.String("bindings", "", "YAML file of identifier: pattern named-automaton bindings")
	bindingsDSLFile := flag.String("bindings-dsl", "", `bindings file in "let <id> = \"<pattern>\";" form`)
	printFlag := flag.Bool("print", false, "print the canonical surface form after parsing")
	idsFlag := flag.Bool("ids", false, "print every <identifier> referenced by the pattern")
	dotFlag := flag.Bool("dot", false, "export the compiled automaton as Graphviz DOT")
	outFile := flag.String("o", "-", `output file for -dot ("-" for stdout)`)
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: rexc -re <pattern> [-flags names] [-bindings file.yaml] [-dot] [-o file]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	syntax, err := parseFlagNames(*flagNames)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rexc:", err)
		os.Exit(2)
	}

	idMap, err := loadBindings(*bindingsFile, *bindingsDSLFile, syntax)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rexc:", err)
		os.Exit(1)
	}

	node, err := parser.Parse(*pattern, syntax)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rexc: syntax error:", err)
		os.Exit(1)
	}

	if *printFlag {
		fmt.Println(printer.Print(node))
	}
	if *idsFlag {
		ids := identifiers.Collect(node)
		names := make([]string, 0, len(ids))
		for id := range ids {
			names = append(names, id)
		}
		sort.Strings(names)
		fmt.Println(strings.Join(names, ","))
	}

	a, err := lowering.Lower(node, idMap, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rexc: lowering error:", err)
		os.Exit(1)
	}

	if *dotFlag {
		if err := writeDOT(a, *outFile); err != nil {
			fmt.Fprintln(os.Stderr, "rexc:", err)
			os.Exit(1)
		}
	}
}

func parseFlagNames(spec string) (flags.Syntax, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return flags.NONE, nil
	}
	var out flags.Syntax
	for _, name := range strings.Split(spec, ",") {
		name = strings.ToUpper(strings.TrimSpace(name))
		f, ok := flags.Named(name)
		if !ok {
			return 0, fmt.Errorf("unknown syntax flag %q", name)
		}
		out = out.With(f)
	}
	return out, nil
}

func loadBindings(yamlPath, dslPath string, syntax flags.Syntax) (lowering.IdentifierMap, error) {
	var entries []bindings.Entry

	if yamlPath != "" {
		raw, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("reading bindings %s: %w", yamlPath, err)
		}
		var table map[string]string
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parsing bindings %s: %w", yamlPath, err)
		}
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			entries = append(entries, bindings.Entry{Name: name, Pattern: table[name]})
		}
	}

	if dslPath != "" {
		raw, err := os.ReadFile(dslPath)
		if err != nil {
			return nil, fmt.Errorf("reading bindings-dsl %s: %w", dslPath, err)
		}
		file, err := bindingsdsl.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing bindings-dsl %s: %w", dslPath, err)
		}
		for _, b := range file.Bindings {
			entries = append(entries, bindings.Entry{Name: b.Name, Pattern: b.Pattern})
		}
	}

	if len(entries) == 0 {
		return nil, nil
	}
	return bindings.Compile(entries, syntax)
}

func writeDOT(a *automaton.Automaton, outFile string) error {
	if outFile == "-" {
		automaton.ExportDOT(os.Stdout, a)
		return nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", outFile, err)
	}
	defer f.Close()
	automaton.ExportDOT(f, a)
	fmt.Printf("DOT written to %s\n", outFile)
	return nil
}
