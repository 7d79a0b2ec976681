// Package parser implements the seven-level recursive-descent parser of
// spec.md §4.3: union, inter, concat, repeat, compl, charclass, simple,
// bottoming out at charexp. Each level is one function, lowest precedence
// first, exactly mirroring LAB_2/regexlib/parser.go's top-down structure
// (that file is a Pratt parser over a token stream; this one walks a rune
// cursor directly since the grammar's escaping and quoting rules are
// context-sensitive in a way a generic token lexer would only complicate).
package parser

import (
	"rex/ast"
	"rex/flags"
)

// Parse parses source under the given syntax flags and returns the root
// AST node, or a *SyntaxError. The empty string parses to ast.MakeString("").
func Parse(source string, f flags.Syntax) (*ast.Node, error) {
	p := newParser(source, f)
	node, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, endOfStringExpected(p.pos)
	}
	return node, nil
}

func (p *parser) parseUnion() (*ast.Node, error) {
	left, err := p.parseInter()
	if err != nil {
		return nil, err
	}
	if p.match('|') {
		right, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		return ast.MakeUnion(left, right), nil
	}
	return left, nil
}

func (p *parser) parseInter() (*ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if p.flags.Check(flags.INTERSECTION) && p.match('&') {
		right, err := p.parseInter()
		if err != nil {
			return nil, err
		}
		return ast.MakeIntersection(left, right), nil
	}
	return left, nil
}

// atConcatStop reports whether the cursor sits on a character that ends
// the current concatenation run: end of input, ')', '|', or '&' when
// INTERSECTION is enabled. Every other character — including all the
// postfix/prefix operator characters — starts a new concatenation term.
func (p *parser) atConcatStop() bool {
	r, ok := p.peek()
	if !ok {
		return true
	}
	if r == ')' || r == '|' {
		return true
	}
	if r == '&' && p.flags.Check(flags.INTERSECTION) {
		return true
	}
	return false
}

func (p *parser) parseConcat() (*ast.Node, error) {
	if p.atConcatStop() {
		return ast.MakeString(""), nil
	}
	left, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	for !p.atConcatStop() {
		right, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		left = ast.MakeConcat(left, right)
	}
	return left, nil
}

// parseRepeat consumes zero or more postfix quantifiers, left to right,
// so "a**?" is well-formed: '*' applies to 'a', then '?' applies to the
// result of that, per spec.md §4.3.
func (p *parser) parseRepeat() (*ast.Node, error) {
	left, err := p.parseCompl()
	if err != nil {
		return nil, err
	}
	for {
		r, ok := p.peek()
		if !ok {
			return left, nil
		}
		switch r {
		case '?':
			p.advance()
			left = ast.MakeOptional(left)
		case '*':
			p.advance()
			left = ast.MakeRepeat(left)
		case '+':
			p.advance()
			left = ast.MakeRepeatMin(left, 1)
		case '{':
			min, max, err := p.parseBraces()
			if err != nil {
				return nil, err
			}
			if max == -1 {
				left = ast.MakeRepeatMin(left, min)
			} else {
				left = ast.MakeRepeatMinMax(left, min, max)
			}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseCompl() (*ast.Node, error) {
	if p.flags.Check(flags.COMPLEMENT) {
		if r, ok := p.peek(); ok && r == '~' {
			p.advance()
			inner, err := p.parseCompl()
			if err != nil {
				return nil, err
			}
			return ast.MakeComplement(inner), nil
		}
	}
	return p.parseCharClass()
}

// parseBraces parses "{n}", "{n,}" or "{n,m}" starting at the '{'.
// Returns (min, max) with max == -1 meaning unbounded ("{n,}").
func (p *parser) parseBraces() (int, int, error) {
	p.advance() // '{'
	n, ok, err := p.parseDecimal()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, integerExpected(p.pos)
	}
	max := n
	if p.match(',') {
		m, ok, err := p.parseDecimal()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			max = -1
		} else {
			max = m
		}
	}
	if !p.match('}') {
		return 0, 0, expected(p.pos, "}")
	}
	return n, max, nil
}
