package parser

import "rex/ast"

// parseCharClass dispatches between a bracketed character class and the
// simple production; charclass itself is ungated by any syntax flag —
// negation's "AnyChar ∩ ~inner" rewrite (spec.md P8) always applies
// regardless of whether INTERSECTION/COMPLEMENT tokens are enabled at
// the surface, since it is an AST-level transformation, not a use of the
// '&'/'~' surface operators.
func (p *parser) parseCharClass() (*ast.Node, error) {
	r, ok := p.peek()
	if !ok || r != '[' {
		return p.parseSimple()
	}
	p.advance() // '['
	negate := p.match('^')

	var items []*ast.Node
	for {
		r, ok := p.peek()
		if !ok {
			return nil, expected(p.pos, "]")
		}
		if r == ']' {
			break
		}
		item, err := p.parseCharClassItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	p.advance() // ']'

	var body *ast.Node
	if len(items) == 0 {
		body = ast.MakeEmpty()
	} else {
		body = items[0]
		for _, it := range items[1:] {
			body = ast.MakeUnion(body, it)
		}
	}
	if negate {
		return ast.MakeIntersection(ast.MakeAnyChar(), ast.MakeComplement(body)), nil
	}
	return body, nil
}

// parseCharClassItem parses one "charexp ('-' charexp)?" inside brackets.
func (p *parser) parseCharClassItem() (*ast.Node, error) {
	from, err := p.parseCharExpRune(true)
	if err != nil {
		return nil, err
	}
	if p.match('-') {
		to, err := p.parseCharExpRune(true)
		if err != nil {
			return nil, err
		}
		node, rerr := ast.MakeCharRange(from, to)
		if rerr != nil {
			return nil, &SyntaxError{Pos: p.pos, Msg: rerr.Error()}
		}
		return node, nil
	}
	return ast.MakeChar(from), nil
}

// parseCharExpRune implements charexp: a backslash followed by any code
// point is that code point, literally — a raw escape with no special
// sequences (\n, \t, \d, ... do not exist in this grammar). Otherwise the
// code point must not be reserved at the current flag/context level.
func (p *parser) parseCharExpRune(inClass bool) (rune, error) {
	r, ok := p.peek()
	if !ok {
		return 0, unexpectedEOF(p.pos)
	}
	if r == '\\' {
		p.advance()
		r2, ok := p.peek()
		if !ok {
			return 0, unexpectedEOF(p.pos)
		}
		p.advance()
		return r2, nil
	}
	if p.isReserved(r, inClass) {
		return 0, unexpectedToken(p.pos)
	}
	p.advance()
	return r, nil
}
