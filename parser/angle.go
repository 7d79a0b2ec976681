package parser

import (
	"rex/ast"
	"rex/flags"
)

// parseAngle parses the shared "<...>" production that covers both
// named-automaton references and numeric intervals (spec.md §4.3): the
// content between the brackets is scanned raw, then classified by
// whether it contains zero interior dashes (a name) or exactly one,
// neither leading nor trailing (an interval).
func (p *parser) parseAngle() (*ast.Node, error) {
	startPos := p.pos
	p.advance() // '<'
	contentStart := p.pos
	for {
		r, ok := p.peek()
		if !ok {
			return nil, expected(p.pos, ">")
		}
		if r == '>' {
			break
		}
		p.advance()
	}
	content := p.src[contentStart:p.pos]
	p.advance() // '>'

	dashCount, dashIdx := 0, -1
	for i, r := range content {
		if r == '-' {
			dashCount++
			dashIdx = i
		}
	}
	interior := dashCount == 1 && dashIdx != 0 && dashIdx != len(content)-1

	if dashCount == 0 {
		if !p.flags.Check(flags.AUTOMATON) || len(content) == 0 {
			return nil, illegalIdentifier(startPos)
		}
		return ast.MakeNamed(string(content)), nil
	}

	if !interior {
		return nil, intervalSyntaxError(startPos)
	}
	if !p.flags.Check(flags.INTERVAL) {
		return nil, intervalSyntaxError(startPos)
	}

	leftText := string(content[:dashIdx])
	rightText := string(content[dashIdx+1:])
	m, err := parseNonNegativeDecimal(leftText, startPos)
	if err != nil {
		return nil, err
	}
	n, err := parseNonNegativeDecimal(rightText, startPos)
	if err != nil {
		return nil, err
	}
	digits := 0
	if len(leftText) == len(rightText) {
		digits = len(leftText)
	}
	if m > n {
		m, n = n, m
	}
	return ast.MakeInterval(m, n, digits), nil
}
