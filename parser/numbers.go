package parser

import "strconv"

// parseDecimal consumes a run of ASCII digits at the cursor and returns
// (value, true, nil), or (0, false, nil) if no digit was present.
// Overflow of a 32-bit signed integer is a hard parse error (spec.md §9
// Open Question 3): the source's naive 32-bit parse has no overflow
// check, but this compiler adds one rather than silently wrapping.
func (p *parser) parseDecimal() (int, bool, error) {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		p.advance()
	}
	if p.pos == start {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(string(p.src[start:p.pos]), 10, 32)
	if err != nil {
		return 0, true, integerExpected(start)
	}
	return int(v), true, nil
}

// parseNonNegativeDecimal parses a standalone decimal string extracted
// from an already-scanned "<min-max>" body (spec.md §4.3's interval
// production). An empty string or any non-digit rune is a syntax error;
// overflow is likewise rejected rather than wrapped.
func parseNonNegativeDecimal(s string, pos int) (int, error) {
	if s == "" {
		return 0, intervalSyntaxError(pos)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, intervalSyntaxError(pos)
		}
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, intervalSyntaxError(pos)
	}
	return int(v), nil
}
