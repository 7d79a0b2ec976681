package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rex/ast"
	"rex/flags"
	"rex/printer"
)

func mustParse(t *testing.T, source string, f flags.Syntax) *ast.Node {
	t.Helper()
	n, err := Parse(source, f)
	require.NoError(t, err)
	return n
}

func TestEmptyInputIsEmptyString(t *testing.T) {
	n := mustParse(t, "", flags.ALL)
	require.Equal(t, ast.Str, n.Tag)
	require.Equal(t, "", n.Str)
}

func TestEmptyParensIsEmptyString(t *testing.T) {
	n := mustParse(t, "()", flags.ALL)
	require.Equal(t, ast.Str, n.Tag)
	require.Equal(t, "", n.Str)
}

func TestUnionPrecedence(t *testing.T) {
	n := mustParse(t, "a|b", flags.ALL)
	require.Equal(t, "(\\a|\\b)", printer.Print(n))
}

func TestConcatFusesLiterals(t *testing.T) {
	n := mustParse(t, "abc", flags.ALL)
	require.Equal(t, ast.Str, n.Tag)
	require.Equal(t, "abc", n.Str)
}

func TestRepeatLoopAppliesLeftToRight(t *testing.T) {
	n := mustParse(t, "a**?", flags.ALL)
	require.Equal(t, ast.Optional, n.Tag)
	require.Equal(t, ast.Repeat, n.E.Tag)
	require.Equal(t, ast.Repeat, n.E.E.Tag)
	require.Equal(t, ast.Char, n.E.E.E.Tag)
}

func TestPlusIsRepeatMinOne(t *testing.T) {
	n := mustParse(t, "a+", flags.ALL)
	require.Equal(t, ast.RepeatMin, n.Tag)
	require.Equal(t, 1, n.Min)
}

func TestBraceExactCount(t *testing.T) {
	n := mustParse(t, "a{3}", flags.ALL)
	require.Equal(t, ast.RepeatMinMax, n.Tag)
	require.Equal(t, 3, n.Min)
	require.Equal(t, 3, n.Max)
}

func TestBraceMinOnly(t *testing.T) {
	n := mustParse(t, "a{2,}", flags.ALL)
	require.Equal(t, ast.RepeatMin, n.Tag)
	require.Equal(t, 2, n.Min)
}

func TestBraceMinMax(t *testing.T) {
	n := mustParse(t, "a{2,5}", flags.ALL)
	require.Equal(t, ast.RepeatMinMax, n.Tag)
	require.Equal(t, 2, n.Min)
	require.Equal(t, 5, n.Max)
}

func TestCharClassRange(t *testing.T) {
	n := mustParse(t, "[a-z]", flags.ALL)
	require.Equal(t, ast.CharRange, n.Tag)
	require.Equal(t, 'a', n.From)
	require.Equal(t, 'z', n.To)
}

func TestCharClassImplicitUnion(t *testing.T) {
	n := mustParse(t, "[abc]", flags.ALL)
	require.Equal(t, ast.Union, n.Tag)
}

func TestCharClassNegationIsIntersectComplement(t *testing.T) {
	n := mustParse(t, "[^a]", flags.ALL)
	require.Equal(t, ast.Intersection, n.Tag)
	require.Equal(t, ast.AnyChar, n.L.Tag)
	require.Equal(t, ast.Complement, n.R.Tag)
	require.Equal(t, ast.Char, n.R.E.Tag)
	require.Equal(t, 'a', n.R.E.Char)
}

func TestCharClassMissingCloseBracketIsSyntaxError(t *testing.T) {
	_, err := Parse("[abc", flags.ALL)
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestQuotedStringVerbatim(t *testing.T) {
	n := mustParse(t, `"a|b*"`, flags.ALL)
	require.Equal(t, ast.Str, n.Tag)
	require.Equal(t, "a|b*", n.Str)
}

func TestQuotedStringMissingCloseQuoteIsSyntaxError(t *testing.T) {
	_, err := Parse(`"abc`, flags.ALL)
	require.Error(t, err)
}

func TestBackslashEscapesRaw(t *testing.T) {
	n := mustParse(t, `\*`, flags.ALL)
	require.Equal(t, ast.Char, n.Tag)
	require.Equal(t, '*', n.Char)
}

func TestNamedAutomaton(t *testing.T) {
	n := mustParse(t, "<digit>", flags.AUTOMATON)
	require.Equal(t, ast.NamedAutomaton, n.Tag)
	require.Equal(t, "digit", n.Ident)
}

func TestIntervalBasic(t *testing.T) {
	n := mustParse(t, "<5-12>", flags.INTERVAL)
	require.Equal(t, ast.Interval, n.Tag)
	require.Equal(t, 5, n.Min)
	require.Equal(t, 12, n.Max)
	require.Equal(t, 0, n.Digits)
}

func TestIntervalPadded(t *testing.T) {
	n := mustParse(t, "<05-12>", flags.INTERVAL)
	require.Equal(t, ast.Interval, n.Tag)
	require.Equal(t, 5, n.Min)
	require.Equal(t, 12, n.Max)
	require.Equal(t, 2, n.Digits)
}

func TestIntervalReversedIsNormalized(t *testing.T) {
	n := mustParse(t, "<12-5>", flags.INTERVAL)
	require.Equal(t, ast.Interval, n.Tag)
	require.Equal(t, 5, n.Min)
	require.Equal(t, 12, n.Max)
}

func TestIntersectionOperator(t *testing.T) {
	n := mustParse(t, "a&b", flags.INTERSECTION)
	require.Equal(t, ast.Intersection, n.Tag)
}

func TestComplementOperator(t *testing.T) {
	n := mustParse(t, "~a", flags.COMPLEMENT)
	require.Equal(t, ast.Complement, n.Tag)
}

func TestEmptyLanguageLeaf(t *testing.T) {
	n := mustParse(t, "#", flags.EMPTY)
	require.Equal(t, ast.Empty, n.Tag)
}

func TestAnyStringLeaf(t *testing.T) {
	n := mustParse(t, "@", flags.ANYSTRING)
	require.Equal(t, ast.AnyStr, n.Tag)
}

// TestFlagGatingRejectsDisabledProduction is spec.md P1: with a given
// optional flag cleared, input using that production fails with a
// SyntaxError at the offending character's position.
func TestFlagGatingRejectsDisabledProduction(t *testing.T) {
	cases := []struct {
		name   string
		source string
		all    flags.Syntax
	}{
		{"intersection", "a&b", flags.NONE},
		{"complement", "~a", flags.NONE},
		{"empty", "#", flags.NONE},
		{"anystring", "@", flags.NONE},
		{"automaton", "<id>", flags.NONE},
		{"interval", "<1-2>", flags.NONE},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.source, c.all)
			require.Error(t, err)
			var se *SyntaxError
			require.ErrorAs(t, err, &se)
		})
	}
}

// TestFlagGatingAgreesWithAllForMandatoryProductions is the positive half
// of P1: mandatory-only input parses identically under NONE and ALL.
func TestFlagGatingAgreesWithAllForMandatoryProductions(t *testing.T) {
	for _, source := range []string{"a", "ab", "a|b", "a*", "a+", "a?", "a{2,3}", "[a-z]", "\"lit\"", "."} {
		withAll, err := Parse(source, flags.ALL)
		require.NoError(t, err)
		withNone, err := Parse(source, flags.NONE)
		require.NoError(t, err)
		require.Equal(t, printer.Print(withAll), printer.Print(withNone))
	}
}

// TestTotality is spec.md P2: every input either parses with pos at the
// end, or raises a SyntaxError — never panics, never partially consumes.
func TestTotality(t *testing.T) {
	inputs := []string{
		"", "a", "a|", "|a", "a**", "a{", "a{2", "a{2,", "[a-", "[^]",
		"\"unterminated", "<unterminated", "~", "&", "(((",
	}
	for _, in := range inputs {
		_, err := Parse(in, flags.ALL)
		if err != nil {
			var se *SyntaxError
			require.ErrorAs(t, err, &se, "input %q", in)
		}
	}
}

func TestEndOfStringExpectedOnTrailingGarbage(t *testing.T) {
	_, err := Parse("a)", flags.ALL)
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestSupplementaryCodePointChar(t *testing.T) {
	n := mustParse(t, "\U0001F600", flags.ALL)
	require.Equal(t, ast.Char, n.Tag)
	require.Equal(t, rune(0x1F600), n.Char)
}
