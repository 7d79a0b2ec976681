package printer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rex/ast"
	"rex/flags"
	"rex/parser"
)

func TestPrintLeaves(t *testing.T) {
	require.Equal(t, "\\a", Print(ast.MakeChar('a')))
	require.Equal(t, ".", Print(ast.MakeAnyChar()))
	require.Equal(t, "#", Print(ast.MakeEmpty()))
	require.Equal(t, "@", Print(ast.MakeAnyString()))
	require.Equal(t, `"abc"`, Print(ast.MakeString("abc")))
	require.Equal(t, "<id>", Print(ast.MakeNamed("id")))
}

func TestPrintCharRange(t *testing.T) {
	n, err := ast.MakeCharRange('a', 'z')
	require.NoError(t, err)
	require.Equal(t, `[\a-\z]`, Print(n))
}

func TestPrintOperatorsWrapInParens(t *testing.T) {
	c := ast.MakeChar('a')
	require.Equal(t, "(\\a)?", Print(ast.MakeOptional(c)))
	require.Equal(t, "(\\a)*", Print(ast.MakeRepeat(c)))
	require.Equal(t, "(\\a){2,}", Print(ast.MakeRepeatMin(c, 2)))
	require.Equal(t, "(\\a){2,3}", Print(ast.MakeRepeatMinMax(c, 2, 3)))
	require.Equal(t, "(~\\a)", Print(ast.MakeComplement(c)))
	require.Equal(t, "(\\a|\\b)", Print(ast.MakeUnion(c, ast.MakeChar('b'))))
	require.Equal(t, "(\\a&\\b)", Print(ast.MakeIntersection(c, ast.MakeChar('b'))))
}

func TestPrintConcatNoParens(t *testing.T) {
	n := ast.MakeConcat(ast.MakeOptional(ast.MakeChar('a')), ast.MakeChar('b'))
	require.Equal(t, "(\\a)?\\b", Print(n))
}

func TestPrintIntervalPadding(t *testing.T) {
	require.Equal(t, "<05-12>", Print(ast.MakeInterval(5, 12, 2)))
	require.Equal(t, "<5-12>", Print(ast.MakeInterval(5, 12, 0)))
}

// TestRoundTripReparses is spec.md P3: reparsing a printed AST
// under ALL flags yields an AST whose automaton accepts the same
// strings (language equivalence is delegated to lowering+Run; this
// package only checks that the printed form is itself re-parseable).
func TestRoundTripReparses(t *testing.T) {
	sources := []string{
		"a|b", "ab*c", "a+", "a?", "a{2,3}", "[a-z]", "[^a]",
		`"lit"`, ".", "<id>",
	}
	for _, src := range sources {
		n, err := parser.Parse(src, flags.ALL)
		require.NoError(t, err)
		printed := Print(n)
		_, err = parser.Parse(printed, flags.ALL)
		require.NoError(t, err, "reparsing printed form %q of %q", printed, src)
	}
}
