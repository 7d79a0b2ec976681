package identifiers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rex/ast"
)

func TestCollectFindsEveryNamedAutomaton(t *testing.T) {
	n := ast.MakeUnion(
		ast.MakeConcat(ast.MakeNamed("digit"), ast.MakeRepeat(ast.MakeNamed("word"))),
		ast.MakeComplement(ast.MakeNamed("digit")),
	)
	ids := Collect(n)
	require.Len(t, ids, 2)
	_, hasDigit := ids["digit"]
	_, hasWord := ids["word"]
	require.True(t, hasDigit)
	require.True(t, hasWord)
}

func TestCollectIgnoresOtherLeaves(t *testing.T) {
	n := ast.MakeConcat(ast.MakeChar('a'), ast.MakeAnyChar())
	require.Empty(t, Collect(n))
}

func TestCollectOnBareLeaf(t *testing.T) {
	require.Empty(t, Collect(ast.MakeChar('a')))
	ids := Collect(ast.MakeNamed("x"))
	require.Len(t, ids, 1)
}
