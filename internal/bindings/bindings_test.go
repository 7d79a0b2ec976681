package bindings

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rex/automaton"
	"rex/flags"
)

func TestCompileInDeclarationOrder(t *testing.T) {
	entries := []Entry{
		{Name: "digit", Pattern: "[0-9]"},
		{Name: "word", Pattern: "<digit>+"},
	}
	m, err := Compile(entries, flags.ALL)
	require.NoError(t, err)
	require.True(t, automaton.Run(m["digit"], "5"))
	require.True(t, automaton.Run(m["word"], "42"))
	require.False(t, automaton.Run(m["word"], ""))
}

func TestCompileToleratesForwardReferenceOrder(t *testing.T) {
	entries := []Entry{
		{Name: "word", Pattern: "<digit>+"},
		{Name: "digit", Pattern: "[0-9]"},
	}
	m, err := Compile(entries, flags.ALL)
	require.NoError(t, err)
	require.True(t, automaton.Run(m["word"], "42"))
}

func TestCompileFailsOnTrulyMissingIdentifier(t *testing.T) {
	entries := []Entry{
		{Name: "word", Pattern: "<nope>+"},
	}
	_, err := Compile(entries, flags.ALL)
	require.Error(t, err)
}

func TestCompileFailsOnSyntaxError(t *testing.T) {
	entries := []Entry{
		{Name: "broken", Pattern: "[a-"},
	}
	_, err := Compile(entries, flags.ALL)
	require.Error(t, err)
}
