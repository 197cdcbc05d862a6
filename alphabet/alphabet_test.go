package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/alignkit/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	_, err := alphabet.New(nil)
	assert.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)
}

func TestNew_Duplicate(t *testing.T) {
	_, err := alphabet.New([]rune("ACGA"))
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)
}

func TestNewFromString_PreservesOrder(t *testing.T) {
	a, err := alphabet.NewFromString("ACGT")
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())

	for i, want := range []rune("ACGT") {
		got, ok := a.SymbolAt(i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestIndexOf(t *testing.T) {
	a, err := alphabet.NewFromString("ACGT")
	require.NoError(t, err)

	idx, ok := a.IndexOf('G')
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = a.IndexOf('X')
	assert.False(t, ok)
}

func TestSymbolAt_OutOfRange(t *testing.T) {
	a, err := alphabet.NewFromString("AC")
	require.NoError(t, err)

	_, ok := a.SymbolAt(-1)
	assert.False(t, ok)
	_, ok = a.SymbolAt(2)
	assert.False(t, ok)
}
