package term_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/term"
)

func TestSignatureIsACheapSharedHandle(t *testing.T) {
	sig := term.New()
	other := sig
	require.True(t, sig.Equal(other))
	require.False(t, sig.Equal(term.New()))
}

func TestFindBinaryDotPrefersFirstRegistered(t *testing.T) {
	sig := term.New()
	first := sig.NewOp(2, ".")
	sig.NewOp(2, ".")

	dot, ok := sig.FindBinaryDot()
	require.True(t, ok)
	require.True(t, dot.Equal(first))
}

func TestFindNullaryByNameFindsOrCreates(t *testing.T) {
	sig := term.New()
	a := sig.FindNullaryByName("7")
	b := sig.FindNullaryByName("7")
	require.True(t, a.Equal(b))
	require.Len(t, sig.Operators(), 1)
}
