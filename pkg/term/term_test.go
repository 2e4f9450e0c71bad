package term_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/term"
)

func TestDisplayVariableAndApplication(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	x := sig.NewVar("X")
	a := sig.NewOp(0, "a")

	app := term.NewApplication(sig, f, []term.Term{&term.Application{Op: a}, x})
	require.Equal(t, "f(a X_)", term.Display(sig, app))
}

func TestNewApplicationPanicsOnArityMismatch(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	require.Panics(t, func() {
		term.NewApplication(sig, f, []term.Term{sig.NewVar("X")})
	})
}

func TestVarsUniqueFirstSeenOrder(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(3, "f")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")

	app := term.NewApplication(sig, f, []term.Term{x, y, x})
	vars := term.Vars(app)
	require.Len(t, vars, 2)
	require.True(t, vars[0].Equal(*x))
	require.True(t, vars[1].Equal(*y))
}

func TestEqualStrictSyntactic(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(1, "f")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")

	a := term.NewApplication(sig, f, []term.Term{x})
	b := term.NewApplication(sig, f, []term.Term{x})
	c := term.NewApplication(sig, f, []term.Term{y})

	require.True(t, term.Equal(a, b))
	require.False(t, term.Equal(a, c))
}

func TestReplaceAndAt(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	g := sig.NewOp(1, "g")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")

	inner := term.NewApplication(sig, g, []term.Term{x})
	outer := term.NewApplication(sig, f, []term.Term{inner, y})

	got, ok := term.At(outer, []int{0, 0})
	require.True(t, ok)
	require.True(t, term.Equal(got, x))

	replaced, ok := term.Replace(outer, []int{0, 0}, y)
	require.True(t, ok)
	want := term.NewApplication(sig, f, []term.Term{
		term.NewApplication(sig, g, []term.Term{y}), y,
	})
	require.True(t, term.Equal(replaced, want))

	_, ok = term.Replace(outer, []int{5}, y)
	require.False(t, ok)
}

func TestSizeCountsNodes(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	x := sig.NewVar("X")
	a := sig.NewOp(0, "a")

	app := term.NewApplication(sig, f, []term.Term{&term.Application{Op: a}, x})
	require.Equal(t, 3, term.Size(app))
}
