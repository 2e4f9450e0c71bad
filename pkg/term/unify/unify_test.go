package unify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/term/unify"
)

func TestUnifyBindsBothSides(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")
	a := sig.NewOp(0, "a")
	b := sig.NewOp(0, "b")

	lhs := term.NewApplication(sig, f, []term.Term{x, &term.Application{Op: b}})
	rhs := term.NewApplication(sig, f, []term.Term{&term.Application{Op: a}, y})

	sub, ok := unify.Unify([]unify.Pair{{A: lhs, B: rhs}})
	require.True(t, ok)

	xImg, ok := sub.Lookup(x)
	require.True(t, ok)
	require.Equal(t, "a", term.Display(sig, xImg))

	yImg, ok := sub.Lookup(y)
	require.True(t, ok)
	require.Equal(t, "b", term.Display(sig, yImg))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(1, "f")
	x := sig.NewVar("X")

	_, ok := unify.Unify([]unify.Pair{{A: x, B: term.NewApplication(sig, f, []term.Term{x})}})
	require.False(t, ok)
}

func TestPMatchRigidSubjectVariables(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(1, "f")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")
	a := sig.NewOp(0, "a")

	pattern := term.NewApplication(sig, f, []term.Term{x})
	subject := term.NewApplication(sig, f, []term.Term{y})

	sub, ok := unify.PMatch([]unify.Pair{{A: pattern, B: subject}})
	require.True(t, ok)
	img, ok := sub.Lookup(x)
	require.True(t, ok)
	require.True(t, term.Equal(img, y))

	constant := term.NewApplication(sig, f, []term.Term{&term.Application{Op: a}})
	_, ok = unify.PMatch([]unify.Pair{{A: constant, B: subject}})
	require.False(t, ok, "subject variable Y cannot be bound to a")
}

func TestAlphaRequiresInjectiveVariableRenaming(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	x1 := sig.NewVar("X1")
	y1 := sig.NewVar("Y1")
	x2 := sig.NewVar("X2")

	a := term.NewApplication(sig, f, []term.Term{x1, y1})
	b := term.NewApplication(sig, f, []term.Term{x2, x2})

	_, ok := unify.Alpha([]unify.Pair{{A: a, B: b}})
	require.False(t, ok, "x1 and y1 cannot both rename to x2")
}

func TestAlphaRequiresIdenticalOperators(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(1, "f")
	g := sig.NewOp(1, "g")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")

	a := term.NewApplication(sig, f, []term.Term{x})
	b := term.NewApplication(sig, g, []term.Term{y})

	_, ok := unify.Alpha([]unify.Pair{{A: a, B: b}})
	require.False(t, ok)
}

func TestSameShapeAllowsOperatorRenaming(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	g := sig.NewOp(2, "g")
	x1 := sig.NewVar("X1")
	y1 := sig.NewVar("Y1")
	x2 := sig.NewVar("X2")
	y2 := sig.NewVar("Y2")

	a := term.NewApplication(sig, f, []term.Term{x1, y1})
	b := term.NewApplication(sig, g, []term.Term{x2, y2})

	require.True(t, unify.SameShape(a, b))
}
