package trs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/rule"
	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

func buildPeanoAdd(t *testing.T) (term.Signature, *rule.Rule, *rule.Rule) {
	t.Helper()
	sig := term.New()
	zero := sig.NewOp(0, "zero")
	succ := sig.NewOp(1, "succ")
	add := sig.NewOp(2, "add")
	x := sig.NewVar("X")
	y := sig.NewVar("Y")

	addZero, ok := rule.New(
		term.NewApplication(sig, add, []term.Term{&term.Application{Op: zero}, y}),
		[]term.Term{y},
	)
	require.True(t, ok)

	addSucc, ok := rule.New(
		term.NewApplication(sig, add, []term.Term{
			term.NewApplication(sig, succ, []term.Term{x}), y,
		}),
		[]term.Term{
			term.NewApplication(sig, succ, []term.Term{
				term.NewApplication(sig, add, []term.Term{x, y}),
			}),
		},
	)
	require.True(t, ok)
	return sig, addZero, addSucc
}

func TestNewMergesDuplicateLHSWithoutWarnings(t *testing.T) {
	_, addZero, _ := buildPeanoAdd(t)
	system := trs.New([]*rule.Rule{addZero, addZero})
	require.Equal(t, 1, system.Len())
	require.NoError(t, system.ConstructionWarnings(), "duplicate LHS merges rather than warns")
}

func TestPushMovesNewRuleToFront(t *testing.T) {
	_, addZero, addSucc := buildPeanoAdd(t)
	system := trs.New([]*rule.Rule{addZero, addSucc})
	require.Equal(t, 2, system.Len())

	front, ok := system.GetIdx(0)
	require.True(t, ok)
	require.True(t, front.AlphaEquivalentLHS(addSucc))
}

func TestInsertClausesRejectedUnderDeterminism(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(1, "f")
	g := sig.NewOp(1, "g")
	h := sig.NewOp(1, "h")
	x := sig.NewVar("X")

	r1, _ := rule.New(term.NewApplication(sig, f, []term.Term{x}), []term.Term{
		term.NewApplication(sig, g, []term.Term{x}),
	})
	system := trs.New([]*rule.Rule{r1})
	system.MakeDeterministic()

	y := sig.NewVar("Y")
	r2, _ := rule.New(term.NewApplication(sig, f, []term.Term{y}), []term.Term{
		term.NewApplication(sig, h, []term.Term{y}),
	})
	err := system.InsertClauses(r2)
	require.Error(t, err)
	require.True(t, errors.Is(err, trs.Sentinel(trs.NondeterministicRule)))
}

func TestRemoveIdxInvalidIndex(t *testing.T) {
	_, addZero, _ := buildPeanoAdd(t)
	system := trs.New([]*rule.Rule{addZero})
	_, err := system.RemoveIdx(5)
	require.Error(t, err)
	require.True(t, errors.Is(err, trs.Sentinel(trs.InvalidIndex)))
}

func TestAlphasComparesPointwiseInOrder(t *testing.T) {
	sig, addZero, addSucc := buildPeanoAdd(t)
	a := trs.New([]*rule.Rule{addZero, addSucc})
	b := trs.New([]*rule.Rule{addZero, addSucc})
	require.True(t, a.Alphas(b))

	_ = sig
	c := trs.New([]*rule.Rule{addSucc, addZero})
	require.False(t, a.Alphas(c), "order matters for pointwise relation")
}
