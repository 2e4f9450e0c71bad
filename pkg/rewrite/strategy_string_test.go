package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/rewrite"
	"github.com/gitrdm/rewrite/pkg/rule"
	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

func TestStringRewriteStripsWrappingBrackets(t *testing.T) {
	sig := term.New()
	dot := sig.NewOp(2, ".")
	a := sig.NewOp(0, "a")
	b := sig.NewOp(0, "b")
	c := sig.NewOp(0, "c")
	x := sig.NewVar("X")

	lhs := buildDotChain(sig, dot, &term.Application{Op: a}, x, &term.Application{Op: b})
	r, ok := rule.New(lhs, []term.Term{x})
	require.True(t, ok)

	system := trs.New([]*rule.Rule{r})
	input := buildDotChain(sig, dot, &term.Application{Op: a}, &term.Application{Op: c}, &term.Application{Op: b})

	var results []string
	for rewritten := range rewrite.Rewrite(sig, system, input, rewrite.String) {
		results = append(results, term.Display(sig, rewritten))
	}
	require.Equal(t, []string{"c"}, results)
}

func TestStringRewriteNoMatchYieldsNothing(t *testing.T) {
	sig := term.New()
	dot := sig.NewOp(2, ".")
	a := sig.NewOp(0, "a")
	b := sig.NewOp(0, "b")
	x := sig.NewVar("X")

	lhs := buildDotChain(sig, dot, &term.Application{Op: a}, x, &term.Application{Op: b})
	r, _ := rule.New(lhs, []term.Term{x})
	system := trs.New([]*rule.Rule{r})

	input := &term.Application{Op: sig.NewOp(0, "z")}
	count := 0
	for range rewrite.Rewrite(sig, system, input, rewrite.String) {
		count++
	}
	require.Equal(t, 0, count)
}
