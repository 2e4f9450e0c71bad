package rewrite

import (
	"iter"

	"github.com/gitrdm/rewrite/pkg/rule"
	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

// Strategy selects one of the four rewrite disciplines of SPEC_FULL.md §4.6.
type Strategy int

const (
	// Normal is leftmost-outermost: the first redex found scanning outside-in,
	// left-to-right, yields every RHS instantiation of the first matching rule.
	Normal Strategy = iota
	// Eager is leftmost-innermost: arguments are rewritten before the head.
	Eager
	// All explores every redex in parallel: every head rewrite, then every
	// single-subterm replacement by one of that subterm's own All rewrites.
	All
	// String interprets the term as a flat string and rewrites as string
	// patterns (SPEC_FULL.md §4.7).
	String
)

// String renders the strategy name for logging and demos.
func (s Strategy) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Eager:
		return "Eager"
	case All:
		return "All"
	case String:
		return "String"
	default:
		return "Unknown"
	}
}

// Rewrite returns the lazy sequence of one-step successors of t under trsv
// and strat. No strategy ever yields t itself (successors syntactically
// equal to t are dropped); an empty sequence means no other successor exists.
func Rewrite(sig term.Signature, trsv *trs.TRS, t term.Term, strat Strategy) iter.Seq[term.Term] {
	var seq iter.Seq[term.Term]
	switch strat {
	case Normal:
		seq = normalRewrite(sig, trsv, t)
	case Eager:
		seq = eagerRewrite(sig, trsv, t)
	case All:
		seq = allRewrite(sig, trsv, t)
	case String:
		seq = stringRewrite(sig, trsv, t)
	default:
		return func(func(term.Term) bool) {}
	}
	return func(yield func(term.Term) bool) {
		for s := range seq {
			if !term.Equal(s, t) && !yield(s) {
				return
			}
		}
	}
}

// firstMatchingRule scans trsv in order for the first rule whose LHS
// pattern-matches t, returning its Rewrite sequence.
func firstMatchingRule(trsv *trs.TRS, t term.Term) (iter.Seq[term.Term], bool) {
	for _, r := range trsv.Rules() {
		if hasHeadRedex(r, t) {
			return r.Rewrite(t), true
		}
	}
	return nil, false
}

func hasHeadRedex(r *rule.Rule, t term.Term) bool {
	for range r.Rewrite(t) {
		return true
	}
	return false
}

func withArgReplaced(app *term.Application, i int, replacement term.Term) *term.Application {
	newArgs := make([]term.Term, len(app.Args))
	copy(newArgs, app.Args)
	newArgs[i] = replacement
	return &term.Application{Op: app.Op, Args: newArgs}
}
