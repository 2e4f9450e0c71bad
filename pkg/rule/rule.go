// Package rule implements the Rule type of SPEC_FULL.md §4.4 (C4): an
// LHS/RHS-clause pair with variable well-formedness invariants, plus the
// merge/discard/contains/canonicalize operations a TRS (pkg/trs) builds on.
package rule

import (
	"iter"

	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/term/unify"
)

// Rule is {lhs, rhs} where rhs is a non-empty, ordered sequence of RHS
// clauses. Constructed only via New, which enforces:
//   - lhs is never a bare variable;
//   - every variable in any rhs clause also occurs in lhs;
//   - rhs is non-empty.
type Rule struct {
	LHS term.Term
	RHS []term.Term
}

// New builds a Rule iff the invariants of SPEC_FULL.md §3/§4.4 hold.
func New(lhs term.Term, rhs []term.Term) (*Rule, bool) {
	if term.IsVariable(lhs) {
		return nil, false
	}
	if len(rhs) == 0 {
		return nil, false
	}

	allowed := term.Vars(lhs)
	for _, r := range rhs {
		for _, v := range term.Vars(r) {
			if !containsVar(allowed, v) {
				return nil, false
			}
		}
	}

	cp := make([]term.Term, len(rhs))
	copy(cp, rhs)
	return &Rule{LHS: lhs, RHS: cp}, true
}

func containsVar(vs []*term.Var, target *term.Var) bool {
	for _, v := range vs {
		if v.Equal(*target) {
			return true
		}
	}
	return false
}

// Size returns the total node count across the LHS and every RHS clause.
func (r *Rule) Size() int {
	n := term.Size(r.LHS)
	for _, rhs := range r.RHS {
		n += term.Size(rhs)
	}
	return n
}

// Len returns the number of RHS clauses.
func (r *Rule) Len() int { return len(r.RHS) }

// Clauses returns the single-clause rules {lhs, [r]} for each RHS r, in
// RHS order.
func (r *Rule) Clauses() []*Rule {
	out := make([]*Rule, len(r.RHS))
	for i, rhs := range r.RHS {
		out[i] = &Rule{LHS: r.LHS, RHS: []term.Term{rhs}}
	}
	return out
}

// Rewrite yields, in RHS order, the instantiation of every RHS clause under
// the substitution sigma with PMatch([(lhs, t)]) = Some(sigma). There is at
// most one sigma (PMatch is one-directional and deterministic), so the
// sequence has 0 or len(RHS) elements. An instantiation equal to t is
// yielded like any other.
func (r *Rule) Rewrite(t term.Term) iter.Seq[term.Term] {
	return func(yield func(term.Term) bool) {
		sigma, ok := unify.PMatch([]unify.Pair{{A: r.LHS, B: t}})
		if !ok {
			return
		}
		for _, rhs := range r.RHS {
			if !yield(sigma.Substitute(rhs)) {
				return
			}
		}
	}
}

// Merge returns a new rule: when self and other have alpha-equivalent LHSs,
// self's RHS clauses plus other's RHS clauses (alpha-renamed into self's
// variable scope, skipping any already alpha-equivalent to an existing
// clause). Returns ok=false if the LHSs are not alpha-equivalent.
func (r *Rule) Merge(other *Rule) (*Rule, bool) {
	sigma, ok := unify.Alpha([]unify.Pair{{A: other.LHS, B: r.LHS}})
	if !ok {
		return nil, false
	}

	merged := append([]term.Term(nil), r.RHS...)
	for _, rhs := range other.RHS {
		renamed := sigma.Substitute(rhs)
		if !containsAlphaEquivalentClause(merged, renamed) {
			merged = append(merged, renamed)
		}
	}
	return &Rule{LHS: r.LHS, RHS: merged}, true
}

// Discard removes from self every RHS clause that is alpha-equivalent to a
// clause of other. Returns the resulting rule, or ok=false if every clause
// was discarded (the rule would be empty).
func (r *Rule) Discard(other *Rule) (*Rule, bool) {
	var kept []term.Term
	for _, rhs := range r.RHS {
		if clauseAlphaEquivalentToAny(r.LHS, rhs, other) {
			continue
		}
		kept = append(kept, rhs)
	}
	if len(kept) == 0 {
		return nil, false
	}
	return &Rule{LHS: r.LHS, RHS: kept}, true
}

func clauseAlphaEquivalentToAny(lhs, rhs term.Term, other *Rule) bool {
	sigma, ok := unify.Alpha([]unify.Pair{{A: other.LHS, B: lhs}})
	if !ok {
		return false
	}
	for _, orhs := range other.RHS {
		renamed := sigma.Substitute(orhs)
		if _, eq := unify.Alpha([]unify.Pair{{A: renamed, B: rhs}}); eq {
			return true
		}
	}
	return false
}

func containsAlphaEquivalentClause(clauses []term.Term, candidate term.Term) bool {
	for _, c := range clauses {
		if _, ok := unify.Alpha([]unify.Pair{{A: c, B: candidate}}); ok {
			return true
		}
	}
	return false
}

// Contains looks for a substitution sigma such that other.Substitute(sigma)
// is a "sub-rule" of self: sigma is the alpha-renaming taking other's LHS to
// self's LHS, and every RHS clause of other, renamed by sigma, is
// alpha-equivalent to some RHS clause of self.
func (r *Rule) Contains(other *Rule) (term.Substitution, bool) {
	sigma, ok := unify.Alpha([]unify.Pair{{A: other.LHS, B: r.LHS}})
	if !ok {
		return term.Substitution{}, false
	}
	for _, rhs := range other.RHS {
		renamed := sigma.Substitute(rhs)
		if !containsAlphaEquivalentClause(r.RHS, renamed) {
			return term.Substitution{}, false
		}
	}
	return sigma, true
}

// AlphaEquivalentLHS reports whether self and other have alpha-equivalent
// LHS terms.
func (r *Rule) AlphaEquivalentLHS(other *Rule) bool {
	_, ok := unify.Alpha([]unify.Pair{{A: r.LHS, B: other.LHS}})
	return ok
}
