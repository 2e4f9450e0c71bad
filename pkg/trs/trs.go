// Package trs implements the ordered rule collection of SPEC_FULL.md §4.5
// (C5): insert/remove/replace discipline enforcing the invariants of §3 —
// no two rules with alpha-equivalent LHSs, every rule single-clause when
// the TRS is deterministic, and rule order being semantically meaningful.
package trs

import (
	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/rewrite/internal/logx"
	"github.com/gitrdm/rewrite/pkg/rule"
	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/term/unify"
)

// TRS is an ordered collection of rules with a determinism mode.
type TRS struct {
	rules         []*rule.Rule
	deterministic bool
	log           logx.Logger
	warnings      *multierror.Error
}

// Option configures a new TRS.
type Option func(*TRS)

// WithLogger injects a structured logger for mutation tracing.
func WithLogger(l logx.Logger) Option {
	return func(t *TRS) { t.log = logx.Named(l, "trs") }
}

// New builds a TRS by repeated Push, silently ignoring rules that violate
// the invariants (the reasons are collected and retrievable via
// ConstructionWarnings, without changing this silent-failure contract).
func New(rules []*rule.Rule, opts ...Option) *TRS {
	t := &TRS{log: logx.Noop()}
	for _, opt := range opts {
		opt(t)
	}
	for _, r := range rules {
		if err := t.Push(r); err != nil {
			t.warnings = multierror.Append(t.warnings, err)
		}
	}
	return t
}

// ConstructionWarnings returns the reasons rules were rejected during New,
// or nil if every rule was accepted.
func (t *TRS) ConstructionWarnings() error {
	if t.warnings == nil {
		return nil
	}
	return t.warnings.ErrorOrNil()
}

// Len returns the number of rules.
func (t *TRS) Len() int { return len(t.rules) }

// IsDeterministic reports the determinism flag.
func (t *TRS) IsDeterministic() bool { return t.deterministic }

// Rules returns a snapshot slice of the rules in order.
func (t *TRS) Rules() []*rule.Rule {
	out := make([]*rule.Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

func (t *TRS) indexOfAlphaEquivLHS(lhs term.Term) int {
	probe := &rule.Rule{LHS: lhs, RHS: []term.Term{lhs}}
	for i, r := range t.rules {
		if r.AlphaEquivalentLHS(probe) {
			return i
		}
	}
	return -1
}

// Get finds the rule whose LHS is alpha-equivalent to lhs.
func (t *TRS) Get(lhs term.Term) (*rule.Rule, bool) {
	idx := t.indexOfAlphaEquivLHS(lhs)
	if idx < 0 {
		return nil, false
	}
	return t.rules[idx], true
}

// GetIdx returns the rule at position i.
func (t *TRS) GetIdx(i int) (*rule.Rule, bool) {
	if i < 0 || i >= len(t.rules) {
		return nil, false
	}
	return t.rules[i], true
}

// GetClause finds the existing rule with an LHS alpha-equivalent to r's and
// returns whichever of its clauses is alpha-equivalent to r's own clause
// (r must be single-clause), if any.
func (t *TRS) GetClause(r *rule.Rule) (*rule.Rule, bool) {
	existing, ok := t.Get(r.LHS)
	if !ok || len(r.RHS) != 1 {
		return nil, false
	}
	for _, rhs := range existing.RHS {
		if _, eq := unify.Alpha([]unify.Pair{{A: rhs, B: r.RHS[0]}}); eq {
			return &rule.Rule{LHS: existing.LHS, RHS: []term.Term{rhs}}, true
		}
	}
	return nil, false
}

func (t *TRS) validateNewRule(r *rule.Rule) error {
	if t.deterministic && len(r.RHS) != 1 {
		return newError(NondeterministicRule)
	}
	return nil
}

// InsertIdx inserts r at position idx, without attempting a clause-merge
// first. Fails with AlreadyInTRS if an alpha-equivalent LHS already exists,
// NondeterministicRule if the TRS is deterministic and r is multi-clause,
// or InvalidIndex if idx is out of [0, len(rules)].
func (t *TRS) InsertIdx(idx int, r *rule.Rule) error {
	if idx < 0 || idx > len(t.rules) {
		return newInvalidIndex(idx, len(t.rules))
	}
	if err := t.validateNewRule(r); err != nil {
		return err
	}
	if _, exists := t.Get(r.LHS); exists {
		return newError(AlreadyInTRS)
	}

	t.rules = append(t.rules, nil)
	copy(t.rules[idx+1:], t.rules[idx:])
	t.rules[idx] = r
	t.log.Trace("insert_idx", "idx", idx)
	return nil
}

// InsertClauses merges r into an existing rule with an alpha-equivalent
// LHS. Fails with NotInTRS if no such rule exists, or NondeterministicRule
// if the TRS is deterministic (even a single-clause r is rejected: callers
// must use InsertIdx under determinism).
func (t *TRS) InsertClauses(r *rule.Rule) error {
	if t.deterministic {
		return newError(NondeterministicRule)
	}
	idx := t.indexOfAlphaEquivLHS(r.LHS)
	if idx < 0 {
		return newError(NotInTRS)
	}
	merged, ok := t.rules[idx].Merge(r)
	if !ok {
		return newError(NotInTRS)
	}
	t.rules[idx] = merged
	t.log.Trace("insert_clauses", "idx", idx)
	return nil
}

// Insert first attempts InsertClauses; on failure it falls back to
// InsertIdx(idx, r). Rules whose LHS is alpha-equivalent to an existing LHS
// are therefore merged rather than placed at idx.
func (t *TRS) Insert(idx int, r *rule.Rule) error {
	if err := t.InsertClauses(r); err == nil {
		return nil
	}
	return t.InsertIdx(idx, r)
}

// Push inserts r (preferring clause-merge, per Insert) and then moves the
// resulting rule to index 0.
func (t *TRS) Push(r *rule.Rule) error {
	if err := t.Insert(0, r); err != nil {
		return err
	}
	idx := t.indexOfAlphaEquivLHS(r.LHS)
	if idx > 0 {
		return t.MoveRule(idx, 0)
	}
	return nil
}

// Replace swaps out the rule at idx for r outright, bypassing clause-merge.
func (t *TRS) Replace(idx int, r *rule.Rule) error {
	if idx < 0 || idx >= len(t.rules) {
		return newInvalidIndex(idx, len(t.rules))
	}
	if err := t.validateNewRule(r); err != nil {
		return err
	}
	if other := t.indexOfAlphaEquivLHS(r.LHS); other >= 0 && other != idx {
		return newError(AlreadyInTRS)
	}
	t.rules[idx] = r
	t.log.Trace("replace", "idx", idx)
	return nil
}

// Remove deletes the rule whose LHS is alpha-equivalent to lhs.
func (t *TRS) Remove(lhs term.Term) (*rule.Rule, error) {
	idx := t.indexOfAlphaEquivLHS(lhs)
	if idx < 0 {
		return nil, newError(NotInTRS)
	}
	return t.RemoveIdx(idx)
}

// RemoveIdx deletes the rule at position idx.
func (t *TRS) RemoveIdx(idx int) (*rule.Rule, error) {
	if idx < 0 || idx >= len(t.rules) {
		return nil, newInvalidIndex(idx, len(t.rules))
	}
	r := t.rules[idx]
	t.rules = append(t.rules[:idx], t.rules[idx+1:]...)
	t.log.Trace("remove_idx", "idx", idx)
	return r, nil
}

// RemoveClauses removes from the existing rule with an alpha-equivalent LHS
// every RHS clause alpha-equivalent to one of r's. If that empties the
// rule, the rule is removed entirely.
func (t *TRS) RemoveClauses(r *rule.Rule) error {
	idx := t.indexOfAlphaEquivLHS(r.LHS)
	if idx < 0 {
		return newError(NotInTRS)
	}
	remaining, ok := t.rules[idx].Discard(r)
	if !ok {
		t.rules = append(t.rules[:idx], t.rules[idx+1:]...)
		t.log.Trace("remove_clauses_emptied", "idx", idx)
		return nil
	}
	t.rules[idx] = remaining
	t.log.Trace("remove_clauses", "idx", idx)
	return nil
}

// MoveRule relocates the rule at index i to index j.
func (t *TRS) MoveRule(i, j int) error {
	if i < 0 || i >= len(t.rules) {
		return newInvalidIndex(i, len(t.rules))
	}
	if j < 0 || j >= len(t.rules) {
		return newInvalidIndex(j, len(t.rules))
	}
	r := t.rules[i]
	t.rules = append(t.rules[:i], t.rules[i+1:]...)
	t.rules = append(t.rules[:j], append([]*rule.Rule{r}, t.rules[j:]...)...)
	return nil
}

// MakeDeterministic truncates every rule's RHS to its first clause and sets
// the determinism flag. Idempotent; lossy and non-invertible (the
// truncated clauses are gone; MakeNondeterministic only clears the flag).
func (t *TRS) MakeDeterministic() {
	for i, r := range t.rules {
		if len(r.RHS) > 1 {
			t.rules[i] = &rule.Rule{LHS: r.LHS, RHS: r.RHS[:1]}
		}
	}
	t.deterministic = true
}

// MakeNondeterministic clears the determinism flag without restoring any
// clauses MakeDeterministic previously discarded.
func (t *TRS) MakeNondeterministic() {
	t.deterministic = false
}

// Operators returns the unique operators across all rules, first-seen order.
func (t *TRS) Operators() []term.Op {
	var out []term.Op
	seenOps := map[term.Op]bool{}
	record := func(ops []term.Op) {
		for _, op := range ops {
			if !seenOps[op] {
				seenOps[op] = true
				out = append(out, op)
			}
		}
	}
	for _, r := range t.rules {
		record(term.Operators(r.LHS))
		for _, rhs := range r.RHS {
			record(term.Operators(rhs))
		}
	}
	return out
}

// Canonicalize canonicalizes every rule in order, sharing cm across rules.
func (t *TRS) Canonicalize(cm *rule.CanonMap) []*rule.Rule {
	out := make([]*rule.Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Canonicalize(cm)
	}
	return out
}

type relation func(a, b term.Term) bool

func relate(a, b *TRS, rel relation) bool {
	if len(a.rules) != len(b.rules) {
		return false
	}
	for i := range a.rules {
		ra, rb := a.rules[i], b.rules[i]
		if len(ra.RHS) != len(rb.RHS) {
			return false
		}
		if !rel(ra.LHS, rb.LHS) {
			return false
		}
		for j := range ra.RHS {
			if !rel(ra.RHS[j], rb.RHS[j]) {
				return false
			}
		}
	}
	return true
}

// Unifies reports whether t and other have equal length and every
// corresponding LHS/RHS pair unifies.
func (t *TRS) Unifies(other *TRS) bool {
	return relate(t, other, func(a, b term.Term) bool {
		_, ok := unify.Unify([]unify.Pair{{A: a, B: b}})
		return ok
	})
}

// PMatches reports whether t and other have equal length and every
// corresponding LHS/RHS pair of t matches (as pattern) the pair of other.
func (t *TRS) PMatches(other *TRS) bool {
	return relate(t, other, func(a, b term.Term) bool {
		_, ok := unify.PMatch([]unify.Pair{{A: a, B: b}})
		return ok
	})
}

// Alphas reports whether t and other have equal length and every
// corresponding LHS/RHS pair is alpha-equivalent.
func (t *TRS) Alphas(other *TRS) bool {
	return relate(t, other, func(a, b term.Term) bool {
		_, ok := unify.Alpha([]unify.Pair{{A: a, B: b}})
		return ok
	})
}

// SameShape reports whether t and other have equal length and every
// corresponding LHS/RHS pair has the same shape.
func (t *TRS) SameShape(other *TRS) bool {
	return relate(t, other, unify.SameShape)
}
