// Package unify implements the Robinson-style unification/matching/
// alpha-equivalence procedure of SPEC_FULL.md §4.3 (C3), grounded on
// gokando's unify/unifyWithConstraints (pkg/minikanren/primitives.go) and
// occurs (pkg/minikanren/constraints.go): walk each side against the
// substitution built so far, bind variables, or recurse structurally into
// matching applications.
package unify

import "github.com/gitrdm/rewrite/pkg/term"

// Pair is one work-list entry: a term-term pair to be made equal.
type Pair struct {
	A, B term.Term
}

// Unify finds a substitution making every pair's two sides equal, with
// either side free to bind and an occurs-check against self-reference.
func Unify(pairs []Pair) (term.Substitution, bool) {
	return solve(pairs, modeUnify)
}

// PMatch finds a substitution where only variables on the A (pattern) side
// may bind; B (subject) variables are rigid and can never be bound.
func PMatch(pairs []Pair) (term.Substitution, bool) {
	return solve(pairs, modeMatch)
}

// Alpha finds a substitution that is a pure, injective variable-for-variable
// renaming taking every A side to its paired B side; operator heads must be
// identical (not merely renamed — see SameShape for that).
func Alpha(pairs []Pair) (term.Substitution, bool) {
	return solve(pairs, modeAlpha)
}

type mode int

const (
	modeUnify mode = iota
	modeMatch
	modeAlpha
)

func solve(initial []Pair, m mode) (term.Substitution, bool) {
	work := append([]Pair(nil), initial...)
	sub := term.NewSubstitution()

	// alphaReverse enforces injectivity for modeAlpha: no two distinct A
	// variables may be renamed to the same B variable.
	alphaReverse := map[*term.Var]*term.Var{}

	for len(work) > 0 {
		pr := work[0]
		work = work[1:]

		// PMatch works on the raw pair: substituting the pattern side would
		// let subject variables reach side A and be bound.
		a, b := pr.A, pr.B
		if m != modeMatch {
			a = sub.Substitute(pr.A)
			b = sub.Substitute(pr.B)
		}

		if term.Equal(a, b) {
			continue
		}

		switch m {
		case modeUnify:
			if av, ok := a.(*term.Var); ok {
				if term.Occurs(av, b) {
					return term.Substitution{}, false
				}
				sub = sub.Extend(av, b)
				continue
			}
			if bv, ok := b.(*term.Var); ok {
				if term.Occurs(bv, a) {
					return term.Substitution{}, false
				}
				sub = sub.Extend(bv, a)
				continue
			}

		case modeMatch:
			if av, ok := a.(*term.Var); ok {
				if img, bound := sub.Lookup(av); bound {
					if !term.Equal(img, b) {
						return term.Substitution{}, false
					}
					continue
				}
				sub = sub.Extend(av, b)
				continue
			}
			if _, ok := b.(*term.Var); ok {
				// B variables are rigid: only an identical A variable
				// (handled by the Equal check above) could have matched.
				return term.Substitution{}, false
			}

		case modeAlpha:
			av, aIsVar := a.(*term.Var)
			bv, bIsVar := b.(*term.Var)
			if aIsVar && bIsVar {
				if existing, bound := sub.Lookup(av); bound {
					if existingVar, ok := existing.(*term.Var); !ok || !existingVar.Equal(*bv) {
						return term.Substitution{}, false
					}
					continue
				}
				if other, taken := alphaReverse[bv]; taken && !other.Equal(*av) {
					return term.Substitution{}, false
				}
				alphaReverse[bv] = av
				sub = sub.Extend(av, bv)
				continue
			}
			if aIsVar != bIsVar {
				return term.Substitution{}, false
			}
		}

		aOp, aArgs, aOk := term.AsApplication(a)
		bOp, bArgs, bOk := term.AsApplication(b)
		if !aOk || !bOk {
			return term.Substitution{}, false
		}
		if !aOp.Equal(bOp) || len(aArgs) != len(bArgs) {
			return term.Substitution{}, false
		}

		newPairs := make([]Pair, len(aArgs))
		for i := range aArgs {
			newPairs[i] = Pair{A: aArgs[i], B: bArgs[i]}
		}
		work = append(newPairs, work...)
	}

	return sub, true
}
