package rule

import "github.com/gitrdm/rewrite/pkg/term"

// CanonMap is the accumulator threaded through Canonicalize calls. Sharing
// one CanonMap across several rules (as trs.TRS.Canonicalize does) assigns
// variables a dense, globally increasing index in first-seen order, so two
// alpha-equivalent rules canonicalized through one shared CanonMap get
// different indices. Two alpha-equivalent rules canonicalized with two
// fresh CanonMaps display identically; each map mints its own canonical
// variables in the signature, so the variable handles differ.
type CanonMap struct {
	sig   term.Signature
	next  int
	slots map[int]*term.Var
	seen  []canonEntry
}

type canonEntry struct {
	v   *term.Var
	idx int
}

// NewCanonMap creates an empty accumulator that mints canonical variables in
// the given signature.
func NewCanonMap(sig term.Signature) *CanonMap {
	return &CanonMap{sig: sig, slots: map[int]*term.Var{}}
}

func (m *CanonMap) indexOf(v *term.Var) int {
	for _, e := range m.seen {
		if e.v.Equal(*v) {
			return e.idx
		}
	}
	idx := m.next
	m.next++
	m.seen = append(m.seen, canonEntry{v: v, idx: idx})
	return idx
}

func (m *CanonMap) canonicalVar(idx int) *term.Var {
	if v, ok := m.slots[idx]; ok {
		return v
	}
	v := m.sig.NewVar(itoaCanon(idx))
	m.slots[idx] = v
	return v
}

func itoaCanon(n int) string {
	if n == 0 {
		return "c0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return "c" + string(digits)
}

// Canonicalize renumbers the variables of r left-to-right (LHS first, then
// each RHS clause in order) into a dense range via cm, returning a
// structurally fresh Rule built from canonical variables.
func (r *Rule) Canonicalize(cm *CanonMap) *Rule {
	var walk func(t term.Term) term.Term
	walk = func(t term.Term) term.Term {
		switch v := t.(type) {
		case *term.Var:
			idx := cm.indexOf(v)
			return cm.canonicalVar(idx)
		case *term.Application:
			if len(v.Args) == 0 {
				return v
			}
			newArgs := make([]term.Term, len(v.Args))
			for i, a := range v.Args {
				newArgs[i] = walk(a)
			}
			return &term.Application{Op: v.Op, Args: newArgs}
		default:
			return t
		}
	}

	newLHS := walk(r.LHS)
	newRHS := make([]term.Term, len(r.RHS))
	for i, rhs := range r.RHS {
		newRHS[i] = walk(rhs)
	}
	return &Rule{LHS: newLHS, RHS: newRHS}
}
