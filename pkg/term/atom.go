package term

// Atom is the tagged union of SPEC_FULL.md §3 C2a: either a Variable or an
// Operator handle. It is the flat "symbol" unit the term⇄string conversion
// of §4.7 (pkg/rewrite) works over, distinct from Term/Application which
// carries tree structure.
type Atom struct {
	isVar bool
	op    Op
	v     *Var
}

// AtomFromOp wraps an operator handle as an atom.
func AtomFromOp(o Op) Atom { return Atom{isVar: false, op: o} }

// AtomFromVar wraps a variable handle as an atom.
func AtomFromVar(v *Var) Atom { return Atom{isVar: true, v: v} }

// IsVariable reports whether the atom wraps a variable.
func (a Atom) IsVariable() bool { return a.isVar }

// Operator returns the wrapped operator, if any.
func (a Atom) Operator() (Op, bool) {
	if a.isVar {
		return Op{}, false
	}
	return a.op, true
}

// Variable returns the wrapped variable, if any.
func (a Atom) Variable() (*Var, bool) {
	if !a.isVar {
		return nil, false
	}
	return a.v, true
}

// Equal reports whether two atoms name the same symbol.
func (a Atom) Equal(b Atom) bool {
	if a.isVar != b.isVar {
		return false
	}
	if a.isVar {
		return a.v.Equal(*b.v)
	}
	return a.op.Equal(b.op)
}

// Display renders the atom the way its corresponding term would display.
func (a Atom) Display(sig Signature) string {
	if a.isVar {
		return Display(sig, a.v)
	}
	return Display(sig, &Application{Op: a.op})
}
