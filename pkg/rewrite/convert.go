// Package rewrite implements the rewriting engine of SPEC_FULL.md §4.6 (C6)
// and the term⇄string conversion of §4.7, grounded on gokando's lazy
// Stream-of-solutions shape (pkg/minikanren/stream.go) — generalized here to
// Go 1.23's iter.Seq, since SPEC_FULL.md §5 forbids background threads on
// the hot path and gokando's channel+goroutine Stream cannot honor that
// (see DESIGN.md for this divergence).
package rewrite

import "github.com/gitrdm/rewrite/pkg/term"

// ToString interprets t as a flat sequence of atoms (SPEC_FULL.md §4.7):
// a variable maps to a single atom; a nullary application maps to [op];
// a binary application whose operator is named "." flattens by
// concatenating the left subterm's string with the right's. Any other
// non-nullary application makes the conversion undefined (ok=false).
func ToString(sig term.Signature, t term.Term) ([]term.Atom, bool) {
	switch v := t.(type) {
	case *term.Var:
		return []term.Atom{term.AtomFromVar(v)}, true
	case *term.Application:
		if len(v.Args) == 0 {
			return []term.Atom{term.AtomFromOp(v.Op)}, true
		}
		name, named := sig.OperatorName(v.Op)
		if !named || name != "." || len(v.Args) != 2 {
			return nil, false
		}
		left, ok := ToString(sig, v.Args[0])
		if !ok {
			return nil, false
		}
		right, ok := ToString(sig, v.Args[1])
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	default:
		return nil, false
	}
}

// FromString builds a left-associative "."-tree from a non-empty atom
// sequence. It requires a binary "." operator to exist in sig (the first
// one found, in signature order — SPEC_FULL.md §9's open question).
func FromString(sig term.Signature, atoms []term.Atom) (term.Term, bool) {
	if len(atoms) == 0 {
		return nil, false
	}
	dot, ok := sig.FindBinaryDot()
	if !ok {
		return nil, false
	}

	cur := atomToTerm(atoms[0])
	for _, a := range atoms[1:] {
		cur = term.NewApplication(sig, dot, []term.Term{cur, atomToTerm(a)})
	}
	return cur, true
}

func atomToTerm(a term.Atom) term.Term {
	if v, ok := a.Variable(); ok {
		return v
	}
	op, _ := a.Operator()
	return &term.Application{Op: op}
}

// numToAtom converts a Peano/decimal-encoded numeral to an integer below
// 100, then finds or creates a nullary operator in sig whose name is that
// integer's decimal form. The numeral is DIGIT(d) with DIGIT a unary
// operator, or DECC(k, d) with DECC a binary operator, d a nullary operator
// named "0".."9"; numerals built by applying a nullary DIGIT or DECC
// through "." are not recognized.
//
// This exists to support ListToString/decodeList, which recognize the
// Lisp-style cons encoding used by p_list (pkg/pstring).
func numToAtom(sig term.Signature, t term.Term) (term.Term, bool) {
	n, ok := decodeNumeral(sig, t)
	if !ok || n < 0 || n >= 100 {
		return nil, false
	}
	return &term.Application{Op: sig.FindNullaryByName(itoa(n))}, true
}

func decodeNumeral(sig term.Signature, t term.Term) (int, bool) {
	args, ok := term.AsGuardedApplication(sig, t, "DIGIT", 1)
	if ok {
		d, ok := digitValue(sig, args[0])
		if !ok {
			return 0, false
		}
		return d, true
	}
	args, ok = term.AsGuardedApplication(sig, t, "DECC", 2)
	if ok {
		k, ok := decodeNumeral(sig, args[0])
		if !ok {
			return 0, false
		}
		d, ok := digitValue(sig, args[1])
		if !ok {
			return 0, false
		}
		return k*10 + d, true
	}
	return 0, false
}

func digitValue(sig term.Signature, t term.Term) (int, bool) {
	op, _, ok := term.AsApplication(t)
	if !ok {
		return 0, false
	}
	if sig.Arity(op) != 0 {
		return 0, false
	}
	name, named := sig.OperatorName(op)
	if !named || len(name) != 1 || name[0] < '0' || name[0] > '9' {
		return 0, false
	}
	return int(name[0] - '0'), true
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
