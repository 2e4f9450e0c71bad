package rewrite

import "github.com/gitrdm/rewrite/pkg/term"

// ListToString decodes a Lisp-style cons encoding into a flat atom
// sequence, for pstring's p_list (SPEC_FULL.md §4.7): NIL decodes to the
// empty sequence; `(. (. CONS n) xs)` decodes one cell whose element n is
// converted via numToAtom and whose tail xs is decoded recursively.
func ListToString(sig term.Signature, t term.Term) ([]term.Atom, bool) {
	if args, ok := term.AsGuardedApplication(sig, t, "NIL", 0); ok {
		_ = args
		return nil, true
	}

	dotArgs, ok := term.AsGuardedApplication(sig, t, ".", 2)
	if !ok {
		return nil, false
	}
	consApp := dotArgs[0]
	xs := dotArgs[1]

	consDotArgs, ok := term.AsGuardedApplication(sig, consApp, ".", 2)
	if !ok {
		return nil, false
	}
	if _, isCons := term.AsGuardedApplication(sig, consDotArgs[0], "CONS", 0); !isCons {
		return nil, false
	}
	n := consDotArgs[1]

	elemTerm, ok := numToAtom(sig, n)
	if !ok {
		return nil, false
	}
	elemOp, _, _ := term.AsApplication(elemTerm)

	tail, ok := ListToString(sig, xs)
	if !ok {
		return nil, false
	}
	return append([]term.Atom{term.AtomFromOp(elemOp)}, tail...), true
}
