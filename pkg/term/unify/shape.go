package unify

import "github.com/gitrdm/rewrite/pkg/term"

// SameShape reports whether a and b are identical up to two independent,
// consistent, injective renamings: one of operators, one of variables
// (SPEC_FULL.md §4.3). Unlike Alpha, operator heads need not coincide
// exactly — they only need to rename consistently, which lets SameShape
// compare terms built against different signatures.
func SameShape(a, b term.Term) bool {
	s := &shapeState{
		opFwd:  map[term.Op]term.Op{},
		opRev:  map[term.Op]term.Op{},
		varFwd: map[*term.Var]*term.Var{},
		varRev: map[*term.Var]*term.Var{},
	}
	return s.compare(a, b)
}

type shapeState struct {
	opFwd, opRev   map[term.Op]term.Op
	varFwd, varRev map[*term.Var]*term.Var
}

func (s *shapeState) compare(a, b term.Term) bool {
	switch av := a.(type) {
	case *term.Var:
		bv, ok := b.(*term.Var)
		if !ok {
			return false
		}
		return checkVarInjective(s.varFwd, s.varRev, av, bv)
	case *term.Application:
		bv, ok := b.(*term.Application)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		if !checkOpInjective(s.opFwd, s.opRev, av.Op, bv.Op) {
			return false
		}
		for i := range av.Args {
			if !s.compare(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func checkOpInjective(fwd, rev map[term.Op]term.Op, a, b term.Op) bool {
	if existing, ok := fwd[a]; ok {
		return existing.Equal(b)
	}
	if _, taken := rev[b]; taken {
		return false
	}
	fwd[a] = b
	rev[b] = a
	return true
}

func checkVarInjective(fwd, rev map[*term.Var]*term.Var, a, b *term.Var) bool {
	for existing := range fwd {
		if existing.Equal(*a) {
			return fwd[existing].Equal(*b)
		}
	}
	for existing := range rev {
		if existing.Equal(*b) {
			return false
		}
	}
	fwd[a] = b
	rev[b] = a
	return true
}
