package term

import "strings"

// Term is the tree representation of a first-order term: either a Variable
// leaf (*Var, defined in signature.go — a variable handle doubles as the
// leaf term, there being nothing more to a first-order variable occurrence
// than its identity) or an Application of an operator to an arity-matching
// sequence of argument terms.
//
// Terms are immutable once built; every operation that would "change" a
// term (substitute, replace) returns a fresh one.
type Term interface {
	isTerm()
}

func (*Var) isTerm() {}

// Application is an operator applied to an ordered sequence of argument
// terms. len(Args) must equal the operator's arity for the term to be
// well-formed; constructors in this package preserve that invariant.
type Application struct {
	Op   Op
	Args []Term
}

func (*Application) isTerm() {}

// NewApplication builds an Application term. It panics if args does not
// match the operator's arity — an arity mismatch reaching this constructor
// is a bug in the caller, not a reportable error (SPEC_FULL.md §7).
func NewApplication(sig Signature, op Op, args []Term) *Application {
	if uint32(len(args)) != sig.Arity(op) {
		panic("term: application arity mismatch")
	}
	cp := make([]Term, len(args))
	copy(cp, args)
	return &Application{Op: op, Args: cp}
}

// IsVariable reports whether t is a bare variable leaf.
func IsVariable(t Term) bool {
	_, ok := t.(*Var)
	return ok
}

// AsApplication returns t's operator and arguments when t is an Application.
func AsApplication(t Term) (Op, []Term, bool) {
	app, ok := t.(*Application)
	if !ok {
		return Op{}, nil, false
	}
	return app.Op, app.Args, true
}

// AsGuardedApplication returns t's arguments when t is an Application whose
// operator has the given name and arity.
func AsGuardedApplication(sig Signature, t Term, name string, arity uint32) ([]Term, bool) {
	op, args, ok := AsApplication(t)
	if !ok {
		return nil, false
	}
	if sig.Arity(op) != arity {
		return nil, false
	}
	opName, named := sig.OperatorName(op)
	if !named || opName != name {
		return nil, false
	}
	return args, true
}

// Display renders t as canonical text: a variable prints as "name_" when
// named, else "var{id}_"; an application prints as "Op" when nullary, else
// "Op(a1 a2 … aN)". Binary applications whose operator is named "." are not
// syntactically special-cased here (SPEC_FULL.md §4.2).
func Display(sig Signature, t Term) string {
	var b strings.Builder
	display(&b, sig, t)
	return b.String()
}

func display(b *strings.Builder, sig Signature, t Term) {
	switch v := t.(type) {
	case *Var:
		if name, ok := sig.VariableName(v); ok {
			b.WriteString(name)
			b.WriteByte('_')
		} else {
			b.WriteString("var")
			writeInt(b, v.ID())
			b.WriteByte('_')
		}
	case *Application:
		name, ok := sig.OperatorName(v.Op)
		if !ok {
			b.WriteString("op")
			writeInt(b, v.Op.ID())
		} else {
			b.WriteString(name)
		}
		if len(v.Args) == 0 {
			return
		}
		b.WriteByte('(')
		for i, a := range v.Args {
			if i > 0 {
				b.WriteByte(' ')
			}
			display(b, sig, a)
		}
		b.WriteByte(')')
	default:
		panic("term: unknown term kind")
	}
}

func writeInt(b *strings.Builder, n int) {
	b.WriteString(itoa(n))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Size returns the number of nodes (variables and applications) in t.
func Size(t Term) int {
	switch v := t.(type) {
	case *Var:
		return 1
	case *Application:
		n := 1
		for _, a := range v.Args {
			n += Size(a)
		}
		return n
	default:
		return 0
	}
}

// Vars collects the unique variables occurring in t, in first-seen,
// left-to-right order.
func Vars(t Term) []*Var {
	var out []*Var
	seen := make(map[*signatureStore]map[int]bool)
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case *Var:
			m, ok := seen[v.sig]
			if !ok {
				m = make(map[int]bool)
				seen[v.sig] = m
			}
			if !m[v.id] {
				m[v.id] = true
				out = append(out, v)
			}
		case *Application:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	walk(t)
	return out
}

// Operators collects the unique operators occurring in t, in first-seen,
// left-to-right order.
func Operators(t Term) []Op {
	var out []Op
	seen := make(map[*signatureStore]map[int]bool)
	var walk func(Term)
	walk = func(t Term) {
		if app, ok := t.(*Application); ok {
			m, ok := seen[app.Op.sig]
			if !ok {
				m = make(map[int]bool)
				seen[app.Op.sig] = m
			}
			if !m[app.Op.id] {
				m[app.Op.id] = true
				out = append(out, app.Op)
			}
			for _, a := range app.Args {
				walk(a)
			}
		}
	}
	walk(t)
	return out
}

// Equal reports strict syntactic equality (not unification, not
// alpha-equivalence): same shape, same operator identities, same variable
// identities.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && av.Equal(*bv)
	case *Application:
		bv, ok := b.(*Application)
		if !ok || !av.Op.Equal(bv.Op) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Replace returns a copy of t with the subterm at path replaced by repl.
// path is an ordered sequence of child indices; Replace fails (ok=false) if
// the path does not address a valid subterm of t.
func Replace(t Term, path []int, repl Term) (Term, bool) {
	if len(path) == 0 {
		return repl, true
	}
	app, ok := t.(*Application)
	if !ok {
		return nil, false
	}
	i := path[0]
	if i < 0 || i >= len(app.Args) {
		return nil, false
	}
	newChild, ok := Replace(app.Args[i], path[1:], repl)
	if !ok {
		return nil, false
	}
	newArgs := make([]Term, len(app.Args))
	copy(newArgs, app.Args)
	newArgs[i] = newChild
	return &Application{Op: app.Op, Args: newArgs}, true
}

// At returns the subterm of t at path, or ok=false if the path is invalid.
func At(t Term, path []int) (Term, bool) {
	cur := t
	for _, i := range path {
		app, ok := cur.(*Application)
		if !ok || i < 0 || i >= len(app.Args) {
			return nil, false
		}
		cur = app.Args[i]
	}
	return cur, true
}
