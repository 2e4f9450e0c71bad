package term

// varKey addresses a variable independent of the *Var pointer identity, so
// Substitution can use it as a plain map key.
type varKey struct {
	sig *signatureStore
	id  int
}

func keyOf(v *Var) varKey {
	return varKey{sig: v.sig, id: v.id}
}

// Substitution is a finite mapping from variables to terms, applied
// structurally (SPEC_FULL.md §3). Substitution values are immutable:
// Extend returns a new Substitution, the way gokando's Substitution.Bind
// returns a new *Substitution rather than mutating in place.
//
// The map is kept fully resolved (idempotent) at all times: Extend
// substitutes the incoming binding's image through the existing bindings'
// images before inserting it, so a single structural Substitute pass always
// sees a term's final value (SPEC_FULL.md's unifier tie-break rule).
type Substitution struct {
	bindings map[varKey]Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() Substitution {
	return Substitution{bindings: map[varKey]Term{}}
}

// Lookup returns the term bound to v, if any.
func (s Substitution) Lookup(v *Var) (Term, bool) {
	if s.bindings == nil {
		return nil, false
	}
	t, ok := s.bindings[keyOf(v)]
	return t, ok
}

// Len returns the number of bindings.
func (s Substitution) Len() int { return len(s.bindings) }

// Extend returns a new substitution with v bound to image, keeping the
// result idempotent: image is first resolved against s, then the new
// binding is folded into every existing binding's image.
func (s Substitution) Extend(v *Var, image Term) Substitution {
	resolved := s.Substitute(image)

	out := make(map[varKey]Term, len(s.bindings)+1)
	single := Substitution{bindings: map[varKey]Term{keyOf(v): resolved}}
	for k, t := range s.bindings {
		out[k] = single.Substitute(t)
	}
	out[keyOf(v)] = resolved
	return Substitution{bindings: out}
}

// Substitute replaces every variable in t with its image under s, leaving
// unmapped variables unchanged.
func (s Substitution) Substitute(t Term) Term {
	switch v := t.(type) {
	case *Var:
		if img, ok := s.Lookup(v); ok {
			return img
		}
		return v
	case *Application:
		if len(v.Args) == 0 {
			return v
		}
		newArgs := make([]Term, len(v.Args))
		changed := false
		for i, a := range v.Args {
			newArgs[i] = s.Substitute(a)
			if newArgs[i] != a {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return &Application{Op: v.Op, Args: newArgs}
	default:
		return t
	}
}

// Occurs reports whether v occurs anywhere within t.
func Occurs(v *Var, t Term) bool {
	switch tv := t.(type) {
	case *Var:
		return tv.Equal(*v)
	case *Application:
		for _, a := range tv.Args {
			if Occurs(v, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
