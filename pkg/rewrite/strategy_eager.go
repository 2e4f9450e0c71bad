package rewrite

import (
	"iter"

	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

// eagerRewrite implements leftmost-innermost selection: arguments are tried
// left to right before the head; the head is only tried once no argument
// has a redex.
func eagerRewrite(sig term.Signature, trsv *trs.TRS, t term.Term) iter.Seq[term.Term] {
	return func(yield func(term.Term) bool) {
		if app, ok := t.(*term.Application); ok {
			for i, arg := range app.Args {
				found := false
				for rewritten := range eagerRewrite(sig, trsv, arg) {
					found = true
					if !yield(withArgReplaced(app, i, rewritten)) {
						return
					}
				}
				if found {
					return
				}
			}
		}

		if seq, found := firstMatchingRule(trsv, t); found {
			for rhs := range seq {
				if !yield(rhs) {
					return
				}
			}
		}
	}
}
