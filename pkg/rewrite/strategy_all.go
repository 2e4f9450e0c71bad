package rewrite

import (
	"iter"

	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

// allRewrite implements full parallel exploration: every head rewrite from
// every matching rule (TRS order), then every term formed by replacing one
// subterm with one of its own All rewrites, children in left-to-right order.
func allRewrite(sig term.Signature, trsv *trs.TRS, t term.Term) iter.Seq[term.Term] {
	return func(yield func(term.Term) bool) {
		for _, r := range trsv.Rules() {
			for rhs := range r.Rewrite(t) {
				if !yield(rhs) {
					return
				}
			}
		}

		app, ok := t.(*term.Application)
		if !ok {
			return
		}
		for i, arg := range app.Args {
			for rewritten := range allRewrite(sig, trsv, arg) {
				if !yield(withArgReplaced(app, i, rewritten)) {
					return
				}
			}
		}
	}
}
