// Command rwdemo is a programmatic usage demonstration, not a CLI or
// parser, modeled on gokando's cmd/example/main.go: it builds a small
// signature and TRS in code, prints the first successor under the Normal,
// Eager and All rewrite strategies, and runs a concurrent read scenario over
// a shared Signature (SPEC_FULL.md §5).
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/rewrite/internal/logx"
	"github.com/gitrdm/rewrite/pkg/pstring"
	"github.com/gitrdm/rewrite/pkg/rewrite"
	"github.com/gitrdm/rewrite/pkg/rule"
	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

func main() {
	log := logx.Named(nil, "rwdemo")

	sig := term.New(term.WithLogger(log))

	zero := sig.NewOp(0, "zero")
	succ := sig.NewOp(1, "succ")
	add := sig.NewOp(2, "add")
	x := sig.NewVar("x")
	y := sig.NewVar("y")

	// add(zero, Y) -> Y
	addZero, _ := rule.New(
		term.NewApplication(sig, add, []term.Term{&term.Application{Op: zero}, y}),
		[]term.Term{y},
	)
	// add(succ(X), Y) -> succ(add(X, Y))
	addSucc, _ := rule.New(
		term.NewApplication(sig, add, []term.Term{
			term.NewApplication(sig, succ, []term.Term{x}), y,
		}),
		[]term.Term{
			term.NewApplication(sig, succ, []term.Term{
				term.NewApplication(sig, add, []term.Term{x, y}),
			}),
		},
	)

	system := trs.New([]*rule.Rule{addZero, addSucc}, trs.WithLogger(log))
	if warn := system.ConstructionWarnings(); warn != nil {
		fmt.Fprintln(os.Stderr, "rwdemo: rule construction warnings:", warn)
	}

	one := &term.Application{Op: succ, Args: []term.Term{&term.Application{Op: zero}}}
	two := &term.Application{Op: succ, Args: []term.Term{one}}
	expr := term.NewApplication(sig, add, []term.Term{two, one})

	fmt.Println("expr:", term.Display(sig, expr))

	for _, strat := range []rewrite.Strategy{rewrite.Normal, rewrite.Eager, rewrite.All} {
		fmt.Printf("-- strategy %v --\n", strat)
		for rewritten := range rewrite.Rewrite(sig, system, expr, strat) {
			fmt.Println("  ->", term.Display(sig, rewritten))
			break
		}
	}

	runConcurrentLookups(sig, system)

	demoPString()
}

// runConcurrentLookups demonstrates SPEC_FULL.md §5's concurrency model: one
// Signature and one TRS, read from many goroutines, no locks held across
// term construction or substitution. golang.org/x/sync/errgroup supplies
// the fan-out/fan-in (adopted the way hashicorp-nomad's scheduler package
// uses it for bounded worker fan-out).
func runConcurrentLookups(sig term.Signature, system *trs.TRS) {
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			ops := sig.Operators()
			if len(ops) == 0 {
				return fmt.Errorf("worker %d: empty signature", i)
			}
			_ = system.Rules()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "rwdemo: concurrent lookup error:", err)
	} else {
		fmt.Println("concurrent lookups: ok")
	}
}

// demoPString exercises C7 on two digit strings built over a fresh
// signature, using a Bounded p_incorrect_sub.
func demoPString() {
	sig := term.New()
	digits := make(map[rune]term.Op)
	for _, r := range "0123456789" {
		digits[r] = sig.NewOp(0, string(r))
	}
	dot := sig.NewOp(2, ".")

	build := func(s string) term.Term {
		var cur term.Term = &term.Application{Op: digits[rune(s[len(s)-1])]}
		for i := len(s) - 2; i >= 0; i-- {
			cur = term.NewApplication(sig, dot, []term.Term{
				&term.Application{Op: digits[rune(s[i])]}, cur,
			})
		}
		return cur
	}

	cfg := pstring.Config{
		Beta:        0.3,
		PInsertion:  0.05,
		PDeletion:   0.05,
		PCorrectSub: 0.85,
		PIncorrectSub: pstring.SubDist{
			Kind:   pstring.Bounded,
			Low:    0,
			High:   9,
			Weight: 0.1,
		},
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "rwdemo: pstring config:", err)
		return
	}

	d := pstring.New(sig, cfg)
	x, y := build("123"), build("123")
	if logProb, ok := d.PString(x, y, 3, 3); ok {
		fmt.Printf("pstring identity ln P(y|x) = %g\n", logProb)
	}
}
