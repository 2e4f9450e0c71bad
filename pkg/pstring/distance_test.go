package pstring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/rewrite/pkg/pstring"
	"github.com/gitrdm/rewrite/pkg/term"
)

func buildChain(t *testing.T, sig term.Signature, dot term.Op, ops ...term.Op) term.Term {
	t.Helper()
	var cur term.Term = &term.Application{Op: ops[len(ops)-1]}
	for i := len(ops) - 2; i >= 0; i-- {
		cur = term.NewApplication(sig, dot, []term.Term{&term.Application{Op: ops[i]}, cur})
	}
	return cur
}

func TestPStringIdenticalScoresHigherThanMismatched(t *testing.T) {
	sig := term.New()
	dot := sig.NewOp(2, ".")
	a := sig.NewOp(0, "a")
	b := sig.NewOp(0, "b")

	cfg := pstring.Config{
		Beta:        0.3,
		PInsertion:  0.05,
		PDeletion:   0.05,
		PCorrectSub: 0.8,
		PIncorrectSub: pstring.SubDist{
			Kind:     pstring.Constant,
			Constant: 0.1,
		},
	}
	d := pstring.New(sig, cfg)

	same := buildChain(t, sig, dot, a, a, a)
	other := buildChain(t, sig, dot, a, a, a)
	mismatched := buildChain(t, sig, dot, b, b, b)

	identical, ok := d.PString(same, other, 3, 3)
	require.True(t, ok)
	require.False(t, math.IsInf(identical, 0) || math.IsNaN(identical))

	different, ok := d.PString(same, mismatched, 3, 3)
	require.True(t, ok)

	require.Greater(t, identical, different)
	require.LessOrEqual(t, identical, 0.0, "a log-probability must not exceed 0")
}

func TestPStringFailsOnNonFlattenableTerm(t *testing.T) {
	sig := term.New()
	f := sig.NewOp(2, "f")
	a := sig.NewOp(0, "a")

	notAChain := term.NewApplication(sig, f, []term.Term{
		&term.Application{Op: a}, &term.Application{Op: a},
	})
	d := pstring.New(sig, pstring.Config{})
	_, ok := d.PString(notAChain, notAChain, 0, 0)
	require.False(t, ok)
}

// consListFixture builds a minimal Lisp-style cons list signature mirroring
// pkg/rewrite's ListToString expectations: NIL, CONS, "." and DIGIT-encoded
// single-digit numerals.
type consListFixture struct {
	sig    term.Signature
	dot    term.Op
	cons   term.Op
	nilOp  term.Op
	digit  term.Op
	digits map[byte]term.Op
}

func newConsListFixture() *consListFixture {
	sig := term.New()
	f := &consListFixture{
		sig:    sig,
		dot:    sig.NewOp(2, "."),
		cons:   sig.NewOp(0, "CONS"),
		nilOp:  sig.NewOp(0, "NIL"),
		digit:  sig.NewOp(1, "DIGIT"),
		digits: map[byte]term.Op{},
	}
	for c := byte('0'); c <= '9'; c++ {
		f.digits[c] = sig.NewOp(0, string(c))
	}
	return f
}

func (f *consListFixture) num(n int) term.Term {
	digitOp := f.digits[byte('0'+n)]
	return &term.Application{Op: f.digit, Args: []term.Term{&term.Application{Op: digitOp}}}
}

func (f *consListFixture) cell(n int, tail term.Term) term.Term {
	consApp := term.NewApplication(f.sig, f.dot, []term.Term{&term.Application{Op: f.cons}, f.num(n)})
	return term.NewApplication(f.sig, f.dot, []term.Term{consApp, tail})
}

func (f *consListFixture) nilTerm() term.Term {
	return &term.Application{Op: f.nilOp}
}

func TestPListScoresConsListOfDigits(t *testing.T) {
	f := newConsListFixture()
	cfg := pstring.Config{
		Beta:        0.3,
		PInsertion:  0.05,
		PDeletion:   0.05,
		PCorrectSub: 0.8,
		PIncorrectSub: pstring.SubDist{
			Kind:   pstring.Bounded,
			Low:    0,
			High:   9,
			Weight: 0.1,
		},
	}
	d := pstring.New(f.sig, cfg)

	x := f.cell(1, f.cell(2, f.nilTerm()))
	y := f.cell(1, f.cell(2, f.nilTerm()))
	logProb, ok := d.PList(x, y, 2, 2)
	require.True(t, ok)
	require.LessOrEqual(t, logProb, 0.0)
}
