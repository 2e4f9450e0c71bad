package pstring

import (
	"math"
	"strconv"

	"github.com/gitrdm/rewrite/pkg/rewrite"
	"github.com/gitrdm/rewrite/pkg/term"
)

// Distance evaluates the probabilistic edit-distance scoring of
// SPEC_FULL.md §4.8 over a fixed Signature and Config.
type Distance struct {
	sig term.Signature
	cfg Config
}

// New builds a Distance over sig using cfg. cfg is not validated here;
// callers that want the probability-sum check run Config.Validate
// themselves.
func New(sig term.Signature, cfg Config) *Distance {
	return &Distance{sig: sig, cfg: cfg}
}

// PString returns ln P(y|x) for two terms, by flattening each to an atom
// sequence (pkg/rewrite.ToString) and scoring under the edit model. tMax and
// dMax cap the insertion and deletion counts the search considers, the way
// the original term-rewriting-rs p_string(x, y, dist, t_max, d_max, sig)
// takes them as explicit search bounds rather than deriving them purely
// from len(x)/len(y) (see original_source/src/types/trs.rs). Reports
// ok=false if either term cannot be flattened (is not a "." chain of
// nullary atoms, per §4.7).
func (d *Distance) PString(x, y term.Term, tMax, dMax int) (logProb float64, ok bool) {
	xs, ok1 := rewrite.ToString(d.sig, x)
	ys, ok2 := rewrite.ToString(d.sig, y)
	if !ok1 || !ok2 {
		return 0, false
	}
	return d.compute(xs, ys, tMax, dMax), true
}

// PList is PString specialized to Lisp-style cons lists (§4.7's
// NIL/CONS encoding), via pkg/rewrite.ListToString.
func (d *Distance) PList(x, y term.Term, tMax, dMax int) (logProb float64, ok bool) {
	xs, ok1 := rewrite.ListToString(d.sig, x)
	ys, ok2 := rewrite.ListToString(d.sig, y)
	if !ok1 || !ok2 {
		return 0, false
	}
	return d.compute(xs, ys, tMax, dMax), true
}

// compute is the outer sum of §4.8: for every feasible insertion count t,
// accumulate rho(t) * N(t) * Q(t, d, s), where d = deletions and s =
// substitutions implied by t given len(x) = m, len(y) = n. t ranges over
// [n-m, min(tMax, dMax+n-m)], clamped at 0 — the same window
// term-rewriting-rs's PString::compute uses. Returns the natural log of the
// total (which may be -Inf if no path has any mass).
func (d *Distance) compute(x, y []term.Atom, tMax, dMax int) float64 {
	m, n := len(x), len(y)

	tStart := 0
	if n-m > tStart {
		tStart = n - m
	}
	tEnd := dMax + n - m
	if tMax < tEnd {
		tEnd = tMax
	}

	memo := make(map[[3]int]float64)

	var total float64
	for t := tStart; t <= tEnd; t++ {
		if t > n || n > m+t {
			continue
		}
		del := m + t - n
		sub := n - t
		rho := (1 - d.cfg.Beta) * math.Pow(d.cfg.Beta, float64(t))
		n_t := countingFactor(m, t)
		q := d.q(memo, x, y, t, del, sub)
		total += rho * n_t * q
	}
	return math.Log(total)
}

// countingFactor is N(t) = m! t! / (m+t)!, computed via the two running
// products SPEC_FULL.md names (avoiding direct factorials, which overflow
// quickly): the product over 1..min(m,t) divided by the product over
// max(m,t)+1..m+t. N(0,0) = 1.
func countingFactor(m, t int) float64 {
	if m == 0 && t == 0 {
		return 1
	}
	lo, hi := m, t
	if lo > hi {
		lo, hi = hi, lo
	}
	num := 1.0
	for i := 1; i <= lo; i++ {
		num *= float64(i)
	}
	den := 1.0
	for i := hi + 1; i <= m+t; i++ {
		den *= float64(i)
	}
	return num / den
}

// q is the memoized 3-D recurrence Q(t,d,s): the probability mass of every
// alignment of t insertions, d deletions and s substitutions that reads all
// of x (length m = s+d, indices 0..d+s-1 consumed) and produces all of y
// (length n = s+t). Q(0,0,0) = 1; each positive coordinate contributes the
// alternative of "that kind of edit happened last", weighted by its edit
// probability, summed over every applicable alternative.
func (d *Distance) q(memo map[[3]int]float64, x, y []term.Atom, t, del, sub int) float64 {
	if t < 0 || del < 0 || sub < 0 {
		return 0
	}
	key := [3]int{t, del, sub}
	if v, ok := memo[key]; ok {
		return v
	}
	if t == 0 && del == 0 && sub == 0 {
		memo[key] = 1
		return 1
	}

	var total float64
	if t > 0 {
		total += d.q(memo, x, y, t-1, del, sub) * d.cfg.PInsertion
	}
	if del > 0 {
		total += d.q(memo, x, y, t, del-1, sub) * d.cfg.PDeletion
	}
	if sub > 0 {
		// The s-th substitution reads x[s+d-1] and y[s+t-1] (the final
		// characters consumed by this alignment before the last sub step).
		xi := x[sub+del-1]
		yi := y[sub+t-1]
		total += d.q(memo, x, y, t, del, sub-1) * d.pSub(xi, yi)
	}

	memo[key] = total
	return total
}

// pSub is p_sub(x_i, y_j): p_correct_sub when the atoms are equal, else
// p_incorrect_sub, which is either a flat Constant or a Bounded triangular
// weight over atoms whose display parses as an integer.
func (d *Distance) pSub(x, y term.Atom) float64 {
	if x.Equal(y) {
		return d.cfg.PCorrectSub
	}
	switch d.cfg.PIncorrectSub.Kind {
	case Constant:
		return d.cfg.PIncorrectSub.Constant
	case Bounded:
		nx, okx := atomInt(d.sig, x)
		ny, oky := atomInt(d.sig, y)
		if !okx || !oky {
			return 0
		}
		return d.boundedWeight(nx, ny)
	default:
		return 0
	}
}

// boundedWeight implements the triangular p_incorrect_sub shape: peak is
// one more than nx's reach to the farther end of [Low, High] (the full
// width when nx is an end point), and the weight (peak - |nx-ny|) / Z falls
// linearly with distance, reaching 0 at distance peak. Z is the triangular
// sum 1..peak-1 plus the largest High-nx terms of that sum. Z is not in
// general the row's total, so a row need not sum to Weight: with
// [Low, High] = [0, 9] the row for nx = 5 sums to Weight, the row for
// nx = 0 to Weight/2.
func (d *Distance) boundedWeight(nx, ny int) float64 {
	sd := d.cfg.PIncorrectSub
	var peak int
	if nx == sd.Low || nx == sd.High {
		peak = sd.High + 1 - sd.Low
	} else {
		left := nx + 1 - sd.Low
		right := sd.High + 1 - nx
		if left > right {
			peak = left
		} else {
			peak = right
		}
	}

	forward := triangularSum(peak - 1)
	reversedTake := reversedTailSum(peak-1, sd.High-nx)
	z := forward + reversedTake
	if z <= 0 {
		return 0
	}

	dist := nx - ny
	if dist < 0 {
		dist = -dist
	}
	w := float64(peak-dist) / float64(z)
	if w < 0 {
		w = 0
	}
	return w * sd.Weight
}

// triangularSum is 1+2+...+k, 0 for k<=0.
func triangularSum(k int) float64 {
	if k <= 0 {
		return 0
	}
	return float64(k) * float64(k+1) / 2
}

// reversedTailSum sums the first `take` terms of the strictly-decreasing
// sequence k, k-1, ..., 1 (i.e. its largest `take` values).
func reversedTailSum(k, take int) float64 {
	if take <= 0 || k <= 0 {
		return 0
	}
	if take > k {
		take = k
	}
	return float64(take) * (2*float64(k) - float64(take) + 1) / 2
}

// atomInt parses an atom's canonical display as a base-10 integer, for use
// as a Bounded p_incorrect_sub coordinate.
func atomInt(sig term.Signature, a term.Atom) (int, bool) {
	s := a.Display(sig)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
