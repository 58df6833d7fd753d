package wfsa

import (
	"fmt"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
)

// LehmannClosure computes the all-pairs path closure over a closed
// semiring, the Gauss-Jordan-style elimination described by Lehmann
// (1977): states are eliminated one at a time as an intermediate hop, in
// a fixed deterministic k -> i -> j loop order, so results are
// reproducible run to run even for non-idempotent weights.
//
// arc(p, q) supplies the direct arc weight from p to q (Zero if none).
// The diagonal starts at Zero plus whatever direct self-loop arc(s, s)
// contributes, so after elimination U[s][s] reports only actual
// positive-length paths back to s. When includeZeroLength is true, One
// (the length-zero path, "stay put for free") is then added to every
// diagonal entry; when false, the diagonal is returned as is. Epsilon removal needs the
// zero=false form (it must not introduce a spurious identity that would
// double-count the zero-length path already handled by the caller);
// weight pushing's backward potential needs the zero=true form.
//
// T must implement semiring.Starable; LehmannClosure returns
// semiring.ErrDivergentClosure (wrapped) if Star fails for any entry
// eliminated as an intermediate state.
func LehmannClosure[T semiring.Semiring[T]](
	states []automatonstate.State,
	arc func(p, q automatonstate.State) T,
	includeZeroLength bool,
) (map[automatonstate.State]map[automatonstate.State]T, error) {
	var zero T
	n := len(states)

	u := make([][]T, n)
	for i := range u {
		u[i] = make([]T, n)
		for j := range u[i] {
			u[i][j] = zero.Zero()
		}
	}
	for i, p := range states {
		for j, q := range states {
			u[i][j] = u[i][j].Add(arc(p, q))
		}
	}

	star := func(t T) (T, error) {
		s, ok := any(t).(semiring.Starable[T])
		if !ok {
			return zero.Zero(), fmt.Errorf("wfsa: lehmann closure: %w", semiring.ErrDivergentClosure)
		}
		return s.Star()
	}

	// Each round reads only the previous round's matrix (u) and writes a
	// fresh one (next); no cell rewritten this round is ever read back
	// this same round. The formula applies uniformly to every cell,
	// diagonal included: eliminating k updates u[k][k] itself to
	// u ⊕ u ⊗ u* ⊗ u, the positive-length closure, which is what keeps
	// the zero-length path out of the matrix until the caller asks for it.
	for k := 0; k < n; k++ {
		skk, err := star(u[k][k])
		if err != nil {
			return nil, err
		}

		next := make([][]T, n)
		for i := range next {
			next[i] = make([]T, n)
			for j := 0; j < n; j++ {
				next[i][j] = u[i][j].Add(u[i][k].Mul(skk).Mul(u[k][j]))
			}
		}
		u = next
	}

	if includeZeroLength {
		for i := range u {
			u[i][i] = u[i][i].Add(zero.One())
		}
	}

	out := make(map[automatonstate.State]map[automatonstate.State]T, n)
	for i, p := range states {
		row := make(map[automatonstate.State]T, n)
		for j, q := range states {
			row[q] = u[i][j]
		}
		out[p] = row
	}
	return out, nil
}
