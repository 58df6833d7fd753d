package wfsa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// powerState is one member of a subset-construction state: the original
// state q carrying a residual weight, the portion of the accumulated path
// weight not yet normalized out when q was added to the subset.
type powerState[T semiring.Semiring[T]] struct {
	Q automatonstate.State
	W T
}

// powerStateKey canonicalizes a subset of (state, residual) pairs into a
// single comparable, hashable string: sort by the member state's string
// form, then join "id=weight" pairs. Go maps are not themselves
// comparable, so the identity of a residual map has to be flattened to a
// string before it can become an automatonstate.State.ID and be used as
// this package's map key. Hashing the full residual multiset, not just
// the domain set, keeps distinct residualizations distinct.
func powerStateKey[T semiring.Semiring[T]](members []powerState[T]) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = fmt.Sprintf("%s=%v", m.Q, m.W)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Determinize computes the weighted subset-construction determinization of
// f: each resulting state is a canonical set of (original state, residual
// weight) pairs, reachable under a common input string, with the residual
// equal to the fraction of the accumulated weight not yet distributed
// across outgoing transitions. Because normalizing a residual requires
// dividing by an accumulated total, T must implement semiring.Invertible;
// Determinize returns ErrNoInverse if it does not, or if an accumulated
// total turns out to be non-invertible for a concrete element (e.g. Zero).
func Determinize[T semiring.Semiring[T]](f *WFSA[T]) (*WFSA[T], error) {
	out := New[T]()
	var zero T
	one := zero.One()

	initMembers := make([]powerState[T], 0, len(f.initOrder))
	for _, ws := range f.Initial() {
		initMembers = append(initMembers, powerState[T]{Q: ws.State, W: ws.Weight})
	}
	sort.Slice(initMembers, func(i, j int) bool { return initMembers[i].Q.String() < initMembers[j].Q.String() })

	key := powerStateKey(initMembers)
	rootID := automatonstate.New(key)
	_ = out.SetInitial(rootID, one)

	seen := map[string][]powerState[T]{key: initMembers}
	queue := []string{key}

	for len(queue) > 0 {
		curKey := queue[0]
		queue = queue[1:]
		members := seen[curKey]
		curState := automatonstate.New(curKey)

		finalTotal := zero.Zero()
		for _, m := range members {
			finalTotal = finalTotal.Add(m.W.Mul(f.FinalWeight(m.Q)))
		}
		if !finalTotal.Equal(zero.Zero()) {
			_ = out.SetFinal(curState, finalTotal)
		}

		residuals, err := powerArcs(f, members)
		if err != nil {
			return nil, err
		}

		labels := make([]symbol.Sym, 0, len(residuals))
		for lab := range residuals {
			labels = append(labels, lab)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i].Letter < labels[j].Letter })

		for _, lab := range labels {
			group := residuals[lab]
			nextMembers := group.Members
			sort.Slice(nextMembers, func(i, j int) bool { return nextMembers[i].Q.String() < nextMembers[j].Q.String() })
			nextKey := powerStateKey(nextMembers)
			nextState := automatonstate.New(nextKey)

			if _, ok := seen[nextKey]; !ok {
				seen[nextKey] = nextMembers
				queue = append(queue, nextKey)
			}
			_ = out.SetArc(curState, nextState, lab, group.Total)
		}
	}

	return out, nil
}

// labelGroup bundles a label's successor subset with the raw
// pre-normalization total accumulated across every member/arc pair that
// reaches it — the arc weight Determinize emits for that label (distinct
// from the Members' own residuals, which are the total's inverse times
// their raw contribution).
type labelGroup[T semiring.Semiring[T]] struct {
	Members []powerState[T]
	Total   T
}

// powerArcs computes, for each non-epsilon label reachable from the
// members of a subset, the residual-weighted set of destination states:
// for every member (q, w) and every q -a-> q' arc of weight w', the
// contribution to a'-labeled successor q' is w ⊗ w', accumulated (summed)
// across every member/arc pair that reaches the same q'. Returns both the
// label's raw total n(a) and the member set normalized by n(a)'s inverse.
func powerArcs[T semiring.Semiring[T]](f *WFSA[T], members []powerState[T]) (map[symbol.Sym]labelGroup[T], error) {
	byLabel := make(map[symbol.Sym]map[automatonstate.State]T)

	for _, m := range members {
		for _, arc := range f.out[m.Q] {
			if arc.Label.IsEpsilon() {
				continue
			}
			contrib := m.W.Mul(arc.Weight)
			dest, ok := byLabel[arc.Label]
			if !ok {
				dest = make(map[automatonstate.State]T)
				byLabel[arc.Label] = dest
			}
			if cur, ok := dest[arc.To]; ok {
				dest[arc.To] = cur.Add(contrib)
			} else {
				dest[arc.To] = contrib
			}
		}
	}

	out := make(map[symbol.Sym]labelGroup[T], len(byLabel))
	for lab, dest := range byLabel {
		total := func() T {
			var z T
			t := z.Zero()
			for _, w := range dest {
				t = t.Add(w)
			}
			return t
		}()

		inv, ok := any(total).(semiring.Invertible[T])
		if !ok {
			return nil, ErrNoInverse
		}
		normalizer, err := inv.Inv()
		if err != nil {
			return nil, fmt.Errorf("wfsa: determinize: %w: %w", ErrNoInverse, err)
		}

		members := make([]powerState[T], 0, len(dest))
		for q, w := range dest {
			members = append(members, powerState[T]{Q: q, W: w.Mul(normalizer)})
		}
		out[lab] = labelGroup[T]{Members: members, Total: total}
	}

	return out, nil
}
