package wfsa

import (
	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
)

// PushOptions configures Push's behavior.
type PushOptions struct {
	// SanityCheck, when true (the default), verifies after pushing that
	// every state with a nonzero backward potential satisfies
	// ρ'(s) ⊕ ⊕_arcs w'(s,a,q) = one, the defining property of a pushed
	// automaton. Johnson's algorithm (pathsum) calls PushWithPotential
	// with this disabled: it pushes with potentials derived from a
	// super-source-free Bellman-Ford pass for reweighting purposes only,
	// where the post-condition does not hold by construction.
	SanityCheck bool
}

// PushOption is a functional option for Push.
type PushOption func(*PushOptions)

// DefaultPushOptions returns PushOptions with SanityCheck enabled.
func DefaultPushOptions() PushOptions { return PushOptions{SanityCheck: true} }

// WithoutSanityCheck disables Push's post-condition check.
func WithoutSanityCheck() PushOption {
	return func(o *PushOptions) { o.SanityCheck = false }
}

// Push computes the weight-pushed equivalent of f: every state's backward
// potential V(s) (the total weight of every path from s to a final state,
// s itself included via the zero-length path) is folded into its
// surrounding arcs and final weight, so that locally, at every state, the
// weight reaching a final state is distributed as evenly as possible
// across outgoing choices. This requires T to support division, so every
// nonzero V(s) must implement semiring.Invertible.
func Push[T semiring.Semiring[T]](f *WFSA[T], opts ...PushOption) (*WFSA[T], error) {
	o := DefaultPushOptions()
	for _, fn := range opts {
		fn(&o)
	}

	v, err := BackwardPotential(f)
	if err != nil {
		return nil, err
	}

	return PushWithPotential(f, v, o)
}

// BackwardPotential computes V(s), the sum of every path weight from s to
// a final state (including the zero-length path when s is itself final),
// via LehmannClosure with zero-length paths included.
func BackwardPotential[T semiring.Semiring[T]](f *WFSA[T]) (map[automatonstate.State]T, error) {
	states := f.States()
	arc := func(p, q automatonstate.State) T {
		var z T
		total := z.Zero()
		for _, a := range f.out[p] {
			if a.To == q {
				total = total.Add(a.Weight)
			}
		}
		return total
	}

	closure, err := LehmannClosure[T](states, arc, true)
	if err != nil {
		return nil, err
	}

	var z T
	v := make(map[automatonstate.State]T, len(states))
	for _, s := range states {
		total := z.Zero()
		row := closure[s]
		for q, u := range row {
			total = total.Add(u.Mul(f.FinalWeight(q)))
		}
		v[s] = total
	}
	return v, nil
}

// PushWithPotential applies the reweighting formula for an already-computed
// potential vector v: λ'(s) = λ(s) ⊗ v(s), ρ'(s) = ~v(s) ⊗ ρ(s), and
// w'(p,a,q) = ~v(p) ⊗ w(p,a,q) ⊗ v(q). States with v(s) = Zero keep their
// original final weight and outgoing arcs unscaled on the source side
// (there is nothing to divide out of an unreachable-to-final state).
func PushWithPotential[T semiring.Semiring[T]](f *WFSA[T], v map[automatonstate.State]T, o PushOptions) (*WFSA[T], error) {
	var z T
	zero, one := z.Zero(), z.One()

	inverse := make(map[automatonstate.State]T, len(v))
	for s, vs := range v {
		if vs.Equal(zero) {
			inverse[s] = one
			continue
		}
		inv, ok := any(vs).(semiring.Invertible[T])
		if !ok {
			return nil, ErrNoInverse
		}
		iv, err := inv.Inv()
		if err != nil {
			return nil, err
		}
		inverse[s] = iv
	}

	out := New[T]()
	for _, s := range f.states {
		out.addState(s)
	}
	for _, ws := range f.Initial() {
		_ = out.SetInitial(ws.State, ws.Weight.Mul(v[ws.State]))
	}
	for _, s := range f.states {
		if w, ok := f.finalWt[s]; ok {
			_ = out.SetFinal(s, inverse[s].Mul(w))
		}
		for _, a := range f.out[s] {
			w2 := inverse[a.From].Mul(a.Weight).Mul(v[a.To])
			_ = out.AddArc(a.From, a.To, a.Label, w2)
		}
	}

	if o.SanityCheck {
		for _, s := range out.states {
			if v[s].Equal(zero) {
				continue
			}
			sum := out.FinalWeight(s)
			for _, a := range out.out[s] {
				sum = sum.Add(a.Weight)
			}
			if !sum.Equal(one) {
				return nil, ErrNotPushed
			}
		}
	}

	return out, nil
}
