package wfsa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arnouk/ratalg/automatonstate"
	"github.com/arnouk/ratalg/semiring"
	"github.com/arnouk/ratalg/symbol"
)

// Minimize computes the minimal deterministic automaton equivalent to f
// via signature-based (Moore-style) partition refinement: states start
// partitioned into final (nonzero final weight) and non-final, then every
// state is re-split, round after round, by the signature of its current
// block and outgoing transitions (label, weight, target block) until the
// partition stabilizes. No Hopcroft splitter worklist is kept. The resulting blocks become the minimized automaton's
// states; a block's initial weight, final weight, and every outgoing arc
// weight are each the ⊕-sum across all of the block's members (several
// original states, each carrying their own weight, can collapse into one
// block).
//
// Minimize requires f to be deterministic and input-complete over its own
// alphabet (every state has exactly one outgoing arc per alphabet symbol);
// it returns ErrNotDeterministic or ErrNotInputComplete otherwise.
func Minimize[T semiring.Semiring[T]](f *WFSA[T]) (*WFSA[T], error) {
	if !f.Deterministic() {
		return nil, ErrNotDeterministic
	}
	alphabet := f.Alphabet()
	for _, s := range f.states {
		have := make(map[string]bool)
		for _, a := range f.out[s] {
			have[a.Label.Letter] = true
		}
		for _, sym := range alphabet {
			if !have[sym.Letter] {
				return nil, ErrNotInputComplete
			}
		}
	}

	block := make(map[automatonstate.State]int, len(f.states))
	var zero T
	for _, s := range f.states {
		if w, ok := f.finalWt[s]; ok {
			if !w.Equal(zero.Zero()) {
				block[s] = 1
				continue
			}
		}
		block[s] = 0
	}

	for {
		sig := make(map[automatonstate.State]string, len(f.states))
		for _, s := range f.states {
			var b strings.Builder
			fmt.Fprintf(&b, "%d", block[s])
			for _, a := range f.out[s] {
				fmt.Fprintf(&b, "|%s:%v:%d", a.Label.Letter, a.Weight, block[a.To])
			}
			sig[s] = b.String()
		}

		groups := make(map[string]int)
		next := make(map[automatonstate.State]int, len(f.states))
		order := make([]string, 0)
		for _, s := range f.states {
			g, ok := groups[sig[s]]
			if !ok {
				g = len(order)
				groups[sig[s]] = g
				order = append(order, sig[s])
			}
			next[s] = g
		}

		changed := false
		for _, s := range f.states {
			if next[s] != block[s] {
				changed = true
				break
			}
		}
		block = next
		if !changed {
			break
		}
	}

	out := New[T]()
	blockState := func(b int) automatonstate.State { return automatonstate.New(fmt.Sprintf("block-%d", b)) }

	repr := make(map[int]automatonstate.State)
	for _, s := range f.states {
		b := block[s]
		if _, ok := repr[b]; !ok {
			repr[b] = s
			out.addState(blockState(b))
		}
	}

	initSum := make(map[int]T)
	for _, ws := range f.Initial() {
		b := block[ws.State]
		if cur, ok := initSum[b]; ok {
			initSum[b] = cur.Add(ws.Weight)
		} else {
			initSum[b] = ws.Weight
		}
	}
	for b, w := range initSum {
		_ = out.SetInitial(blockState(b), w)
	}

	blocks := make([]int, 0, len(repr))
	for b := range repr {
		blocks = append(blocks, b)
	}
	sort.Ints(blocks)

	finalSum := make(map[int]T)
	for _, s := range f.states {
		w, ok := f.finalWt[s]
		if !ok {
			continue
		}
		b := block[s]
		if cur, ok := finalSum[b]; ok {
			finalSum[b] = cur.Add(w)
		} else {
			finalSum[b] = w
		}
	}
	for _, b := range blocks {
		if w, ok := finalSum[b]; ok {
			_ = out.SetFinal(blockState(b), w)
		}
	}

	type arcKey struct {
		from  int
		label symbol.Sym
		to    int
	}
	arcSum := make(map[arcKey]T)
	var arcKeys []arcKey
	for _, s := range f.states {
		b := block[s]
		for _, a := range f.out[s] {
			k := arcKey{from: b, label: a.Label, to: block[a.To]}
			if cur, ok := arcSum[k]; ok {
				arcSum[k] = cur.Add(a.Weight)
			} else {
				arcSum[k] = a.Weight
				arcKeys = append(arcKeys, k)
			}
		}
	}
	sort.Slice(arcKeys, func(i, j int) bool {
		if arcKeys[i].from != arcKeys[j].from {
			return arcKeys[i].from < arcKeys[j].from
		}
		if arcKeys[i].label.Letter != arcKeys[j].label.Letter {
			return arcKeys[i].label.Letter < arcKeys[j].label.Letter
		}
		return arcKeys[i].to < arcKeys[j].to
	})
	for _, k := range arcKeys {
		_ = out.SetArc(blockState(k.from), blockState(k.to), k.label, arcSum[k])
	}

	return out, nil
}
